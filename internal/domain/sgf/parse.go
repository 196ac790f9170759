// Package sgf parses Smart Game Format game records into a flat,
// read-only representation: game metadata plus the numbered moves of the
// canonical line. Variations are parsed but only the first child of every
// branch contributes moves. Parsing is pure: no state survives a call and
// concurrent calls never share anything.
package sgf

// GameRecord is the result of one parse call: the root metadata and the
// ordered canonical-line moves.
type GameRecord struct {
	Info  GameInfo `json:"info" bson:"info"`
	Moves []Move   `json:"moves" bson:"moves"`
}

// Parse turns one SGF document into a GameRecord. The input must hold
// exactly one top-level game tree; errors follow the package taxonomy
// (LexError, SyntaxError, CoordinateError, InvalidSizeError,
// AmbiguousMoveError, ErrMultipleGames) and a failed parse returns no
// partial record.
func Parse(text string) (*GameRecord, error) {
	tree, err := buildTree(newLexer(text))
	if err != nil {
		return nil, err
	}

	info, err := extractGameInfo(tree.RootNode())
	if err != nil {
		return nil, err
	}

	moves, err := extractMoves(tree, info.BoardSize)
	if err != nil {
		return nil, err
	}

	return &GameRecord{Info: info, Moves: moves}, nil
}
