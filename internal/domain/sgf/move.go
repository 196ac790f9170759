package sgf

import "strings"

// Color of a move.
type Color string

const (
	Black Color = "black"
	White Color = "white"
)

// Move is one played move on the canonical line. Number runs 1..N with no
// gaps. Point is nil exactly when Pass is true.
type Move struct {
	Number  int    `json:"number" bson:"number"`
	Color   Color  `json:"color" bson:"color"`
	Point   *Point `json:"point,omitempty" bson:"point,omitempty"`
	Pass    bool   `json:"pass,omitempty" bson:"pass,omitempty"`
	Comment string `json:"comment,omitempty" bson:"comment,omitempty"`
}

// extractMoves walks the canonical line and emits one Move per node that
// carries a B or W property. Setup and metadata nodes are skipped and never
// consume a move number. When a move property holds several bracketed
// values only the first is the coordinate.
func extractMoves(t *GameTree, boardSize int) ([]Move, error) {
	var moves []Move
	for _, idx := range t.mainLine() {
		node := &t.nodes[idx]
		black, hasBlack := node.Properties["B"]
		white, hasWhite := node.Properties["W"]
		if !hasBlack && !hasWhite {
			continue
		}
		if hasBlack && hasWhite {
			return nil, &AmbiguousMoveError{MoveNumber: len(moves) + 1}
		}

		color, vals := Black, black
		if hasWhite {
			color, vals = White, white
		}
		raw := ""
		if len(vals) > 0 {
			raw = vals[0]
		}

		point, pass, err := DecodePoint(raw, boardSize)
		if err != nil {
			return nil, err
		}

		move := Move{
			Number: len(moves) + 1,
			Color:  color,
			Pass:   pass,
		}
		if !pass {
			p := point
			move.Point = &p
		}
		if comments := node.Properties["C"]; len(comments) > 0 {
			move.Comment = strings.Join(comments, "\n")
		}
		moves = append(moves, move)
	}
	return moves, nil
}
