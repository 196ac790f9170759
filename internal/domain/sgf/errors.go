package sgf

import (
	"errors"
	"fmt"
)

// ErrMultipleGames is returned when the input contains more than one
// top-level game tree. Splitting collections is the caller's job.
var ErrMultipleGames = errors.New("sgf: input contains more than one game")

// LexError reports a malformed token or an unterminated bracketed value.
type LexError struct {
	Offset int
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("sgf: lex error at offset %d: %s", e.Offset, e.Msg)
}

// SyntaxError reports structurally invalid tree nesting.
type SyntaxError struct {
	Offset   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("sgf: syntax error at offset %d: expected %s", e.Offset, e.Expected)
}

// CoordinateError reports a move coordinate that is malformed or falls
// outside the board.
type CoordinateError struct {
	Value     string
	BoardSize int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("sgf: bad coordinate %q for board size %d", e.Value, e.BoardSize)
}

// InvalidSizeError reports a declared board size that is not a positive
// integer within the addressable range.
type InvalidSizeError struct {
	Value string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("sgf: invalid board size %q (want integer in [1, %d])", e.Value, MaxBoardSize)
}

// AmbiguousMoveError reports a node declaring both a black and a white move.
type AmbiguousMoveError struct {
	MoveNumber int
}

func (e *AmbiguousMoveError) Error() string {
	return fmt.Sprintf("sgf: node for move %d declares both B and W", e.MoveNumber)
}
