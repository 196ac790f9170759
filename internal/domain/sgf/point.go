package sgf

// MaxBoardSize is the largest board addressable by SGF's one-letter-per-axis
// coordinates: a-z cover 0-25, A-Z cover 26-51.
const MaxBoardSize = 52

// DefaultBoardSize is assumed when a record declares no SZ property.
const DefaultBoardSize = 19

// Point is a zero-based board coordinate. X is the column (first coordinate
// letter), Y the row (second letter).
type Point struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

func letterIndex(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26
	}
	return -1
}

// DecodePoint maps a raw SGF coordinate value to a Point, or to a pass.
// An empty value is a pass, as is "tt" on a 19x19 board (the historical
// pass convention from before FF[4]). Anything else must be exactly two
// coordinate letters inside the board.
func DecodePoint(value string, boardSize int) (p Point, pass bool, err error) {
	if value == "" {
		return Point{}, true, nil
	}
	if value == "tt" && boardSize == 19 {
		return Point{}, true, nil
	}
	if len(value) != 2 {
		return Point{}, false, &CoordinateError{Value: value, BoardSize: boardSize}
	}
	x := letterIndex(value[0])
	y := letterIndex(value[1])
	if x < 0 || y < 0 || x >= boardSize || y >= boardSize {
		return Point{}, false, &CoordinateError{Value: value, BoardSize: boardSize}
	}
	return Point{X: x, Y: y}, false, nil
}
