package sgf

import (
	"strconv"
	"strings"
)

// GameInfo is the metadata of one game record, read from the root node.
// Every field except BoardSize degrades to "" when the property is absent;
// metadata completeness is never guaranteed by the format.
type GameInfo struct {
	PlayerBlack string `json:"player_black" bson:"player_black"`
	PlayerWhite string `json:"player_white" bson:"player_white"`
	BlackRank   string `json:"black_rank,omitempty" bson:"black_rank,omitempty"`
	WhiteRank   string `json:"white_rank,omitempty" bson:"white_rank,omitempty"`
	Komi        string `json:"komi,omitempty" bson:"komi,omitempty"`
	Result      string `json:"result,omitempty" bson:"result,omitempty"`
	Date        string `json:"date,omitempty" bson:"date,omitempty"`
	Event       string `json:"event,omitempty" bson:"event,omitempty"`
	Rules       string `json:"rules,omitempty" bson:"rules,omitempty"`
	BoardSize   int    `json:"board_size" bson:"board_size"`
	Comment     string `json:"comment,omitempty" bson:"comment,omitempty"`
}

// first returns the first value of a root property, or "" when absent.
func first(root *Node, ident string) string {
	vals := root.Properties[ident]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// extractGameInfo maps the known root-node identifiers to a GameInfo.
// Unknown identifiers are ignored so files using newer SGF extensions
// still parse. Only a present-but-broken SZ is fatal.
func extractGameInfo(root *Node) (GameInfo, error) {
	info := GameInfo{
		PlayerBlack: first(root, "PB"),
		PlayerWhite: first(root, "PW"),
		BlackRank:   first(root, "BR"),
		WhiteRank:   first(root, "WR"),
		Komi:        first(root, "KM"),
		Result:      first(root, "RE"),
		Date:        first(root, "DT"),
		Event:       first(root, "EV"),
		Rules:       first(root, "RU"),
		BoardSize:   DefaultBoardSize,
	}

	if comments := root.Properties["C"]; len(comments) > 0 {
		info.Comment = strings.Join(comments, "\n")
	}

	if raw := first(root, "SZ"); raw != "" {
		size, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || size < 1 || size > MaxBoardSize {
			return GameInfo{}, &InvalidSizeError{Value: raw}
		}
		info.BoardSize = size
	}

	return info, nil
}
