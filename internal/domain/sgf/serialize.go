package sgf

import (
	"strconv"
	"strings"
)

// fixed root property order, move nodes follow
var rootPropertyOrder = []string{"FF", "GM", "SZ", "PB", "PW", "BR", "WR", "DT", "EV", "RE", "KM", "RU", "C"}

func escapeValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `]`, `\]`)
}

func encodeLetter(i int) byte {
	if i < 26 {
		return byte('a' + i)
	}
	return byte('A' + i - 26)
}

// EncodePoint is the inverse of DecodePoint for on-board coordinates.
func EncodePoint(p Point) string {
	return string([]byte{encodeLetter(p.X), encodeLetter(p.Y)})
}

// Serialize renders a GameRecord back to minimal SGF text: one root node
// with the known metadata properties, then one node per move. A pass is an
// empty coordinate value. The output parses back to an equal record.
func Serialize(rec *GameRecord) string {
	root := map[string]string{
		"FF": "4",
		"GM": "1",
		"SZ": strconv.Itoa(rec.Info.BoardSize),
		"PB": rec.Info.PlayerBlack,
		"PW": rec.Info.PlayerWhite,
		"BR": rec.Info.BlackRank,
		"WR": rec.Info.WhiteRank,
		"DT": rec.Info.Date,
		"EV": rec.Info.Event,
		"RE": rec.Info.Result,
		"KM": rec.Info.Komi,
		"RU": rec.Info.Rules,
		"C":  rec.Info.Comment,
	}

	var builder strings.Builder
	builder.WriteString("(;")
	for _, key := range rootPropertyOrder {
		v := root[key]
		if v == "" && key != "FF" && key != "GM" && key != "SZ" {
			continue
		}
		builder.WriteString(key)
		builder.WriteString("[")
		builder.WriteString(escapeValue(v))
		builder.WriteString("]")
	}

	for _, move := range rec.Moves {
		builder.WriteString(";")
		if move.Color == Black {
			builder.WriteString("B")
		} else {
			builder.WriteString("W")
		}
		builder.WriteString("[")
		if !move.Pass {
			builder.WriteString(EncodePoint(*move.Point))
		}
		builder.WriteString("]")
		if move.Comment != "" {
			builder.WriteString("C[")
			builder.WriteString(escapeValue(move.Comment))
			builder.WriteString("]")
		}
	}

	builder.WriteString(")")
	return builder.String()
}
