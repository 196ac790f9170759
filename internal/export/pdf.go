// Package export renders uploaded game records into printable move sheets.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"kifu_vault/internal/domain/record"
	"kifu_vault/internal/domain/sgf"
)

func moveText(m sgf.Move) string {
	color := "B"
	if m.Color == sgf.White {
		color = "W"
	}
	if m.Pass {
		return fmt.Sprintf("%3d. %s pass", m.Number, color)
	}
	return fmt.Sprintf("%3d. %s %s", m.Number, color, sgf.EncodePoint(*m.Point))
}

// RenderMoveSheet builds a one-game PDF: a metadata header followed by the
// numbered move list of the canonical line.
func RenderMoveSheet(rec record.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Courier", "", 10)
	pdf.AddPage()

	info := rec.Game.Info
	pdf.Cell(40, 10, rec.Filename)
	pdf.Ln(10)

	header := []string{
		fmt.Sprintf("Black: %s %s", info.PlayerBlack, info.BlackRank),
		fmt.Sprintf("White: %s %s", info.PlayerWhite, info.WhiteRank),
		fmt.Sprintf("Board: %dx%d  Komi: %s  Rules: %s", info.BoardSize, info.BoardSize, info.Komi, info.Rules),
		fmt.Sprintf("Date: %s  Event: %s", info.Date, info.Event),
		fmt.Sprintf("Result: %s", info.Result),
	}
	for _, line := range header {
		pdf.MultiCell(0, 4.5, line, "", "L", false)
	}

	if info.Comment != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 4.5, info.Comment, "", "L", false)
	}

	pdf.Ln(6)
	for _, move := range rec.Game.Moves {
		line := moveText(move)
		if move.Comment != "" {
			line += "  // " + move.Comment
		}
		pdf.MultiCell(0, 4.5, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
