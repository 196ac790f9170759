package sgf

import (
	"errors"
	"reflect"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func mustParse(t *testing.T, src string) *GameRecord {
	t.Helper()
	rec, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return rec
}

func wantMove(t *testing.T, m Move, number int, color Color, x, y int) {
	t.Helper()
	if m.Number != number || m.Color != color {
		t.Fatalf("move = %+v, want number %d color %s", m, number, color)
	}
	if m.Pass {
		t.Fatalf("move %d is a pass, want (%d,%d)", number, x, y)
	}
	if m.Point.X != x || m.Point.Y != y {
		t.Fatalf("move %d at (%d,%d), want (%d,%d)", number, m.Point.X, m.Point.Y, x, y)
	}
}

func wantPass(t *testing.T, m Move, number int, color Color) {
	t.Helper()
	if m.Number != number || m.Color != color {
		t.Fatalf("move = %+v, want number %d color %s", m, number, color)
	}
	if !m.Pass || m.Point != nil {
		t.Fatalf("move %d = %+v, want a pass with no point", number, m)
	}
}

// --- tests -----------------------------------------------------------------

func TestParseBasicGame(t *testing.T) {
	rec := mustParse(t, "(;GM[1]SZ[19]PB[Alice]PW[Bob];B[pd];W[dd])")

	if rec.Info.PlayerBlack != "Alice" || rec.Info.PlayerWhite != "Bob" {
		t.Fatalf("players = %q / %q, want Alice / Bob", rec.Info.PlayerBlack, rec.Info.PlayerWhite)
	}
	if rec.Info.BoardSize != 19 {
		t.Fatalf("board size = %d, want 19", rec.Info.BoardSize)
	}
	if len(rec.Moves) != 2 {
		t.Fatalf("got %d moves, want 2", len(rec.Moves))
	}
	wantMove(t, rec.Moves[0], 1, Black, 15, 3)
	wantMove(t, rec.Moves[1], 2, White, 3, 3)
}

func TestParsePassMoves(t *testing.T) {
	rec := mustParse(t, "(;SZ[9];B[];W[ee])")

	if rec.Info.BoardSize != 9 {
		t.Fatalf("board size = %d, want 9", rec.Info.BoardSize)
	}
	wantPass(t, rec.Moves[0], 1, Black)
	wantMove(t, rec.Moves[1], 2, White, 4, 4)
}

func TestParseHistoricalPass(t *testing.T) {
	// tt is a pass only on a 19x19 board
	rec := mustParse(t, "(;B[tt])")
	wantPass(t, rec.Moves[0], 1, Black)

	rec = mustParse(t, "(;SZ[21];B[tt])")
	wantMove(t, rec.Moves[0], 1, Black, 19, 19)
}

func TestParseMultiValueMoveUsesFirst(t *testing.T) {
	rec := mustParse(t, "(;B[aa][bb])")
	if len(rec.Moves) != 1 {
		t.Fatalf("got %d moves, want 1", len(rec.Moves))
	}
	wantMove(t, rec.Moves[0], 1, Black, 0, 0)
}

func TestParseCoordinateOutOfBounds(t *testing.T) {
	_, err := Parse("(;B[zz])")
	var coordErr *CoordinateError
	if !errors.As(err, &coordErr) {
		t.Fatalf("err = %v, want CoordinateError", err)
	}
	if coordErr.Value != "zz" || coordErr.BoardSize != 19 {
		t.Fatalf("CoordinateError = %+v", coordErr)
	}
}

func TestParseAmbiguousMove(t *testing.T) {
	_, err := Parse("(;B[aa]W[bb])")
	var ambErr *AmbiguousMoveError
	if !errors.As(err, &ambErr) {
		t.Fatalf("err = %v, want AmbiguousMoveError", err)
	}
}

func TestParseMultipleGames(t *testing.T) {
	_, err := Parse("(;B[aa])(;B[bb])")
	if !errors.Is(err, ErrMultipleGames) {
		t.Fatalf("err = %v, want ErrMultipleGames", err)
	}
}

func TestParseDefaultBoardSize(t *testing.T) {
	rec := mustParse(t, "(;PB[Alice])")
	if rec.Info.BoardSize != 19 {
		t.Fatalf("board size = %d, want default 19", rec.Info.BoardSize)
	}
}

func TestParseInvalidBoardSize(t *testing.T) {
	for _, src := range []string{"(;SZ[banana])", "(;SZ[0])", "(;SZ[-3])", "(;SZ[53])"} {
		_, err := Parse(src)
		var sizeErr *InvalidSizeError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("Parse(%q) err = %v, want InvalidSizeError", src, err)
		}
	}
}

func TestParseMetadataDefaults(t *testing.T) {
	rec := mustParse(t, "(;SZ[13])")
	info := rec.Info
	if info.PlayerBlack != "" || info.PlayerWhite != "" || info.Result != "" ||
		info.Event != "" || info.Date != "" || info.Rules != "" || info.Komi != "" {
		t.Fatalf("absent metadata should default to empty strings, got %+v", info)
	}
	if len(rec.Moves) != 0 {
		t.Fatalf("got %d moves, want 0", len(rec.Moves))
	}
}

func TestParseFullMetadata(t *testing.T) {
	rec := mustParse(t, "(;GM[1]FF[4]SZ[19]PB[Shusaku]PW[Gennan Inseki]BR[4d]WR[8d]KM[0]RE[B+2]DT[1846-07-21]EV[Castle game]RU[Japanese]C[The ear-reddening game.])")
	info := rec.Info
	if info.PlayerBlack != "Shusaku" || info.WhiteRank != "8d" || info.Result != "B+2" ||
		info.Date != "1846-07-21" || info.Event != "Castle game" || info.Rules != "Japanese" ||
		info.Komi != "0" || info.Comment != "The ear-reddening game." {
		t.Fatalf("info = %+v", info)
	}
}

func TestParseRepeatedPropertyUsesFirstValue(t *testing.T) {
	rec := mustParse(t, "(;PB[Alice]PB[Mallory])")
	if rec.Info.PlayerBlack != "Alice" {
		t.Fatalf("player black = %q, want Alice", rec.Info.PlayerBlack)
	}
}

func TestParseUnknownPropertiesIgnored(t *testing.T) {
	rec := mustParse(t, "(;SZ[19]XX[whatever]ZZZ[1][2];B[aa]QQ[?])")
	if len(rec.Moves) != 1 {
		t.Fatalf("got %d moves, want 1", len(rec.Moves))
	}
}

func TestParseEscapes(t *testing.T) {
	rec := mustParse(t, `(;C[bracket \] and backslash \\ survive];B[aa]C[good move \]!])`)
	if rec.Info.Comment != `bracket ] and backslash \ survive` {
		t.Fatalf("root comment = %q", rec.Info.Comment)
	}
	if rec.Moves[0].Comment != `good move ]!` {
		t.Fatalf("move comment = %q", rec.Moves[0].Comment)
	}
}

func TestParseCommentNewlinesKept(t *testing.T) {
	rec := mustParse(t, "(;C[line one\nline two];B[aa])")
	if rec.Info.Comment != "line one\nline two" {
		t.Fatalf("comment = %q", rec.Info.Comment)
	}
}

func TestParseSetupNodesSkipped(t *testing.T) {
	// the AB/AW setup node and the bare comment node consume no move numbers
	rec := mustParse(t, "(;SZ[19]AB[dd][pp];C[start];B[pd];W[dp];C[pause];B[dd])")
	if len(rec.Moves) != 3 {
		t.Fatalf("got %d moves, want 3", len(rec.Moves))
	}
	for i, m := range rec.Moves {
		if m.Number != i+1 {
			t.Fatalf("move %d numbered %d, want contiguous 1..N", i, m.Number)
		}
	}
}

func TestParseVariationTieBreak(t *testing.T) {
	// moves must follow only the first variation at every branch
	branched := "(;SZ[19];B[aa](;W[bb];B[cc](;W[dd])(;W[ee]))(;W[zz];B[zz]))"
	flat := "(;SZ[19];B[aa];W[bb];B[cc];W[dd])"

	got := mustParse(t, branched)
	want := mustParse(t, flat)
	if !reflect.DeepEqual(got.Moves, want.Moves) {
		t.Fatalf("branched moves = %+v, want %+v", got.Moves, want.Moves)
	}
}

func TestParseIdempotent(t *testing.T) {
	src := "(;SZ[19]PB[Alice]PW[Bob];B[pd]C[first];W[];B[dd])"
	a := mustParse(t, src)
	b := mustParse(t, src)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two parses of the same input differ:\n%+v\n%+v", a, b)
	}
}

func TestParseRootMove(t *testing.T) {
	// a move on the root node itself still counts as move 1
	rec := mustParse(t, "(;B[aa];W[bb])")
	wantMove(t, rec.Moves[0], 1, Black, 0, 0)
	wantMove(t, rec.Moves[1], 2, White, 1, 1)
}

func TestParseWhitespaceInsignificant(t *testing.T) {
	rec := mustParse(t, "  (\n ;SZ[19]\t PB [Alice]\n; B\n[pd]\n)  ")
	if rec.Info.PlayerBlack != "Alice" || len(rec.Moves) != 1 {
		t.Fatalf("rec = %+v", rec)
	}
	wantMove(t, rec.Moves[0], 1, Black, 15, 3)
}

func TestParseSyntaxErrors(t *testing.T) {
	cases := []string{
		"",                // no tree at all
		";B[aa]",          // node before any tree-open
		"(;B[aa]",         // unclosed tree
		"(;B[aa]))",       // close with no open
		"(;B[aa])extra",   // trailing junk
		"(;B[aa][bb]PB)",  // identifier without value
		"(;[aa])",         // value without identifier
		"((;B[aa]))",      // variation before any node
		"(;B[aa](;W[bb]);W[cc])", // node after a variation
	}
	for _, src := range cases {
		_, err := Parse(src)
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("Parse(%q) err = %v, want SyntaxError", src, err)
		}
	}
}

func TestParseLexErrors(t *testing.T) {
	cases := []string{
		"(;C[never closed",
		"(;B[aa]7)",
	}
	for _, src := range cases {
		_, err := Parse(src)
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Fatalf("Parse(%q) err = %v, want LexError", src, err)
		}
		if lexErr.Offset < 0 || lexErr.Offset > len(src) {
			t.Fatalf("Parse(%q) offset %d out of range", src, lexErr.Offset)
		}
	}
}

func TestParseLowercaseIdentifiersTolerated(t *testing.T) {
	// old FF[3] files carry lowercase letters in identifiers; they lex
	// fine and the unknown identifiers are simply ignored
	rec := mustParse(t, "(;CoPyright[whoever]SZ[19];B[aa])")
	if len(rec.Moves) != 1 {
		t.Fatalf("got %d moves, want 1", len(rec.Moves))
	}
}
