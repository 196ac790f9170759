package sgf

import (
	"errors"
	"testing"
)

func TestDecodePoint(t *testing.T) {
	cases := []struct {
		value     string
		boardSize int
		x, y      int
		pass      bool
	}{
		{"aa", 19, 0, 0, false},
		{"pd", 19, 15, 3, false},
		{"ss", 19, 18, 18, false},
		{"", 19, 0, 0, true},
		{"", 9, 0, 0, true},
		{"tt", 19, 0, 0, true},
		{"tt", 21, 19, 19, false}, // tt is only a pass on 19x19
		{"zz", 26, 25, 25, false},
		{"aA", 52, 0, 26, false},
		{"ZZ", 52, 51, 51, false},
	}
	for _, c := range cases {
		p, pass, err := DecodePoint(c.value, c.boardSize)
		if err != nil {
			t.Fatalf("DecodePoint(%q, %d) failed: %v", c.value, c.boardSize, err)
		}
		if pass != c.pass {
			t.Fatalf("DecodePoint(%q, %d) pass = %v, want %v", c.value, c.boardSize, pass, c.pass)
		}
		if !pass && (p.X != c.x || p.Y != c.y) {
			t.Fatalf("DecodePoint(%q, %d) = (%d,%d), want (%d,%d)", c.value, c.boardSize, p.X, p.Y, c.x, c.y)
		}
	}
}

func TestDecodePointErrors(t *testing.T) {
	cases := []struct {
		value     string
		boardSize int
	}{
		{"zz", 19},  // 25 >= 19
		{"aA", 19},  // uppercase axis beyond a small board
		{"a", 19},   // too short
		{"aaa", 19}, // too long
		{"a1", 19},  // not a letter
		{"tt", 9},   // tt is not a pass off 19x19 and lands outside
	}
	for _, c := range cases {
		_, _, err := DecodePoint(c.value, c.boardSize)
		var coordErr *CoordinateError
		if !errors.As(err, &coordErr) {
			t.Fatalf("DecodePoint(%q, %d) err = %v, want CoordinateError", c.value, c.boardSize, err)
		}
	}
}

func TestEncodePointRoundTrip(t *testing.T) {
	for _, p := range []Point{{0, 0}, {15, 3}, {25, 25}, {26, 0}, {51, 51}} {
		got, pass, err := DecodePoint(EncodePoint(p), MaxBoardSize)
		if err != nil || pass {
			t.Fatalf("round trip of %+v: pass=%v err=%v", p, pass, err)
		}
		if got != p {
			t.Fatalf("round trip of %+v = %+v", p, got)
		}
	}
}
