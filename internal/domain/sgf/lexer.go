package sgf

import "strings"

// lexer scans an SGF document in a single forward pass. It is created per
// parse call and never reused.
type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// next returns the following token, or tokenEOF once the input is
// exhausted. Whitespace outside bracketed values is skipped.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isWhitespace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{Kind: tokenEOF, Offset: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '(':
		l.pos++
		return token{Kind: tokenTreeOpen, Offset: start}, nil
	case c == ')':
		l.pos++
		return token{Kind: tokenTreeClose, Offset: start}, nil
	case c == ';':
		l.pos++
		return token{Kind: tokenNodeStart, Offset: start}, nil
	case c == '[':
		return l.lexValue()
	case isLetter(c):
		// Identifiers are letter runs. Lowercase letters are tolerated
		// (old FF[3] files carry them); unknown identifiers are dropped
		// later, never here.
		for l.pos < len(l.src) && isLetter(l.src[l.pos]) {
			l.pos++
		}
		return token{Kind: tokenPropIdent, Value: l.src[start:l.pos], Offset: start}, nil
	}
	return token{}, &LexError{Offset: start, Msg: "unexpected character " + string(c)}
}

// lexValue consumes a bracketed property value, decoding the \] and \\
// escapes. Every other byte, newlines included, is kept verbatim.
func (l *lexer) lexValue() (token, error) {
	start := l.pos
	l.pos++ // consume '['

	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case ']':
			l.pos++
			return token{Kind: tokenPropValue, Value: sb.String(), Offset: start}, nil
		case '\\':
			if l.pos+1 < len(l.src) && (l.src[l.pos+1] == ']' || l.src[l.pos+1] == '\\') {
				sb.WriteByte(l.src[l.pos+1])
				l.pos += 2
				continue
			}
			sb.WriteByte(c)
			l.pos++
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	return token{}, &LexError{Offset: start, Msg: "unterminated property value"}
}
