package sgf

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenTreeOpen
	tokenTreeClose
	tokenNodeStart
	tokenPropIdent
	tokenPropValue
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenTreeOpen:
		return "'('"
	case tokenTreeClose:
		return "')'"
	case tokenNodeStart:
		return "';'"
	case tokenPropIdent:
		return "property identifier"
	case tokenPropValue:
		return "property value"
	}
	return "unknown token"
}

// token is a single lexical element of an SGF document. Value is set for
// tokenPropIdent (the identifier, verbatim) and tokenPropValue (the bracket
// contents with \] and \\ already decoded). Offset is the byte position of
// the token's first character in the input.
type token struct {
	Kind   tokenKind
	Value  string
	Offset int
}
