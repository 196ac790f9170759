package sgf

// Node is one SGF node: a set of properties such as B[pd], W[dd], C[...].
// Properties may carry several bracketed values (for example AB[aa][bb]);
// value order under one identifier is preserved.
type Node struct {
	Properties map[string][]string
}

// frame is one variation frame inside the arena. Sequence and children
// address the GameTree's flat slices by index, so deeply nested game
// records never grow the call stack and the tree owns no pointer cycles.
type frame struct {
	parent   int
	sequence []int
	children []int
}

// GameTree is a parsed SGF game tree. It is built once and read-only
// afterwards; frame 0 is the top-level frame.
type GameTree struct {
	nodes  []Node
	frames []frame
}

// RootNode returns the first node of the top-level sequence, the one
// carrying the game's metadata properties.
func (t *GameTree) RootNode() *Node {
	return &t.nodes[t.frames[0].sequence[0]]
}

// mainLine returns, in order, the node indices of the canonical line:
// the top-level sequence, then at every branch the first child variation
// in declaration order. Other variations stay in the tree but are never
// surfaced here.
func (t *GameTree) mainLine() []int {
	var line []int
	f := 0
	for {
		line = append(line, t.frames[f].sequence...)
		if len(t.frames[f].children) == 0 {
			return line
		}
		f = t.frames[f].children[0]
	}
}

// buildTree assembles a GameTree from the lexer's token stream. Exactly
// one top-level tree is accepted; a second one is ErrMultipleGames.
func buildTree(lx *lexer) (*GameTree, error) {
	t := &GameTree{}

	var stack []int // open frame indices
	curNode := -1   // node currently receiving properties
	pendingIdent := ""
	pendingHasValue := false
	closedTopLevel := false

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if pendingIdent != "" && !pendingHasValue && tok.Kind != tokenPropValue {
			return nil, &SyntaxError{Offset: tok.Offset, Expected: "property value"}
		}

		switch tok.Kind {
		case tokenEOF:
			if len(stack) > 0 {
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "')'"}
			}
			if !closedTopLevel {
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "'('"}
			}
			return t, nil

		case tokenTreeOpen:
			if closedTopLevel && len(stack) == 0 {
				return nil, ErrMultipleGames
			}
			if len(stack) > 0 && len(t.frames[stack[len(stack)-1]].sequence) == 0 {
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "';'"}
			}
			parent := -1
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			t.frames = append(t.frames, frame{parent: parent})
			idx := len(t.frames) - 1
			if parent >= 0 {
				t.frames[parent].children = append(t.frames[parent].children, idx)
			}
			stack = append(stack, idx)
			curNode = -1
			pendingIdent = ""

		case tokenTreeClose:
			if len(stack) == 0 {
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "a matching '('"}
			}
			top := stack[len(stack)-1]
			if len(t.frames[top].sequence) == 0 {
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "';'"}
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				closedTopLevel = true
			}
			curNode = -1
			pendingIdent = ""

		case tokenNodeStart:
			if len(stack) == 0 {
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "'('"}
			}
			top := stack[len(stack)-1]
			if len(t.frames[top].children) > 0 {
				// nodes may not follow a variation inside the same frame
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "'(' or ')'"}
			}
			t.nodes = append(t.nodes, Node{Properties: make(map[string][]string)})
			curNode = len(t.nodes) - 1
			t.frames[top].sequence = append(t.frames[top].sequence, curNode)
			pendingIdent = ""

		case tokenPropIdent:
			if curNode < 0 {
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "';'"}
			}
			pendingIdent = tok.Value
			pendingHasValue = false

		case tokenPropValue:
			if pendingIdent == "" {
				return nil, &SyntaxError{Offset: tok.Offset, Expected: "property identifier"}
			}
			props := t.nodes[curNode].Properties
			props[pendingIdent] = append(props[pendingIdent], tok.Value)
			pendingHasValue = true
		}
	}
}
