package syntax

import (
	"bytes"
	"strconv"
)

// RegexTree is the parsed form of a pattern. It is a temporary structure:
// Compile walks it once to produce an NFA and callers may then drop it,
// though it is kept around by nfaregex.Regexp for renderers.
type RegexTree struct {
	Root    *RegexNode
	Pattern string
}

// RegexNode is one node of the expression tree. The node kinds form a
// closed set; every consumer switches exhaustively over T.
//
// Arity is fixed per kind: a literal has no children, a star has only
// Left, concatenation and alternation have both. Each node is owned by
// exactly one parent; the tree contains no sharing and no cycles.
type RegexNode struct {
	T     NodeType
	Ch    rune // for NtLiteral
	Left  *RegexNode
	Right *RegexNode
}

type NodeType int32

const (
	NtLiteral   NodeType = iota // a          single alphabet symbol
	NtConcat                    // ab         left-language · right-language
	NtAlternate                 // a|b        union
	NtStar                      // a*         Kleene closure of Left
)

var typeStr = []string{
	"Lit", "Concat", "Alternate", "Star",
}

func newLiteralNode(ch rune) *RegexNode {
	return &RegexNode{T: NtLiteral, Ch: ch}
}

func newUnaryNode(t NodeType, child *RegexNode) *RegexNode {
	return &RegexNode{T: t, Left: child}
}

func newBinaryNode(t NodeType, left, right *RegexNode) *RegexNode {
	return &RegexNode{T: t, Left: left, Right: right}
}

func (n *RegexNode) Description() string {
	buf := &bytes.Buffer{}
	buf.WriteString(typeStr[n.T])
	if n.T == NtLiteral {
		buf.WriteString("(Ch = " + strconv.QuoteRune(n.Ch) + ")")
	}
	return buf.String()
}

var padSpace = []byte("                                ")

// Dump renders the tree indented by depth, one node per line.
func (t *RegexTree) Dump() string {
	buf := &bytes.Buffer{}
	t.Root.dump(buf, 0)
	return buf.String()
}

func (n *RegexNode) dump(buf *bytes.Buffer, depth int) {
	if depth > 32 {
		depth = 32
	}
	buf.Write(padSpace[:depth])
	buf.WriteString(n.Description())
	buf.WriteRune('\n')
	if n.Left != nil {
		n.Left.dump(buf, depth+1)
	}
	if n.Right != nil {
		n.Right.dump(buf, depth+1)
	}
}
