package parser

// NodeKind tells the two kinds of Node apart.
type NodeKind uint8

const (
	ElementNode NodeKind = iota + 1
	TextNode
)

func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	}
	return "unknown"
}

// Node is either an *Element or a *Text. Nodes are built once by a Parser and
// never change afterwards.
type Node interface {
	Kind() NodeKind
	String() string

	node()
}

// Element is a node built from an opening tag.
type Element struct {
	tag         string
	typ         string
	id          string
	hasID       bool
	contents    string
	hasContents bool
	children    []Node
}

func (e *Element) Kind() NodeKind { return ElementNode }
func (e *Element) String() string { return Dump(e) }
func (e *Element) node()          {}

// Type is the tag name, e.g. "div".
func (e *Element) Type() string { return e.typ }

// ID returns the value of the id attribute, if the opening tag has one.
func (e *Element) ID() (string, bool) { return e.id, e.hasID }

// OpeningTag is the opening tag exactly as it appeared in the input.
func (e *Element) OpeningTag() string { return e.tag }

// SelfClosing reports whether the opening tag ends in "/>".
func (e *Element) SelfClosing() bool { return isSelfClosing(e.tag) }

// Contents returns the raw markup between the opening tag and its closing
// tag. ok is false when the element has no closing tag.
func (e *Element) Contents() (contents string, ok bool) { return e.contents, e.hasContents }

// Children returns the top-level nodes of the contents in document order.
// The returned slice must not be modified.
func (e *Element) Children() []Node { return e.children }

func (e *Element) ChildCount() int { return len(e.children) }

// Text is a run of raw text between tags.
type Text struct {
	data string
}

func (t *Text) Kind() NodeKind { return TextNode }
func (t *Text) String() string { return Dump(t) }
func (t *Text) node()          {}

// Contents is the raw text, entities are not decoded.
func (t *Text) Contents() string { return t.data }
