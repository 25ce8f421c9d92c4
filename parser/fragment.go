package parser

import (
	"strconv"
	"strings"
)

// Render serializes n back to markup. Elements are written as their original
// opening tag, their rendered children and a closing tag built from the type.
// Elements without contents are written as the opening tag alone.
func Render(n Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Text:
		b.WriteString(n.data)
	case *Element:
		b.WriteString(n.tag)
		if !n.hasContents {
			return
		}
		for _, child := range n.children {
			render(b, child)
		}
		b.WriteString(closingTag(n.typ))
	}
}

// Dump returns an indented outline of the tree rooted at n, one node per
// line:
//
//	| <div>
//	|   id="ires"
//	|   <ol>
//	|     "some text"
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return strings.TrimRight(b.String(), "\n")
}

func dump(b *strings.Builder, n Node, ident int) {
	spaces := "| " + strings.Repeat("  ", ident)
	switch n := n.(type) {
	case *Text:
		b.WriteString(spaces + strconv.Quote(n.data) + "\n")
	case *Element:
		b.WriteString(spaces + "<" + n.typ + ">\n")
		if n.hasID {
			b.WriteString(spaces + "  id=" + strconv.Quote(n.id) + "\n")
		}
		for _, child := range n.children {
			dump(b, child, ident+1)
		}
	}
}
