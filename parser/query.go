package parser

// Walk visits n and its descendants depth first in document order. When fn
// returns false the children of the visited node are skipped. An explicit
// stack is used so deep trees do not grow the goroutine stack.
func Walk(n Node, fn func(Node) bool) {
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			continue
		}
		if e, ok := cur.(*Element); ok {
			for i := len(e.children) - 1; i >= 0; i-- {
				stack = append(stack, e.children[i])
			}
		}
	}
}

// Descendants returns every element below e whose type is exactly tagType,
// in document order. An empty tagType matches all elements. Matching is case
// sensitive and e itself is never included.
func (e *Element) Descendants(tagType string) []*Element {
	var found []*Element
	Walk(e, func(n Node) bool {
		el, ok := n.(*Element)
		if !ok || el == e {
			return ok
		}
		if tagType == "" || el.typ == tagType {
			found = append(found, el)
		}
		return true
	})
	return found
}

// ElementByID returns the first element, e included, whose id equals id.
func (e *Element) ElementByID(id string) *Element {
	var found *Element
	Walk(e, func(n Node) bool {
		if found != nil {
			return false
		}
		el, ok := n.(*Element)
		if !ok {
			return false
		}
		if el.hasID && el.id == id {
			found = el
			return false
		}
		return true
	})
	return found
}
