package parser

import (
	"strings"
	"unicode"
)

// RootContents returns the markup between the first opening tag of fragment
// and its matching closing tag. ok is false for self-closing elements, for
// elements whose closing tag never appears, and for fragments with no tag.
// An element like `<div></div>` has empty contents with ok true.
func RootContents(fragment string) (contents string, ok bool, err error) {
	fragment = strings.TrimSpace(fragment)
	start, end, err := findTag(fragment)
	if err != nil || start == -1 {
		return "", false, err
	}

	typ, err := ElementType(fragment[start:end])
	if err != nil {
		return "", false, err
	}
	if isSelfClosing(fragment[start:end]) {
		return "", false, nil
	}

	contentsEnd, _, found := matchClosing(fragment, typ, end)
	if !found {
		return "", false, nil
	}
	return fragment[end:contentsEnd], true, nil
}

// FirstElement returns the first complete element of fragment: its opening
// tag, its contents and a closing tag built from the element type. Text in
// front of the first tag is returned on its own, and a fragment with no tag is
// returned unchanged.
func FirstElement(fragment string) (string, error) {
	start, end, err := findTag(fragment)
	if err != nil {
		return "", err
	}
	if start == -1 {
		return fragment, nil
	}
	if start > 0 {
		return fragment[:start], nil
	}

	tag := fragment[:end]
	typ, err := ElementType(tag)
	if err != nil {
		return "", err
	}
	if isSelfClosing(tag) {
		return tag, nil
	}
	contentsEnd, _, found := matchClosing(fragment, typ, end)
	if !found {
		return tag, nil
	}
	return tag + fragment[end:contentsEnd] + closingTag(typ), nil
}

// firstElementEnd returns the offset just past the first element of s.
func firstElementEnd(s string) (int, error) {
	start, end, err := findTag(s)
	switch {
	case err != nil:
		return 0, err
	case start == -1:
		return len(s), nil
	case start > 0:
		return start, nil
	}

	tag := s[:end]
	typ, err := ElementType(tag)
	if err != nil {
		return 0, err
	}
	if isSelfClosing(tag) {
		return end, nil
	}
	if _, closeEnd, found := matchClosing(s, typ, end); found {
		return closeEnd, nil
	}
	return end, nil
}

// matchClosing scans s from offset from for the closing tag that balances an
// already opened element of type typ. Nested opens of the same type that are
// not self-closing push the depth, each `</typ>` pops it. contentsEnd is the
// offset of the balancing closing tag and end the offset just past it.
func matchClosing(s, typ string, from int) (contentsEnd, end int, found bool) {
	closing := closingTag(typ)
	depth := 1
	for i := from; i < len(s); {
		j := strings.IndexByte(s[i:], '<')
		if j == -1 {
			break
		}
		j += i

		if strings.HasPrefix(s[j:], closing) {
			depth--
			if depth == 0 {
				return j, j + len(closing), true
			}
			i = j + len(closing)
			continue
		}
		if opensType(s[j:], typ) {
			depth++
		}
		i = j + 1
	}
	return -1, -1, false
}

// opensType reports whether s starts with a non self-closing opening tag of
// type typ.
func opensType(s, typ string) bool {
	if typ == "" {
		return false
	}
	name := strings.TrimLeftFunc(s[1:], unicode.IsSpace)
	if !strings.HasPrefix(name, typ) {
		return false
	}
	after := name[len(typ):]
	if after == "" {
		return false
	}
	if c := after[0]; c != '>' && c != '/' && !unicode.IsSpace(rune(c)) {
		return false
	}

	gt := strings.IndexByte(s, '>')
	if gt == -1 {
		return false
	}
	return !isSelfClosing(s[:gt+1])
}
