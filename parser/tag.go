package parser

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ElementType returns the tag name of tag, e.g. "div" for `< div id="x">`.
// tag must start with '<' once surrounding whitespace is removed.
func ElementType(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if !strings.HasPrefix(tag, "<") {
		return "", errors.Wrapf(ErrInvalidTag, "%q does not start with '<'", preview(tag))
	}

	name := strings.TrimLeftFunc(tag[1:], unicode.IsSpace)
	for i, r := range name {
		// a leading '/' belongs to the name so stray end tags read as "/p"
		if unicode.IsSpace(r) || r == '>' || (r == '/' && i > 0) {
			return name[:i], nil
		}
	}
	return name, nil
}

// ElementID returns the value of the first "id=" found in tag. It does not
// check that the match is a real attribute boundary, so `data-id="x"` also
// matches.
func ElementID(tag string) (string, bool) {
	idx := strings.Index(tag, "id=")
	if idx == -1 {
		return "", false
	}
	rest := tag[idx+len("id="):]
	if rest == "" {
		return "", false
	}

	switch quote := rest[0]; quote {
	case '"', '\'':
		rest = rest[1:]
		if end := strings.IndexByte(rest, quote); end != -1 {
			return rest[:end], true
		}
		return strings.TrimSuffix(rest, ">"), true
	}

	// unquoted: id=x
	end := strings.IndexFunc(rest, func(r rune) bool {
		return unicode.IsSpace(r) || r == '>'
	})
	if end == -1 {
		end = len(rest)
	}
	return strings.TrimSuffix(rest[:end], "/"), true
}

func isSelfClosing(tag string) bool {
	return strings.HasSuffix(tag, "/>")
}

func closingTag(typ string) string {
	return "</" + typ + ">"
}
