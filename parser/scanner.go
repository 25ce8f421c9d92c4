package parser

import "github.com/pkg/errors"

// FindOpeningTag returns the first tag in text, from its '<' through the
// matching '>'. ok is false when text holds no complete tag and should be
// treated as plain text.
func FindOpeningTag(text string) (tag string, ok bool, err error) {
	start, end, err := findTag(text)
	if err != nil || start == -1 {
		return "", false, err
	}
	return text[start:end], true, nil
}

// findTag returns the byte offsets of the first tag in text, end exclusive.
// start is -1 when there is no tag.
func findTag(text string) (start, end int, err error) {
	start = -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '<':
			if start != -1 {
				return -1, -1, errors.Wrapf(ErrMalformedMarkup, "too many opening brackets in %q", preview(text[start:]))
			}
			start = i
		case '>':
			if start == -1 {
				return -1, -1, errors.Wrapf(ErrMalformedMarkup, "no opening bracket before '>' in %q", preview(text))
			}
			return start, i + 1, nil
		}
	}
	return -1, -1, nil
}
