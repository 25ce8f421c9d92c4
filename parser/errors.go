package parser

import "github.com/pkg/errors"

var (
	// ErrMalformedMarkup is returned when angle brackets are unbalanced or out of order.
	ErrMalformedMarkup = errors.New("parser: malformed markup")

	// ErrInvalidTag is returned when a string expected to be a tag does not start with '<'.
	ErrInvalidTag = errors.New("parser: invalid tag")

	// ErrParseDidNotTerminate is returned when splitting a contents buffer exceeds Config.MaxIterations.
	ErrParseDidNotTerminate = errors.New("parser: parse did not terminate")

	// ErrMaxDepthExceeded is returned when element nesting exceeds Config.MaxDepth.
	ErrMaxDepthExceeded = errors.New("parser: max depth exceeded")

	// ErrUnknownCharset is returned when a charset label cannot be resolved.
	ErrUnknownCharset = errors.New("parser: unknown charset")
)

const previewLen = 64

// preview shortens s so it can be attached to an error message.
func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	return s[:previewLen] + "..."
}
