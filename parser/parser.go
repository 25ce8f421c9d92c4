package parser

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/transform"
)

// Parser turns markup fragments into Node trees. It holds no state between
// calls and is safe for concurrent use.
type Parser struct {
	config Config
	log    logrus.FieldLogger
}

// NewParser creates a Parser with the given configuration.
func NewParser(config Config) *Parser {
	return &Parser{
		config: config,
		log:    config.logger(),
	}
}

var defaultParser = NewParser(DefaultConfig())

// Parse builds a tree from fragment using DefaultConfig.
func Parse(fragment string) (Node, error) {
	return defaultParser.Parse(fragment)
}

// ParseBytes decodes data, detecting its charset, and builds a tree from it
// using DefaultConfig.
func ParseBytes(data []byte) (Node, error) {
	return defaultParser.ParseBytes(data)
}

// SplitTopLevel splits fragment into its top-level sibling fragments using
// DefaultConfig. A nil result with a nil error means fragment was empty.
func SplitTopLevel(fragment string) ([]string, error) {
	return defaultParser.Split(fragment)
}

// Parse builds a tree from the first element of fragment. A fragment that
// holds no tag becomes a *Text. Text in front of the first tag is ignored.
func (p *Parser) Parse(fragment string) (Node, error) {
	return p.build(fragment, 0)
}

// ParseBytes decodes data with the configured charset, or a detected one,
// and parses the result.
func (p *Parser) ParseBytes(data []byte) (Node, error) {
	text, err := Decode(data, p.config.Charset)
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// ParseReader reads all of r and parses it. With a configured charset the
// input is decoded while it is read.
func (p *Parser) ParseReader(r io.Reader) (Node, error) {
	if p.config.Charset == "" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "read input")
		}
		return p.ParseBytes(data)
	}

	enc, _, err := lookupEncoding(nil, p.config.Charset)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return nil, errors.Wrapf(err, "decode input as %s", p.config.Charset)
	}
	return p.Parse(string(data))
}

// Siblings parses every top-level element of fragment.
func (p *Parser) Siblings(fragment string) ([]Node, error) {
	return p.children(fragment, 0)
}

// Split returns the top-level sibling fragments of fragment in document
// order. Their concatenation is fragment.
func (p *Parser) Split(fragment string) ([]string, error) {
	var (
		parts []string
		buf   = fragment
	)
	for i := 0; len(buf) > 0; i++ {
		if p.config.MaxIterations > 0 && i >= p.config.MaxIterations {
			return parts, errors.Wrapf(ErrParseDidNotTerminate, "more than %d siblings in %q", p.config.MaxIterations, preview(fragment))
		}
		end, err := firstElementEnd(buf)
		if err != nil {
			return nil, err
		}
		parts = append(parts, buf[:end])
		buf = buf[end:]
	}
	p.log.WithField("siblings", len(parts)).Debug("split fragment")
	return parts, nil
}

func (p *Parser) build(fragment string, depth int) (Node, error) {
	if p.config.MaxDepth > 0 && depth > p.config.MaxDepth {
		return nil, errors.Wrapf(ErrMaxDepthExceeded, "depth %d at %q", depth, preview(fragment))
	}

	start, end, err := findTag(fragment)
	if err != nil {
		return nil, err
	}
	if start == -1 {
		return &Text{data: fragment}, nil
	}

	s := fragment[start:]
	e := &Element{tag: s[:end-start]}
	if e.typ, err = ElementType(e.tag); err != nil {
		return nil, err
	}
	e.id, e.hasID = ElementID(e.tag)
	if e.SelfClosing() {
		return e, nil
	}

	contentsEnd, _, found := matchClosing(s, e.typ, len(e.tag))
	if !found {
		return e, nil
	}
	e.contents, e.hasContents = s[len(e.tag):contentsEnd], true

	if e.children, err = p.children(e.contents, depth+1); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) children(contents string, depth int) ([]Node, error) {
	parts, err := p.Split(contents)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(parts))
	for _, part := range parts {
		if p.config.SkipWhitespaceText && strings.TrimSpace(part) == "" {
			continue
		}
		n, err := p.build(part, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
