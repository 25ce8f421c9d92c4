package parser

import "github.com/sirupsen/logrus"

const (
	// DefaultMaxIterations bounds the number of siblings split out of one contents buffer.
	DefaultMaxIterations = 2000

	// DefaultMaxDepth bounds element nesting.
	DefaultMaxDepth = 512
)

// Config controls a Parser. The zero value is not useful, start from DefaultConfig.
type Config struct {
	// MaxIterations caps how many siblings are split out of a single contents
	// buffer. Zero disables the cap.
	MaxIterations int

	// MaxDepth caps element nesting. Zero disables the cap.
	MaxDepth int

	// SkipWhitespaceText drops text nodes that contain only whitespace.
	SkipWhitespaceText bool

	// Charset is the label used to decode byte input. Empty means detect.
	Charset string

	Logger logrus.FieldLogger
}

// DefaultConfig returns the configuration used by the package level helpers.
func DefaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		MaxDepth:      DefaultMaxDepth,
		Logger:        logrus.WithField("component", "parser"),
	}
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.WithField("component", "parser")
	}
	return c.Logger
}
