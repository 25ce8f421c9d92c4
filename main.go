package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/heathj/htmlfrag/parser"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		charset       = flag.String("charset", "", "input encoding label, detected when empty")
		tagType       = flag.String("type", "", "print descendants of this type instead of the tree")
		id            = flag.String("id", "", "start from the element with this id")
		maxIterations = flag.Int("max-iterations", parser.DefaultMaxIterations, "siblings allowed per element, 0 for no limit")
		skipSpace     = flag.Bool("skip-whitespace", false, "drop whitespace-only text nodes")
		verbose       = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			logrus.WithError(err).Fatal("open input")
		}
		defer f.Close()
		in = f
	}

	config := parser.DefaultConfig()
	config.Charset = *charset
	config.MaxIterations = *maxIterations
	config.SkipWhitespaceText = *skipSpace

	root, err := parser.NewParser(config).ParseReader(in)
	if err != nil {
		logrus.WithError(err).Fatal("parse input")
	}

	elem, ok := root.(*parser.Element)
	if !ok {
		fmt.Println(root)
		return
	}
	if *id != "" {
		if elem = elem.ElementByID(*id); elem == nil {
			logrus.WithField("id", *id).Fatal("no element with id")
		}
	}
	if *tagType == "" {
		fmt.Println(elem)
		return
	}
	for _, d := range elem.Descendants(*tagType) {
		fmt.Println(parser.Render(d))
	}
}
