package parser

import (
	"github.com/pkg/errors"
	"github.com/saintfish/chardet"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Decode converts data to a string. label is a WHATWG encoding label such as
// "utf-8" or "windows-1252"; when it is empty the encoding is detected from
// the bytes.
func Decode(data []byte, label string) (string, error) {
	enc, name, err := lookupEncoding(data, label)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrapf(err, "decode input as %s", name)
	}
	return string(out), nil
}

func lookupEncoding(data []byte, label string) (encoding.Encoding, string, error) {
	if label != "" {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return nil, "", errors.Wrapf(ErrUnknownCharset, "%q", label)
		}
		return enc, canonicalName(enc, label), nil
	}

	if res, err := chardet.NewTextDetector().DetectBest(data); err == nil && res != nil {
		if enc, err := htmlindex.Get(res.Charset); err == nil {
			name := canonicalName(enc, res.Charset)
			logrus.WithFields(logrus.Fields{
				"charset":    name,
				"confidence": res.Confidence,
			}).Debug("detected charset")
			return enc, name, nil
		}
	}

	// BOM and <meta> prescan, windows-1252 when nothing is certain
	enc, name, _ := charset.DetermineEncoding(data, "")
	logrus.WithField("charset", name).Debug("charset from prescan")
	return enc, name, nil
}

func canonicalName(enc encoding.Encoding, fallback string) string {
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	return fallback
}
