package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementType(t *testing.T) {
	tests := []struct {
		tag, want string
	}{
		{`<div id="ires">`, "div"},
		{` < div > `, "div"},
		{`<p blah blah blah>`, "p"},
		{`<meta content="text/html; charset=UTF-8" http-equiv="Content-Type">`, "meta"},
		{"<td\tclass=x>", "td"},
		{`<br/>`, "br"},
		{`<div id="ires"/>`, "div"},
		{`</p>`, "/p"},
		{`<div`, "div"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			got, err := ElementType(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElementTypeInvalid(t *testing.T) {
	for _, tag := range []string{"div>", "", "  x<div>"} {
		_, err := ElementType(tag)
		assert.True(t, errors.Is(err, ErrInvalidTag), "tag %q: got %v", tag, err)
	}
}

func TestElementID(t *testing.T) {
	tests := []struct {
		tag  string
		want string
		ok   bool
	}{
		{`<div id="ires">`, "ires", true},
		{`<table id="mn" border="0" cellpadding="0" cellspacing="0" style="position:relative">`, "mn", true},
		{`<div>`, "", false},
		{`<div id='ires'>`, "ires", true},
		{`<div id="ires" >`, "ires", true},
		{`<div something else id="ires">`, "ires", true},
		{`< div id=x >`, "x", true},
		{`<div id=x>`, "x", true},
		{`<div id=x/>`, "x", true},
		{`<div id="">`, "", true},
		// any "id=" matches, not only a real attribute
		{`<div data-id="other">`, "other", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			got, ok := ElementID(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhitespaceTolerantTags(t *testing.T) {
	canonicalType, err := ElementType(`<div id="x">`)
	require.NoError(t, err)
	spacedType, err := ElementType(`< div id=x >`)
	require.NoError(t, err)
	assert.Equal(t, canonicalType, spacedType)

	canonicalID, _ := ElementID(`<div id="x">`)
	spacedID, _ := ElementID(`< div id=x >`)
	assert.Equal(t, canonicalID, spacedID)
}
