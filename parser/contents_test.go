package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootContentsTestcase struct {
	in       string // fragment starting with an opening tag
	contents string // expected contents
	ok       bool   // false when the element has no contents
}

var rootContentsTests = []rootContentsTestcase{
	{`<div id="ires"><table></table><ol></ol></div>`, `<table></table><ol></ol>`, true},
	{`<div id="ires"><table></table></div><div><ol></ol></div>`, `<table></table>`, true},
	{`<div id="ires"></div>`, ``, true},
	{`<div id="ires" /><table></table><ol></ol><div></div>`, ``, false},
	{`<div id="ires"/><table></table><ol></ol><div></div>`, ``, false},
	{"  <p>padded</p>\n", `padded`, true},
	{`<img src="a.png"><p>x</p>`, ``, false},
	{`<div><div>inner</div>tail</div>`, `<div>inner</div>tail`, true},
	{`<div><div/>tail</div><div>next</div>`, `<div/>tail`, true},
	{`<div>< div id=a>x</div></div>`, `< div id=a>x</div>`, true},
	{`<div><divider>x</divider></div>`, `<divider>x</divider>`, true},
	{`<div><div>unclosed</div>`, ``, false},
	{`plain text`, ``, false},
}

func TestRootContents(t *testing.T) {
	for _, tt := range rootContentsTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			contents, ok, err := RootContents(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.contents, contents)
		})
	}
}

func TestRootContentsWellFormed(t *testing.T) {
	for _, typ := range []string{"div", "td", "span", "ol"} {
		for _, inner := range []string{"", "text", "<b>bold</b> and text", "<" + typ + ">nested</" + typ + ">"} {
			fragment := "<" + typ + ` id="X">` + inner + "</" + typ + ">"

			tag, ok, err := FindOpeningTag(fragment)
			require.NoError(t, err)
			require.True(t, ok)

			gotType, err := ElementType(tag)
			require.NoError(t, err)
			assert.Equal(t, typ, gotType)

			id, ok := ElementID(tag)
			assert.True(t, ok)
			assert.Equal(t, "X", id)

			contents, ok, err := RootContents(fragment)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, inner, contents, fragment)
		}
	}
}

func TestRootContentsSelfClosingWithSiblings(t *testing.T) {
	for _, tag := range []string{"<td/>", "<td />"} {
		for _, siblings := range []string{"", "<td></td>", "text<td>x</td>"} {
			_, ok, err := RootContents(tag + siblings)
			require.NoError(t, err)
			assert.False(t, ok, tag+siblings)
		}
	}
}

func TestFirstElement(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`<div id="ires"><table></table></div><div><ol></ol></div>`, `<div id="ires"><table></table></div>`},
		{`<div id="ires"/><table></table>`, `<div id="ires"/>`},
		{`<br><p>x</p>`, `<br>`},
		{`hello <b>x</b>`, `hello `},
		{`just text`, `just text`},
		{`<ul><li>a</li></ul> trailing`, `<ul><li>a</li></ul>`},
	}
	for _, tt := range tests {
		got, err := FirstElement(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
