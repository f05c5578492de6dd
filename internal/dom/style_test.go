package dom

import (
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declarations(t *testing.T, input string) []string {
	t.Helper()
	decls, err := parseStyle(input)
	require.NoError(t, err)
	var out []string
	for _, d := range decls {
		out = append(out, d.Property+"="+d.Value)
	}
	return out
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "display:none;", want: []string{"display=none"}},
		{name: "no trailing separator", input: "color:#000;display:flex", want: []string{"color=#000", "display=flex"}},
		{name: "spacing and case", input: " Color : #000 ; display:flex", want: []string{"color=#000", "display=flex"}},
		{name: "empty declarations", input: ";;a:b", want: []string{"a=b"}},
		{name: "value with colon", input: "background:url(http://x)", want: []string{"background=url(http://x)"}},
		{
			name:  "separator inside url",
			input: "background:url(data:image/png;base64,AAAA) no-repeat;display:none",
			want:  []string{"background=url(data:image/png;base64,AAAA) no-repeat", "display=none"},
		},
		{name: "separator inside string", input: `content:"a;b";color:red`, want: []string{`content="a;b"`, "color=red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, declarations(t, tt.input))
		})
	}
}

func TestParseStyle_SyntaxError(t *testing.T) {
	_, err := parseStyle("nocolon;a:b")
	assert.Error(t, err)
}

func TestFormatStyle(t *testing.T) {
	assert.Equal(t, "", formatStyle(nil))
	assert.Equal(t, "justify-content:flex-start;text-align:left !important;",
		formatStyle([]*css.Declaration{
			{Property: "justify-content", Value: "flex-start"},
			{Property: "text-align", Value: "left", Important: true},
		}))
}

func TestSetStyle_KeepsComplexValues(t *testing.T) {
	doc, err := ParseString(`<div id="box" style="background:url(data:image/png;base64,AAAA) no-repeat;display:none"></div>`)
	require.NoError(t, err)

	doc.Update(func() {
		box, ok := doc.ByID("box")
		require.True(t, ok)

		box.SetStyle("display", "flex")
		assert.Equal(t, "background:url(data:image/png;base64,AAAA) no-repeat;display:flex;", box.AttrOr("style", ""))
		assert.Equal(t, "url(data:image/png;base64,AAAA) no-repeat", box.Style("background"))
		assert.Equal(t, "flex", box.Style("display"))
	})
}

func TestSetStyle_UnparseableAttributeIsKept(t *testing.T) {
	doc, err := ParseString(`<div id="box" style="nocolon"></div>`)
	require.NoError(t, err)

	doc.Update(func() {
		box, _ := doc.ByID("box")
		box.SetStyle("display", "none")
		assert.Equal(t, "nocolon;display:none;", box.AttrOr("style", ""))

		box.SetStyle("display", "")
		assert.Equal(t, "nocolon;display:none;", box.AttrOr("style", ""))
	})
}
