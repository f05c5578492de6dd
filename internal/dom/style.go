package dom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// parseStyle parses an inline style attribute. Property names are
// lowercased. On a syntax error the declarations before it are returned
// along with the error.
func parseStyle(s string) ([]*css.Declaration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	// a trailing separator ends the last declaration
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}
	decls, err := parser.ParseDeclarations(s)
	for _, d := range decls {
		d.Property = strings.ToLower(d.Property)
	}
	return decls, err
}

func formatStyle(decls []*css.Declaration) string {
	var sb strings.Builder
	for _, d := range decls {
		sb.WriteString(d.Property)
		sb.WriteByte(':')
		sb.WriteString(d.Value)
		if d.Important {
			sb.WriteString(" !important")
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

// Style returns the inline value of a CSS property, or "" when unset.
func (e Element) Style(prop string) string {
	prop = strings.ToLower(prop)
	decls, _ := parseStyle(e.AttrOr("style", ""))
	value := ""
	for _, d := range decls {
		if d.Property == prop {
			value = d.Value
		}
	}
	return value
}

// SetStyle sets one inline CSS property, keeping the others in order.
// An empty value removes the property. An attribute that does not parse
// is kept as written and the declaration is appended to it.
func (e Element) SetStyle(prop, value string) {
	prop = strings.ToLower(prop)
	raw := e.AttrOr("style", "")

	decls, err := parseStyle(raw)
	if err != nil {
		if value == "" {
			return
		}
		raw = strings.TrimSpace(raw)
		if raw != "" && !strings.HasSuffix(raw, ";") {
			raw += ";"
		}
		e.SetAttr("style", raw+prop+":"+value+";")
		return
	}

	out := decls[:0]
	replaced := false
	for _, d := range decls {
		if d.Property != prop {
			out = append(out, d)
			continue
		}
		if value != "" && !replaced {
			out = append(out, &css.Declaration{Property: prop, Value: value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		out = append(out, &css.Declaration{Property: prop, Value: value})
	}

	if len(out) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", formatStyle(out))
}
