package scaffold

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

const generatedTmpl = `// Code generated by scaffold from routes.yaml. DO NOT EDIT.

package {{ .Package }}

import (
	"github.com/xy-planning-network/basecamp/page"
	"github.com/xy-planning-network/basecamp/route"
)

// Definitions declares the route table of the site.
func Definitions(site *page.Site) []route.Definition {
	return []route.Definition{
{{- range .Routes }}
		{{ literal . }},
{{- end }}
	}
}
`

var generated = template.Must(template.New("routes_gen.go").
	Funcs(template.FuncMap{"literal": literal}).
	Parse(generatedTmpl))

// Generate renders the Go source declaring the manifest's route table in package pkg.
func Generate(m *Manifest, pkg string) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := generated.Execute(buf, struct {
		Package string
		Routes  []Entry
	}{pkg, m.Routes}); err != nil {
		return nil, err
	}

	src, err := imports.Process("routes_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		FormatOnly: true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated routes: %w", err)
	}

	return src, nil
}

// literal renders e as a route.Definition composite literal.
func literal(e Entry) string {
	b := []byte("{ID: ")
	b = strconv.AppendQuote(b, e.ID)
	if e.Path != "" {
		b = append(b, ", Path: "...)
		b = strconv.AppendQuote(b, e.Path)
	}

	b = append(b, ", Component: "...)
	b = append(b, component(e)...)
	if e.Fallback {
		b = append(b, ", Fallback: true"...)
	}

	return string(append(b, '}'))
}

func component(e Entry) string {
	switch e.Kind {
	case KindDocs:
		return fmt.Sprintf("site.Docs(%q)", e.Title)
	case KindMarkdown:
		return fmt.Sprintf("site.Markdown(%q, %q)", e.Title, e.Content)
	case KindTemplate:
		if e.Hidden {
			return fmt.Sprintf("site.Hidden(%q, %q)", e.Title, e.Template)
		}
		return fmt.Sprintf("site.Template(%q, %q)", e.Title, e.Template)
	default:
		return "nil"
	}
}
