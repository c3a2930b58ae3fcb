package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"path"
	"sync"
)

// A Parser parses HTML templates with the functions added to it,
// reading them from a stack of fs.FS.
type Parser struct {
	fs fs.FS

	mu  sync.RWMutex
	fns html.FuncMap
}

// NewParser constructs a Parser reading templates from fss.
//
// When opening a template, earlier fs.FS take precedence over later ones,
// and all of them over the templates this package embeds.
func NewParser(fss []fs.FS, opts ...ParserOptFn) *Parser {
	p := &Parser{fns: make(html.FuncMap)}
	for _, opt := range opts {
		opt(p)
	}

	layers := make([]fs.FS, 0, len(fss)+1)
	for _, fsys := range fss {
		if fsys != nil {
			layers = append(layers, fsys)
		}
	}

	p.fs = &mergeFS{
		cache:  make(map[string]fs.FS),
		layers: append(layers, pkgFS),
	}

	return p
}

// AddFn includes the named function in the Parser function map.
func (p *Parser) AddFn(name string, fn any) *Parser {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}

	p.fns[name] = fn
	return p
}

// Parse parses the files at fps, skipping empty paths.
// The template is named after the base of the first path.
func (p *Parser) Parse(fps ...string) (*html.Template, error) {
	files := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	p.mu.RLock()
	tmpl := html.New(path.Base(files[0])).Funcs(p.fns)
	p.mu.RUnlock()

	if p.fs == nil {
		return nil, fmt.Errorf("%w: parser has no fs", ErrNoFiles)
	}

	return tmpl.ParseFS(p.fs, files...)
}
