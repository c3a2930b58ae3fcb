package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/goliatone/go-slug"
	"github.com/google/renameio/v2"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/route"
	"github.com/xy-planning-network/basecamp/web"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const filePerm fs.FileMode = 0o644

const stubTmpl = `{{ define "content" }}
<section class="card">
  <h1>[[ html .Title ]]</h1>
  <p>Edit <code>[[ .File ]]</code> to build this page.</p>
</section>
{{ end }}
`

// stub uses [[ ]] so the page's own template actions pass through untouched.
var stub = template.Must(template.New("stub").Delims("[[", "]]").Parse(stubTmpl))

// A Request describes the page to add.
type Request struct {
	// Name is turned into the page's ID and template file name.
	Name string

	// Path defaults to "/" followed by the ID.
	Path string

	// Title defaults to Name in title case.
	Title string
}

// A Result reports what a Scaffolder added.
type Result struct {
	Entry Entry
	Files []string
}

// A Scaffolder adds pages to the site rooted at a module directory.
type Scaffolder struct {
	logger    logger.Logger
	mode      route.ConflictMode
	pkg       string
	root      string
	title     cases.Caser
	writeFile func(string, []byte, fs.FileMode) error
}

// An OptFn configures a Scaffolder.
type OptFn func(*Scaffolder)

// WithConflictMode validates the manifest under mode.
func WithConflictMode(mode route.ConflictMode) OptFn {
	return func(s *Scaffolder) { s.mode = mode }
}

// WithLogger logs each file a Scaffolder writes to l.
func WithLogger(l logger.Logger) OptFn {
	return func(s *Scaffolder) { s.logger = l }
}

// New constructs a Scaffolder writing below root, the module directory.
func New(root string, opts ...OptFn) *Scaffolder {
	s := &Scaffolder{
		mode:  route.ConflictPreferStatic,
		pkg:   path.Base(web.Dir),
		root:      root,
		title:     cases.Title(language.English),
		writeFile: writeAtomic,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.New()
	}

	return s
}

// Page adds a template page for req.
//
// Page writes the template stub, appends its route to the manifest
// and regenerates the route table.
// It refuses to overwrite an existing page or add a route conflicting with the manifest,
// in which case nothing is written.
// When a write fails, the files already written are restored.
func (s *Scaffolder) Page(req Request) (Result, error) {
	entry, err := s.entry(req)
	if err != nil {
		return Result{}, err
	}

	stubPath := s.path(path.Join(web.Dir, entry.Template))
	if _, err := os.Stat(stubPath); err == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrExists, entry.Template)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Result{}, err
	}

	manifestPath := s.path(web.ManifestFile)
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading manifest: %w", err)
	}

	opt := route.WithConflictMode(s.mode)
	m, err := ParseManifest(b, opt)
	if err != nil {
		return Result{}, err
	}

	if err := m.Append(entry, opt); err != nil {
		return Result{}, err
	}

	manifest, err := m.Marshal()
	if err != nil {
		return Result{}, err
	}

	src, err := Generate(m, s.pkg)
	if err != nil {
		return Result{}, err
	}

	page := new(bytes.Buffer)
	if err := stub.Execute(page, struct{ File, Title string }{path.Join(web.Dir, entry.Template), entry.Title}); err != nil {
		return Result{}, err
	}

	genPath := s.path(web.GeneratedFile)
	prevGen, err := os.ReadFile(genPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("reading route table: %w", err)
	}

	// The stub goes last: its presence marks the page as added.
	res := Result{Entry: entry}
	writes := []struct {
		path string
		data []byte
		prev []byte
	}{
		{manifestPath, manifest, b},
		{genPath, src, prevGen},
		{stubPath, page.Bytes(), nil},
	}

	for i, f := range writes {
		err := os.MkdirAll(filepath.Dir(f.path), 0o755)
		if err == nil {
			err = s.writeFile(f.path, f.data, filePerm)
		}

		if err != nil {
			for _, done := range writes[:i] {
				s.restore(done.path, done.prev)
			}

			return Result{Entry: entry}, fmt.Errorf("writing %s: %w", f.path, err)
		}

		s.logger.Info("wrote "+f.path, &logger.LogContext{Caller: "scaffold.Page", Data: map[string]any{"id": entry.ID}})
		res.Files = append(res.Files, f.path)
	}

	return res, nil
}

// restore puts back what file held before Page wrote it,
// removing it when it held nothing.
func (s *Scaffolder) restore(file string, prev []byte) {
	var err error
	if prev == nil {
		err = os.Remove(file)
	} else {
		err = s.writeFile(file, prev, filePerm)
	}

	if err != nil {
		s.logger.Error("could not restore "+file, &logger.LogContext{Caller: "scaffold.Page", Error: err})
	}
}

// entry derives the manifest Entry for req.
func (s *Scaffolder) entry(req Request) (Entry, error) {
	name := strings.TrimSpace(req.Name)
	id, err := slug.Normalize(name)
	if err != nil || id == "" || !slug.IsValid(id) {
		return Entry{}, fmt.Errorf("%w: %q", ErrBadName, req.Name)
	}

	p := req.Path
	if p == "" {
		p = "/" + id
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = s.title.String(name)
	}

	if strings.Contains(title, "{{") || strings.Contains(title, "}}") {
		return Entry{}, fmt.Errorf("%w: %q", ErrBadTitle, title)
	}

	return Entry{
		ID:       id,
		Path:     p,
		Title:    title,
		Kind:     KindTemplate,
		Template: path.Join("tmpl/pages", id+".tmpl"),
	}, nil
}

func writeAtomic(file string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(file, data, perm)
}

func (s *Scaffolder) path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}
