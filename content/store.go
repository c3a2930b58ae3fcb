package content

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/markdown"
	"github.com/xy-planning-network/basecamp/metrics"
)

const ext = ".md"

// A Doc is a rendered Markdown document.
type Doc struct {
	Slug string        `json:"slug"`
	Meta markdown.Meta `json:"meta"`
	HTML template.HTML `json:"-"`
}

// Title returns the front matter title, or one derived from the slug.
func (d Doc) Title() string {
	if d.Meta.Title != "" {
		return d.Meta.Title
	}

	return strings.ReplaceAll(d.Slug, "-", " ")
}

// A Store renders and caches documents read from an fs.FS.
type Store struct {
	fsys   fs.FS
	logger logger.Logger
	r      *markdown.Renderer

	mu    sync.RWMutex
	cache map[string]Doc

	// gen counts invalidations, so a load racing one is not cached.
	gen uint64
}

// NewStore constructs a Store reading documents from the root of fsys.
func NewStore(fsys fs.FS, r *markdown.Renderer, l logger.Logger) *Store {
	return &Store{
		fsys:   fsys,
		logger: l,
		r:      r,
		cache:  make(map[string]Doc),
	}
}

// Get retrieves the document named slug, rendering it on first use.
func (s *Store) Get(name string) (Doc, error) {
	if !slug.IsValid(name) {
		return Doc{}, fmt.Errorf("%w: %q", ErrBadSlug, name)
	}

	s.mu.RLock()
	doc, ok := s.cache[name]
	gen := s.gen
	s.mu.RUnlock()
	if ok {
		return doc, nil
	}

	doc, err := s.load(name)
	if err != nil {
		return Doc{}, err
	}

	s.mu.Lock()
	if s.gen == gen {
		s.cache[name] = doc
	}
	s.mu.Unlock()

	return doc, nil
}

// List retrieves every document in the Store, sorted by slug.
// Drafts are left out.
func (s *Store) List() ([]Doc, error) {
	matches, err := fs.Glob(s.fsys, "*"+ext)
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	docs := make([]Doc, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(m, ext)
		doc, err := s.Get(name)
		if errors.Is(err, ErrBadSlug) {
			s.logger.Warn("skipping document with bad slug", &logger.LogContext{Data: map[string]any{"file": m}})
			continue
		}

		if err != nil {
			return nil, err
		}

		if doc.Meta.Draft {
			continue
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// Invalidate drops the cached document named slug.
func (s *Store) Invalidate(name string) {
	s.mu.Lock()
	delete(s.cache, name)
	s.gen++
	s.mu.Unlock()
}

// Reset drops every cached document.
func (s *Store) Reset() {
	s.mu.Lock()
	s.cache = make(map[string]Doc)
	s.gen++
	s.mu.Unlock()
}

func (s *Store) load(name string) (Doc, error) {
	src, err := fs.ReadFile(s.fsys, name+ext)
	if errors.Is(err, fs.ErrNotExist) {
		return Doc{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err != nil {
		return Doc{}, err
	}

	parsed, err := markdown.ParseDocument(src)
	if err != nil {
		return Doc{}, fmt.Errorf("%s: %w", name, err)
	}

	start := time.Now()
	html, err := s.r.Render(string(parsed.Body))
	if err != nil {
		return Doc{}, fmt.Errorf("%s: %w", name, err)
	}

	metrics.ObserveRender(start)

	return Doc{Slug: name, Meta: parsed.Meta, HTML: html}, nil
}

// slugOf returns the document slug a file path maps to, if any.
func slugOf(file string) (string, bool) {
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	if !strings.HasSuffix(base, ext) {
		return "", false
	}

	return strings.TrimSuffix(base, ext), true
}
