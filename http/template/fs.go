package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// mergeFS implements fs.FS over an ordered stack of fs.FS.
type mergeFS struct {
	mu sync.RWMutex

	// A cache of which layer holds a template.
	cache map[string]fs.FS

	// Searched in order; the last is the package-level tmpl/.
	layers []fs.FS
}

// Open opens the file matching the name from the first layer holding it,
// consulting the cache first.
//
// Nothing removes references from the cache.
// If a file is removed from a layer at runtime,
// the cached reference returns the same error (fs.ErrNotExist)
// as if the cache did not have it.
func (mfs *mergeFS) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	layer, ok := mfs.cache[name]
	mfs.mu.RUnlock()
	if ok {
		return layer.Open(name)
	}

	var lastErr error
	for _, layer := range mfs.layers {
		file, err := layer.Open(name)
		if err == nil {
			mfs.mu.Lock()
			mfs.cache[name] = layer
			mfs.mu.Unlock()

			return file, nil
		}

		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("unable to open template: %w", err)
		}

		lastErr = err
	}

	return nil, fmt.Errorf("could not open template %s: %w", name, lastErr)
}

//go:embed tmpl/*
var pkgFS embed.FS
