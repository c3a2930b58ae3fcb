package route

import (
	"errors"
	"fmt"
)

// An entry is a Definition as the Registry indexes it.
type entry struct {
	def      Definition
	pattern  pattern
	routable bool
}

// A Registry is the immutable route table of a basecamp app.
//
// Construct one with New. The zero value and a nil *Registry resolve nothing.
type Registry struct {
	entries  []*entry
	byID     map[string]*entry
	literals map[string]*entry
	patterns map[string]*entry
	bySize   map[int][]*entry
	fallback *entry
	mode     ConflictMode
}

// New builds a Registry from defs.
//
// New reports every inconsistency it finds in defs, not just the first;
// each error wraps one of the package's sentinel errors and basecamp.ErrBadConfig.
// Lookups do not depend on the order of defs;
// Definitions returns them in the order declared.
func New(defs []Definition, opts ...Option) (*Registry, error) {
	return build(defs, true, opts...)
}

// Validate runs every check New does except requiring a Component,
// so tooling can validate a route table before components exist.
func Validate(defs []Definition, opts ...Option) error {
	_, err := build(defs, false, opts...)
	return err
}

func build(defs []Definition, requireComponent bool, opts ...Option) (*Registry, error) {
	cfg := config{mode: ConflictPreferStatic}
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := &Registry{
		entries:  make([]*entry, 0, len(defs)),
		byID:     make(map[string]*entry, len(defs)),
		literals: make(map[string]*entry),
		patterns: make(map[string]*entry),
		bySize:   make(map[int][]*entry),
		mode:     cfg.mode,
	}

	// NOTE: sized holds every routable entry, literal or not, by segment count
	// so strict mode can compare literals against parameterized patterns.
	sized := make(map[int][]*entry)
	shapes := make(map[string]*entry)

	var errs []error
	for i, def := range defs {
		id := def.id()
		if id == "" {
			errs = append(errs, fmt.Errorf("%w: definition %d has neither an id nor a path", ErrMalformedPattern, i))
			continue
		}

		def.ID = id
		e := &entry{def: def}

		if requireComponent && def.Component == nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrNoComponent, id))
		}

		if _, ok := reg.byID[id]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, id))
			continue
		}

		reg.byID[id] = e
		reg.entries = append(reg.entries, e)

		if def.Fallback {
			if reg.fallback != nil {
				errs = append(errs, fmt.Errorf("%w: %q and %q", ErrDuplicateFallback, reg.fallback.def.ID, id))
			} else {
				reg.fallback = e
			}
		}

		if def.Path == "" {
			if !def.Fallback {
				errs = append(errs, fmt.Errorf("%w: route %q has no path", ErrMalformedPattern, id))
			}

			continue
		}

		p, err := parsePattern(def.Path)
		if err != nil {
			errs = append(errs, fmt.Errorf("route %q: %w", id, err))
			continue
		}

		e.pattern = p
		e.routable = true

		if prev, ok := shapes[p.shape()]; ok {
			errs = append(errs, fmt.Errorf("%w: %q (%s) and %q (%s)", ErrPathConflict, prev.def.ID, prev.pattern.raw, id, p.raw))
			continue
		}

		if conflict := firstConflict(cfg.mode, p, sized[len(p.segments)]); conflict != nil {
			errs = append(errs, fmt.Errorf("%w: %q (%s) and %q (%s) under %s mode", ErrPathConflict, conflict.def.ID, conflict.pattern.raw, id, p.raw, cfg.mode))
			continue
		}

		shapes[p.shape()] = e
		sized[len(p.segments)] = append(sized[len(p.segments)], e)
		reg.patterns[p.raw] = e

		if p.isLiteral() {
			reg.literals[p.raw] = e
			continue
		}

		reg.bySize[len(p.segments)] = append(reg.bySize[len(p.segments)], e)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return reg, nil
}

// firstConflict finds the first entry p cannot be registered beside.
func firstConflict(mode ConflictMode, p pattern, entries []*entry) *entry {
	for _, e := range entries {
		if mode.conflicts(e.pattern, p) {
			return e
		}
	}

	return nil
}

// ByID retrieves the Definition registered under id.
func (r *Registry) ByID(id string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}

	e, ok := r.byID[id]
	if !ok {
		return Definition{}, false
	}

	return e.def, true
}

// ByPattern retrieves the Definition declared with the pattern,
// after normalizing its trailing slash.
//
// ByPattern does not resolve concrete paths; use Resolve for that.
func (r *Registry) ByPattern(pattern string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}

	e, ok := r.patterns[trimTrailingSlash(pattern)]
	if !ok {
		return Definition{}, false
	}

	return e.def, true
}

// ConflictMode returns the ConflictMode the Registry was built with.
func (r *Registry) ConflictMode() ConflictMode {
	if r == nil {
		return ConflictPreferStatic
	}

	return r.mode
}

// Definitions returns a copy of all Definitions in the order they were declared.
func (r *Registry) Definitions() []Definition {
	if r == nil {
		return nil
	}

	defs := make([]Definition, len(r.entries))
	for i, e := range r.entries {
		defs[i] = e.def
	}

	return defs
}

// Fallback returns the fallback Definition, if one was registered.
func (r *Registry) Fallback() (Definition, bool) {
	if r == nil || r.fallback == nil {
		return Definition{}, false
	}

	return r.fallback.def, true
}

// Len returns the number of registered Definitions.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}
