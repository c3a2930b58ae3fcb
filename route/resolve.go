package route

import (
	"fmt"
	"strings"
)

// A Status describes how a Result came about.
type Status int

const (
	StatusNotFound Status = iota
	StatusMatched
	StatusFallback
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusFallback:
		return "fallback"
	default:
		return "not_found"
	}
}

// A Param is a named path parameter bound from a requested path.
type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Params are path parameters in the order they appear in the pattern.
type Params []Param

// Get returns the value bound to key, or the empty string.
func (ps Params) Get(key string) string {
	val, _ := ps.Lookup(key)
	return val
}

// Lookup returns the value bound to key and whether it was bound at all.
func (ps Params) Lookup(key string) (string, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}

	return "", false
}

// Map copies Params into a map.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}

	return m
}

// A Request is a navigation to resolve: a path plus optional query and fragment.
type Request struct {
	Path     string
	RawQuery string
	Fragment string
}

// ParseRequest splits raw into its path, query, and fragment,
// normalizing the path along the way.
func ParseRequest(raw string) Request {
	var req Request
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		req.Fragment = raw[i+1:]
		raw = raw[:i]
	}

	if i := strings.IndexByte(raw, '?'); i >= 0 {
		req.RawQuery = raw[i+1:]
		raw = raw[:i]
	}

	req.Path = NormalizePath(raw)
	return req
}

// NormalizePath ensures p begins with a slash and trims trailing slashes,
// except for the root path.
func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return trimTrailingSlash(p)
}

// String reassembles the Request.
func (req Request) String() string {
	s := req.Path
	if req.RawQuery != "" {
		s += "?" + req.RawQuery
	}

	if req.Fragment != "" {
		s += "#" + req.Fragment
	}

	return s
}

// A Result is the outcome of resolving a Request against a Registry.
type Result struct {
	// Definition is the matched or fallback Definition;
	// it is the zero value when Status is StatusNotFound.
	Definition Definition

	// Params are bound only when Status is StatusMatched.
	Params Params

	Request Request
	Status  Status
}

// Err returns an error wrapping ErrNotFound when nothing, not even a fallback, was resolved.
func (res Result) Err() error {
	if res.Status != StatusNotFound {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrNotFound, res.Request.Path)
}

// Found asserts whether the Result carries a Definition to render.
func (res Result) Found() bool { return res.Status != StatusNotFound }

// Miss asserts whether no pattern matched the Request.
func (res Result) Miss() bool { return res.Status != StatusMatched }

// Resolve finds the Definition to render for requested,
// which may carry a query string and fragment.
//
// Resolve tries, in order:
//
//   - an exact match against literal patterns
//   - the most specific parameterized pattern matching every segment
//   - the fallback Definition
//
// If none of these succeed, the Result has StatusNotFound.
func (r *Registry) Resolve(requested string) Result {
	return r.ResolveRequest(ParseRequest(requested))
}

// ResolveRequest is Resolve for an already parsed Request.
func (r *Registry) ResolveRequest(req Request) Result {
	req.Path = NormalizePath(req.Path)
	res := Result{Request: req}
	if r == nil {
		return res
	}

	if e, ok := r.literals[req.Path]; ok {
		res.Definition = e.def
		res.Status = StatusMatched
		return res
	}

	parts := splitPath(req.Path)

	var (
		best   *entry
		params Params
	)
	for _, e := range r.bySize[len(parts)] {
		ps, ok := e.pattern.match(parts)
		if !ok {
			continue
		}

		if best == nil || e.pattern.moreSpecific(best.pattern) {
			best, params = e, ps
		}
	}

	if best != nil {
		res.Definition = best.def
		res.Params = params
		res.Status = StatusMatched
		return res
	}

	if r.fallback != nil {
		res.Definition = r.fallback.def
		res.Status = StatusFallback
	}

	return res
}
