package route

import "net/http"

// FallbackID identifies a fallback Definition declared without a Path or an ID.
const FallbackID = "__not_found__"

// A Definition binds a path pattern to the component mounted when a request resolves to it.
type Definition struct {
	// ID uniquely identifies the Definition.
	// If empty, it defaults to Path, or FallbackID for a fallback with no Path.
	ID string

	// Path is a literal ("/about") or parameterized ("/items/{id}") pattern.
	// A fallback Definition may leave Path empty,
	// in which case it is only ever reached by a miss.
	Path string

	// Component is rendered when a request resolves to the Definition.
	// The Registry treats it as opaque.
	Component http.Handler

	// Fallback designates the Definition rendered when no pattern matches.
	Fallback bool
}

// id returns the ID the Definition is registered under.
func (d Definition) id() string {
	switch {
	case d.ID != "":
		return d.ID
	case d.Path != "":
		return d.Path
	case d.Fallback:
		return FallbackID
	default:
		return ""
	}
}
