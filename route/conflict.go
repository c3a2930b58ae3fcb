package route

import "strings"

// A ConflictMode controls how a Registry treats static and parameterized patterns
// that can match the same concrete path.
type ConflictMode string

const (
	// ConflictPreferStatic allows "/items/new" beside "/items/{id}";
	// resolution prefers the more specific pattern.
	// Only patterns matching identical sets of paths conflict.
	ConflictPreferStatic ConflictMode = "prefer_static"

	// ConflictStrict rejects any two patterns that can match the same concrete path.
	ConflictStrict ConflictMode = "strict"
)

// NewConflictMode casts s into a ConflictMode,
// falling back to ConflictPreferStatic for unknown values.
func NewConflictMode(s string) ConflictMode {
	return ConflictMode(strings.ToLower(strings.TrimSpace(s))).normalize()
}

func (m ConflictMode) normalize() ConflictMode {
	switch m {
	case ConflictStrict:
		return ConflictStrict
	default:
		return ConflictPreferStatic
	}
}

func (m ConflictMode) String() string { return string(m.normalize()) }

// conflicts asserts whether a and b cannot both be registered under the mode.
func (m ConflictMode) conflicts(a, b pattern) bool {
	if a.shape() == b.shape() {
		return true
	}

	return m.normalize() == ConflictStrict && a.overlaps(b)
}
