package route

// An Option configures how a Registry is built.
type Option func(*config)

type config struct {
	mode ConflictMode
}

// WithConflictMode sets how the Registry treats overlapping static and parameterized patterns.
// The default is ConflictPreferStatic.
func WithConflictMode(mode ConflictMode) Option {
	return func(c *config) {
		c.mode = mode.normalize()
	}
}
