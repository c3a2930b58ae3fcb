package camp

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"

	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/middleware"
	"github.com/xy-planning-network/basecamp/http/session"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/page"
	"github.com/xy-planning-network/basecamp/route"
)

// An Option configures a *Camp either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some Options require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Camp is updated with the enclosed value.
//
// WithServer is an example of the second.
// The *http.Server listens on an address derived from the base URL,
// which is known only after every Option ran.
type Option func(c *Camp) (OptFollowup, error)
type OptFollowup func() error

func defaultOpts() []Option {
	return []Option{
		WithEnv(""),
		WithConflictMode(route.NewConflictMode(os.Getenv(RouteConflictModeEnvVar))),
	}
}

// WithBaseURL sets the base URL the app runs on, replacing BASE_URL, HOST and PORT.
func WithBaseURL(raw string) Option {
	return func(c *Camp) (OptFollowup, error) {
		u, err := url.ParseRequestURI(raw)
		if err != nil {
			return nil, err
		}

		c.url = u
		return nil, nil
	}
}

// WithConflictMode sets how the route registry treats overlapping patterns.
func WithConflictMode(mode route.ConflictMode) Option {
	return func(c *Camp) (OptFollowup, error) {
		c.mode = mode
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the app.
// Cancelling it stops Guide.
func WithContext(ctx context.Context) Option {
	return func(c *Camp) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", basecamp.ErrMissingData)
		}

		c.ctx = ctx
		return nil, nil
	}
}

// WithDefinitions replaces the route table the app serves.
func WithDefinitions(fn func(*page.Site) []route.Definition) Option {
	return func(c *Camp) (OptFollowup, error) {
		if fn == nil {
			return nil, fmt.Errorf("%w: nil definitions", basecamp.ErrMissingData)
		}

		c.defs = fn
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) Option {
	e := basecamp.Environment(envVar)
	if err := e.Valid(); err != nil {
		e = basecamp.EnvVarOrEnv(basecamp.EnvironmentEnvVar, basecamp.Development)
	}

	return func(c *Camp) (OptFollowup, error) {
		c.env = e
		return nil, nil
	}
}

// WithFS serves templates, content and public assets from the provided fs.FS
// instead of the web directory.
// Templates missing from templates are read from the web directory.
func WithFS(templates, content, public fs.FS) Option {
	return func(c *Camp) (OptFollowup, error) {
		c.files = overlayFiles(templates, content, public)
		return nil, nil
	}
}

// WithGlobalRegistry publishes the route registry process-wide with route.Init.
// Only one Camp per process can do so.
func WithGlobalRegistry() Option {
	return func(c *Camp) (OptFollowup, error) {
		c.global = true
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the app.
func WithLogger(l logger.Logger) Option {
	return func(c *Camp) (OptFollowup, error) {
		c.l = l
		return nil, nil
	}
}

// WithServer constructs a followup option that, when called,
// exposes the *http.Server to the app.
//
// If s has no Addr, it listens on the port of the base URL.
func WithServer(s *http.Server) Option {
	return func(c *Camp) (OptFollowup, error) {
		return func() error {
			if s.Addr == "" {
				s.Addr = listenAddr(c.url)
			}

			c.srv = s
			return nil
		}, nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the app.
func WithSessionStore(store session.SessionStorer) Option {
	return func(c *Camp) (OptFollowup, error) {
		c.sessions = store
		return nil, nil
	}
}

// WithVisitors rate limits requests with the provided *middleware.Visitors.
func WithVisitors(v *middleware.Visitors) Option {
	return func(c *Camp) (OptFollowup, error) {
		c.visitors = v
		return nil, nil
	}
}
