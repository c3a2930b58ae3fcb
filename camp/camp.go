package camp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/content"
	"github.com/xy-planning-network/basecamp/http/middleware"
	"github.com/xy-planning-network/basecamp/http/req"
	"github.com/xy-planning-network/basecamp/http/resp"
	"github.com/xy-planning-network/basecamp/http/router"
	"github.com/xy-planning-network/basecamp/http/session"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/page"
	"github.com/xy-planning-network/basecamp/route"
	"github.com/xy-planning-network/basecamp/web"
)

const shutdownTimeout = 5 * time.Second

// A Camp manages and exposes all components of a basecamp app to one another.
type Camp struct {
	*resp.Responder
	*router.Router

	ctx      context.Context
	content  *content.Store
	defs     func(*page.Site) []route.Definition
	env      basecamp.Environment
	files    *files
	global   bool
	l        logger.Logger
	mode     route.ConflictMode
	parser   *req.Parser
	reg      *route.Registry
	sessions session.SessionStorer
	site     *page.Site
	srv      *http.Server
	url      *url.URL
	visitors *middleware.Visitors
}

// files locates the web directory a Camp serves.
type files struct {
	content   fs.FS
	public    fs.FS
	templates []fs.FS

	// watch names the directory content reloads from, if any.
	watch string
}

// New constructs a Camp from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
//
// Errors New returns wrap basecamp.ErrBadConfig.
func New(opts ...Option) (*Camp, error) {
	c := &Camp{ctx: context.Background(), defs: web.Definitions}
	followups := make([]OptFollowup, 0)

	// NOTE: some options need what others configure,
	// so they return a followup called once every option has run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", basecamp.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", basecamp.ErrBadConfig, err)
		}
	}

	if err := c.build(); err != nil {
		return nil, err
	}

	return c, nil
}

// build assembles whatever options left unset.
func (c *Camp) build() error {
	if c.l == nil {
		c.l = defaultLogger(c.env)
	}

	if c.url == nil {
		c.url = defaultBaseURL()
		if c.url == nil {
			return fmt.Errorf("%w: %s is not a valid URL", basecamp.ErrBadConfig, BaseURLEnvVar)
		}
	}

	if c.files == nil {
		c.files = defaultFiles(c.env)
	}

	if c.sessions == nil {
		store, err := defaultSessionStore(c.env, appTitle())
		if err != nil {
			return err
		}
		c.sessions = store
	}

	md := defaultMarkdown()
	c.content = content.NewStore(c.files.content, md, c.l)
	c.Responder = defaultResponder(c.l, c.url, defaultParser(c.env, c.files, md))
	c.site = page.NewSite(
		c.Responder,
		c.content,
		page.WithDescription(os.Getenv(AppDescEnvVar)),
		page.WithTitle(appTitle()),
		page.WithToolbox(defaultToolbox(c.env)),
	)

	build := route.New
	if c.global {
		build = route.Init
	}

	reg, err := build(c.defs(c.site), route.WithConflictMode(c.mode))
	if err != nil {
		return fmt.Errorf("building route registry: %w", err)
	}

	c.reg = reg
	c.parser = req.NewParser()
	c.site.Mount(reg)
	c.l.Debug(fmt.Sprintf("mounted %d routes", reg.Len()), nil)

	if c.visitors == nil {
		c.visitors = middleware.NewVisitors()
	}

	c.Router = c.defaultRouter()

	if c.srv == nil {
		c.srv = defaultServer(c.ctx, c.url)
	}
	c.srv.Handler = c.Router

	return nil
}

func (c *Camp) Env() basecamp.Environment           { return c.env }
func (c *Camp) Logger() logger.Logger               { return c.l }
func (c *Camp) Registry() *route.Registry           { return c.reg }
func (c *Camp) SessionStore() session.SessionStorer { return c.sessions }
func (c *Camp) Site() *page.Site                    { return c.site }

// Guide begins the web server.
//
// These, and (*Camp).Shutdown, stop Guide:
//
// - cancelling the context set by WithContext
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (c *Camp) Guide() error {
	ctx, cancel := signal.NotifyContext(
		c.ctx,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer cancel()

	if c.files.watch != "" {
		if _, err := c.content.Watch(ctx, c.files.watch); err != nil {
			c.l.Warn("not reloading content: "+err.Error(), &logger.LogContext{Error: err})
		} else {
			c.l.Info("reloading content from "+c.files.watch, nil)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		c.l.Info(fmt.Sprintf("running web server at %s", c.srv.Addr), nil)
		if err := c.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		c.l.Info("received shutdown signal", nil)
	case err := <-errCh:
		c.l.Error(err.Error(), &logger.LogContext{Error: err})
		return err
	}

	return c.Shutdown()
}

// Shutdown shuts down the web server.
func (c *Camp) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	c.l.Info("shutting down web server", nil)
	err := c.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	c.l.Info("web server shutdown successfully", nil)
	return nil
}
