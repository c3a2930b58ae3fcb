package camp

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/middleware"
	"github.com/xy-planning-network/basecamp/http/resp"
	"github.com/xy-planning-network/basecamp/http/router"
	"github.com/xy-planning-network/basecamp/http/session"
	"github.com/xy-planning-network/basecamp/http/template"
	"github.com/xy-planning-network/basecamp/logger"
	"github.com/xy-planning-network/basecamp/markdown"
	"github.com/xy-planning-network/basecamp/page"
	"github.com/xy-planning-network/basecamp/web"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// App metadata
	AppDescEnvVar   = "APP_DESCRIPTION"
	AppTitleEnvVar  = "APP_TITLE"
	ContactUsEnvVar = "CONTACT_US_EMAIL"
	contactErrMsg   = "If the problem persists, reach out to %s."
	DefaultAppTitle = "basecamp"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Route defaults
	RouteConflictModeEnvVar = "ROUTE_CONFLICT_MODE"

	// Web server defaults
	CORSOriginEnvVar          = "CORS_ORIGIN"
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":8080"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"
	sessionMaxAge           = 3600 * 24 * 30
)

// appTitle reads APP_TITLE.
func appTitle() string { return basecamp.EnvVarOrString(AppTitleEnvVar, DefaultAppTitle) }

// defaultBaseURL reads BASE_URL, falling back to one made from HOST and PORT.
//
// If BASE_URL is not valid, defaultBaseURL returns the fallback;
// if the fallback is not valid either, nil returns.
func defaultBaseURL() *url.URL {
	host := basecamp.EnvVarOrString(hostEnvVar, DefaultHost)
	port := basecamp.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	return basecamp.EnvVarOrURL(BaseURLEnvVar, "http://"+host+port)
}

// defaultFiles reads the web directory embedded in the binary.
//
// When env reloads content and the web directory exists on disk,
// defaultFiles reads it from there first.
func defaultFiles(env basecamp.Environment) *files {
	f := embeddedFiles()
	if !env.HotReload() {
		return f
	}

	if info, err := os.Stat(web.Dir); err != nil || !info.IsDir() {
		return f
	}

	f.content = os.DirFS(web.ContentDir)
	f.public = os.DirFS(web.PublicDir)
	f.templates = []fs.FS{os.DirFS(web.Dir), web.Templates()}
	f.watch = web.ContentDir

	return f
}

func embeddedFiles() *files {
	return &files{
		content:   web.Content(),
		public:    web.Public(),
		templates: []fs.FS{web.Templates()},
	}
}

// overlayFiles reads from the provided fs.FS, leaving nil ones to the embedded web directory.
func overlayFiles(templates, content, public fs.FS) *files {
	f := embeddedFiles()
	if templates != nil {
		f.templates = append([]fs.FS{templates}, f.templates...)
	}

	if content != nil {
		f.content = content
	}

	if public != nil {
		f.public = public
	}

	return f
}

// defaultLogger constructs a logger.Logger at the level LOG_LEVEL names.
func defaultLogger(env basecamp.Environment) logger.Logger {
	opts := []logger.LoggerOptFn{logger.WithEnv(env)}
	if lvl := logger.NewLogLevel(os.Getenv(logLevelEnvVar)); lvl != logger.LogLevelUnk {
		opts = append(opts, logger.WithLevel(lvl))
	}

	l := logger.New(opts...)
	l.Debug("setting up app logger", nil)

	return l
}

// defaultMarkdown constructs the *markdown.Renderer styled with the app's theme.
func defaultMarkdown() *markdown.Renderer {
	return markdown.New(markdown.DefaultStyles(), markdown.WithWrapper(markdown.DefaultWrapperClass))
}

// defaultParser constructs a *template.Parser to be used
// when responding to HTTP requests with [*http/resp.Responder.Html].
//
// defaultParser makes available these functions in an HTML template,
// beside the ones the Responder adds:
//
//   - "asset"
//   - "env"
//   - "markdown"
//   - "isDevelopment"
//   - "isStaging"
//   - "isProduction"
func defaultParser(env basecamp.Environment, f *files, md *markdown.Renderer) *template.Parser {
	p := template.NewParser(f.templates)
	p = p.AddFn(template.AssetURI(router.AssetsPath, f.public))
	p = p.AddFn(template.Env(env))
	p = p.AddFn(template.Markdown(md.Render))
	p = p.AddFn("isDevelopment", env.IsDevelopment)
	p = p.AddFn("isStaging", env.IsStaging)
	p = p.AddFn("isProduction", env.IsProduction)

	return p
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(l logger.Logger, u *url.URL, p *template.Parser) *resp.Responder {
	args := []resp.ResponderOptFn{
		resp.WithCtxKeys(basecamp.RequestIDKey, basecamp.ThemeKey),
		resp.WithLayout(page.LayoutTemplate),
		resp.WithLogger(l),
		resp.WithParser(p),
		resp.WithRootUrl(u.String()),
	}

	if contact := os.Getenv(ContactUsEnvVar); contact != "" {
		args = append(args, resp.WithContactErrMsg(fmt.Sprintf(contactErrMsg, contact)))
	}

	return resp.NewResponder(args...)
}

// defaultRouter constructs the [*router.Router] the web server routes requests with.
//
// Every request gets an ID, an IP address and the visitor's theme,
// and is rate limited.
// Pages are dispatched last, catching whatever the app's own routes do not.
func (c *Camp) defaultRouter() *router.Router {
	logReq := middleware.LogRequest(c.l)

	r := router.New(c.env, logReq, c.files.public)
	r.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		forceHTTPS(c.env, c.url),
		middleware.CORS(os.Getenv(CORSOriginEnvVar)),
		middleware.RateLimit(c.visitors),
		middleware.InjectTheme(c.sessions),
	)

	r.HandleNotFound(c.site.NotFound)
	r.HandleRoutes(c.routes(), logReq)
	r.Pages(c.reg, http.HandlerFunc(c.site.NotFound), logReq)

	return r
}

// defaultServer constructs a default [*http.Server] listening on the port of u.
func defaultServer(ctx context.Context, u *url.URL) *http.Server {
	srv := &http.Server{
		Addr:         listenAddr(u),
		IdleTimeout:  basecamp.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  basecamp.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: basecamp.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}

	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// defaultSessionStore constructs a SessionStorer to be used for storing session data.
//
// defaultSessionStore relies on three env vars:
//   - APP_TITLE
//   - SESSION_AUTH_KEY
//   - SESSION_ENCRYPTION_KEY
//
// Both KEY env vars must be valid hex encoded values; cf. [encoding/hex].
func defaultSessionStore(env basecamp.Environment, appName string) (session.SessionStorer, error) {
	appName = cases.Lower(language.English).String(appName)
	appName = regexp.MustCompile(`[,':]`).ReplaceAllString(appName, "")
	appName = regexp.MustCompile(`\s`).ReplaceAllString(appName, "-")

	cfg := session.Config{
		AuthKey:     os.Getenv(SessionAuthKeyEnvVar),
		EncryptKey:  os.Getenv(SessionEncryptKeyEnvVar),
		Env:         env,
		SessionName: "basecamp-" + appName,
	}

	return session.NewStoreService(cfg, session.WithCookie(), session.WithMaxAge(sessionMaxAge))
}

// forceHTTPS redirects to HTTPS only when the base URL uses it.
func forceHTTPS(env basecamp.Environment, u *url.URL) middleware.Adapter {
	if u == nil || u.Scheme != "https" {
		return middleware.NoopAdapter
	}

	return middleware.ForceHTTPS(env)
}

// listenAddr picks the port to listen on: PORT, else the port of u, else DefaultPort.
func listenAddr(u *url.URL) string {
	port := os.Getenv(portEnvVar)
	if port == "" && u != nil {
		port = u.Port()
	}

	if port == "" {
		return DefaultPort
	}

	if port[0] != ':' {
		port = ":" + port
	}

	return port
}

// defaultToolbox links the endpoints that inspect a Camp.
// It is empty in Production.
func defaultToolbox(env basecamp.Environment) basecamp.Toolbox {
	return basecamp.NewToolbox(
		env,
		basecamp.Tool{
			Title: "Routes",
			Actions: []basecamp.ToolAction{
				{Name: "Route table", URL: "/api/routes"},
				{Name: "Resolve /docs", URL: "/api/resolve?path=/docs"},
			},
		},
		basecamp.Tool{
			Title: "Health",
			Actions: []basecamp.ToolAction{
				{Name: "Status", URL: "/healthz"},
				{Name: "Metrics", URL: "/metrics"},
			},
		},
	)
}
