package session

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"slices"

	"github.com/gorilla/securecookie"
	gorilla "github.com/gorilla/sessions"
	"github.com/xy-planning-network/basecamp"
)

const (
	defaultMaxAge = 86400 * 365 // 1 year
	keyLength     = 32
)

// The SessionStorer defines methods for interacting with a Sessionable for the given *http.Request.
type SessionStorer interface {
	GetSession(r *http.Request) (Session, error)
}

// A Service wraps a gorilla.Store to manage constructing a new one
// and accessing the sessions contained in it.
//
// Service implements SessionStorer.
type Service struct {
	// The authentication key.
	ak []byte

	// The encryption key.
	ek []byte

	// The name this Service's sessions are stored under.
	// Also used as the name of the cookie.
	sn string

	// The environment the Service is operating within.
	env basecamp.Environment

	// The number of seconds a session is valid.
	maxAge int

	// how the Service actually implements storing sessions.
	store gorilla.Store
}

// A Config provides the required values
type Config struct {
	Env basecamp.Environment

	// The name sessions are stored under.
	// Also used as the name of the cookie.
	SessionName string

	// Hex-encoded key
	AuthKey string

	// Hex-encoded key
	EncryptKey string
}

func validateConfig(c Config) error {
	if err := c.Env.Valid(); err != nil {
		return err
	}

	if c.Env.IsDevelopment() || c.Env.IsTesting() {
		return nil
	}

	if c.AuthKey == "" || c.EncryptKey == "" {
		return fmt.Errorf("%w: keys cannot be empty in %s", basecamp.ErrBadConfig, c.Env)
	}

	return nil
}

// NewStoreService initiates a data store for visitor sessions with the provided config,
// storing sessions in cookies.
//
// When developing or testing, missing keys are generated at random,
// so sessions do not survive a restart.
// Elsewhere, both keys are required.
func NewStoreService(cfg Config, opts ...ServiceOpt) (Service, error) {
	if err := validateConfig(cfg); err != nil {
		return Service{}, err
	}

	s := Service{
		env:    cfg.Env,
		maxAge: defaultMaxAge,
		sn:     cfg.SessionName,
	}

	if s.sn == "" {
		s.sn = sessionKey
	}

	var err error
	s.ak, err = decodeKey(cfg.AuthKey, 32, 64)
	if err != nil {
		return Service{}, fmt.Errorf("%w: authentication key is not valid: %s", basecamp.ErrBadConfig, err)
	}

	s.ek, err = decodeKey(cfg.EncryptKey, 16, 24, 32)
	if err != nil {
		return Service{}, fmt.Errorf("%w: encryption key is not valid: %s", basecamp.ErrBadConfig, err)
	}

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return Service{}, fmt.Errorf("%w: %s", basecamp.ErrBadConfig, err)
		}
	}

	if s.store == nil {
		if err := WithCookie()(&s); err != nil {
			return Service{}, fmt.Errorf("%w: %s", basecamp.ErrBadConfig, err)
		}
	}

	return s, nil
}

// GetSession retrieves the Session for the *http.Request,
// or creates a brand new one.
func (s Service) GetSession(r *http.Request) (Session, error) {
	session, err := s.store.Get(r, s.sn)
	return Session{s: session}, err
}

// A ServiceOpt configures the provided *Service,
// returning an error if unable to.
type ServiceOpt func(*Service) error

// WithCookie configures the Service to back session storage with cookies.
func WithCookie() ServiceOpt {
	return func(s *Service) error {
		var c *gorilla.CookieStore
		if !s.env.IsTesting() {
			c = gorilla.NewCookieStore(s.ak, s.ek)
		} else {
			c = gorilla.NewCookieStore(s.ak)
		}

		c.Options.Secure = !(s.env.IsDevelopment() || s.env.IsTesting())
		c.Options.HttpOnly = true
		c.Options.SameSite = http.SameSiteLaxMode
		c.MaxAge(s.maxAge)
		s.store = c
		return nil
	}
}

// WithMaxAge sets the time-to-live of a session.
//
// Otherwise, the Service uses defaultMaxAge.
func WithMaxAge(secs int) ServiceOpt {
	return func(s *Service) error {
		s.maxAge = secs
		if c, ok := s.store.(*gorilla.CookieStore); ok {
			c.MaxAge(secs)
		}

		return nil
	}
}

// decodeKey hex-decodes key into one of the byte lengths in sizes,
// generating a random key if key is empty.
func decodeKey(key string, sizes ...int) ([]byte, error) {
	if key == "" {
		return securecookie.GenerateRandomKey(keyLength), nil
	}

	b, err := hex.DecodeString(key)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(sizes, len(b)) {
		return nil, fmt.Errorf("key is %d bytes, want one of %v", len(b), sizes)
	}

	return b, nil
}

// A Stub is an in-memory gorilla.Store holding one session, for tests.
type Stub struct {
	s *gorilla.Session
}

// NewStub constructs a Stub whose session carries t, unless t is empty.
func NewStub(t Theme) *Stub {
	s := new(Stub)
	s.s = gorilla.NewSession(s, "stub")
	if t != "" {
		s.s.Values[themeSessionKey] = string(t)
	}

	return s
}

func (s *Stub) GetSession(r *http.Request) (Session, error) { return Session{s.s}, nil }

func (s *Stub) Get(r *http.Request, name string) (*gorilla.Session, error)               { return s.s, nil }
func (s *Stub) New(r *http.Request, name string) (*gorilla.Session, error)               { return s.s, nil }
func (s *Stub) Save(r *http.Request, w http.ResponseWriter, sess *gorilla.Session) error { return nil }
