package session

import (
	"net/http"

	gorilla "github.com/gorilla/sessions"
)

// keys used internal to specific implementations of different interfaces.
const (
	sessionKey      = "basecamp-session"     // used by Service
	themeSessionKey = sessionKey + "-theme" // used by Session
)

// A Theme is the color scheme a visitor prefers.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle flips a dark Theme to light and anything else to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// Valid asserts the Theme is one of the known themes.
func (t Theme) Valid() bool { return t == ThemeDark || t == ThemeLight }

// The Sessionable wraps methods for basic adding values to, deleting, and getting values from a session
// associated with an *http.Request and saving those to the session store.
type Sessionable interface {
	Delete(w http.ResponseWriter, r *http.Request) error
	Get(key string) any
	ResetExpiry(w http.ResponseWriter, r *http.Request) error
	Save(w http.ResponseWriter, r *http.Request) error
	Set(w http.ResponseWriter, r *http.Request, key string, val any) error
}

// The ThemeSessionable wraps methods for reading and storing a visitor's Theme.
type ThemeSessionable interface {
	SetTheme(w http.ResponseWriter, r *http.Request, t Theme) error
	Theme() Theme
}

// The CampSessionable composes session's major interfaces.
type CampSessionable interface {
	Sessionable
	ThemeSessionable
}

// A Session provides all functionality for managing a fully featured session.
//
// Its functionality is implemented by lightly wrapping a gorilla.Session.
type Session struct {
	s *gorilla.Session
}

// NewSession constructs a new Session as an implementation of CampSessionable.
func NewSession(g *gorilla.Session) CampSessionable { return Session{s: g} }

// Delete removes a session by making the MaxAge negative.
func (s Session) Delete(w http.ResponseWriter, r *http.Request) error {
	s.s.Options.MaxAge = -1
	return s.Save(w, r)
}

// Get retrieves a value from the session according to the key passed in.
func (s Session) Get(key string) any {
	return s.s.Values[key]
}

// ResetExpiry resets the expiration of the session by saving it.
func (s Session) ResetExpiry(w http.ResponseWriter, r *http.Request) error {
	return s.Save(w, r)
}

// Save wraps gorilla.Session.Save, saving the session in the request.
func (s Session) Save(w http.ResponseWriter, r *http.Request) error { return s.s.Save(r, w) }

// Set stores a value according to the key passed in on the session.
func (s Session) Set(w http.ResponseWriter, r *http.Request, key string, val any) error {
	s.s.Values[key] = val
	return s.Save(w, r)
}

// SetTheme stores t in the session.
//
// If t is not a known Theme, ErrNotValid returns.
func (s Session) SetTheme(w http.ResponseWriter, r *http.Request, t Theme) error {
	if !t.Valid() {
		return ErrNotValid
	}

	return s.Set(w, r, themeSessionKey, string(t))
}

// Theme gets the Theme out of the session.
// Without a stored, known Theme, ThemeLight returns.
func (s Session) Theme() Theme {
	raw, _ := s.s.Values[themeSessionKey].(string)
	if t := Theme(raw); t.Valid() {
		return t
	}

	return ThemeLight
}
