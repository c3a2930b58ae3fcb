package route

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/basecamp"
)

var (
	ErrDuplicateFallback = fmt.Errorf("%w: more than one fallback route", basecamp.ErrBadConfig)
	ErrDuplicateID       = fmt.Errorf("%w: duplicate route id", basecamp.ErrBadConfig)
	ErrInitialized       = errors.New("route registry already initialized")
	ErrMalformedPattern  = fmt.Errorf("%w: malformed path pattern", basecamp.ErrBadConfig)
	ErrNoComponent       = fmt.Errorf("%w: route has no component", basecamp.ErrBadConfig)
	ErrNotFound          = errors.New("no route matches path")
	ErrPathConflict      = fmt.Errorf("%w: conflicting path patterns", basecamp.ErrBadConfig)
)
