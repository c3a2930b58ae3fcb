package scaffold

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/basecamp"
)

var (
	ErrBadName  = fmt.Errorf("%w: page name", basecamp.ErrNotValid)
	ErrBadTitle = fmt.Errorf("%w: page title", basecamp.ErrNotValid)
	ErrConflict = errors.New("route conflicts with the manifest")
	ErrExists   = errors.New("page already exists")
	ErrNotValid = fmt.Errorf("%w: manifest entry", basecamp.ErrNotValid)
)
