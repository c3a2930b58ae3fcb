package resp

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/basecamp"
)

var (
	ErrBadConfig   = fmt.Errorf("%w: responder", basecamp.ErrBadConfig)
	ErrDone        = errors.New("request ctx done")
	ErrInvalid     = fmt.Errorf("%w: response", basecamp.ErrNotValid)
	ErrMissingData = fmt.Errorf("%w: response", basecamp.ErrMissingData)
)
