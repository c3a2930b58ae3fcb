package session

import (
	"fmt"

	"github.com/xy-planning-network/basecamp"
)

var ErrNotValid = fmt.Errorf("%w: session value", basecamp.ErrNotValid)
