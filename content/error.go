package content

import (
	"fmt"

	"github.com/xy-planning-network/basecamp"
)

var (
	ErrBadSlug  = fmt.Errorf("%w: bad document slug", basecamp.ErrNotValid)
	ErrNotFound = fmt.Errorf("%w: document", basecamp.ErrNotExist)
)
