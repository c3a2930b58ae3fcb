package route

import (
	"context"

	"github.com/xy-planning-network/basecamp"
)

// NewContext stashes res in ctx.
func NewContext(ctx context.Context, res Result) context.Context {
	return context.WithValue(ctx, basecamp.ResolutionKey, res)
}

// FromContext retrieves the Result stashed by NewContext.
func FromContext(ctx context.Context) (Result, bool) {
	res, ok := ctx.Value(basecamp.ResolutionKey).(Result)
	return res, ok
}
