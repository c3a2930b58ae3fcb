package resp

import (
	"context"

	"github.com/xy-planning-network/basecamp"
)

// ContextInjector is the interface for describing how values from context.Context can be
// merged with existing keys in a map[string]any.
type ContextInjector interface {
	Inject(props map[string]any, ctx context.Context)
}

// A DefaultInjector holds the keys required to pull values from a context.Context.
//
// DefaultInjector implements ContextInjector.
type DefaultInjector struct {
	Keys []basecamp.Key
}

// Inject merges into props the values pulled from ctx using i.Keys,
// skipping keys with no value.
// A value is stored under the bare key name, e.g., "RequestIDKey".
func (i DefaultInjector) Inject(props map[string]any, ctx context.Context) {
	if props == nil || ctx == nil || i.Keys == nil {
		return
	}

	for _, k := range i.Keys {
		if val := ctx.Value(k); val != nil {
			props[string(k)] = val
		}
	}
}

// A NoopInjector implements ContextInjector and performs no operation.
type NoopInjector struct{}

func (NoopInjector) Inject(_ map[string]any, _ context.Context) {}
