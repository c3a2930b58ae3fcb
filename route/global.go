package route

import (
	"sync"
	"sync/atomic"
)

var (
	initMu     sync.Mutex
	defaultReg atomic.Pointer[Registry]
)

// Init builds the process-wide Registry from defs.
//
// Init succeeds at most once per process; later calls return ErrInitialized.
// A call that fails to build a Registry does not count.
func Init(defs []Definition, opts ...Option) (*Registry, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if defaultReg.Load() != nil {
		return nil, ErrInitialized
	}

	reg, err := New(defs, opts...)
	if err != nil {
		return nil, err
	}

	defaultReg.Store(reg)
	return reg, nil
}

// Default returns the Registry published by Init, or nil before Init succeeds.
func Default() *Registry { return defaultReg.Load() }
