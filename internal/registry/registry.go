package registry

import (
	"fmt"
	"sync"

	"github.com/nfrund/learnhub/internal/config"
)

// Key is a typed registry key, e.g. "api.courses".
type Key[T any] string

// Registry lets modules share services at boot time. Safe for concurrent
// use.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

func New(cfg config.Provider) *Registry {
	return &Registry{cfg: cfg}
}

// Config returns the application configuration.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set registers value under key, replacing any previous value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get returns the service stored under key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	val, ok := r.services.Load(string(key))
	if !ok {
		var zero T
		return zero, false
	}
	result, ok := val.(T)
	return result, ok
}

// MustGet is Get for wiring code that cannot continue without the service.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %v", key))
	}
	return val
}
