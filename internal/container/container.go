package container

import (
	"fmt"
	"reflect"
	"sync"
)

// Container maps capability types to either a singleton value or a factory.
// Registration happens on a single initialization path (app startup or test
// setup); Resolve is safe for many concurrent readers afterwards.
//
// The container holds no business logic and never special-cases a capability.

type binding struct {
	instance any
	factory  func() any
}

type Container struct {
	mu       sync.RWMutex
	bindings map[reflect.Type]binding
}

func New() *Container {
	return &Container{bindings: map[reflect.Type]binding{}}
}

var processContainer = New()

// Default returns the process-wide container used by application startup.
func Default() *Container { return processContainer }

// NotConfiguredError is the fatal failure raised when a capability is
// resolved without a prior registration. It indicates a wiring bug, not a
// runtime condition to recover from.
type NotConfiguredError struct {
	Capability reflect.Type
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("not_configured: no binding registered for %v", e.Capability)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register binds a capability to one concrete singleton value, overwriting
// any prior binding for that capability.
func Register[T any](c *Container, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[typeOf[T]()] = binding{instance: v}
}

// RegisterFactory binds a capability to a zero-argument constructor invoked
// fresh on every Resolve.
func RegisterFactory[T any](c *Container, fn func() T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[typeOf[T]()] = binding{factory: func() any { return fn() }}
}

// Resolve returns the bound singleton, or invokes the bound factory. An
// unbound capability panics with *NotConfiguredError.
func Resolve[T any](c *Container) T {
	v, ok := ResolveOptional[T](c)
	if !ok {
		panic(&NotConfiguredError{Capability: typeOf[T]()})
	}
	return v
}

// ResolveOptional is Resolve that reports absence instead of failing.
func ResolveOptional[T any](c *Container) (T, bool) {
	c.mu.RLock()
	b, ok := c.bindings[typeOf[T]()]
	c.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	if b.factory != nil {
		return b.factory().(T), true
	}
	return b.instance.(T), true
}

// Clear removes all bindings. Only used to reset state between test runs.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = map[reflect.Type]binding{}
}
