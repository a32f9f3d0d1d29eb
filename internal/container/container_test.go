package container

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface {
	Greet() string
}

type englishGreeter struct{ name string }

func (g *englishGreeter) Greet() string { return "hello " + g.name }

func TestRegisterResolveSingleton(t *testing.T) {
	c := New()
	g := &englishGreeter{name: "ada"}
	Register[greeter](c, g)

	got := Resolve[greeter](c)
	require.NotNil(t, got)
	assert.Equal(t, "hello ada", got.Greet())
	// same instance every time
	assert.Same(t, got, Resolve[greeter](c))
}

func TestRegisterOverwritesPriorBinding(t *testing.T) {
	c := New()
	Register[greeter](c, &englishGreeter{name: "first"})
	Register[greeter](c, &englishGreeter{name: "second"})

	assert.Equal(t, "hello second", Resolve[greeter](c).Greet())
}

func TestRegisterFactoryFreshPerResolve(t *testing.T) {
	c := New()
	n := 0
	RegisterFactory[*englishGreeter](c, func() *englishGreeter {
		n++
		return &englishGreeter{name: "x"}
	})

	a := Resolve[*englishGreeter](c)
	b := Resolve[*englishGreeter](c)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, n)
}

func TestResolveUnboundPanics(t *testing.T) {
	c := New()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*NotConfiguredError)
		require.True(t, ok)
		assert.Contains(t, err.Error(), "not_configured")
	}()
	Resolve[greeter](c)
}

func TestResolveOptionalAbsent(t *testing.T) {
	c := New()
	got, ok := ResolveOptional[greeter](c)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestClear(t *testing.T) {
	c := New()
	Register[greeter](c, &englishGreeter{name: "ada"})
	c.Clear()
	_, ok := ResolveOptional[greeter](c)
	assert.False(t, ok)
}

func TestConcurrentResolvers(t *testing.T) {
	c := New()
	Register[greeter](c, &englishGreeter{name: "ada"})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if Resolve[greeter](c).Greet() != "hello ada" {
					t.Error("unexpected resolution")
					return
				}
			}
		}()
	}
	wg.Wait()
}
