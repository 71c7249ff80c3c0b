package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type greeter struct{ name string }

func TestRegistry_SetGet(t *testing.T) {
	r := New(nil)
	key := Key[*greeter]("test.greeter")

	_, ok := Get(r, key)
	assert.False(t, ok)

	Set(r, key, &greeter{name: "hi"})
	got, ok := Get(r, key)
	assert.True(t, ok)
	assert.Equal(t, "hi", got.name)
	assert.Equal(t, "hi", MustGet(r, key).name)
}

func TestRegistry_WrongTypeUnderSameName(t *testing.T) {
	r := New(nil)
	Set(r, Key[int]("shared"), 1)

	_, ok := Get(r, Key[string]("shared"))
	assert.False(t, ok)
}

func TestRegistry_MustGetPanics(t *testing.T) {
	assert.Panics(t, func() { MustGet(New(nil), Key[int]("missing")) })
}
