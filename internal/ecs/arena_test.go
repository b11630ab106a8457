package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(a *Arena[string]) []string {
	var out []string
	a.Each(func(_ Handle, v string) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestArena_InsertAndGet(t *testing.T) {
	a := NewArena[string]()

	h1 := a.Insert("a")
	h2 := a.Insert("b")

	v, ok := a.Get(h1)
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, a.Len())
	assert.NotEqual(t, h1, h2)

	_, ok = a.Get(Nil)
	assert.False(t, ok, "zero handle never resolves")
}

func TestArena_DoubleKillRemovesOnce(t *testing.T) {
	a := NewArena[string]()
	h := a.Insert("skeleton")
	a.Insert("player")

	assert.True(t, a.Kill(h))
	assert.False(t, a.Kill(h), "second kill is a no-op")

	var removed []string
	n := a.Sweep(func(v string) { removed = append(removed, v) })

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"skeleton"}, removed)
	assert.Equal(t, []string{"player"}, collect(a))
}

func TestArena_StaleHandleAfterReuse(t *testing.T) {
	a := NewArena[string]()
	h1 := a.Insert("old")
	a.Kill(h1)
	a.Sweep(nil)

	h2 := a.Insert("new")
	assert.Equal(t, h1.Index, h2.Index, "slot is reused")
	assert.NotEqual(t, h1.Gen, h2.Gen)

	_, ok := a.Get(h1)
	assert.False(t, ok)
	assert.False(t, a.Kill(h1), "stale kill does not touch the new value")
	assert.True(t, a.Alive(h2))
}

func TestArena_KillDuringEach(t *testing.T) {
	a := NewArena[string]()
	var handles []Handle
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		handles = append(handles, a.Insert(s))
	}

	visits := map[string]int{}
	a.Each(func(h Handle, v string) bool {
		visits[v]++
		if v == "b" || v == "d" {
			a.Kill(h)
			a.Kill(h)
		}
		if v == "c" {
			a.Kill(handles[4])
		}
		return true
	})

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, 1, visits[s], "each value updated exactly once: %s", s)
	}

	assert.Equal(t, 3, a.Sweep(nil))
	assert.Equal(t, []string{"a", "c"}, collect(a))
}

func TestArena_InsertDuringEachIsPending(t *testing.T) {
	a := NewArena[string]()
	a.Insert("archer")

	var spawned Handle
	seen := 0
	a.Each(func(_ Handle, v string) bool {
		seen++
		spawned = a.Insert("arrow")
		return true
	})

	assert.Equal(t, 1, seen, "value inserted mid-pass is not visited")
	_, ok := a.Get(spawned)
	assert.True(t, ok, "pending value still resolves")
	assert.Equal(t, 1, a.Len())

	a.Sweep(nil)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []string{"archer", "arrow"}, collect(a))
}

func TestArena_KillPendingBeforeSweep(t *testing.T) {
	a := NewArena[string]()
	a.Insert("x")

	a.Each(func(_ Handle, _ string) bool {
		h := a.Insert("y")
		a.Kill(h)
		return true
	})

	removed := 0
	a.Sweep(func(string) { removed++ })
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, a.Len())
}

func TestArena_EachStopsEarly(t *testing.T) {
	a := NewArena[string]()
	a.Insert("a")
	a.Insert("b")

	seen := 0
	a.Each(func(_ Handle, _ string) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}

func TestArena_Clear(t *testing.T) {
	a := NewArena[string]()
	h := a.Insert("a")
	a.Insert("b")

	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Alive(h))
	assert.Empty(t, collect(a))
}
