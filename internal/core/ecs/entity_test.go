package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityPool_StaleIDAfterReuse(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	require.True(t, p.Alive(a))
	assert.False(t, a.IsZero())

	require.True(t, p.Destroy(a))
	assert.False(t, p.Alive(a))
	assert.False(t, p.Destroy(a), "double destroy must be ignored")

	b := p.Create()
	assert.Equal(t, a.Index(), b.Index(), "slot should be recycled")
	assert.NotEqual(t, a, b)
	assert.True(t, p.Alive(b))
	assert.False(t, p.Alive(a), "old id must stay dead after slot reuse")
	assert.Equal(t, 1, p.Live())
}

func TestEntityPool_InvalidID(t *testing.T) {
	p := NewEntityPool()
	assert.False(t, p.Alive(InvalidID))
	assert.False(t, p.Alive(makeID(42, 1)))
}

func TestWorld_FlushDestroyQueue(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()

	w.MarkForDestruction(a)
	w.MarkForDestruction(a)
	assert.Equal(t, 1, w.Pending())
	assert.True(t, w.Alive(a), "marked entities stay alive until flush")

	var seen []EntityID
	n := w.FlushDestroyQueue(func(id EntityID) {
		assert.True(t, w.Alive(id), "callback runs before the slot is freed")
		seen = append(seen, id)
	})
	assert.Equal(t, 1, n)
	assert.Equal(t, []EntityID{a}, seen)
	assert.False(t, w.Alive(a))
	assert.True(t, w.Alive(b))
	assert.Equal(t, 0, w.Pending())
}
