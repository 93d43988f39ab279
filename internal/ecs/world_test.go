package ecs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/clst/internal/application/system"
	"github.com/younwookim/clst/internal/domain/entity"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.actors)
	assert.NotNil(t, w.colliders)
	assert.NotNil(t, w.audio)
	assert.Zero(t, w.Count())
}

func TestSpawn(t *testing.T) {
	w := NewWorld()

	id1 := w.Spawn()
	id2 := w.Spawn()
	id3 := w.Spawn()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
	assert.Equal(t, 3, w.Count())

	a, ok := w.Actor(id1)
	require.True(t, ok)
	assert.Equal(t, entity.NewActor(), a, "spawned actors start from defaults")
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.Spawn()
	require.True(t, w.Destroy(id1))

	id2 := w.Spawn()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroy(t *testing.T) {
	w := NewWorld()
	id := w.Spawn()
	require.True(t, w.SetCollider(id, system.ColliderFunc(func(system.Probe) bool { return true })))
	require.True(t, w.SetAudio(id, system.AudioFunc(func(entity.SoundID) {})))

	require.True(t, w.Exists(id))
	assert.True(t, w.Destroy(id))

	assert.False(t, w.Exists(id))
	_, hasCollider := w.colliders[id]
	assert.False(t, hasCollider)
	_, hasAudio := w.audio[id]
	assert.False(t, hasAudio)

	assert.False(t, w.Destroy(id), "second destroy reports a dead ID")
}

func TestExists(t *testing.T) {
	w := NewWorld()

	assert.False(t, w.Exists(0), "0 is never live")
	assert.False(t, w.Exists(42))

	id := w.Spawn()
	assert.True(t, w.Exists(id))
}

func TestCapabilities(t *testing.T) {
	w := NewWorld()
	id := w.Spawn()

	t.Run("defaults are nil", func(t *testing.T) {
		a, caps, ok := w.Capabilities(id)
		require.True(t, ok)
		assert.NotNil(t, a)
		assert.Nil(t, caps.World)
		assert.Nil(t, caps.Audio)
	})

	t.Run("installed capabilities are returned", func(t *testing.T) {
		var played []entity.SoundID
		require.True(t, w.SetCollider(id, system.ColliderFunc(func(p system.Probe) bool { return p.Y > 10 })))
		require.True(t, w.SetAudio(id, system.AudioFunc(func(s entity.SoundID) { played = append(played, s) })))

		_, caps, ok := w.Capabilities(id)
		require.True(t, ok)
		assert.True(t, caps.World.IsSolid(system.Probe{Y: 11}))
		caps.Audio.Play(entity.SoundJump)
		assert.Equal(t, []entity.SoundID{entity.SoundJump}, played)
	})

	t.Run("nil removes", func(t *testing.T) {
		require.True(t, w.SetCollider(id, nil))
		require.True(t, w.SetAudio(id, nil))

		_, caps, _ := w.Capabilities(id)
		assert.Nil(t, caps.World)
		assert.Nil(t, caps.Audio)
	})

	t.Run("unknown ID", func(t *testing.T) {
		a, _, ok := w.Capabilities(999)
		assert.False(t, ok)
		assert.Nil(t, a)
		assert.False(t, w.SetCollider(999, nil))
		assert.False(t, w.SetAudio(999, nil))
	})
}

func TestConcurrentActors(t *testing.T) {
	w := NewWorld()
	sys := system.NewPhysicsSystem(nil)
	floor := system.ColliderFunc(func(p system.Probe) bool { return p.Y >= 64 })

	const workers = 8
	ids := make([]EntityID, workers)
	for i := range ids {
		ids[i] = w.Spawn()
		require.True(t, w.SetCollider(ids[i], floor))
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id EntityID) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				a, caps, ok := w.Capabilities(id)
				if !ok {
					return
				}
				sys.Tick(a, caps, entity.KeyRight, 1.0/30)
			}
		}(id)
	}
	wg.Wait()

	first, _ := w.Actor(ids[0])
	for _, id := range ids[1:] {
		a, _ := w.Actor(id)
		assert.Equal(t, first, a, "independent actors with the same inputs agree")
	}
	assert.True(t, first.WasGrounded)
}
