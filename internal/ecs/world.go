package ecs

import (
	"sync"

	"github.com/younwookim/clst/internal/application/system"
	"github.com/younwookim/clst/internal/domain/entity"
)

// EntityID is a unique identifier for an actor (never recycled)
type EntityID uint64

// World owns heap-allocated actors and their per-actor capabilities.
// The maps are guarded so different actors can be driven from different
// goroutines; ticks of one actor must still be serialized by the caller.
type World struct {
	mu     sync.RWMutex
	nextID EntityID

	// Components, guarded by mu
	actors    map[EntityID]*entity.Actor
	colliders map[EntityID]system.Collider
	audio     map[EntityID]system.AudioSink
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		actors:    make(map[EntityID]*entity.Actor),
		colliders: make(map[EntityID]system.Collider),
		audio:     make(map[EntityID]system.AudioSink),
	}
}

// Spawn creates a fresh actor and returns its ID
func (w *World) Spawn() EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.actors[id] = entity.NewActor()
	return id
}

// Destroy removes an actor and its capabilities. It returns false if the ID
// was not live.
func (w *World) Destroy(id EntityID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.actors[id]; !ok {
		return false
	}
	delete(w.actors, id)
	delete(w.colliders, id)
	delete(w.audio, id)
	return true
}

// Exists checks if an actor is live
func (w *World) Exists(id EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.actors[id]
	return ok
}

// Actor returns the live actor for id
func (w *World) Actor(id EntityID) (*entity.Actor, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	a, ok := w.actors[id]
	return a, ok
}

// SetCollider installs the solidity query for id. Nil removes it.
func (w *World) SetCollider(id EntityID, c system.Collider) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.actors[id]; !ok {
		return false
	}
	if c == nil {
		delete(w.colliders, id)
	} else {
		w.colliders[id] = c
	}
	return true
}

// SetAudio installs the sound sink for id. Nil removes it.
func (w *World) SetAudio(id EntityID, s system.AudioSink) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.actors[id]; !ok {
		return false
	}
	if s == nil {
		delete(w.audio, id)
	} else {
		w.audio[id] = s
	}
	return true
}

// Capabilities returns the actor together with its installed capabilities
func (w *World) Capabilities(id EntityID) (*entity.Actor, system.Capabilities, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	a, ok := w.actors[id]
	if !ok {
		return nil, system.Capabilities{}, false
	}
	return a, system.Capabilities{World: w.colliders[id], Audio: w.audio[id]}, true
}

// Count returns the number of live actors
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.actors)
}
