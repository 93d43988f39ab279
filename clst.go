// Package clst is an embeddable 2D platformer character controller.
//
// An Engine owns any number of actors. Each call to Tick advances one actor
// by one simulation step: it reads the input bit field, resolves movement
// against the host's collider one pixel at a time and reports sound events to
// the host's audio sink. The host keeps the tilemap, the real-time loop and
// the drawing; it reads positions, the sprite index, hair nodes and
// HairColor back from the actor after each tick.
package clst

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/younwookim/clst/internal/application/system"
	"github.com/younwookim/clst/internal/domain/entity"
	"github.com/younwookim/clst/internal/ecs"
	"github.com/younwookim/clst/internal/infrastructure/config"
)

type (
	// Actor is the complete simulation state of one character
	Actor = entity.Actor
	// Vec2 is a floating point 2D vector
	Vec2 = entity.Vec2
	// Hitbox is the collision rectangle relative to the actor position
	Hitbox = entity.Hitbox
	// Input is the per-tick key bit field
	Input = entity.Input
	// SoundID identifies a sound event
	SoundID = entity.SoundID

	// Probe is one point-sampled solidity query
	Probe = system.Probe
	// BodyState is the actor snapshot carried by a Probe
	BodyState = system.BodyState
	// Collider answers solidity queries for an actor
	Collider = system.Collider
	// ColliderFunc adapts a function to Collider
	ColliderFunc = system.ColliderFunc
	// AudioSink receives sound events
	AudioSink = system.AudioSink
	// AudioFunc adapts a function to AudioSink
	AudioFunc = system.AudioFunc

	// Tuning holds every physics constant
	Tuning = config.Tuning
)

// Input bits
const (
	KeyJump  = entity.KeyJump
	KeyDash  = entity.KeyDash
	KeyRight = entity.KeyRight
	KeyDown  = entity.KeyDown
	KeyUp    = entity.KeyUp
	KeyLeft  = entity.KeyLeft
)

// Sound events
const (
	SoundJump         = entity.SoundJump
	SoundWallJump     = entity.SoundWallJump
	SoundDash         = entity.SoundDash
	SoundDashDenied   = entity.SoundDashDenied
	SoundDashRecharge = entity.SoundDashRecharge
)

// Sprite indices
const (
	SpriteIdle     = entity.SpriteIdle
	SpriteAirborne = entity.SpriteAirborne
	SpriteWallPush = entity.SpriteWallPush
	SpriteCrouch   = entity.SpriteCrouch
	SpriteLookUp   = entity.SpriteLookUp
)

// Handle refers to an actor owned by an Engine. The zero Handle is never valid.
type Handle uint64

// Engine owns actors and the tuning they are simulated with. Different
// handles may be ticked from different goroutines; calls for one handle must
// not overlap.
type Engine struct {
	world   *ecs.World
	physics *system.PhysicsSystem
}

// DefaultTuning returns the stock tuning
func DefaultTuning() *Tuning {
	return config.DefaultTuning()
}

// LoadTuning reads a JSON or YAML tuning file from fsys. Missing fields keep
// their default values.
func LoadTuning(fsys fs.FS, name string) (*Tuning, error) {
	return config.NewFSLoader(fsys, ".").LoadTuning(name)
}

// New creates an engine. A nil tuning uses DefaultTuning.
func New(t *Tuning) (*Engine, error) {
	if t == nil {
		t = DefaultTuning()
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return &Engine{
		world:   ecs.NewWorld(),
		physics: system.NewPhysicsSystem(t),
	}, nil
}

// Tuning returns the engine's tuning
func (e *Engine) Tuning() *Tuning {
	return e.physics.Config()
}

// SetTuning replaces the tuning for subsequent ticks. A nil tuning restores
// DefaultTuning. It must not be called while any Tick is running.
func (e *Engine) SetTuning(t *Tuning) error {
	if t == nil {
		t = DefaultTuning()
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("set tuning: %w", err)
	}
	e.physics.SetConfig(t)
	return nil
}

// Init creates an actor in its initial state at (0, 0) with no collider and
// no audio sink.
func (e *Engine) Init() Handle {
	return Handle(e.world.Spawn())
}

// Release frees the actor. The handle must not be used afterwards.
func (e *Engine) Release(h Handle) {
	if !e.world.Destroy(ecs.EntityID(h)) {
		panic(fmt.Sprintf("clst: release of unknown handle %d", h))
	}
}

// Tick advances the actor by dt seconds. Negative or non-finite dt is
// treated as zero.
// The collider and audio sink are called synchronously from this goroutine
// and must not call back into the engine for the same handle.
func (e *Engine) Tick(h Handle, input Input, dt float64) {
	a, caps, ok := e.world.Capabilities(ecs.EntityID(h))
	if !ok {
		panic(fmt.Sprintf("clst: tick of unknown handle %d", h))
	}
	e.physics.Tick(a, caps, input, dt)
}

// Actor returns the live state of the actor. The host may read it between
// ticks and may reposition it with Actor.SetPosition.
func (e *Engine) Actor(h Handle) *Actor {
	a, ok := e.world.Actor(ecs.EntityID(h))
	if !ok {
		panic(fmt.Sprintf("clst: unknown handle %d", h))
	}
	return a
}

// SetCollider installs the solidity query. Nil means nothing is solid.
func (e *Engine) SetCollider(h Handle, c Collider) {
	if !e.world.SetCollider(ecs.EntityID(h), c) {
		panic(fmt.Sprintf("clst: unknown handle %d", h))
	}
}

// SetAudio installs the sound sink. Nil drops sounds.
func (e *Engine) SetAudio(h Handle, s AudioSink) {
	if !e.world.SetAudio(ecs.EntityID(h), s) {
		panic(fmt.Sprintf("clst: unknown handle %d", h))
	}
}

// Len returns the number of live actors
func (e *Engine) Len() int {
	return e.world.Count()
}

// HairColor returns the actor's hair colour. disableFlashing turns off every
// alternating effect.
func HairColor(a *Actor, disableFlashing bool) color.RGBA {
	return entity.HairColor(a, disableFlashing)
}

// SelectSprite is the sprite selection rule used by Tick with the engine's
// current tuning, for hosts that animate actors they do not tick
func (e *Engine) SelectSprite(grounded bool, input Input, wallPush bool, speedX, phase float64) uint8 {
	return system.SelectSprite(grounded, input, wallPush, speedX, phase, e.physics.Config().Animation.RunFrameTicks)
}
