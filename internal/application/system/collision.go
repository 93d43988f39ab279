package system

import "github.com/younwookim/clst/internal/domain/entity"

// BodyState is a read-only snapshot of the actor handed to the collider.
// It lets hosts implement direction- or velocity-dependent solids such as
// one-way platforms without holding a reference to the live actor.
type BodyState struct {
	X, Y   int
	Hitbox entity.Hitbox
	Speed  entity.Vec2
}

// Probe is a single point-sampled solidity query
type Probe struct {
	X, Y       int // world pixel being tested
	DirX, DirY int // offset of the hitbox being tested
	Body       BodyState
}

// Collider answers whether a world pixel is solid for a probe
type Collider interface {
	IsSolid(p Probe) bool
}

// ColliderFunc adapts a function to Collider
type ColliderFunc func(p Probe) bool

// IsSolid calls f(p)
func (f ColliderFunc) IsSolid(p Probe) bool {
	return f(p)
}

// Snapshot returns the actor state exposed to colliders
func Snapshot(a *entity.Actor) BodyState {
	return BodyState{
		X:      a.X,
		Y:      a.Y,
		Hitbox: a.Hitbox,
		Speed:  a.Speed,
	}
}

// CollidesAt reports whether the actor's hitbox offset by (dx, dy) touches
// a solid. Hosts use it before repositioning an actor themselves.
func CollidesAt(a *entity.Actor, world Collider, dx, dy int) bool {
	return isSolid(a, world, dx, dy)
}

// isSolid tests every pixel of the hitbox translated by (dirX, dirY).
// A nil world has no solids.
func isSolid(a *entity.Actor, world Collider, dirX, dirY int) bool {
	if world == nil {
		return false
	}

	body := Snapshot(a)
	x0, y0, w, h := a.Hitbox.WorldRect(a.X, a.Y, dirX, dirY)
	for px := x0; px < x0+w; px++ {
		for py := y0; py < y0+h; py++ {
			if world.IsSolid(Probe{X: px, Y: py, DirX: dirX, DirY: dirY, Body: body}) {
				return true
			}
		}
	}
	return false
}
