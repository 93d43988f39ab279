package level

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/clst/internal/application/system"
)

// Mover is a solid rectangle that travels from its base position by
// (DX, DY) and back, one leg per Duration seconds. Update and IsSolid must
// be called from the same goroutine.
type Mover struct {
	Base   Rect
	DX, DY int

	seq        *gween.Sequence
	offX, offY int
}

// NewMover creates a platform tween
func NewMover(base Rect, dx, dy int, legSeconds float64) *Mover {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, float32(legSeconds), ease.Linear),
		gween.New(1, 0, float32(legSeconds), ease.Linear),
	)
	return &Mover{Base: base, DX: dx, DY: dy, seq: seq}
}

// Rect returns the platform's current rectangle
func (m *Mover) Rect() Rect {
	r := m.Base
	r.X += m.offX
	r.Y += m.offY
	return r
}

// Update advances the tween by dt seconds and returns how many pixels the
// platform moved
func (m *Mover) Update(dt float64) (dx, dy int) {
	t, _, done := m.seq.Update(float32(dt))
	if done {
		m.seq.Reset()
	}

	nx := int(math.Round(float64(t) * float64(m.DX)))
	ny := int(math.Round(float64(t) * float64(m.DY)))
	dx, dy = nx-m.offX, ny-m.offY
	m.offX, m.offY = nx, ny
	return dx, dy
}

// Reset moves the platform back to its base at the start of the cycle
func (m *Mover) Reset() {
	m.seq.Reset()
	m.offX, m.offY = 0, 0
}

// Supports reports whether the body is standing on top of the platform
func (m *Mover) Supports(b system.BodyState) bool {
	r := m.Rect()
	left := b.X + b.Hitbox.X
	feet := b.Y + b.Hitbox.Y + b.Hitbox.H - 1
	return feet+1 == r.Y && left < r.X+r.W && left+b.Hitbox.W > r.X
}

// IsSolid implements system.Collider
func (m *Mover) IsSolid(p system.Probe) bool {
	return m.Rect().Contains(p.X, p.Y)
}
