package system

import (
	"math"

	"github.com/younwookim/clst/internal/domain/entity"
)

// updateHair eases each hair node toward the one ahead of it. The first node
// follows an anchor behind the head; the rest follow the previous node's
// position from before this update. Purely cosmetic.
func (s *PhysicsSystem) updateHair(st *step) {
	a := st.actor
	cfg := s.config.Hair

	headY := 3.0
	if st.input.Pressed(entity.KeyDown) {
		headY = 4
	}
	target := entity.Vec2{
		X: float64(a.X) + 4 - 2*a.Facing(),
		Y: float64(a.Y) + headY,
	}

	t := math.Min(1, st.ticks/cfg.EasingFactor)
	for i := range a.Hair {
		prev := a.Hair[i]
		a.Hair[i].X += (target.X - prev.X) * t
		a.Hair[i].Y += (target.Y + cfg.Sag - prev.Y) * t
		target = prev
	}
}
