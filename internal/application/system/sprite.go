package system

import (
	"math"

	"github.com/younwookim/clst/internal/domain/entity"
)

// RunFrames is the length of the run cycle
const RunFrames = 4

// SelectSprite picks the animation index. The result is for rendering only.
func SelectSprite(grounded bool, input entity.Input, wallPush bool, speedX, phase, runFrameTicks float64) uint8 {
	switch {
	case !grounded && wallPush:
		return entity.SpriteWallPush
	case !grounded:
		return entity.SpriteAirborne
	case input.Pressed(entity.KeyDown):
		return entity.SpriteCrouch
	case input.Pressed(entity.KeyUp):
		return entity.SpriteLookUp
	case speedX == 0 || input.AxisX() == 0:
		return entity.SpriteIdle
	default:
		frame := int(phase/runFrameTicks) % RunFrames
		return entity.SpriteIdle + uint8(frame)
	}
}

func (s *PhysicsSystem) updateSprite(st *step) {
	a := st.actor
	cfg := s.config.Animation

	a.SpritePhase = math.Mod(a.SpritePhase+st.ticks, cfg.Period)

	wallPush := !st.grounded && st.inputX != 0 && st.solid(st.inputX, 0)
	a.Sprite = SelectSprite(st.grounded, st.input, wallPush, a.Speed.X, a.SpritePhase, cfg.RunFrameTicks)
}
