package system

import "github.com/younwookim/clst/internal/domain/entity"

// updateJumpTimers refreshes the jump buffer on a press and the grace
// window while grounded; both count down otherwise.
func (s *PhysicsSystem) updateJumpTimers(st *step, pressed bool) {
	a := st.actor
	cfg := s.config.Jump

	if pressed {
		a.JumpBuffer = cfg.BufferTime
	} else {
		a.JumpBuffer = countdown(a.JumpBuffer, st.ticks)
	}

	if st.grounded {
		a.JumpGrace = cfg.GraceTime
	} else {
		a.JumpGrace = countdown(a.JumpGrace, st.ticks)
	}
}

// tryJump consumes a buffered press as a ground jump (inside the grace
// window) or as a wall jump off a wall within reach.
func (s *PhysicsSystem) tryJump(st *step) {
	a := st.actor
	cfg := s.config.Jump

	if a.JumpBuffer <= 0 {
		return
	}

	if a.JumpGrace > 0 {
		st.play(entity.SoundJump)
		a.JumpBuffer = 0
		a.JumpGrace = 0
		a.Speed.Y = cfg.Speed
		return
	}

	wall := 0
	if st.solid(-cfg.WallCheckDistance, 0) {
		wall = -1
	} else if st.solid(cfg.WallCheckDistance, 0) {
		wall = 1
	}
	if wall == 0 {
		return
	}

	st.play(entity.SoundWallJump)
	a.JumpBuffer = 0
	a.Speed.Y = cfg.Speed
	a.Speed.X = -float64(wall) * cfg.WallJumpSpeed
}
