package system

import (
	"math"

	"github.com/younwookim/clst/internal/domain/entity"
)

// halfSqrt2 normalizes a diagonal unit step
const halfSqrt2 = math.Sqrt2 * 0.5

// recharge refills dash charges on ground contact
func (s *PhysicsSystem) recharge(st *step) {
	a := st.actor
	if st.grounded && a.DashCharges < a.MaxDashCharges {
		st.play(entity.SoundDashRecharge)
		a.DashCharges = a.MaxDashCharges
	}
}

// tryDash spends a charge and launches the dash, or plays the denied cue
func (s *PhysicsSystem) tryDash(st *step) {
	a := st.actor
	cfg := s.config.Dash

	if a.DashCharges == 0 {
		st.play(entity.SoundDashDenied)
		return
	}

	a.DashCharges--
	a.DashTimer = cfg.Time
	a.DashFlashTimer = cfg.EffectTime

	dir := dashDirection(st.inputX, st.inputY, a.Facing())
	a.Speed = entity.Vec2{X: dir.X * cfg.Speed, Y: dir.Y * cfg.Speed}

	st.play(entity.SoundDash)

	a.DashTarget = entity.Vec2{
		X: signedOrZero(cfg.Target, a.Speed.X),
		Y: signedOrZero(cfg.Target, a.Speed.Y),
	}
	if a.Speed.Y < 0 {
		a.DashTarget.Y *= cfg.UpwardsMul
	}

	// Each axis is scaled by the other axis's motion, not by its own. This is
	// the stock tuning and is kept as is.
	a.DashAccel = entity.Vec2{X: cfg.Accel, Y: cfg.Accel}
	if a.Speed.Y != 0 {
		a.DashAccel.X *= halfSqrt2
	}
	if a.Speed.X != 0 {
		a.DashAccel.Y *= halfSqrt2
	}
}

// updateDash runs the dash timer and eases speed toward the dash target
func (s *PhysicsSystem) updateDash(st *step) {
	a := st.actor
	a.DashTimer = countdown(a.DashTimer, st.ticks)
	a.Speed.X = approach(a.Speed.X, a.DashTarget.X, a.DashAccel.X*st.ticks)
	a.Speed.Y = approach(a.Speed.Y, a.DashTarget.Y, a.DashAccel.Y*st.ticks)
}

// dashDirection maps input axes to a dash direction. No input dashes
// horizontally toward facing.
func dashDirection(inputX, inputY int, facing float64) entity.Vec2 {
	switch {
	case inputX != 0 && inputY != 0:
		return entity.Vec2{X: float64(inputX) * halfSqrt2, Y: float64(inputY) * halfSqrt2}
	case inputY != 0:
		return entity.Vec2{Y: float64(inputY)}
	case inputX != 0:
		return entity.Vec2{X: float64(inputX)}
	default:
		return entity.Vec2{X: facing}
	}
}

func signedOrZero(magnitude, s float64) float64 {
	if s == 0 {
		return 0
	}
	return math.Copysign(magnitude, s)
}
