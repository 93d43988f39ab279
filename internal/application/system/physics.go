package system

import (
	"math"

	"github.com/younwookim/clst/internal/domain/entity"
	"github.com/younwookim/clst/internal/infrastructure/config"
)

// Capabilities are the host services a tick may call into.
// Nil fields are valid: nothing is solid and sounds are dropped.
type Capabilities struct {
	World Collider
	Audio AudioSink
}

// PhysicsSystem advances actors one simulation step at a time
type PhysicsSystem struct {
	config *config.Tuning
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.Tuning) *PhysicsSystem {
	if cfg == nil {
		cfg = config.DefaultTuning()
	}
	return &PhysicsSystem{config: cfg}
}

// Config returns the active tuning
func (s *PhysicsSystem) Config() *config.Tuning {
	return s.config
}

// SetConfig swaps the tuning. The caller must not run Tick concurrently.
func (s *PhysicsSystem) SetConfig(cfg *config.Tuning) {
	s.config = cfg
}

// step carries one Tick's derived input through the sub-steps
type step struct {
	actor    *entity.Actor
	caps     Capabilities
	input    entity.Input
	ticks    float64 // elapsed time in tick units
	inputX   int
	inputY   int
	grounded bool
}

func (st *step) solid(dirX, dirY int) bool {
	return isSolid(st.actor, st.caps.World, dirX, dirY)
}

func (st *step) play(id entity.SoundID) {
	if st.caps.Audio != nil {
		st.caps.Audio.Play(id)
	}
}

// Tick advances the actor by one step of dt seconds. Negative or non-finite
// dt is treated as zero. Collider and audio callbacks run synchronously on the caller's
// goroutine and must not tick the same actor again.
func (s *PhysicsSystem) Tick(a *entity.Actor, caps Capabilities, input entity.Input, dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	st := &step{
		actor:  a,
		caps:   caps,
		input:  input,
		ticks:  dt * s.config.Simulation.FPS,
		inputX: input.AxisX(),
		inputY: input.AxisY(),
	}
	a.Elapsed += dt

	st.grounded = st.solid(0, 1)

	jumpDown := input.Pressed(entity.KeyJump)
	jumpPressed := jumpDown && !a.JumpWasDown
	a.JumpWasDown = jumpDown

	dashDown := input.Pressed(entity.KeyDash)
	dashPressed := dashDown && !a.DashWasDown
	a.DashWasDown = dashDown

	s.updateJumpTimers(st, jumpPressed)
	s.recharge(st)
	a.DashFlashTimer = countdown(a.DashFlashTimer, st.ticks)

	if a.Dashing() {
		s.updateDash(st)
	} else {
		s.updateNormal(st, dashPressed)
	}

	a.WasGrounded = st.grounded

	s.moveX(st)
	s.moveY(st)

	s.updateHair(st)
}

// updateNormal runs run/fall control, jumping, dash triggering and animation
func (s *PhysicsSystem) updateNormal(st *step, dashPressed bool) {
	a := st.actor
	mv := s.config.Movement

	accel := mv.AirAccel
	if st.grounded {
		accel = mv.GroundAccel
	}
	if math.Abs(a.Speed.X) > mv.MaxSpeed {
		// over-speed (wall jump, dash exit) decays slowly
		a.Speed.X = approach(a.Speed.X, math.Copysign(mv.MaxSpeed, a.Speed.X), mv.Decel*st.ticks)
	} else {
		a.Speed.X = approach(a.Speed.X, float64(st.inputX)*mv.MaxSpeed, accel*st.ticks)
	}

	if a.Speed.X != 0 {
		a.FacingLeft = a.Speed.X < 0
	}

	gravity := mv.Gravity
	if math.Abs(a.Speed.Y) <= mv.HalfGravityThreshold {
		gravity *= 0.5
	}

	maxFall := mv.MaxFall
	if st.inputX != 0 && st.solid(st.inputX, 0) {
		maxFall = mv.MaxFallSlide
	}

	if !st.grounded {
		a.Speed.Y = approach(a.Speed.Y, maxFall, gravity*st.ticks)
	}

	s.tryJump(st)

	if dashPressed {
		s.tryDash(st)
	}

	s.updateSprite(st)
}

// approach moves value toward target by at most amount, never past it
func approach(value, target, amount float64) float64 {
	if value > target {
		return math.Max(target, value-amount)
	}
	return math.Min(target, value+amount)
}

// countdown decrements a timer without letting it go negative
func countdown(timer, amount float64) float64 {
	if timer <= amount {
		return 0
	}
	return timer - amount
}

// Helper functions
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
