package config

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned when a tuning value would break the simulation
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the root config for tuning.json / tuning.yaml.
// Speeds are pixels per tick, accelerations pixels per tick², timers ticks.
type Tuning struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Movement   MovementConfig   `json:"movement" yaml:"movement"`
	Jump       JumpConfig       `json:"jump" yaml:"jump"`
	Dash       DashConfig       `json:"dash" yaml:"dash"`
	Hair       HairConfig       `json:"hair" yaml:"hair"`
	Animation  AnimationConfig  `json:"animation" yaml:"animation"`
}

type SimulationConfig struct {
	// FPS converts elapsed seconds into ticks: deltaTicks = dt * FPS
	FPS float64 `json:"fps" yaml:"fps"`
}

type MovementConfig struct {
	MaxSpeed             float64 `json:"maxSpeed" yaml:"max_speed"`
	GroundAccel          float64 `json:"groundAccel" yaml:"ground_accel"`
	AirAccel             float64 `json:"airAccel" yaml:"air_accel"`
	Decel                float64 `json:"decel" yaml:"decel"` // over-speed decay
	Gravity              float64 `json:"gravity" yaml:"gravity"`
	HalfGravityThreshold float64 `json:"halfGravityThreshold" yaml:"half_gravity_threshold"`
	MaxFall              float64 `json:"maxFall" yaml:"max_fall"`
	MaxFallSlide         float64 `json:"maxFallSlide" yaml:"max_fall_slide"`
}

type JumpConfig struct {
	Speed             float64 `json:"speed" yaml:"speed"` // negative is up
	GraceTime         float64 `json:"graceTime" yaml:"grace_time"`
	BufferTime        float64 `json:"bufferTime" yaml:"buffer_time"`
	WallJumpSpeed     float64 `json:"wallJumpSpeed" yaml:"wall_jump_speed"`
	WallCheckDistance int     `json:"wallCheckDistance" yaml:"wall_check_distance"`
}

type DashConfig struct {
	Speed      float64 `json:"speed" yaml:"speed"`
	Time       float64 `json:"time" yaml:"time"`
	EffectTime float64 `json:"effectTime" yaml:"effect_time"`
	Target     float64 `json:"target" yaml:"target"`
	Accel      float64 `json:"accel" yaml:"accel"`
	UpwardsMul float64 `json:"upwardsMul" yaml:"upwards_mul"`
}

type HairConfig struct {
	// EasingFactor divides the per-tick approach; larger is lazier
	EasingFactor float64 `json:"easingFactor" yaml:"easing_factor"`
	Sag          float64 `json:"sag" yaml:"sag"` // downward pull on each node's target
}

type AnimationConfig struct {
	Period        float64 `json:"period" yaml:"period"`
	RunFrameTicks float64 `json:"runFrameTicks" yaml:"run_frame_ticks"`
}

// DefaultTuning returns the stock tuning
func DefaultTuning() *Tuning {
	return &Tuning{
		Simulation: SimulationConfig{FPS: 30},
		Movement: MovementConfig{
			MaxSpeed:             1,
			GroundAccel:          0.6,
			AirAccel:             0.6,
			Decel:                0.15,
			Gravity:              0.21,
			HalfGravityThreshold: 0.15,
			MaxFall:              2,
			MaxFallSlide:         0.6,
		},
		Jump: JumpConfig{
			Speed:             -2,
			GraceTime:         6,
			BufferTime:        4,
			WallJumpSpeed:     2,
			WallCheckDistance: 3,
		},
		Dash: DashConfig{
			Speed:      5,
			Time:       4,
			EffectTime: 10,
			Target:     2,
			Accel:      1.5,
			UpwardsMul: 0.75,
		},
		Hair: HairConfig{
			EasingFactor: 1.1,
			Sag:          0.5,
		},
		Animation: AnimationConfig{
			Period:        16,
			RunFrameTicks: 4,
		},
	}
}

// Validate rejects values that would divide by zero or run time backward
func (t *Tuning) Validate() error {
	switch {
	case t.Simulation.FPS <= 0:
		return fmt.Errorf("%w: simulation.fps must be positive, got %v", ErrInvalidTuning, t.Simulation.FPS)
	case t.Hair.EasingFactor <= 0:
		return fmt.Errorf("%w: hair.easingFactor must be positive, got %v", ErrInvalidTuning, t.Hair.EasingFactor)
	case t.Animation.Period <= 0:
		return fmt.Errorf("%w: animation.period must be positive, got %v", ErrInvalidTuning, t.Animation.Period)
	case t.Animation.RunFrameTicks <= 0:
		return fmt.Errorf("%w: animation.runFrameTicks must be positive, got %v", ErrInvalidTuning, t.Animation.RunFrameTicks)
	case t.Jump.WallCheckDistance < 0:
		return fmt.Errorf("%w: jump.wallCheckDistance must not be negative, got %d", ErrInvalidTuning, t.Jump.WallCheckDistance)
	case t.Dash.Accel < 0 || t.Movement.GroundAccel < 0 || t.Movement.AirAccel < 0 || t.Movement.Decel < 0:
		return fmt.Errorf("%w: accelerations must not be negative", ErrInvalidTuning)
	}
	return nil
}
