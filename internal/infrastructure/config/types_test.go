package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTuning_Valid(t *testing.T) {
	assert.NoError(t, DefaultTuning().Validate())
}

func TestTuning_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero fps", func(c *Tuning) { c.Simulation.FPS = 0 }},
		{"negative fps", func(c *Tuning) { c.Simulation.FPS = -30 }},
		{"zero hair easing", func(c *Tuning) { c.Hair.EasingFactor = 0 }},
		{"zero animation period", func(c *Tuning) { c.Animation.Period = 0 }},
		{"zero run frame", func(c *Tuning) { c.Animation.RunFrameTicks = 0 }},
		{"negative wall check", func(c *Tuning) { c.Jump.WallCheckDistance = -1 }},
		{"negative dash accel", func(c *Tuning) { c.Dash.Accel = -1 }},
		{"negative decel", func(c *Tuning) { c.Movement.Decel = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTuning()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidTuning)
		})
	}
}
