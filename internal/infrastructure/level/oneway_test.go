package level

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/clst/internal/application/system"
	"github.com/younwookim/clst/internal/domain/entity"
)

func TestOneWay_IsSolid(t *testing.T) {
	ledge := OneWay{Rect{X: 0, Y: 40, W: 32, H: 8}}

	tests := []struct {
		name  string
		probe system.Probe
		want  bool
	}{
		{"landing", falling(10, 40, 39), true},
		{"outside the ledge", falling(40, 40, 39), false},
		{"sideways", at(10, 40), false},
		{"feet below top", falling(10, 45, 44), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledge.IsSolid(tt.probe))
		})
	}

	t.Run("rising passes through", func(t *testing.T) {
		p := falling(10, 40, 39)
		p.Body.Speed.Y = -1
		assert.False(t, ledge.IsSolid(p))
	})

	t.Run("resting counts as not rising", func(t *testing.T) {
		p := falling(10, 40, 39)
		p.Body.Speed.Y = 0
		assert.True(t, ledge.IsSolid(p))
	})
}

func TestOneWay_WithPhysics(t *testing.T) {
	sys := system.NewPhysicsSystem(nil)
	ledge := OneWay{Rect{X: 0, Y: 40, W: 200, H: 8}}
	caps := system.Capabilities{World: ledge}

	t.Run("jumps up through and lands on top", func(t *testing.T) {
		a := entity.NewActor()
		a.SetPosition(20, 40) // hitbox rows 43..47, inside the ledge
		a.JumpGrace = 6

		sys.Tick(a, caps, entity.KeyJump, 1.0/30)
		for i := 0; i < 60; i++ {
			sys.Tick(a, caps, 0, 1.0/30)
		}

		assert.Equal(t, 32, a.Y, "feet rest on row 39")
		assert.True(t, a.WasGrounded)
	})
}

func TestUnion(t *testing.T) {
	left := system.ColliderFunc(func(p system.Probe) bool { return p.X < 0 })
	floor := system.ColliderFunc(func(p system.Probe) bool { return p.Y >= 10 })
	u := Union{left, nil, floor}

	assert.True(t, u.IsSolid(at(-1, 0)))
	assert.True(t, u.IsSolid(at(5, 10)))
	assert.False(t, u.IsSolid(at(5, 5)))
	assert.False(t, Union{}.IsSolid(at(0, 0)))
}
