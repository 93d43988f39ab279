package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/clst/internal/domain/entity"
)

func TestUpdateHair_SettlesBehindHead(t *testing.T) {
	sys := createTestSystem()

	tests := []struct {
		name       string
		facingLeft bool
		input      entity.Input
		wantX      float64
		wantHeadY  float64
	}{
		{"facing right", false, 0, 66, 107},
		{"facing left", true, 0, 70, 107},
		{"crouching", false, entity.KeyDown, 66, 108},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := createGroundedActor()
			a.FacingLeft = tt.facingLeft

			for i := 0; i < 100; i++ {
				sys.Tick(a, Capabilities{World: createTestRoom()}, tt.input, tickDT)
			}

			for i, node := range a.Hair {
				assert.InDelta(t, tt.wantX, node.X, 1e-6, "node %d", i)
				assert.InDelta(t, tt.wantHeadY+0.5*float64(i+1), node.Y, 1e-6, "node %d", i)
			}
		})
	}
}

func TestUpdateHair_FollowsPreviousPositions(t *testing.T) {
	sys := createTestSystem()
	a := entity.NewActor()
	a.SetPosition(10, 10)
	a.Hair[0] = entity.Vec2{X: 20, Y: 20}

	// one full easing step: every node lands on its target
	sys.updateHair(&step{actor: a, ticks: 1.1})

	assert.InDelta(t, 12.0, a.Hair[0].X, eps)
	assert.InDelta(t, 13.5, a.Hair[0].Y, eps)
	assert.InDelta(t, 20.0, a.Hair[1].X, eps, "chases node 0 before it moved")
	assert.InDelta(t, 20.5, a.Hair[1].Y, eps)
	assert.InDelta(t, 10.0, a.Hair[2].X, eps)
	assert.InDelta(t, 10.5, a.Hair[2].Y, eps)
}

func TestUpdateHair_PartialStep(t *testing.T) {
	sys := createTestSystem()
	a := entity.NewActor()
	a.SetPosition(10, 10)

	sys.updateHair(&step{actor: a, ticks: 0.55})

	assert.InDelta(t, 11.0, a.Hair[0].X, eps, "half way to the anchor")
	assert.InDelta(t, 11.75, a.Hair[0].Y, eps)
}

func TestUpdateHair_ZeroTicks(t *testing.T) {
	sys := createTestSystem()
	a := entity.NewActor()
	a.SetPosition(10, 10)
	before := a.Hair

	sys.updateHair(&step{actor: a})

	assert.Equal(t, before, a.Hair)
}
