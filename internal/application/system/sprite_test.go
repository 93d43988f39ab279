package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/clst/internal/domain/entity"
)

func TestSelectSprite(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		input    entity.Input
		wallPush bool
		speedX   float64
		phase    float64
		want     uint8
	}{
		{"airborne", false, 0, false, 0, 0, entity.SpriteAirborne},
		{"airborne moving", false, entity.KeyRight, false, 1, 5, entity.SpriteAirborne},
		{"wall push", false, entity.KeyRight, true, 0, 0, entity.SpriteWallPush},
		{"crouch", true, entity.KeyDown, false, 0, 0, entity.SpriteCrouch},
		{"crouch wins over look up", true, entity.KeyDown | entity.KeyUp, false, 0, 0, entity.SpriteCrouch},
		{"look up", true, entity.KeyUp, false, 0, 0, entity.SpriteLookUp},
		{"idle", true, 0, false, 0, 0, entity.SpriteIdle},
		{"sliding without input", true, 0, false, 0.5, 6, entity.SpriteIdle},
		{"pushing without speed", true, entity.KeyRight, false, 0, 6, entity.SpriteIdle},
		{"wall push ignored on ground", true, entity.KeyRight, true, 0, 0, entity.SpriteIdle},
		{"run frame 0", true, entity.KeyRight, false, 1, 0, 1},
		{"run frame 1", true, entity.KeyRight, false, 1, 4, 2},
		{"run frame 2", true, entity.KeyLeft, false, -1, 8.5, 3},
		{"run frame 3", true, entity.KeyLeft, false, -1, 15.9, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectSprite(tt.grounded, tt.input, tt.wallPush, tt.speedX, tt.phase, 4)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateSprite_PhaseWraps(t *testing.T) {
	sys := createTestSystem()
	a := createGroundedActor()

	for i := 0; i < 17; i++ {
		sys.Tick(a, Capabilities{World: createTestRoom()}, 0, tickDT)
	}

	assert.InDelta(t, 1.0, a.SpritePhase, eps)
}

func TestUpdateSprite_RunCycle(t *testing.T) {
	sys := createTestSystem()
	a := createGroundedActor()
	seen := map[uint8]bool{}

	for i := 0; i < 16; i++ {
		sys.Tick(a, Capabilities{World: createTestRoom()}, entity.KeyRight, tickDT)
		seen[a.Sprite] = true
	}

	assert.Equal(t, map[uint8]bool{1: true, 2: true, 3: true, 4: true}, seen)
}

func TestUpdateSprite_Airborne(t *testing.T) {
	sys := createTestSystem()
	a := entity.NewActor()

	sys.Tick(a, Capabilities{}, entity.KeyDown, tickDT)

	assert.Equal(t, entity.SpriteAirborne, a.Sprite)
}
