package entity

// HairCount is the number of trailing hair nodes
const HairCount = 5

// DefaultHitbox is the actor's collision rectangle relative to its position
var DefaultHitbox = Hitbox{X: 1, Y: 3, W: 6, H: 5}

// Vec2 is a floating point 2D vector
type Vec2 struct {
	X, Y float64
}

// Hitbox is an axis-aligned rectangle offset from the body position
type Hitbox struct {
	X, Y int // offset
	W, H int // size
}

// WorldRect returns the hitbox in world pixels for a body at (x, y)
// translated by (dx, dy)
func (h Hitbox) WorldRect(x, y, dx, dy int) (rx, ry, rw, rh int) {
	return x + h.X + dx, y + h.Y + dy, h.W, h.H
}

// Actor is the complete simulation state of one character.
// Position is integer pixels (y grows downward); the fractional part of the
// motion lives in Remainder. All timers are in tick units.
type Actor struct {
	X, Y      int
	Remainder Vec2
	Speed     Vec2
	Hitbox    Hitbox

	DashCharges    uint8
	MaxDashCharges uint8
	DashTimer      float64 // > 0 while dashing
	DashFlashTimer float64
	DashTarget     Vec2
	DashAccel      Vec2

	JumpBuffer float64
	JumpGrace  float64

	// Edge-detection latches
	JumpWasDown bool
	DashWasDown bool

	FacingLeft  bool
	Sprite      uint8
	SpritePhase float64
	Hair        [HairCount]Vec2
	WasGrounded bool

	// Elapsed is wall time in seconds; cosmetic only
	Elapsed float64
}

// NewActor creates an actor with the default hitbox and one dash charge slot.
// Charges start empty and refill on the first grounded tick.
func NewActor() *Actor {
	return &Actor{
		Hitbox:         DefaultHitbox,
		MaxDashCharges: 1,
	}
}

// SetPosition places the actor at pixel (x, y) and drops any sub-pixel
// remainder. Hair nodes collapse onto the new position.
func (a *Actor) SetPosition(x, y int) {
	a.X = x
	a.Y = y
	a.Remainder = Vec2{}
	for i := range a.Hair {
		a.Hair[i] = Vec2{X: float64(x), Y: float64(y)}
	}
}

// Dashing returns true while the dash timer is running
func (a *Actor) Dashing() bool {
	return a.DashTimer > 0
}

// Facing returns -1 when facing left and 1 otherwise
func (a *Actor) Facing() float64 {
	if a.FacingLeft {
		return -1
	}
	return 1
}
