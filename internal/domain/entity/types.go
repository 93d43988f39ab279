package entity

// Input is the per-tick key bit field supplied by the host.
//
//	bit 7 left | 6 up | 5 down | 4 right | 3 unused | 2 unused | 1 dash | 0 jump
type Input uint8

const (
	KeyJump  Input = 1 << 0
	KeyDash  Input = 1 << 1
	KeyRight Input = 1 << 4
	KeyDown  Input = 1 << 5
	KeyUp    Input = 1 << 6
	KeyLeft  Input = 1 << 7
)

// Pressed returns true if every key in k is held
func (in Input) Pressed(k Input) bool {
	return in&k == k && k != 0
}

// AxisX returns 1 for right, -1 for left, 0 for neither. Right wins ties.
func (in Input) AxisX() int {
	if in.Pressed(KeyRight) {
		return 1
	}
	if in.Pressed(KeyLeft) {
		return -1
	}
	return 0
}

// AxisY returns -1 for up, 1 for down, 0 for neither. Up wins ties.
func (in Input) AxisY() int {
	if in.Pressed(KeyUp) {
		return -1
	}
	if in.Pressed(KeyDown) {
		return 1
	}
	return 0
}

// SoundID identifies a discrete game event for the audio sink
type SoundID uint8

const (
	SoundJump         SoundID = 1
	SoundWallJump     SoundID = 2
	SoundDash         SoundID = 3
	SoundDashDenied   SoundID = 9
	SoundDashRecharge SoundID = 54
)

// String returns the event name
func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "Jump"
	case SoundWallJump:
		return "WallJump"
	case SoundDash:
		return "Dash"
	case SoundDashDenied:
		return "DashDenied"
	case SoundDashRecharge:
		return "DashRecharge"
	default:
		return "Unknown"
	}
}

// Sprite indices into the host's atlas. Running uses SpriteIdle..SpriteIdle+3.
const (
	SpriteIdle     uint8 = 1
	SpriteAirborne uint8 = 3
	SpriteWallPush uint8 = 5
	SpriteCrouch   uint8 = 6
	SpriteLookUp   uint8 = 7
)
