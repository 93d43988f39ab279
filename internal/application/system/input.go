package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/clst/internal/domain/entity"
)

// KeyBindings maps physical keys to input bits. Any bound key sets its bit.
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
	Jump  []ebiten.Key
	Dash  []ebiten.Key
}

// DefaultKeyBindings uses the arrows, C/Space for jump and X for dash
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyArrowRight},
		Up:    []ebiten.Key{ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyArrowDown},
		Jump:  []ebiten.Key{ebiten.KeyC, ebiten.KeySpace},
		Dash:  []ebiten.Key{ebiten.KeyX},
	}
}

// InputSystem turns keyboard state into the per-tick input bit field
type InputSystem struct {
	keys KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{keys: keys}
}

// Poll reads the current keyboard state
func (s *InputSystem) Poll() entity.Input {
	return s.Encode(ebiten.IsKeyPressed)
}

// Encode builds the bit field from a key predicate
func (s *InputSystem) Encode(pressed func(ebiten.Key) bool) entity.Input {
	var in entity.Input
	bind := func(keys []ebiten.Key, bit entity.Input) {
		for _, k := range keys {
			if pressed(k) {
				in |= bit
				return
			}
		}
	}

	bind(s.keys.Left, entity.KeyLeft)
	bind(s.keys.Right, entity.KeyRight)
	bind(s.keys.Up, entity.KeyUp)
	bind(s.keys.Down, entity.KeyDown)
	bind(s.keys.Jump, entity.KeyJump)
	bind(s.keys.Dash, entity.KeyDash)
	return in
}
