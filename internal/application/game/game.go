// Package game provides the main loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/clst/internal/application/scene"
)

// MaxDT caps a measured step so a stalled window does not teleport actors
const MaxDT = 0.1

// Game implements ebiten.Game and manages Scene transitions.
//
// By default every Update advances by a fixed dt. With a clock set, dt is
// the wall time since the previous Update, capped at MaxDT.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	now  func() time.Time
	last time.Time
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(ebiten.DefaultTPS),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.step())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// step returns the dt for this Update
func (g *Game) step() float64 {
	if g.now == nil {
		return g.dt
	}
	t := g.now()
	if g.last.IsZero() {
		g.last = t
		return g.dt
	}
	dt := t.Sub(g.last).Seconds()
	g.last = t
	if dt > MaxDT {
		dt = MaxDT
	}
	if dt < 0 {
		dt = 0
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the fixed delta time used for updates and leaves clock mode.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
	g.now = nil
	g.last = time.Time{}
}

// SetClock switches to variable-step mode. The first Update after this uses
// the fixed dt.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
