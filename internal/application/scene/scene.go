// Package scene defines the Scene interface for demo screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a screen driven by the game loop.
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds. dt varies with the host
	// frame rate unless the game is in fixed-step mode.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}
