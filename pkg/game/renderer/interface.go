// Package renderer defines the front-end contract and the presentation
// helpers shared by every backend: texture keys and the status panel text.
package renderer

import (
	"farmstead/pkg/game/farmer"
	"farmstead/pkg/game/state"
)

// Renderer defines the interface for game front ends.
// Implementations own the input loop and drive the game tick.
type Renderer interface {
	// Name identifies the backend ("ebiten", "tui")
	Name() string

	// Init prepares the backend (window, textures, terminal mode)
	Init() error

	// Textures resolves sprite keys for the farmer. Headless and text
	// backends may return nil.
	Textures() farmer.TextureResolver

	// Run blocks, feeding input into the game and drawing it, until the
	// player quits or the backend fails
	Run(g *state.Game) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
