// Package ebiten provides the Ebitengine window front end for the farm.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"farmstead/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer. Game logic runs
// inside Update on the engine goroutine.
type EbitenRenderer struct {
	// Window
	title        string
	windowWidth  int
	windowHeight int
	background   color.Color

	// World tiles are tileSize pixels, drawn scaled by zoom
	tileSize int
	zoom     float64

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource // UI text
	monoFontSource *text.GoTextFaceSource // Status panel

	cachedUIFontSize float64
	cachedSansFace   *text.GoTextFace
	cachedMonoFace   *text.GoTextFace

	textures *textureCache

	game *state.Game

	// Offscreen buffers: farmLayer holds the tiles and is repainted only
	// where tiles changed; worldBuffer composes tiles, cursor and farmer
	// before the zoomed blit to the screen.
	farmLayer   *ebiten.Image
	worldBuffer *ebiten.Image

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
