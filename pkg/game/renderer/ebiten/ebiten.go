package ebiten

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"farmstead/pkg/game/config"
	"farmstead/pkg/game/farmer"
	"farmstead/pkg/game/renderer"
	"farmstead/pkg/game/state"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a new Ebiten renderer from the window settings
func New(cfg *config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		title:        cfg.Window.Title,
		windowWidth:  cfg.Window.Width,
		windowHeight: cfg.Window.Height,
		background:   cfg.BackgroundColor(),
		tileSize:     cfg.Window.TileSize,
		zoom:         cfg.Window.Zoom,
	}
}

// Name identifies the backend
func (e *EbitenRenderer) Name() string {
	return config.RendererEbiten
}

// Init loads fonts, generates the sprites and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	e.textures = newTextureCache(e.tileSize)

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Textures returns the sprite cache for the farmer. Valid after Init.
func (e *EbitenRenderer) Textures() farmer.TextureResolver {
	if e.textures == nil {
		return nil
	}
	return e.textures
}

// Run starts the Ebiten game loop and blocks until the window closes or
// the player quits
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	log.Printf("[Ebiten] starting game loop")
	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
