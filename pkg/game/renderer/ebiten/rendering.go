package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/renderer"
	"farmstead/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(e.background)

	g := e.game
	if g == nil {
		return
	}

	e.ensureBuffers(g)
	e.redrawDirtyTiles(g)

	e.worldBuffer.Clear()
	e.worldBuffer.DrawImage(e.farmLayer, nil)
	e.drawCursor(e.worldBuffer, g)
	e.drawFarmer(e.worldBuffer, g)

	// Camera: scale by zoom and center the farm in the window
	w, h := e.worldBuffer.Bounds().Dx(), e.worldBuffer.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(e.zoom, e.zoom)
	op.GeoM.Translate(
		(float64(e.windowWidth)-float64(w)*e.zoom)/2,
		(float64(e.windowHeight)-float64(h)*e.zoom)/2,
	)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(e.worldBuffer, op)

	e.drawStatusPanel(screen, g)
	e.drawMessages(screen, g)
}

// ensureBuffers (re)creates the offscreen buffers for the grid size and
// flags every tile when the farm layer is new
func (e *EbitenRenderer) ensureBuffers(g *state.Game) {
	dims := g.Grid.Dimensions()
	w, h := dims.Width*e.tileSize, dims.Height*e.tileSize
	if e.farmLayer != nil && e.farmLayer.Bounds().Dx() == w && e.farmLayer.Bounds().Dy() == h {
		return
	}
	e.farmLayer = ebiten.NewImage(w, h)
	e.worldBuffer = ebiten.NewImage(w, h)
	g.MarkAllDirty()
}

// redrawDirtyTiles repaints the tiles that changed since the last frame
func (e *EbitenRenderer) redrawDirtyTiles(g *state.Game) {
	for _, p := range g.TakeDirty() {
		tile, ok := g.Grid.Tile(p)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.X*e.tileSize), float64(p.Y*e.tileSize))
		e.farmLayer.DrawImage(e.textures.image(renderer.TileTextureKey(tile.State)), op)
	}
}

// drawCursor highlights the tile the farmer acts on
func (e *EbitenRenderer) drawCursor(dst *ebiten.Image, g *state.Game) {
	p := g.FarmerPosition()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X*e.tileSize), float64(p.Y*e.tileSize))
	op.ColorScale.ScaleAlpha(float32(cursorAlpha(time.Now())))
	dst.DrawImage(e.textures.image(renderer.CursorTextureKey), op)
}

// drawFarmer draws the farmer sprite centered on its world placement
func (e *EbitenRenderer) drawFarmer(dst *ebiten.Image, g *state.Game) {
	img, ok := g.Farmer.Texture().(*ebiten.Image)
	if !ok || img == nil {
		img = e.textures.image(renderer.FarmerTextureKey(world.Down))
	}
	x, y := g.Farmer.Placement()
	half := float64(e.tileSize) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-half, y-half)
	dst.DrawImage(img, op)
}

// drawPanel draws a bordered semi-transparent box
func drawPanel(dst *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(dst, x-1, y-1, w+2, h+2, colorPanelBorder, false)
	vector.DrawFilledRect(dst, x, y, w, h, colorPanelBg, false)
}

// drawStatusPanel draws position, tile state, harvest and controls in the
// top-left corner
func (e *EbitenRenderer) drawStatusPanel(screen *ebiten.Image, g *state.Game) {
	face := e.getMonoFontFace()
	lines := renderer.StatusLines(g)
	lh := lineHeight(face)

	width := 0.0
	for _, l := range lines {
		if w := e.getTextWidthWithFace(l, face); w > width {
			width = w
		}
	}

	x, y := panelMargin, panelMargin
	drawPanel(screen, float32(x), float32(y),
		float32(width+2*panelPadding), float32(len(lines)*lh+2*panelPadding))

	for i, l := range lines {
		col := colorText
		if i > 0 {
			col = colorSubtle
		}
		e.drawColoredTextWithFace(screen, l, x+panelPadding, y+panelPadding+i*lh, col, face)
	}
}

// drawMessages draws the message log along the bottom edge, newest last
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, g *state.Game) {
	if len(g.Messages) == 0 {
		return
	}
	face := e.getSansFontFace()
	lh := lineHeight(face)
	height := len(g.Messages)*lh + 2*panelPadding
	y := e.windowHeight - panelMargin - height

	drawPanel(screen, float32(panelMargin), float32(y),
		float32(e.windowWidth-2*panelMargin), float32(height))

	for i, msg := range g.Messages {
		e.drawColoredText(screen, msg, panelMargin+panelPadding, y+panelPadding+i*lh, colorText)
	}
}
