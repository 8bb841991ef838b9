package ebiten

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/farmer"
	"farmstead/pkg/game/renderer"
)

// textureCache holds the generated sprites by texture key. Images are shared
// and live as long as the renderer.
type textureCache struct {
	size   int
	images map[string]*ebiten.Image
}

func newTextureCache(size int) *textureCache {
	c := &textureCache{
		size:   size,
		images: make(map[string]*ebiten.Image),
	}
	for _, s := range farm.AllTileStates() {
		c.images[renderer.TileTextureKey(s)] = c.drawTile(s)
	}
	for _, d := range world.AllDirections() {
		c.images[renderer.FarmerTextureKey(d)] = c.drawFarmer(d)
	}
	c.images[renderer.CursorTextureKey] = c.drawCursor()
	return c
}

// ResolveTexture returns the sprite for key, or nil when unknown
func (c *textureCache) ResolveTexture(key string) farmer.Texture {
	img, ok := c.images[key]
	if !ok {
		log.Printf("[Ebiten] unknown texture %q", key)
		return nil
	}
	return img
}

// ReleaseTexture is a no-op; cached sprites are owned by the cache
func (c *textureCache) ReleaseTexture(farmer.Texture) {}

func (c *textureCache) image(key string) *ebiten.Image {
	return c.images[key]
}

// px scales a coordinate on the 16x16 design grid to the tile size
func (c *textureCache) px(v float64) float32 {
	return float32(v * float64(c.size) / 16.0)
}

func (c *textureCache) rect(dst *ebiten.Image, x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(dst, c.px(x), c.px(y), c.px(w), c.px(h), col, false)
}

func (c *textureCache) drawTile(s farm.TileState) *ebiten.Image {
	img := ebiten.NewImage(c.size, c.size)

	if s == farm.Empty {
		img.Fill(colorGrass)
		for _, p := range [][2]float64{{2, 3}, {9, 2}, {5, 8}, {12, 10}, {3, 13}, {10, 14}} {
			c.rect(img, p[0], p[1], 1, 2, colorGrassBlade)
		}
		return img
	}

	soil, furrow := colorSoil, colorFurrow
	if s == farm.Watered {
		soil, furrow = colorWetSoil, colorWetFurrow
	}
	img.Fill(soil)
	for _, y := range []float64{3, 7, 11, 15} {
		c.rect(img, 0, y, 16, 1, furrow)
	}

	switch s {
	case farm.Planted, farm.Watered:
		for _, x := range []float64{4, 11} {
			c.rect(img, x, 8, 1, 3, colorSprout)
			c.rect(img, x-1, 8, 1, 1, colorSprout)
			c.rect(img, x+1, 9, 1, 1, colorSprout)
		}
	case farm.Harvestable:
		for _, x := range []float64{3, 7, 11} {
			c.rect(img, x, 5, 1, 9, colorWheatStalk)
			c.rect(img, x-1, 2, 3, 4, colorWheat)
		}
	}
	return img
}

func (c *textureCache) drawCursor() *ebiten.Image {
	img := ebiten.NewImage(c.size, c.size)
	c.rect(img, 0, 0, 16, 1, colorCursor)
	c.rect(img, 0, 15, 16, 1, colorCursor)
	c.rect(img, 0, 0, 1, 16, colorCursor)
	c.rect(img, 15, 0, 1, 16, colorCursor)
	return img
}

func (c *textureCache) drawFarmer(d world.Direction) *ebiten.Image {
	img := ebiten.NewImage(c.size, c.size)

	c.rect(img, 4, 8, 8, 7, colorFarmerBody)
	c.rect(img, 5, 3, 6, 5, colorFarmerSkin)
	c.rect(img, 3, 2, 10, 2, colorFarmerHat)
	c.rect(img, 5, 1, 6, 1, colorFarmerHat)

	// Eyes mark the facing; seen from behind there are none
	switch d {
	case world.Down:
		c.rect(img, 6, 5, 1, 1, colorFarmerEye)
		c.rect(img, 9, 5, 1, 1, colorFarmerEye)
	case world.Left:
		c.rect(img, 5, 5, 1, 1, colorFarmerEye)
	case world.Right:
		c.rect(img, 10, 5, 1, 1, colorFarmerEye)
	case world.Up:
		c.rect(img, 5, 3, 6, 2, colorFarmerHat)
	}
	return img
}
