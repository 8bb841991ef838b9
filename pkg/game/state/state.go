// Package state holds one farming session: the grid, the farmer, the game
// clock, the harvest inventory and the message log.
package state

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"

	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/config"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/farmer"
)

// Game represents a farming session
type Game struct {
	Grid   *farm.Grid
	Farmer *farmer.Farmer

	Clock Clock

	// Crop planted by the Plant action
	SelectedCrop farm.CropType

	Inventory map[farm.CropType]int

	Messages []string

	// Tiles whose appearance changed since the renderer last drew them
	Dirty mapset.Set[world.GridPosition]

	// Set when the player asked to leave
	Quit bool
}

// NewGame creates a session around an existing grid and farmer
func NewGame(grid *farm.Grid, f *farmer.Farmer) *Game {
	return &Game{
		Grid:         grid,
		Farmer:       f,
		SelectedCrop: farm.Wheat,
		Inventory:    make(map[farm.CropType]int),
		Messages:     make([]string, 0),
		Dirty:        mapset.New[world.GridPosition](),
	}
}

// NewGameFromConfig builds the grid and the farmer described by cfg.
// textures may be nil for headless sessions.
func NewGameFromConfig(cfg *config.Config, textures farmer.TextureResolver) *Game {
	grid := farm.NewGrid(cfg.Farm.Width, cfg.Farm.Height, cfg.GrowthTable())
	f := farmer.New(cfg.StartPosition(), grid, textures)
	f.SetMoveDuration(cfg.Farmer.MoveDuration)
	f.SetTileSize(float64(cfg.Window.TileSize))
	return NewGame(grid, f)
}

// Now returns the game time in milliseconds
func (g *Game) Now() int64 {
	return g.Clock.Millis()
}

// CurrentTile returns a copy of the tile under the farmer
func (g *Game) CurrentTile() (farm.FarmTile, bool) {
	return g.Grid.Tile(g.Farmer.GridPosition())
}

// FarmerPosition returns the farmer's grid position
func (g *Game) FarmerPosition() world.GridPosition {
	return g.Farmer.GridPosition()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// AddHarvest counts one harvested crop
func (g *Game) AddHarvest(crop farm.CropType) {
	if crop == farm.CropNone {
		return
	}
	g.Inventory[crop]++
}

// HarvestCount returns how many of crop were harvested
func (g *Game) HarvestCount(crop farm.CropType) int {
	return g.Inventory[crop]
}

// HarvestedCrops returns the crops in the inventory, sorted by name
func (g *Game) HarvestedCrops() []farm.CropType {
	crops := make([]farm.CropType, 0, len(g.Inventory))
	for c, n := range g.Inventory {
		if n > 0 {
			crops = append(crops, c)
		}
	}
	sort.Slice(crops, func(i, j int) bool { return crops[i] < crops[j] })
	return crops
}

// MarkDirty flags a tile for redraw
func (g *Game) MarkDirty(p world.GridPosition) {
	g.Dirty.Put(p)
}

// MarkAllDirty flags every tile, e.g. after a save is loaded
func (g *Game) MarkAllDirty() {
	g.Grid.Dimensions().ForEach(g.MarkDirty)
}

// TakeDirty returns the flagged tiles and clears the set
func (g *Game) TakeDirty() []world.GridPosition {
	out := make([]world.GridPosition, 0, g.Dirty.Size())
	g.Dirty.Each(func(p world.GridPosition) {
		out = append(out, p)
	})
	for _, p := range out {
		g.Dirty.Remove(p)
	}
	return out
}

// Clock is the session's game time. It only moves forward.
type Clock struct {
	elapsed time.Duration
}

// Advance moves the clock forward by dt; negative steps are ignored
func (c *Clock) Advance(dt time.Duration) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Set jumps to t if it is not earlier than the current time
func (c *Clock) Set(t time.Duration) {
	if t > c.elapsed {
		c.elapsed = t
	}
}

// Elapsed returns the game time as a duration
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// Millis returns the game time in milliseconds
func (c *Clock) Millis() int64 {
	return c.elapsed.Milliseconds()
}
