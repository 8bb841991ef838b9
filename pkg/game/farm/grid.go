package farm

import (
	"farmstead/pkg/engine/world"
)

// Default grid dimensions
const (
	DefaultWidth  = 20
	DefaultHeight = 15
)

// Grid owns the farm tiles. Reads return copies; tiles are only changed
// through Grid methods.
type Grid struct {
	tiles  [][]FarmTile // indexed [y][x]
	width  int
	height int
	growth Growth
}

// NewGrid creates a grid of empty tiles. A nil growth table uses DefaultGrowth.
func NewGrid(width, height int, growth Growth) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	if growth == nil {
		growth = DefaultGrowth()
	}

	g := &Grid{
		width:  width,
		height: height,
		growth: growth,
	}
	g.tiles = make([][]FarmTile, height)
	for y := 0; y < height; y++ {
		g.tiles[y] = make([]FarmTile, width)
		for x := 0; x < width; x++ {
			g.tiles[y][x] = FarmTile{
				Position: world.GridPosition{X: x, Y: y},
				State:    Empty,
			}
		}
	}
	return g
}

// NewDefaultGrid creates a 20x15 grid with the stock growth table
func NewDefaultGrid() *Grid {
	return NewGrid(DefaultWidth, DefaultHeight, nil)
}

// Dimensions returns the grid size
func (g *Grid) Dimensions() world.Dimensions {
	return world.Dimensions{Width: g.width, Height: g.height}
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(p world.GridPosition) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// tileAt returns the stored tile, or nil if out of bounds
func (g *Grid) tileAt(p world.GridPosition) *FarmTile {
	if !g.IsValidPosition(p) {
		return nil
	}
	return &g.tiles[p.Y][p.X]
}

// Tile returns a copy of the tile at p. ok is false when p is out of bounds.
func (g *Grid) Tile(p world.GridPosition) (FarmTile, bool) {
	t := g.tileAt(p)
	if t == nil {
		return FarmTile{}, false
	}
	return *t, true
}

// AllTiles returns a copy of every tile, indexed [y][x]
func (g *Grid) AllTiles() [][]FarmTile {
	out := make([][]FarmTile, g.height)
	for y := range g.tiles {
		out[y] = make([]FarmTile, g.width)
		copy(out[y], g.tiles[y])
	}
	return out
}

// ForEachTile calls fn with a copy of every tile in row-major order
func (g *Grid) ForEachTile(fn func(t FarmTile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(g.tiles[y][x])
		}
	}
}

// SetTileState overwrites the state of the tile at p without checking the
// workflow. Forcing a state that bears no crop clears the crop fields.
// Returns false if p is out of bounds or state is unknown.
func (g *Grid) SetTileState(p world.GridPosition, state TileState) bool {
	if !state.IsValid() {
		return false
	}
	t := g.tileAt(p)
	if t == nil {
		return false
	}
	t.State = state
	if !state.BearsCrop() {
		t.clearCrop()
	}
	return true
}

// guarded returns the tile at p and the state action leads to, or nil when
// the tile is missing or the action is illegal in its current state.
func (g *Grid) guarded(p world.GridPosition, action Action) (*FarmTile, TileState) {
	t := g.tileAt(p)
	if t == nil {
		return nil, ""
	}
	next, ok := Next(t.State, action)
	if !ok {
		return nil, ""
	}
	return t, next
}

// HoeTile turns an Empty tile into a Hoed one
func (g *Grid) HoeTile(p world.GridPosition) bool {
	t, next := g.guarded(p, Hoe)
	if t == nil {
		return false
	}
	t.State = next
	return true
}

// PlantCrop plants crop on a Hoed tile at game time now. Planting
// CropNone is rejected.
func (g *Grid) PlantCrop(p world.GridPosition, crop CropType, now int64) bool {
	if crop == CropNone {
		return false
	}
	t, next := g.guarded(p, Plant)
	if t == nil {
		return false
	}
	t.State = next
	t.Crop = crop
	t.PlantedTime = At(now)
	return true
}

// WaterTile waters a Planted tile at game time now
func (g *Grid) WaterTile(p world.GridPosition, now int64) bool {
	t, next := g.guarded(p, Water)
	if t == nil {
		return false
	}
	t.State = next
	t.WateredTime = At(now)
	return true
}

// HarvestCrop empties a Harvestable tile and returns its crop.
// A tile forced to Harvestable without a crop yields CropNone.
func (g *Grid) HarvestCrop(p world.GridPosition) (CropType, bool) {
	t, next := g.guarded(p, Harvest)
	if t == nil {
		return CropNone, false
	}
	crop := t.Crop
	t.State = next
	t.clearCrop()
	return crop, true
}

// Apply performs a player action at p. harvested is only set for Harvest.
func (g *Grid) Apply(p world.GridPosition, action Action, crop CropType, now int64) (harvested CropType, ok bool) {
	switch action {
	case Hoe:
		return CropNone, g.HoeTile(p)
	case Plant:
		return CropNone, g.PlantCrop(p, crop, now)
	case Water:
		return CropNone, g.WaterTile(p, now)
	case Harvest:
		return g.HarvestCrop(p)
	default:
		return CropNone, false
	}
}

// UpdateTiles advances crop growth to game time now and returns the
// positions of tiles that became Harvestable. now must not decrease
// between calls.
func (g *Grid) UpdateTiles(now int64) []world.GridPosition {
	var changed []world.GridPosition
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.updateTileGrowth(&g.tiles[y][x], now) {
				changed = append(changed, world.GridPosition{X: x, Y: y})
			}
		}
	}
	return changed
}

func (g *Grid) updateTileGrowth(t *FarmTile, now int64) bool {
	if !t.PlantedTime.Valid || !t.WateredTime.Valid {
		return false
	}
	next, ok := Next(t.State, grow)
	if !ok {
		return false
	}
	if now-t.WateredTime.At < g.growth.Duration(t.Crop) {
		return false
	}
	t.State = next
	return true
}

// Restore overwrites the tile at t.Position with t. Used when loading a save;
// the position must be in bounds and the state known.
func (g *Grid) Restore(t FarmTile) bool {
	dst := g.tileAt(t.Position)
	if dst == nil || !t.State.IsValid() {
		return false
	}
	*dst = t
	if !t.State.BearsCrop() {
		dst.clearCrop()
	}
	return true
}
