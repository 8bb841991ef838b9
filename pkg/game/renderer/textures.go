package renderer

import (
	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/farmer"
)

// CursorTextureKey is the tile highlight drawn under the farmer
const CursorTextureKey = "cursor"

// TileTextureKey returns the texture key for a tile state.
// Unknown states draw as empty soil.
func TileTextureKey(s farm.TileState) string {
	switch s {
	case farm.Empty, farm.Hoed, farm.Planted, farm.Watered, farm.Harvestable:
		return "tile-" + string(s)
	default:
		return "tile-" + string(farm.Empty)
	}
}

// FarmerTextureKey returns the texture key for a facing direction
func FarmerTextureKey(dir world.Direction) string {
	return farmer.TextureKey(dir)
}

// AllTextureKeys lists every key a backend must be able to resolve
func AllTextureKeys() []string {
	keys := make([]string, 0, 10)
	for _, d := range world.AllDirections() {
		keys = append(keys, FarmerTextureKey(d))
	}
	for _, s := range farm.AllTileStates() {
		keys = append(keys, TileTextureKey(s))
	}
	return append(keys, CursorTextureKey)
}
