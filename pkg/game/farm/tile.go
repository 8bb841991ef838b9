// Package farm holds the farm grid: a fixed 2D array of tiles moving through
// the Empty -> Hoed -> Planted -> Watered -> Harvestable -> Empty lifecycle.
package farm

import "farmstead/pkg/engine/world"

// TileState is the lifecycle state of a farm tile
type TileState string

// Tile states, in workflow order
const (
	Empty       TileState = "empty"
	Hoed        TileState = "hoed"
	Planted     TileState = "planted"
	Watered     TileState = "watered"
	Harvestable TileState = "harvestable"
)

// AllTileStates returns every tile state in workflow order
func AllTileStates() []TileState {
	return []TileState{Empty, Hoed, Planted, Watered, Harvestable}
}

// IsValid reports whether s is one of the known states
func (s TileState) IsValid() bool {
	switch s {
	case Empty, Hoed, Planted, Watered, Harvestable:
		return true
	}
	return false
}

// BearsCrop reports whether a tile in this state carries a crop
func (s TileState) BearsCrop() bool {
	return s == Planted || s == Watered || s == Harvestable
}

// CropType identifies a plantable crop
type CropType string

// Crop types. CropNone marks a tile without a crop.
const (
	CropNone CropType = ""
	Wheat    CropType = "wheat"
)

// Action is a player farming action
type Action string

// Farming actions
const (
	Hoe     Action = "hoe"
	Plant   Action = "plant"
	Water   Action = "water"
	Harvest Action = "harvest"
)

// AllActions returns the player farming actions
func AllActions() []Action {
	return []Action{Hoe, Plant, Water, Harvest}
}

// Stamp is an optional game time in milliseconds
type Stamp struct {
	At    int64 `yaml:"at"`
	Valid bool  `yaml:"valid"`
}

// At returns a set stamp
func At(ms int64) Stamp {
	return Stamp{At: ms, Valid: true}
}

// FarmTile is one cell of the farm.
// Crop, PlantedTime and WateredTime are only set while State bears a crop.
type FarmTile struct {
	Position    world.GridPosition `yaml:"position"`
	State       TileState          `yaml:"state"`
	Crop        CropType           `yaml:"crop,omitempty"`
	PlantedTime Stamp              `yaml:"plantedTime"`
	WateredTime Stamp              `yaml:"wateredTime"`
}

// HasCrop reports whether a crop is set on the tile
func (t FarmTile) HasCrop() bool {
	return t.Crop != CropNone
}

func (t *FarmTile) clearCrop() {
	t.Crop = CropNone
	t.PlantedTime = Stamp{}
	t.WateredTime = Stamp{}
}
