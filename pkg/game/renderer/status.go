package renderer

import (
	"fmt"
	"strings"

	"farmstead/pkg/engine/input"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/i18n"
	"farmstead/pkg/game/state"
)

// StateName returns the translated name of a tile state
func StateName(s farm.TileState) string {
	return i18n.Get("STATE_" + strings.ToUpper(string(s)))
}

// CropName returns the translated name of a crop
func CropName(c farm.CropType) string {
	if c == farm.CropNone {
		return i18n.Get("CROP_NONE")
	}
	return i18n.Get("CROP_" + strings.ToUpper(string(c)))
}

// InventoryLine summarises the harvest, e.g. "Harvested: Wheat x3"
func InventoryLine(g *state.Game) string {
	crops := g.HarvestedCrops()
	if len(crops) == 0 {
		return i18n.Get("INVENTORY_EMPTY")
	}
	parts := make([]string, 0, len(crops))
	for _, c := range crops {
		parts = append(parts, fmt.Sprintf("%s x%d", CropName(c), g.HarvestCount(c)))
	}
	return i18n.Get("INVENTORY", strings.Join(parts, ", "))
}

// StatusLines returns the info panel: farmer position, the tile under the
// farmer, the harvest so far and the controls.
func StatusLines(g *state.Game) []string {
	pos := g.FarmerPosition()
	lines := []string{i18n.Get("POSITION", pos.X, pos.Y)}

	if tile, ok := g.CurrentTile(); ok {
		lines = append(lines, i18n.Get("TILE_STATE", StateName(tile.State)))
		if tile.HasCrop() {
			lines = append(lines, i18n.Get("CROP", CropName(tile.Crop)))
		}
	}

	lines = append(lines,
		InventoryLine(g),
		"",
		i18n.Get("CONTROLS"),
		i18n.Get("CONTROLS_MOVE"),
		i18n.Get("CONTROLS_ACTIONS",
			input.KeyLabel(input.ActionHoe), input.KeyLabel(input.ActionPlant),
			input.KeyLabel(input.ActionWater), input.KeyLabel(input.ActionHarvest)),
		i18n.Get("CONTROLS_META",
			input.KeyLabel(input.ActionSave), input.KeyLabel(input.ActionDumpMap),
			input.KeyLabel(input.ActionQuit)),
	)
	return lines
}
