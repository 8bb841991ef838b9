// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/state"
)

const mapDumpFilename = "farm.txt"

// tileSymbol returns the single-character symbol for a tile state
func tileSymbol(s farm.TileState) rune {
	switch s {
	case farm.Empty:
		return '.'
	case farm.Hoed:
		return '='
	case farm.Planted:
		return 'p'
	case farm.Watered:
		return 'w'
	case farm.Harvestable:
		return 'H'
	default:
		return '?'
	}
}

// writeFarmGrid writes the tile grid with the farmer drawn as '@'
func writeFarmGrid(w io.Writer, g *state.Game) {
	dims := g.Grid.Dimensions()
	farmerAt := g.FarmerPosition()
	for y := 0; y < dims.Height; y++ {
		for x := 0; x < dims.Width; x++ {
			p := world.Pos(x, y)
			if p == farmerAt {
				fmt.Fprint(w, "@")
				continue
			}
			tile, _ := g.Grid.Tile(p)
			fmt.Fprintf(w, "%c", tileSymbol(tile.State))
		}
		fmt.Fprintln(w)
	}
}

func stamp(s farm.Stamp) string {
	if !s.Valid {
		return "-"
	}
	return fmt.Sprintf("%d", s.At)
}

// WriteFarmMap writes the debug dump: metadata, legend, map and every
// non-empty tile.
func WriteFarmMap(w io.Writer, g *state.Game) {
	dims := g.Grid.Dimensions()
	pos := g.FarmerPosition()

	fmt.Fprintln(w, "=== FARM DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "game_time_ms: %d\n", g.Now())
	fmt.Fprintf(w, "grid_width: %d\n", dims.Width)
	fmt.Fprintf(w, "grid_height: %d\n", dims.Height)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y grows downward)\n")
	fmt.Fprintf(w, "farmer: %d,%d facing %s moving: %v\n", pos.X, pos.Y, g.Farmer.Direction(), g.Farmer.IsMoving())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". = empty  = = hoed  p = planted  w = watered  H = harvestable  @ = farmer")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeFarmGrid(w, g)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Tiles (non-empty) ---")
	g.Grid.ForEachTile(func(t farm.FarmTile) {
		if t.State == farm.Empty {
			return
		}
		fmt.Fprintf(w, "  x: %d y: %d state: %s crop: %q planted: %s watered: %s\n",
			t.Position.X, t.Position.Y, t.State, t.Crop, stamp(t.PlantedTime), stamp(t.WateredTime))
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Inventory ---")
	crops := g.HarvestedCrops()
	if len(crops) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, c := range crops {
		fmt.Fprintf(w, "  crop: %q count: %d\n", c, g.HarvestCount(c))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END FARM DUMP ===")
}

// DumpFarmToFile writes the debug dump to farm.txt in dir ("" for the
// working directory) and returns the absolute path.
func DumpFarmToFile(g *state.Game, dir string) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	WriteFarmMap(f, g)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
