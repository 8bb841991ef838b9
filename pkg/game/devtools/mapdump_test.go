package devtools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/farmer"
	"farmstead/pkg/game/state"
)

func newGame(t *testing.T) *state.Game {
	t.Helper()
	grid := farm.NewGrid(4, 2, nil)
	grid.HoeTile(world.Pos(1, 0))
	grid.HoeTile(world.Pos(2, 0))
	grid.PlantCrop(world.Pos(2, 0), farm.Wheat, 10)
	grid.SetTileState(world.Pos(3, 1), farm.Harvestable)
	return state.NewGame(grid, farmer.New(world.Pos(0, 1), grid, nil))
}

func TestWriteFarmMap(t *testing.T) {
	var b strings.Builder
	WriteFarmMap(&b, newGame(t))
	out := b.String()

	if !strings.Contains(out, "--- Map ---\n.=p.\n@..H\n") {
		t.Errorf("map section wrong:\n%s", out)
	}
	for _, want := range []string{
		"grid_width: 4",
		"farmer: 0,1 facing Down moving: false",
		`x: 2 y: 0 state: planted crop: "wheat" planted: 10 watered: -`,
		"  (none)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpFarmToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpFarmToFile(newGame(t), dir)
	if err != nil {
		t.Fatalf("DumpFarmToFile: %v", err)
	}
	if filepath.Base(path) != "farm.txt" {
		t.Errorf("path = %q, want farm.txt", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasSuffix(string(data), "=== END FARM DUMP ===\n") {
		t.Error("dump not terminated")
	}
}
