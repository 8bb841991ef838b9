package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	"farmstead/pkg/engine/input"
	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/farmer"
	"farmstead/pkg/game/state"
)

func newRenderer(t *testing.T, out *strings.Builder) *TUIRenderer {
	t.Helper()
	r := &TUIRenderer{out: out, eol: "\n"}
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return r
}

func newGame(t *testing.T) *state.Game {
	t.Helper()
	grid := farm.NewGrid(3, 2, nil)
	return state.NewGame(grid, farmer.New(world.Pos(1, 1), grid, nil))
}

func TestRenderFrame(t *testing.T) {
	var out strings.Builder
	r := newRenderer(t, &out)
	g := newGame(t)
	g.Grid.HoeTile(world.Pos(0, 0))
	g.Grid.SetTileState(world.Pos(2, 0), farm.Harvestable)
	g.AddMessage("hello farm")

	r.RenderFrame(&out, g)
	frame := out.String()

	for _, want := range []string{IconHoed, IconHarvestable, "@v", "Position: (1, 1)", "hello farm"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q:\n%s", want, frame)
		}
	}
}

func TestRenderTile_FarmerFacing(t *testing.T) {
	var out strings.Builder
	r := newRenderer(t, &out)
	g := newGame(t)
	g.Farmer.SetDirection(world.Left)
	if got := r.renderTile(g, world.Pos(1, 1)); !strings.Contains(got, "<@") {
		t.Errorf("renderTile(farmer) = %q, want <@", got)
	}
}

func TestRunLines(t *testing.T) {
	var out strings.Builder
	r := newRenderer(t, &out)
	g := newGame(t)

	script := "h\np\nw\nbogus\n\nright\nh\nq\nh\n"
	if err := r.runLines(g, input.NewLineReader(strings.NewReader(script))); err != nil {
		t.Fatalf("runLines: %v", err)
	}
	if !g.Quit {
		t.Error("Quit = false after q")
	}
	if tile, _ := g.Grid.Tile(world.Pos(1, 1)); tile.State != farm.Watered {
		t.Errorf("tile (1,1) = %s, want watered", tile.State)
	}
	// The farmer finished the move to (2,1) before hoeing there.
	if tile, _ := g.Grid.Tile(world.Pos(2, 1)); tile.State != farm.Hoed {
		t.Errorf("tile (2,1) = %s, want hoed", tile.State)
	}
	// Input after quit is not read.
	if tile, _ := g.Grid.Tile(world.Pos(2, 0)); tile.State != farm.Empty {
		t.Errorf("tile (2,0) = %s, want empty", tile.State)
	}
	if !strings.Contains(out.String(), "Unknown command") {
		t.Error("unknown command not reported")
	}
}

func TestRunLines_EOF(t *testing.T) {
	var out strings.Builder
	r := newRenderer(t, &out)
	g := newGame(t)
	if err := r.runLines(g, input.NewLineReader(strings.NewReader("h"))); err != nil {
		t.Fatalf("runLines: %v", err)
	}
	if tile, _ := g.Grid.Tile(world.Pos(1, 1)); tile.State != farm.Hoed {
		t.Errorf("tile = %s, want hoed from a final line without newline", tile.State)
	}
}

func TestReadKeys_StopsWhenDone(t *testing.T) {
	keys := make(chan string)
	errs := make(chan error, 1)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		readKeys(input.NewKeyReader(strings.NewReader("hpw")), keys, errs, done)
		close(finished)
	}()

	if code := <-keys; code != "h" {
		t.Fatalf("first key = %q, want h", code)
	}
	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("readKeys still running after done was closed")
	}
}

func TestReadKeys_ForwardsError(t *testing.T) {
	keys := make(chan string, 4)
	errs := make(chan error, 1)
	readKeys(input.NewKeyReader(strings.NewReader("h")), keys, errs, make(chan struct{}))
	if code := <-keys; code != "h" {
		t.Errorf("key = %q, want h", code)
	}
	if err := <-errs; err != io.EOF {
		t.Errorf("error = %v, want EOF", err)
	}
}
