// Package tui provides the terminal front end: a colored tile grid with a
// status panel, driven by raw key presses or, when stdin is not a terminal,
// by one command per line.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"farmstead/pkg/engine/input"
	"farmstead/pkg/engine/terminal"
	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/config"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/farmer"
	"farmstead/pkg/game/gameplay"
	"farmstead/pkg/game/i18n"
	"farmstead/pkg/game/renderer"
	"farmstead/pkg/game/state"
)

// Tile icons, two columns wide so the grid keeps a square aspect
const (
	IconEmpty       = ". "
	IconHoed        = "= "
	IconPlanted     = "v "
	IconWatered     = "v~"
	IconHarvestable = "Y "
)

// farmerIcons shows the facing direction next to the farmer
var farmerIcons = map[world.Direction]string{
	world.Down:  "@v",
	world.Left:  "<@",
	world.Right: "@>",
	world.Up:    "@^",
}

// tickInterval is how often the wall clock drives the game in raw mode
const tickInterval = 100 * time.Millisecond

// statusReservedRows is the space kept below the grid for status and messages
const statusReservedRows = 16

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in  *os.File
	out io.Writer

	colorEmpty       color.Style
	colorHoed        color.Style
	colorPlanted     color.Style
	colorWatered     color.Style
	colorHarvestable color.Style
	colorPlayer      color.Style
	colorTitle       color.Style
	colorSubtle      color.Style
	colorMessage     color.Style

	// Line ending; raw mode needs an explicit carriage return
	eol string
}

// New creates a new TUI renderer on stdin/stdout
func New() *TUIRenderer {
	return &TUIRenderer{in: os.Stdin, out: os.Stdout, eol: "\n"}
}

// Name identifies the backend
func (t *TUIRenderer) Name() string {
	return config.RendererTUI
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorEmpty = color.Style{color.FgGreen}
	t.colorHoed = color.Style{color.FgYellow}
	t.colorPlanted = color.Style{color.FgLightGreen}
	t.colorWatered = color.Style{color.FgCyan, color.OpBold}
	t.colorHarvestable = color.Style{color.FgYellow, color.OpBold}
	t.colorPlayer = color.Style{color.FgWhite, color.BgBlack, color.OpBold}
	t.colorTitle = color.Style{color.FgWhite, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorMessage = color.Style{color.FgMagenta}
	return nil
}

// Textures returns nil; the terminal draws the farmer from its direction
func (t *TUIRenderer) Textures() farmer.TextureResolver {
	return nil
}

// tileStyle returns the icon and style for a tile state
func (t *TUIRenderer) tileStyle(s farm.TileState) (string, color.Style) {
	switch s {
	case farm.Hoed:
		return IconHoed, t.colorHoed
	case farm.Planted:
		return IconPlanted, t.colorPlanted
	case farm.Watered:
		return IconWatered, t.colorWatered
	case farm.Harvestable:
		return IconHarvestable, t.colorHarvestable
	default:
		return IconEmpty, t.colorEmpty
	}
}

// renderTile returns the styled icon for the tile at p
func (t *TUIRenderer) renderTile(g *state.Game, p world.GridPosition) string {
	if p == g.FarmerPosition() {
		return t.colorPlayer.Sprint(farmerIcons[g.Farmer.Direction()])
	}
	tile, _ := g.Grid.Tile(p)
	icon, style := t.tileStyle(tile.State)
	return style.Sprint(icon)
}

// RenderFrame writes a complete frame: map, status panel and messages
func (t *TUIRenderer) RenderFrame(w io.Writer, g *state.Game) {
	var b strings.Builder
	dims := g.Grid.Dimensions()

	size := terminal.GetSize()
	if !size.Fits(dims.Width*2, dims.Height, statusReservedRows) {
		b.WriteString(t.colorSubtle.Sprintf("(terminal %dx%d is small for a %dx%d farm)", size.Width, size.Height, dims.Width, dims.Height))
		b.WriteString(t.eol)
	}

	for y := 0; y < dims.Height; y++ {
		for x := 0; x < dims.Width; x++ {
			b.WriteString(t.renderTile(g, world.Pos(x, y)))
		}
		b.WriteString(t.eol)
	}
	b.WriteString(t.eol)

	for i, line := range renderer.StatusLines(g) {
		if i == 0 {
			b.WriteString(t.colorTitle.Sprint(line))
		} else {
			b.WriteString(t.colorSubtle.Sprint(line))
		}
		b.WriteString(t.eol)
	}

	if len(g.Messages) > 0 {
		b.WriteString(t.eol)
	}
	for _, msg := range g.Messages {
		b.WriteString(t.colorMessage.Sprint(msg))
		b.WriteString(t.eol)
	}

	io.WriteString(w, b.String())
}

// Clear clears the terminal screen and homes the cursor
func (t *TUIRenderer) Clear() {
	io.WriteString(t.out, "\033[H\033[2J")
}

func (t *TUIRenderer) redraw(g *state.Game) {
	t.Clear()
	t.RenderFrame(t.out, g)
}

// Run drives the game until the player quits or input ends
func (t *TUIRenderer) Run(g *state.Game) error {
	if input.IsTerminal(t.in) {
		return t.runRaw(g)
	}
	return t.runLines(g, input.NewLineReader(t.in))
}

// runRaw reads single key presses in raw mode; a ticker advances game time
// between presses
func (t *TUIRenderer) runRaw(g *state.Game) error {
	restore, err := input.MakeRaw(t.in)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer restore()
	t.eol = "\r\n"
	defer func() { t.eol = "\n" }()

	keys := make(chan string)
	errs := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go readKeys(input.NewKeyReader(t.in), keys, errs, done)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	last := time.Now()

	t.redraw(g)
	for !g.Quit {
		select {
		case code := <-keys:
			gameplay.ProcessIntent(g, input.IntentFor(input.DeviceTerminal, code))
		case err := <-errs:
			if errors.Is(err, input.ErrInterrupted) || errors.Is(err, io.EOF) {
				g.Quit = true
				continue
			}
			return fmt.Errorf("read key: %w", err)
		case now := <-ticker.C:
			gameplay.Tick(g, now.Sub(last))
			last = now
		}
		t.redraw(g)
	}
	return nil
}

// readKeys forwards key presses until the reader fails or done is closed.
// A read already blocked on the terminal returns with the next key press.
func readKeys(reader *input.KeyReader, keys chan<- string, errs chan<- error, done <-chan struct{}) {
	for {
		code, err := reader.ReadKey()
		if err != nil {
			select {
			case errs <- err:
			case <-done:
			}
			return
		}
		select {
		case keys <- code:
		case <-done:
			return
		}
	}
}

// runLines reads one command per line ("h", "up", "harvest", ...). Game
// time follows the wall clock between lines.
func (t *TUIRenderer) runLines(g *state.Game, lines *input.LineReader) error {
	last := time.Now()
	t.RenderFrame(t.out, g)
	for !g.Quit {
		code, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		now := time.Now()
		gameplay.Tick(g, now.Sub(last))
		last = now

		intent := input.IntentFor(input.DeviceTerminal, code)
		if intent.Action == input.ActionNone {
			if code != "" {
				log.Printf("[TUI] unknown command %q", code)
				g.AddMessage(i18n.Get("UNKNOWN_COMMAND"))
			}
		} else {
			gameplay.ProcessIntent(g, intent)
		}
		// Moves complete before the next command is read
		g.Farmer.Update(g.Farmer.MoveDuration())
		t.RenderFrame(t.out, g)
	}
	return nil
}
