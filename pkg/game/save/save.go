// Package save persists a farming session to a save slot. Slots are stored
// through gdata as YAML documents. When storage could not be opened the store
// runs degraded: saving and loading report ErrUnavailable and the game goes on.
package save

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"farmstead/pkg/engine/world"
	"farmstead/pkg/game/farm"
	"farmstead/pkg/game/state"
)

// AppName is the gdata application directory
const AppName = "farmstead"

// snapshotVersion is bumped when the document layout changes
const snapshotVersion = 1

const slotProperty = "session.yaml"

var (
	// ErrUnavailable is returned when no storage backend is open
	ErrUnavailable = errors.New("save storage unavailable")

	// ErrNoSave is returned when loading an empty slot
	ErrNoSave = errors.New("no saved game")
)

// Snapshot is the on-disk form of a session
type Snapshot struct {
	Version   int                   `yaml:"version"`
	Clock     int64                 `yaml:"clock"`
	Farm      world.Dimensions      `yaml:"farm"`
	Farmer    FarmerSnapshot        `yaml:"farmer"`
	Inventory map[farm.CropType]int `yaml:"inventory,omitempty"`
	Tiles     []TileSnapshot        `yaml:"tiles,omitempty"`
}

// FarmerSnapshot holds the farmer's committed position and facing
type FarmerSnapshot struct {
	Position  world.GridPosition `yaml:"position"`
	Direction world.Direction    `yaml:"direction"`
}

// TileSnapshot is one non-empty tile. Times are game milliseconds.
type TileSnapshot struct {
	Position world.GridPosition `yaml:"position"`
	State    farm.TileState     `yaml:"state"`
	Crop     farm.CropType      `yaml:"crop,omitempty"`
	Planted  *int64             `yaml:"planted,omitempty"`
	Watered  *int64             `yaml:"watered,omitempty"`
}

// Capture builds a snapshot of g
func Capture(g *state.Game) Snapshot {
	snap := Snapshot{
		Version: snapshotVersion,
		Clock:   g.Now(),
		Farm:    g.Grid.Dimensions(),
		Farmer: FarmerSnapshot{
			Position:  g.Farmer.GridPosition(),
			Direction: g.Farmer.Direction(),
		},
		Inventory: make(map[farm.CropType]int),
	}
	for _, c := range g.HarvestedCrops() {
		snap.Inventory[c] = g.HarvestCount(c)
	}
	g.Grid.ForEachTile(func(t farm.FarmTile) {
		if t.State == farm.Empty {
			return
		}
		snap.Tiles = append(snap.Tiles, TileSnapshot{
			Position: t.Position,
			State:    t.State,
			Crop:     t.Crop,
			Planted:  stampPtr(t.PlantedTime),
			Watered:  stampPtr(t.WateredTime),
		})
	})
	return snap
}

func stampPtr(s farm.Stamp) *int64 {
	if !s.Valid {
		return nil
	}
	at := s.At
	return &at
}

// Apply restores the snapshot into g. The farm must have the same size.
// Stamps are shifted onto g's clock so crops keep their remaining growth time.
func (s Snapshot) Apply(g *state.Game) error {
	if s.Version != snapshotVersion {
		return fmt.Errorf("unsupported save version %d", s.Version)
	}
	if dims := g.Grid.Dimensions(); dims != s.Farm {
		return fmt.Errorf("save is for a %dx%d farm, current farm is %dx%d",
			s.Farm.Width, s.Farm.Height, dims.Width, dims.Height)
	}
	if !g.Grid.IsValidPosition(s.Farmer.Position) {
		return fmt.Errorf("farmer position %v outside the farm", s.Farmer.Position)
	}
	for _, t := range s.Tiles {
		if !g.Grid.IsValidPosition(t.Position) || !t.State.IsValid() {
			return fmt.Errorf("invalid tile %v (%q)", t.Position, t.State)
		}
	}

	offset := g.Now() - s.Clock
	shift := func(p *int64) farm.Stamp {
		if p == nil {
			return farm.Stamp{}
		}
		return farm.At(*p + offset)
	}

	g.Grid.Dimensions().ForEach(func(p world.GridPosition) {
		g.Grid.SetTileState(p, farm.Empty)
	})
	for _, t := range s.Tiles {
		g.Grid.Restore(farm.FarmTile{
			Position:    t.Position,
			State:       t.State,
			Crop:        t.Crop,
			PlantedTime: shift(t.Planted),
			WateredTime: shift(t.Watered),
		})
	}

	g.Farmer.SetPosition(s.Farmer.Position)
	g.Farmer.SetDirection(s.Farmer.Direction)

	g.Inventory = make(map[farm.CropType]int, len(s.Inventory))
	for c, n := range s.Inventory {
		if n > 0 {
			g.Inventory[c] = n
		}
	}
	g.MarkAllDirty()
	return nil
}

// Encode marshals a snapshot
func Encode(s Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

// Decode unmarshals a snapshot
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode save: %w", err)
	}
	return s, nil
}

// Store reads and writes one save slot
type Store struct {
	manager *gdata.Manager // nil when storage is unavailable
	slot    string
}

// Current is the store used by in-game save commands
var Current *Store

// SetStore sets the store used by in-game save commands
func SetStore(s *Store) {
	Current = s
}

// NewStore wraps an open gdata manager. manager may be nil.
func NewStore(manager *gdata.Manager, slot string) *Store {
	return &Store{manager: manager, slot: slot}
}

// Open opens the gdata storage for appName. On failure the error is logged
// and a degraded store is returned.
func Open(appName, slot string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Save] storage unavailable, saving disabled: %v", err)
		return NewStore(nil, slot)
	}
	return NewStore(manager, slot)
}

// Available reports whether the store can persist anything
func (s *Store) Available() bool {
	return s != nil && s.manager != nil
}

// Exists reports whether the slot holds a save
func (s *Store) Exists() bool {
	if !s.Available() {
		return false
	}
	return s.manager.ObjectPropExists(s.slot, slotProperty)
}

// Save writes g to the slot
func (s *Store) Save(g *state.Game) error {
	if !s.Available() {
		return ErrUnavailable
	}
	data, err := Encode(Capture(g))
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(s.slot, slotProperty, data); err != nil {
		return fmt.Errorf("write slot %q: %w", s.slot, err)
	}
	log.Printf("[Save] saved slot %q (%d bytes)", s.slot, len(data))
	return nil
}

// Load reads the slot into g
func (s *Store) Load(g *state.Game) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if !s.Exists() {
		return ErrNoSave
	}
	data, err := s.manager.LoadObjectProp(s.slot, slotProperty)
	if err != nil {
		return fmt.Errorf("read slot %q: %w", s.slot, err)
	}
	snap, err := Decode(data)
	if err != nil {
		return err
	}
	if err := snap.Apply(g); err != nil {
		return fmt.Errorf("load slot %q: %w", s.slot, err)
	}
	log.Printf("[Save] loaded slot %q", s.slot)
	return nil
}
