// Package farmer implements the grid-bound farmer: discrete position, facing
// direction and a single-flight move transition.
package farmer

import (
	"fmt"
	"time"

	"farmstead/pkg/engine/tween"
	"farmstead/pkg/engine/world"
)

// DefaultMoveDuration is how long the move transition between two cells takes
const DefaultMoveDuration = 200 * time.Millisecond

// DefaultTileSize is the world size of one cell used for placement
const DefaultTileSize = 32.0

// Texture is an opaque handle to whatever a renderer draws the farmer with
type Texture any

// TextureResolver turns a texture key into a renderer handle
type TextureResolver interface {
	ResolveTexture(key string) Texture
}

// TextureReleaser is implemented by resolvers that own per-handle resources
type TextureReleaser interface {
	ReleaseTexture(t Texture)
}

// TextureKey returns the sprite key for a facing direction.
// Out-of-range directions are clamped to the sheet.
func TextureKey(dir world.Direction) string {
	d := int(dir)
	if d < int(world.Down) {
		d = int(world.Down)
	}
	if d > int(world.Up) {
		d = int(world.Up)
	}
	return fmt.Sprintf("farmer-%d", d)
}

type keyResolver struct{}

func (keyResolver) ResolveTexture(key string) Texture {
	return key
}

// Farmer is the player character
type Farmer struct {
	gridPosition world.GridPosition
	direction    world.Direction
	isMoving     bool

	bounds   world.Bounds
	textures TextureResolver
	texture  Texture

	// World-space center of the sprite
	x, y     float64
	tileSize float64

	moveDuration   time.Duration
	motion         *tween.Tween
	onMoveComplete func(pos world.GridPosition)
}

// New creates a farmer at start facing down. bounds limits movement; a nil
// textures falls back to handing out the texture keys themselves.
func New(start world.GridPosition, bounds world.Bounds, textures TextureResolver) *Farmer {
	if textures == nil {
		textures = keyResolver{}
	}
	f := &Farmer{
		gridPosition: start,
		direction:    world.Down,
		bounds:       bounds,
		textures:     textures,
		tileSize:     DefaultTileSize,
		moveDuration: DefaultMoveDuration,
	}
	f.x, f.y = f.gridToWorld(start)
	f.texture = textures.ResolveTexture(TextureKey(f.direction))
	return f
}

// SetMoveDuration changes the duration of future move transitions
func (f *Farmer) SetMoveDuration(d time.Duration) {
	f.moveDuration = d
}

// MoveDuration returns the length of one move transition
func (f *Farmer) MoveDuration() time.Duration {
	return f.moveDuration
}

// SetTileSize changes the world size of a cell and snaps the placement
func (f *Farmer) SetTileSize(size float64) {
	f.tileSize = size
	if !f.isMoving {
		f.x, f.y = f.gridToWorld(f.gridPosition)
	}
}

// OnMoveComplete registers a callback fired when a move transition ends
func (f *Farmer) OnMoveComplete(fn func(pos world.GridPosition)) {
	f.onMoveComplete = fn
}

func (f *Farmer) gridToWorld(p world.GridPosition) (float64, float64) {
	return float64(p.X)*f.tileSize + f.tileSize/2, float64(p.Y)*f.tileSize + f.tileSize/2
}

// Move tries to step one cell in dir.
// The facing direction changes even when the step is blocked by the bounds.
// Returns false while a previous move is still in transition, for an invalid
// direction (no change at all) and for a blocked step.
func (f *Farmer) Move(dir world.Direction) bool {
	if f.isMoving {
		return false
	}
	if !dir.IsValid() {
		return false
	}

	target := f.gridPosition.Step(dir)
	f.setDirection(dir)

	if f.bounds != nil && !f.bounds.IsValidPosition(target) {
		return false
	}

	f.gridPosition = target
	f.animateTo(target)
	return true
}

func (f *Farmer) setDirection(dir world.Direction) {
	f.direction = dir
	f.texture = f.textures.ResolveTexture(TextureKey(dir))
}

func (f *Farmer) animateTo(target world.GridPosition) {
	toX, toY := f.gridToWorld(target)
	f.isMoving = true
	f.motion = tween.New(f.x, f.y, toX, toY, f.moveDuration, tween.Power2Out, func() {
		f.isMoving = false
		if f.onMoveComplete != nil {
			f.onMoveComplete(target)
		}
	})
}

// Update advances the move transition by dt. The moving flag clears on the
// frame the transition completes.
func (f *Farmer) Update(dt time.Duration) {
	if f.motion == nil {
		return
	}
	f.motion.Advance(dt)
	f.x, f.y = f.motion.Position()
	if f.motion.Done() {
		f.motion = nil
	}
}

// SetPosition snaps the farmer to p without a transition.
// Ignored while a move is in progress.
func (f *Farmer) SetPosition(p world.GridPosition) {
	if f.isMoving {
		return
	}
	f.gridPosition = p
	f.x, f.y = f.gridToWorld(p)
}

// SetDirection faces dir without moving. Invalid directions are ignored.
func (f *Farmer) SetDirection(dir world.Direction) {
	if !dir.IsValid() {
		return
	}
	f.setDirection(dir)
}

// GridPosition returns the committed grid position
func (f *Farmer) GridPosition() world.GridPosition {
	return f.gridPosition
}

// Direction returns the facing direction
func (f *Farmer) Direction() world.Direction {
	return f.direction
}

// IsMoving reports whether a move transition is in progress
func (f *Farmer) IsMoving() bool {
	return f.isMoving
}

// Placement returns the world-space center of the sprite
func (f *Farmer) Placement() (x, y float64) {
	return f.x, f.y
}

// Texture returns the handle for the current facing direction
func (f *Farmer) Texture() Texture {
	return f.texture
}

// Destroy releases the texture handle
func (f *Farmer) Destroy() {
	if f.texture == nil {
		return
	}
	if r, ok := f.textures.(TextureReleaser); ok {
		r.ReleaseTexture(f.texture)
	}
	f.texture = nil
}
