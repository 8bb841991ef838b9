package world

// Bounds answers whether a position lies inside a playable area.
// The farm grid implements it so movement is checked against the grid in use.
type Bounds interface {
	IsValidPosition(p GridPosition) bool
}

// Dimensions is a width x height rectangle anchored at (0, 0).
type Dimensions struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// IsValidPosition checks 0 <= x < Width and 0 <= y < Height
func (d Dimensions) IsValidPosition(p GridPosition) bool {
	return p.X >= 0 && p.X < d.Width && p.Y >= 0 && p.Y < d.Height
}

// Center returns the center cell, rounding down
func (d Dimensions) Center() GridPosition {
	return GridPosition{X: d.Width / 2, Y: d.Height / 2}
}

// ForEach calls fn for every position in row-major order
func (d Dimensions) ForEach(fn func(p GridPosition)) {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			fn(GridPosition{X: x, Y: y})
		}
	}
}
