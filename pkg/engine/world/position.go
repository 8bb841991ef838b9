// Package world provides generic 2D grid primitives shared by the farm grid,
// the farmer controller and the renderers.
package world

import "fmt"

// GridPosition is a cell coordinate. X is the column, Y the row.
type GridPosition struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pos is shorthand for GridPosition{X: x, Y: y}
func Pos(x, y int) GridPosition {
	return GridPosition{X: x, Y: y}
}

// Step returns the position one cell away in the given direction.
// An invalid direction returns the position unchanged.
func (p GridPosition) Step(dir Direction) GridPosition {
	dx, dy := dir.Delta()
	return GridPosition{X: p.X + dx, Y: p.Y + dy}
}

// String returns "(x, y)"
func (p GridPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
