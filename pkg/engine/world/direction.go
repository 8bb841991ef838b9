package world

// Direction represents a facing/movement direction on the grid.
// Values match the farmer sprite sheet order.
type Direction int

// Direction constants
const (
	Down Direction = iota
	Left
	Right
	Up
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Down, Left, Right, Up}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four grid directions
func (d Direction) IsValid() bool {
	return d >= Down && d <= Up
}

// Delta returns the x and y offsets for this direction.
// Y grows downwards, so Down is +1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	default:
		return 0, 0
	}
}
