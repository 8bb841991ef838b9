package world

import "testing"

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
		{Up, 0, -1},
		{Direction(5), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", tt.dir, dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestDirection_IsValid(t *testing.T) {
	for _, d := range AllDirections() {
		if !d.IsValid() {
			t.Errorf("%v.IsValid() = false, want true", d)
		}
	}
	for _, d := range []Direction{-1, 4, 5} {
		if d.IsValid() {
			t.Errorf("Direction(%d).IsValid() = true, want false", int(d))
		}
	}
}

func TestGridPosition_Step(t *testing.T) {
	p := Pos(3, 3)
	if got := p.Step(Left); got != Pos(2, 3) {
		t.Errorf("Step(Left) = %v, want (2, 3)", got)
	}
	if got := p.Step(Direction(9)); got != p {
		t.Errorf("Step(invalid) = %v, want unchanged %v", got, p)
	}
}

func TestDimensions_IsValidPosition(t *testing.T) {
	d := Dimensions{Width: 20, Height: 15}
	tests := []struct {
		p    GridPosition
		want bool
	}{
		{Pos(0, 0), true},
		{Pos(19, 14), true},
		{Pos(20, 0), false},
		{Pos(0, 15), false},
		{Pos(-1, 0), false},
		{Pos(0, -1), false},
	}
	for _, tt := range tests {
		if got := d.IsValidPosition(tt.p); got != tt.want {
			t.Errorf("IsValidPosition(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if c := d.Center(); c != Pos(10, 7) {
		t.Errorf("Center() = %v, want (10, 7)", c)
	}
}
