package farmer

import (
	"testing"
	"time"

	"farmstead/pkg/engine/world"
)

// recordingResolver records every resolved and released key
type recordingResolver struct {
	resolved []string
	released []Texture
}

func (r *recordingResolver) ResolveTexture(key string) Texture {
	r.resolved = append(r.resolved, key)
	return key
}

func (r *recordingResolver) ReleaseTexture(t Texture) {
	r.released = append(r.released, t)
}

func newFarmer(t *testing.T, start world.GridPosition) (*Farmer, *recordingResolver) {
	t.Helper()
	res := &recordingResolver{}
	f := New(start, world.Dimensions{Width: 20, Height: 15}, res)
	return f, res
}

func TestNew_FacesDown(t *testing.T) {
	f, res := newFarmer(t, world.Pos(10, 7))
	if f.Direction() != world.Down {
		t.Errorf("Direction() = %v, want Down", f.Direction())
	}
	if f.IsMoving() {
		t.Error("IsMoving() = true on a new farmer")
	}
	if len(res.resolved) != 1 || res.resolved[0] != "farmer-0" {
		t.Errorf("resolved = %v, want [farmer-0]", res.resolved)
	}
	if x, y := f.Placement(); x != 336 || y != 240 {
		t.Errorf("Placement() = (%v, %v), want (336, 240)", x, y)
	}
}

func TestMove_AllFourDirections(t *testing.T) {
	tests := []struct {
		dir  world.Direction
		want world.GridPosition
	}{
		{world.Down, world.Pos(5, 6)},
		{world.Left, world.Pos(4, 5)},
		{world.Right, world.Pos(6, 5)},
		{world.Up, world.Pos(5, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			f, _ := newFarmer(t, world.Pos(5, 5))
			if !f.Move(tt.dir) {
				t.Fatalf("Move(%v) = false, want true", tt.dir)
			}
			if got := f.GridPosition(); got != tt.want {
				t.Errorf("GridPosition() = %v, want %v", got, tt.want)
			}
			if f.Direction() != tt.dir {
				t.Errorf("Direction() = %v, want %v", f.Direction(), tt.dir)
			}
			if !f.IsMoving() {
				t.Error("IsMoving() = false right after a move")
			}
		})
	}
}

func TestMove_RejectedWhileMoving(t *testing.T) {
	f, _ := newFarmer(t, world.Pos(5, 5))
	f.Move(world.Right)
	for _, dir := range world.AllDirections() {
		if f.Move(dir) {
			t.Errorf("Move(%v) during transition = true, want false", dir)
		}
	}
	if got := f.GridPosition(); got != world.Pos(6, 5) {
		t.Errorf("GridPosition() = %v, want (6, 5)", got)
	}
	if f.Direction() != world.Right {
		t.Errorf("Direction() = %v, want Right (unchanged by rejected moves)", f.Direction())
	}
}

func TestMove_CompletesAfterDuration(t *testing.T) {
	f, _ := newFarmer(t, world.Pos(5, 5))
	var completedAt *world.GridPosition
	f.OnMoveComplete(func(p world.GridPosition) { completedAt = &p })

	f.Move(world.Right)
	f.Update(150 * time.Millisecond)
	if !f.IsMoving() {
		t.Fatal("IsMoving() = false before the transition ended")
	}
	if x, _ := f.Placement(); x <= 176 || x >= 208 {
		t.Errorf("mid-transition x = %v, want between 176 and 208", x)
	}
	f.Update(50 * time.Millisecond)
	if f.IsMoving() {
		t.Fatal("IsMoving() = true after the transition ended")
	}
	if completedAt == nil || *completedAt != world.Pos(6, 5) {
		t.Errorf("OnMoveComplete got %v, want (6, 5)", completedAt)
	}
	if x, y := f.Placement(); x != 208 || y != 176 {
		t.Errorf("Placement() = (%v, %v), want (208, 176)", x, y)
	}
	if !f.Move(world.Right) {
		t.Error("Move after completion = false, want true")
	}
}

func TestMove_BoundaryUpdatesDirection(t *testing.T) {
	f, res := newFarmer(t, world.Pos(0, 3))
	if f.Move(world.Left) {
		t.Fatal("Move(Left) at x=0 = true, want false")
	}
	if got := f.GridPosition(); got != world.Pos(0, 3) {
		t.Errorf("GridPosition() = %v, want (0, 3)", got)
	}
	if f.Direction() != world.Left {
		t.Errorf("Direction() = %v, want Left", f.Direction())
	}
	if f.IsMoving() {
		t.Error("IsMoving() = true after a blocked move")
	}
	if last := res.resolved[len(res.resolved)-1]; last != "farmer-1" {
		t.Errorf("last resolved texture = %s, want farmer-1", last)
	}
}

func TestMove_BoundsFollowGridSize(t *testing.T) {
	f := New(world.Pos(2, 2), world.Dimensions{Width: 3, Height: 3}, nil)
	if f.Move(world.Right) {
		t.Error("Move(Right) at x=2 on a 3-wide grid = true, want false")
	}
	if f.Move(world.Down) {
		t.Error("Move(Down) at y=2 on a 3-high grid = true, want false")
	}
}

func TestMove_InvalidDirection(t *testing.T) {
	f, res := newFarmer(t, world.Pos(5, 5))
	f.SetDirection(world.Up)
	resolved := len(res.resolved)
	if f.Move(world.Direction(5)) {
		t.Error("Move(5) = true, want false")
	}
	if f.Direction() != world.Up {
		t.Errorf("Direction() = %v, want Up (unchanged)", f.Direction())
	}
	if got := f.GridPosition(); got != world.Pos(5, 5) {
		t.Errorf("GridPosition() = %v, want (5, 5)", got)
	}
	if len(res.resolved) != resolved {
		t.Error("texture resolved for an invalid direction")
	}
}

func TestSetPosition(t *testing.T) {
	f, _ := newFarmer(t, world.Pos(5, 5))
	f.SetPosition(world.Pos(1, 2))
	if got := f.GridPosition(); got != world.Pos(1, 2) {
		t.Errorf("GridPosition() = %v, want (1, 2)", got)
	}
	if x, y := f.Placement(); x != 48 || y != 80 {
		t.Errorf("Placement() = (%v, %v), want (48, 80)", x, y)
	}

	f.Move(world.Down)
	f.SetPosition(world.Pos(9, 9))
	if got := f.GridPosition(); got != world.Pos(1, 3) {
		t.Errorf("SetPosition during move changed position to %v", got)
	}
}

func TestGridPosition_ReturnsCopy(t *testing.T) {
	f, _ := newFarmer(t, world.Pos(5, 5))
	p := f.GridPosition()
	p.X = 99
	if f.GridPosition().X != 5 {
		t.Error("mutating the returned position changed the farmer")
	}
}

func TestDestroy_ReleasesTexture(t *testing.T) {
	f, res := newFarmer(t, world.Pos(1, 1))
	f.Destroy()
	f.Destroy()
	if len(res.released) != 1 || res.released[0] != "farmer-0" {
		t.Errorf("released = %v, want [farmer-0]", res.released)
	}
	if f.Texture() != nil {
		t.Error("Texture() after Destroy is not nil")
	}
}

func TestTextureKey_Clamps(t *testing.T) {
	tests := map[world.Direction]string{
		world.Down:          "farmer-0",
		world.Up:            "farmer-3",
		world.Direction(-2): "farmer-0",
		world.Direction(7):  "farmer-3",
	}
	for dir, want := range tests {
		if got := TextureKey(dir); got != want {
			t.Errorf("TextureKey(%d) = %s, want %s", int(dir), got, want)
		}
	}
}
