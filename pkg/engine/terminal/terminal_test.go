package terminal

import "testing"

func TestSize_Fits(t *testing.T) {
	s := Size{Width: 80, Height: 24}
	tests := []struct {
		cols, rows, reserved int
		want                 bool
	}{
		{40, 15, 9, true},
		{40, 15, 10, false},
		{81, 1, 0, false},
	}
	for _, tt := range tests {
		if got := s.Fits(tt.cols, tt.rows, tt.reserved); got != tt.want {
			t.Errorf("Fits(%d, %d, %d) = %v, want %v", tt.cols, tt.rows, tt.reserved, got, tt.want)
		}
	}
}

func TestGetSize_FallsBack(t *testing.T) {
	s := GetSize()
	if s.Width <= 0 || s.Height <= 0 {
		t.Errorf("GetSize() = %+v, want positive dimensions", s)
	}
}
