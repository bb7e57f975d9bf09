package engine

import "testing"

func TestPalletsFromBoxes(t *testing.T) {
	cases := []struct {
		boxes   int
		boxType string
		want    int
	}{
		{576, "4kg", 2},
		{119, "10kg", 0},
		{120, "10kg", 1},
		{287, "4kg", 0},
		{0, "4kg", 0},
	}
	for _, c := range cases {
		if got := PalletsFromBoxes(c.boxes, c.boxType); got != c.want {
			t.Errorf("PalletsFromBoxes(%d, %q) = %d, want %d", c.boxes, c.boxType, got, c.want)
		}
	}
}

func TestWeightFromBoxes(t *testing.T) {
	if got := WeightFromBoxes(10, "4kg"); got != 40 {
		t.Errorf("WeightFromBoxes(10, 4kg) = %v, want 40", got)
	}
	if got := WeightFromBoxes(10, "10kg"); got != 100 {
		t.Errorf("WeightFromBoxes(10, 10kg) = %v, want 100", got)
	}
}
