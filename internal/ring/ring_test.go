package ring

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

// square returns a closed counter-clockwise square centred on (cx, cy).
func square(cx, cy, half float64) orb.Ring {
	return orb.Ring{
		{cx - half, cy - half},
		{cx + half, cy - half},
		{cx + half, cy + half},
		{cx - half, cy + half},
		{cx - half, cy - half},
	}
}

// TestIsClosed tests closure detection
func TestIsClosed(t *testing.T) {
	tests := []struct {
		name string
		ring orb.Ring
		want bool
	}{
		{"closed square", square(0, 0, 1), true},
		{"open", orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, false},
		{"too short", orb.Ring{{0, 0}, {1, 0}, {0, 0}}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClosed(tt.ring); got != tt.want {
				t.Errorf("IsClosed() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestEnsureClosed tests that open rings get their first point appended
func TestEnsureClosed(t *testing.T) {
	open := orb.Ring{{0, 0}, {1, 0}, {1, 1}}
	closed := EnsureClosed(open)
	if len(closed) != 4 || closed[3] != closed[0] {
		t.Errorf("Expected closing point appended, got %v", closed)
	}

	sq := square(0, 0, 1)
	if got := EnsureClosed(sq); len(got) != len(sq) {
		t.Errorf("Expected closed ring unchanged, got %d points", len(got))
	}
}

// TestAreaAndWinding tests shoelace area and orientation helpers
func TestAreaAndWinding(t *testing.T) {
	r := square(0, 0, 5)
	if a := Area(r); math.Abs(a-100) > 1e-9 {
		t.Errorf("Expected area 100, got %f", a)
	}
	if IsClockwise(r) {
		t.Error("Expected counter-clockwise square")
	}

	if !Orient(r, orb.CW) {
		t.Error("Expected Orient to reverse a counter-clockwise ring")
	}
	if !IsClockwise(r) {
		t.Error("Expected clockwise after Orient(CW)")
	}
	if Orient(r, orb.CW) {
		t.Error("Expected Orient to leave a clockwise ring alone")
	}
	if a := Area(r); math.Abs(a-100) > 1e-9 {
		t.Errorf("Expected area unchanged by reversal, got %f", a)
	}
	if !IsClosed(r) {
		t.Error("Expected ring to stay closed after reversal")
	}
}

// TestMeanLat tests the latitude average over all points
func TestMeanLat(t *testing.T) {
	r := orb.Ring{{0, -70}, {10, -70}, {10, -60}, {0, -70}}
	want := (-70.0*3 - 60.0) / 4
	if got := MeanLat(r); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected mean latitude %f, got %f", want, got)
	}
	if got := MeanLat(nil); got != 0 {
		t.Errorf("Expected 0 for empty ring, got %f", got)
	}
}

// TestContains tests ring-in-ring containment
func TestContains(t *testing.T) {
	outer := square(0, 0, 5)
	tests := []struct {
		name string
		a, b orb.Ring
		want bool
	}{
		{"nested", outer, square(0, 0, 2), true},
		{"reverse", square(0, 0, 2), outer, false},
		{"disjoint", outer, square(20, 0, 2), false},
		{"overlapping", outer, square(5, 0, 2), false},
		{"shared edge outside", square(0, 0, 1), square(2, 0, 1), false},
		{"touching inside", outer, orb.Ring{{-5, -5}, {0, -5}, {0, 0}, {-5, 0}, {-5, -5}}, true},
		{"same ring", outer, outer, false},
		{"degenerate outer", orb.Ring{{0, 0}, {1, 1}}, square(0, 0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.a, tt.b); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}
