package ring

import (
	"testing"

	"github.com/paulmach/orb"
)

// TestSortByArea tests ordering, cardinality and stability of the area ranker
func TestSortByArea(t *testing.T) {
	small := square(0, 0, 1)    // area 4
	large := square(20, 0, 5)   // area 100
	medium := square(-20, 0, 2) // area 16
	twin := square(40, 40, 2)   // area 16, after medium in input
	rings := []orb.Ring{small, medium, large, twin}

	tests := []struct {
		name      string
		descend   bool
		wantAreas []float64
		wantFirst orb.Ring
		wantTwin  [2]orb.Ring // equal-area rings in input order
	}{
		{"descending", true, []float64{100, 16, 16, 4}, large, [2]orb.Ring{medium, twin}},
		{"ascending", false, []float64{4, 16, 16, 100}, small, [2]orb.Ring{medium, twin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted, areas := SortByArea(rings, tt.descend)
			if len(sorted) != len(rings) || len(areas) != len(rings) {
				t.Fatalf("Expected %d rings and areas, got %d and %d", len(rings), len(sorted), len(areas))
			}
			for i := range areas {
				if areas[i] != tt.wantAreas[i] {
					t.Errorf("Area %d: expected %f, got %f", i, tt.wantAreas[i], areas[i])
				}
				if Area(sorted[i]) != areas[i] {
					t.Errorf("Ring %d does not match its area", i)
				}
			}
			if &sorted[0][0] != &tt.wantFirst[0] {
				t.Errorf("Expected the %v ring first", tt.wantAreas[0])
			}
			if &sorted[1][0] != &tt.wantTwin[0][0] || &sorted[2][0] != &tt.wantTwin[1][0] {
				t.Error("Expected equal-area rings to keep their input order")
			}
		})
	}

	// Input order untouched
	if &rings[0][0] != &small[0] || &rings[2][0] != &large[0] {
		t.Error("SortByArea modified its input slice")
	}
}

// TestSortByAreaEmpty tests the empty input
func TestSortByAreaEmpty(t *testing.T) {
	sorted, areas := SortByArea(nil, true)
	if len(sorted) != 0 || len(areas) != 0 {
		t.Errorf("Expected empty output, got %d rings", len(sorted))
	}
}
