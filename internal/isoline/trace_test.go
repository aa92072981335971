package isoline

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func axis(n int) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = float64(i)
	}
	return a
}

// TestTraceSinglePixel tests that an isolated land cell yields one closed diamond
func TestTraceSinglePixel(t *testing.T) {
	field := [][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	lines := Trace(axis(3), axis(3), field, 0.5)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if len(line) != 5 {
		t.Fatalf("Expected 5 points (closed diamond), got %d: %v", len(line), line)
	}
	if line[0] != line[len(line)-1] {
		t.Errorf("Expected closed line, first %v last %v", line[0], line[len(line)-1])
	}

	want := map[orb.Point]bool{
		{1, 0.5}: true, {1.5, 1}: true, {1, 1.5}: true, {0.5, 1}: true,
	}
	for _, p := range line[:4] {
		if !want[p] {
			t.Errorf("Unexpected point %v", p)
		}
		delete(want, p)
	}
	if len(want) != 0 {
		t.Errorf("Missing points %v", want)
	}
}

// TestTraceOpenBand tests that a band crossing the grid yields one open line
func TestTraceOpenBand(t *testing.T) {
	x := []float64{-10, 0, 10, 20}
	y := []float64{-90, -80, -70}
	field := [][]float64{
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	lines := Trace(x, y, field, 0.5)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	first, last := line[0], line[len(line)-1]
	if first[1] != -85 || last[1] != -85 {
		t.Errorf("Expected both ends at y=-85, got %v and %v", first, last)
	}
	if math.Min(first[0], last[0]) != -10 || math.Max(first[0], last[0]) != 20 {
		t.Errorf("Expected ends on x=-10 and x=20, got %v and %v", first, last)
	}
	if len(line) != 4 {
		t.Errorf("Expected 4 points, got %d", len(line))
	}
}

// TestTraceUniform tests that fields without a crossing produce nothing
func TestTraceUniform(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"all sea", 0},
		{"all land", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := [][]float64{
				{tt.value, tt.value},
				{tt.value, tt.value},
			}
			if lines := Trace(axis(2), axis(2), field, 0.5); len(lines) != 0 {
				t.Errorf("Expected no lines, got %d", len(lines))
			}
		})
	}
}

// TestTraceSaddle tests that a saddle cell yields two separate segments
func TestTraceSaddle(t *testing.T) {
	field := [][]float64{
		{1, 0},
		{0, 1},
	}
	lines := Trace(axis(2), axis(2), field, 0.5)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if len(l) != 2 {
			t.Errorf("Expected 2-point segment, got %v", l)
		}
	}
}

// TestTraceSkipsNaN tests that cells with missing values are ignored
func TestTraceSkipsNaN(t *testing.T) {
	nan := math.NaN()
	field := [][]float64{
		{nan, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	lines := Trace(axis(3), axis(3), field, 0.5)
	for _, l := range lines {
		for _, p := range l {
			if p[0] < 0.5 && p[1] < 0.5 {
				t.Errorf("Point %v lies in a NaN cell", p)
			}
		}
	}
	// The NaN cell removes one of the diamond's segments, leaving it open
	if len(lines) != 1 || len(lines[0]) != 4 {
		t.Errorf("Expected one 4-point open line, got %v", lines)
	}
}

// TestTraceDegenerate tests inputs too small to contour
func TestTraceDegenerate(t *testing.T) {
	if lines := Trace([]float64{0}, axis(2), [][]float64{{1}, {0}}, 0.5); lines != nil {
		t.Errorf("Expected nil for single column, got %v", lines)
	}
}
