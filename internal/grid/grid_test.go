package grid

import (
	"errors"
	"testing"
)

func maskOf(rows, cols int, fill func(j, i int) float64) [][]float64 {
	m := make([][]float64, rows)
	for j := range m {
		m[j] = make([]float64, cols)
		for i := range m[j] {
			m[j][i] = fill(j, i)
		}
	}
	return m
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestValidate tests grid shape validation
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		grid    Grid
		wantErr error
	}{
		{
			name: "valid",
			grid: Grid{
				Lon:  []float64{0, 1, 2},
				Lat:  []float64{0, 1},
				Mask: maskOf(2, 3, func(j, i int) float64 { return 0 }),
			},
		},
		{
			name: "single column",
			grid: Grid{
				Lon:  []float64{0},
				Lat:  []float64{0, 1},
				Mask: maskOf(2, 1, func(j, i int) float64 { return 0 }),
			},
			wantErr: &ErrDegenerateGrid{},
		},
		{
			name: "single row",
			grid: Grid{
				Lon:  []float64{0, 1},
				Lat:  []float64{0},
				Mask: maskOf(1, 2, func(j, i int) float64 { return 0 }),
			},
			wantErr: &ErrDegenerateGrid{},
		},
		{
			name: "too few rows",
			grid: Grid{
				Lon:  []float64{0, 1},
				Lat:  []float64{0, 1, 2},
				Mask: maskOf(2, 2, func(j, i int) float64 { return 0 }),
			},
			wantErr: &ErrShapeMismatch{},
		},
		{
			name: "short row",
			grid: Grid{
				Lon:  []float64{0, 1, 2},
				Lat:  []float64{0, 1},
				Mask: [][]float64{{0, 0, 0}, {0, 0}},
			},
			wantErr: &ErrShapeMismatch{},
		},
		{
			name: "descending longitude",
			grid: Grid{
				Lon:  []float64{2, 1, 0},
				Lat:  []float64{0, 1},
				Mask: maskOf(2, 3, func(j, i int) float64 { return 0 }),
			},
			wantErr: &ErrNotMonotonic{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error %T, got nil", tt.wantErr)
			}
			switch tt.wantErr.(type) {
			case *ErrDegenerateGrid:
				var target *ErrDegenerateGrid
				if !errors.As(err, &target) {
					t.Errorf("Expected ErrDegenerateGrid, got %T", err)
				}
			case *ErrShapeMismatch:
				var target *ErrShapeMismatch
				if !errors.As(err, &target) {
					t.Errorf("Expected ErrShapeMismatch, got %T", err)
				}
			case *ErrNotMonotonic:
				var target *ErrNotMonotonic
				if !errors.As(err, &target) {
					t.Errorf("Expected ErrNotMonotonic, got %T", err)
				}
			}
		})
	}
}

// TestResolution tests longitude spacing and the degenerate-grid error
func TestResolution(t *testing.T) {
	g := Grid{Lon: []float64{-180, -90, 0, 90, 180}}
	res, err := g.Resolution()
	if err != nil {
		t.Fatalf("Resolution() error: %v", err)
	}
	if res != 90 {
		t.Errorf("Expected resolution 90, got %f", res)
	}

	_, err = Grid{Lon: []float64{10}}.Resolution()
	var degenerate *ErrDegenerateGrid
	if !errors.As(err, &degenerate) {
		t.Errorf("Expected ErrDegenerateGrid for single column, got %v", err)
	}

	_, err = Grid{Lon: []float64{10, 10}}.Resolution()
	if !errors.As(err, &degenerate) {
		t.Errorf("Expected ErrDegenerateGrid for zero spacing, got %v", err)
	}
}

// TestRecenter tests splitting, shifting and the halo column
func TestRecenter(t *testing.T) {
	tests := []struct {
		name     string
		lon      []float64
		center   float64
		wantLon  []float64
		wantCols []int // source column of every output column
	}{
		{
			name:     "already centered",
			lon:      []float64{-180, -90, 0, 90},
			center:   0,
			wantLon:  []float64{-180, -90, 0, 90, 180},
			wantCols: []int{0, 1, 2, 3, 0},
		},
		{
			name:     "east edge inside range",
			lon:      []float64{0, 90, 180, 270},
			center:   0,
			wantLon:  []float64{-180, -90, 0, 90, 180},
			wantCols: []int{2, 3, 0, 1, 2},
		},
		{
			name:     "west edge inside range",
			lon:      []float64{-180, -90, 0, 90},
			center:   180,
			wantLon:  []float64{0, 90, 180, 270, 360},
			wantCols: []int{2, 3, 0, 1, 2},
		},
		{
			name:     "no split for 0-360 grid",
			lon:      []float64{0, 90, 180, 270},
			center:   180,
			wantLon:  []float64{0, 90, 180, 270, 360},
			wantCols: []int{0, 1, 2, 3, 0},
		},
		{
			name:     "shifted window",
			lon:      []float64{0, 90, 180, 270},
			center:   210,
			wantLon:  []float64{90, 180, 270, 360, 450},
			wantCols: []int{1, 2, 3, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Grid{
				Lon:  tt.lon,
				Lat:  []float64{-10, 10},
				Mask: maskOf(2, len(tt.lon), func(j, i int) float64 { return float64(10*j + i) }),
			}
			out := Recenter(in, tt.center)

			if !equalFloats(out.Lon, tt.wantLon) {
				t.Errorf("Expected lon %v, got %v", tt.wantLon, out.Lon)
			}
			if len(out.Lon) != len(in.Lon)+1 {
				t.Errorf("Expected %d columns, got %d", len(in.Lon)+1, len(out.Lon))
			}
			for j := range out.Mask {
				for k, src := range tt.wantCols {
					if out.Mask[j][k] != in.Mask[j][src] {
						t.Errorf("Row %d col %d: expected %v, got %v", j, k, in.Mask[j][src], out.Mask[j][k])
					}
				}
			}
			if err := out.Validate(); err != nil {
				t.Errorf("Recentered grid invalid: %v", err)
			}
		})
	}
}

// TestRecenterDoesNotMutate tests that the input grid is left untouched
func TestRecenterDoesNotMutate(t *testing.T) {
	in := Grid{
		Lon:  []float64{0, 90, 180, 270},
		Lat:  []float64{-10, 10},
		Mask: maskOf(2, 4, func(j, i int) float64 { return float64(i % 2) }),
	}
	_ = Recenter(in, 0)
	if !equalFloats(in.Lon, []float64{0, 90, 180, 270}) {
		t.Errorf("Input longitudes were modified: %v", in.Lon)
	}
	if in.Mask[0][1] != 1 || len(in.Mask[0]) != 4 {
		t.Errorf("Input mask was modified: %v", in.Mask[0])
	}
}

// TestExtend tests extrapolated columns and the Antarctic band copy
func TestExtend(t *testing.T) {
	in := Grid{
		Lon: []float64{-180, -90, 0, 90, 180},
		Lat: []float64{-80, -70, -60, 0},
		Mask: [][]float64{
			{1, 1, 1, 1, 1},
			{1, 0, 0, 0, 1},
			{1, 0, 0, 0, 1},
			{1, 0, 1, 0, 1},
		},
	}
	out := Extend(in)

	wantLon := []float64{-270, -180, -90, 0, 90, 180, 270}
	if !equalFloats(out.Lon, wantLon) {
		t.Errorf("Expected lon %v, got %v", wantLon, out.Lon)
	}

	wantMask := [][]float64{
		{1, 1, 1, 1, 1, 1, 1}, // -80: boundary copied
		{1, 1, 0, 0, 0, 1, 1}, // -70: boundary copied
		{0, 1, 0, 0, 0, 1, 0}, // -60 is not below -60
		{0, 1, 0, 1, 0, 1, 0},
	}
	for j := range wantMask {
		if !equalFloats(out.Mask[j], wantMask[j]) {
			t.Errorf("Row %d: expected %v, got %v", j, wantMask[j], out.Mask[j])
		}
	}
	if !equalFloats(out.Lat, in.Lat) {
		t.Errorf("Expected latitudes unchanged, got %v", out.Lat)
	}
}

// TestLonRange tests min/max longitude
func TestLonRange(t *testing.T) {
	lo, hi := Grid{Lon: []float64{-10, 5, 30}}.LonRange()
	if lo != -10 || hi != 30 {
		t.Errorf("Expected (-10, 30), got (%f, %f)", lo, hi)
	}
	lo, hi = Grid{}.LonRange()
	if lo != 0 || hi != 0 {
		t.Errorf("Expected (0, 0) for empty grid, got (%f, %f)", lo, hi)
	}
}
