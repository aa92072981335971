// Package maskio reads and writes land-sea mask grids as netCDF files.
package maskio

import (
	"fmt"
	"os"

	"github.com/beetlebugorg/coastline/internal/grid"
	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// Vars names the netCDF variables holding the grid.
type Vars struct {
	Lon  string // 1-D, length nlon
	Lat  string // 1-D, length nlat
	Mask string // 2-D, shape (nlat, nlon)
}

// DefaultVars returns the conventional variable names.
func DefaultVars() Vars {
	return Vars{
		Lon:  "lon",
		Lat:  "lat",
		Mask: "mask",
	}
}

// landThreshold binarises the mask: values at or above it are land.
const landThreshold = 0.5

// LoadNetCDF reads a mask grid from the netCDF file at path.
//
// Mask values are binarised at 0.5; NaN and fill values below the
// threshold are sea. The result is validated before it is returned.
func LoadNetCDF(path string, vars Vars) (grid.Grid, error) {
	ff, err := os.Open(path)
	if err != nil {
		return grid.Grid{}, err
	}
	defer ff.Close()

	f, err := cdf.Open(ff)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("maskio: open %s: %w", path, err)
	}

	lon, err := readVariable(f, vars.Lon)
	if err != nil {
		return grid.Grid{}, err
	}
	lat, err := readVariable(f, vars.Lat)
	if err != nil {
		return grid.Grid{}, err
	}

	dims := f.Header.Lengths(vars.Mask)
	if len(dims) != 2 {
		return grid.Grid{}, fmt.Errorf("maskio: variable %s has %d dimensions, want 2", vars.Mask, len(dims))
	}
	if dims[0] != len(lat) || dims[1] != len(lon) {
		mismatch := &grid.ErrShapeMismatch{Row: -1, Rows: dims[0], Cols: dims[1], WantRows: len(lat), WantCols: len(lon)}
		if dims[0] == len(lat) {
			mismatch.Row = 0 // every row has the wrong length
		}
		return grid.Grid{}, fmt.Errorf("maskio: %s: %w", path, mismatch)
	}
	values, err := readVariable(f, vars.Mask)
	if err != nil {
		return grid.Grid{}, err
	}

	// Stage in a dense array so rows are addressed as (lat, lon)
	data := sparse.ZerosDense(dims...)
	for i, v := range values {
		if v >= landThreshold {
			data.Elements[i] = 1
		}
	}

	g := grid.Grid{Lon: lon, Lat: lat, Mask: make([][]float64, dims[0])}
	for j := range g.Mask {
		row := make([]float64, dims[1])
		for i := range row {
			row[i] = data.Get(j, i)
		}
		g.Mask[j] = row
	}
	if err := g.Validate(); err != nil {
		return grid.Grid{}, fmt.Errorf("maskio: %s: %w", path, err)
	}
	return g, nil
}

// readVariable reads a whole numeric variable as float64.
func readVariable(f *cdf.File, name string) ([]float64, error) {
	if f.Header.Lengths(name) == nil {
		return nil, fmt.Errorf("maskio: variable %s not found", name)
	}
	r := f.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("maskio: reading %s: %w", name, err)
	}

	var out []float64
	switch v := buf.(type) {
	case []float64:
		out = v
	case []float32:
		out = make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
	case []int32:
		out = make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
	case []int16:
		out = make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
	case []int8:
		out = make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
	default:
		return nil, fmt.Errorf("maskio: variable %s has unsupported type %T", name, buf)
	}
	return out, nil
}

// WriteNetCDF writes g to w with the mask stored as float32. Mask values
// are written unchanged, NaN included.
func WriteNetCDF(w *os.File, g grid.Grid, vars Vars) error {
	if err := g.Validate(); err != nil {
		return err
	}
	ny, nx := len(g.Lat), len(g.Lon)

	h := cdf.NewHeader([]string{"lat", "lon"}, []int{ny, nx})
	h.AddAttribute("", "comment", "land-sea mask (1 land, 0 sea)")
	h.AddVariable(vars.Lon, []string{"lon"}, []float64{0})
	h.AddAttribute(vars.Lon, "units", "degrees_east")
	h.AddVariable(vars.Lat, []string{"lat"}, []float64{0})
	h.AddAttribute(vars.Lat, "units", "degrees_north")
	h.AddVariable(vars.Mask, []string{"lat", "lon"}, []float32{0})
	h.Define()

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("maskio: create header: %w", err)
	}

	mask := sparse.ZerosDense(ny, nx)
	for j, row := range g.Mask {
		for i, v := range row {
			mask.Set(v, j, i)
		}
	}
	mask32 := make([]float32, len(mask.Elements))
	for i, e := range mask.Elements {
		mask32[i] = float32(e)
	}

	for _, v := range []struct {
		name string
		data interface{}
	}{
		{vars.Lon, g.Lon},
		{vars.Lat, g.Lat},
		{vars.Mask, mask32},
	} {
		end := f.Header.Lengths(v.name)
		start := make([]int, len(end))
		if _, err := f.Writer(v.name, start, end).Write(v.data); err != nil {
			return fmt.Errorf("maskio: writing %s: %w", v.name, err)
		}
	}
	return nil
}
