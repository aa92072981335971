package grid

// Recenter shifts the longitude domain to [centerLon-180, centerLon+180]
// and appends one halo column (first column + 360) so the result is
// longitude-cyclic.
//
// When centerLon-180 or centerLon+180 falls strictly inside the existing
// range, the grid is split there and the part left of the cut is moved by
// 360 degrees so the two parts concatenate in ascending order. Otherwise
// the columns keep their order. The output has len(g.Lon)+1 columns.
func Recenter(g Grid, centerLon float64) Grid {
	west := centerLon - 180.0
	east := centerLon + 180.0
	lo, hi := g.LonRange()

	// Column order and the longitude offset applied to each output column
	var order []int
	var offset []float64

	split := func(cut, rightShift, leftShift float64) {
		for i, lon := range g.Lon {
			if lon >= cut {
				order = append(order, i)
				offset = append(offset, rightShift)
			}
		}
		for i, lon := range g.Lon {
			if lon < cut {
				order = append(order, i)
				offset = append(offset, leftShift)
			}
		}
	}

	switch {
	case west > lo && west < hi:
		split(west, 0, 360.0)
	case east > lo && east < hi:
		split(east, -360.0, 0)
	default:
		for i := range g.Lon {
			order = append(order, i)
			offset = append(offset, 0)
		}
	}

	n := len(order)
	out := Grid{
		Lon:  make([]float64, n+1),
		Lat:  append([]float64(nil), g.Lat...),
		Mask: make([][]float64, len(g.Mask)),
	}
	for k, i := range order {
		out.Lon[k] = g.Lon[i] + offset[k]
	}
	if n > 0 {
		out.Lon[n] = out.Lon[0] + 360.0
	}

	for j, row := range g.Mask {
		newRow := make([]float64, n+1)
		for k, i := range order {
			newRow[k] = row[i]
		}
		if n > 0 {
			newRow[n] = newRow[0]
		}
		out.Mask[j] = newRow
	}
	return out
}

// Extend adds one linearly extrapolated longitude on each side of the
// grid so the tracer does not close contours on the raster edge.
//
// The new columns are sea, except in rows south of AntarcticLat where they
// repeat the adjacent boundary column; this keeps the tracer from drawing a
// false coastline across the date line near the pole. The output has
// len(g.Lon)+2 columns. g must have at least two columns.
func Extend(g Grid) Grid {
	n := len(g.Lon)
	out := Grid{
		Lon:  make([]float64, n+2),
		Lat:  append([]float64(nil), g.Lat...),
		Mask: make([][]float64, len(g.Mask)),
	}
	out.Lon[0] = 2.0*g.Lon[0] - g.Lon[1]
	copy(out.Lon[1:], g.Lon)
	out.Lon[n+1] = 2.0*g.Lon[n-1] - g.Lon[n-2]

	first := make([]float64, len(g.Mask))
	last := make([]float64, len(g.Mask))
	g.column(0, first)
	g.column(n-1, last)

	for j, row := range g.Mask {
		newRow := make([]float64, n+2)
		copy(newRow[1:], row)
		if g.Lat[j] < AntarcticLat {
			newRow[0] = first[j]
			newRow[n+1] = last[j]
		}
		out.Mask[j] = newRow
	}
	return out
}
