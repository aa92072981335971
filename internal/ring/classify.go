package ring

import (
	"github.com/paulmach/orb"
)

// Tag classifies a ring. Outer rings are Land or Antarctica; every hole
// is a Lake.
type Tag int

const (
	TagLand Tag = iota
	TagLake
	TagAntarctica
)

// String returns the mark written to the output attribute table.
func (t Tag) String() string {
	switch t {
	case TagLand:
		return "Land"
	case TagLake:
		return "Lake"
	case TagAntarctica:
		return "Antarctica"
	default:
		return "Unknown"
	}
}

const (
	// antarcticArea (square degrees) and antarcticMeanLat select the
	// Antarctic outer ring.
	antarcticArea    = 1000.0
	antarcticMeanLat = -60.0
)

// Group is one outer ring and the holes it directly contains.
type Group struct {
	Outer     orb.Ring
	Holes     []orb.Ring
	Tag       Tag       // Land or Antarctica
	Area      float64   // Unsigned area of Outer
	HoleAreas []float64 // Unsigned area of each hole
}

// Classification is the output of Classify.
type Classification struct {
	Groups []Group

	// Swaps counts how often a tentative outer was found inside another
	// ring and replaced by it.
	Swaps int
}

// Classify sorts rings into outer boundaries and their holes.
//
// The first ring of the working list is taken as a tentative outer and
// compared with every other remaining ring:
//   - a ring it contains is recorded as one of its holes;
//   - a ring that contains it takes its place at the front of the list,
//     the holes found so far are dropped and the scan restarts.
//
// A scan that completes without a swap finalizes the outer and its holes
// and removes them from the list. Outers are oriented clockwise and holes
// counter-clockwise, in place. Only two nesting levels are modelled: an
// island inside a lake inside a continent is reported as a second hole.
func Classify(rings []orb.Ring) *Classification {
	out := &Classification{}
	if len(rings) == 0 {
		return out
	}

	work := make([]int, len(rings))
	for i := range work {
		work[i] = i
	}
	idx := newCandidateIndex(rings)

	for len(work) > 0 {
		outer := work[0]
		near := idx.overlapping(outer)

		var holes []int // Positions in work
		swapped := false
		for k := 1; k < len(work); k++ {
			cand := work[k]
			if !near[cand] {
				continue
			}
			if Contains(rings[outer], rings[cand]) {
				holes = append(holes, k)
			} else if Contains(rings[cand], rings[outer]) {
				work[0], work[k] = work[k], work[0]
				swapped = true
				out.Swaps++
				break
			}
		}
		if swapped {
			continue
		}

		out.Groups = append(out.Groups, finalize(rings, outer, work, holes))

		// Drop the outer and its holes, keeping the rest in order
		drop := make(map[int]bool, len(holes)+1)
		drop[0] = true
		idx.remove(outer)
		for _, k := range holes {
			drop[k] = true
			idx.remove(work[k])
		}
		rest := work[:0]
		for k, id := range work {
			if !drop[k] {
				rest = append(rest, id)
			}
		}
		work = rest
	}
	return out
}

// finalize orients and tags a confirmed outer ring and its holes.
func finalize(rings []orb.Ring, outer int, work []int, holes []int) Group {
	// Outer should be clockwise
	r := rings[outer]
	Orient(r, orb.CW)

	g := Group{
		Outer: r,
		Tag:   TagLand,
		Area:  Area(r),
	}
	if g.Area > antarcticArea && MeanLat(r) < antarcticMeanLat {
		g.Tag = TagAntarctica
	}

	// Holes should be counter-clockwise
	for _, k := range holes {
		h := rings[work[k]]
		Orient(h, orb.CCW)
		g.Holes = append(g.Holes, h)
		g.HoleAreas = append(g.HoleAreas, Area(h))
	}
	return g
}
