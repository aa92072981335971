package ring

import (
	"sort"

	"github.com/paulmach/orb"
)

// SortByArea sorts rings by their unsigned planar area.
//
// Large rings are more likely to be outer bounds (continents), small rings
// inner bounds (lakes). The sort is stable, so rings of equal area keep
// their input order. The input slice is not modified.
func SortByArea(rings []orb.Ring, descend bool) ([]orb.Ring, []float64) {
	areas := make([]float64, len(rings))
	order := make([]int, len(rings))
	for i, r := range rings {
		areas[i] = Area(r)
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		if descend {
			return areas[order[a]] > areas[order[b]]
		}
		return areas[order[a]] < areas[order[b]]
	})

	sortedRings := make([]orb.Ring, len(rings))
	sortedAreas := make([]float64, len(rings))
	for k, i := range order {
		sortedRings[k] = rings[i]
		sortedAreas[k] = areas[i]
	}
	return sortedRings, sortedAreas
}
