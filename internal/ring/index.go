package ring

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// indexedRing wraps a ring's bounding box for R-tree storage.
type indexedRing struct {
	id    int
	bound orb.Bound
}

// Bounds implements rtreego.Spatial interface.
func (r *indexedRing) Bounds() rtreego.Rect {
	point := rtreego.Point{r.bound.Min[0], r.bound.Min[1]}

	// R-tree requires non-zero dimensions
	const epsilon = 0.0001
	lonLength := r.bound.Max[0] - r.bound.Min[0]
	latLength := r.bound.Max[1] - r.bound.Min[1]
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

// candidateIndex narrows the classifier's containment tests to rings
// whose bounding boxes overlap. Containment in either direction implies
// overlapping boxes, so nothing is missed.
type candidateIndex struct {
	rtree *rtreego.Rtree
	items []*indexedRing
}

func newCandidateIndex(rings []orb.Ring) *candidateIndex {
	// 2D, min=25 children, max=50 children
	idx := &candidateIndex{
		rtree: rtreego.NewTree(2, 25, 50),
		items: make([]*indexedRing, len(rings)),
	}
	for i, r := range rings {
		item := &indexedRing{id: i}
		if len(r) > 0 {
			item.bound = r.Bound()
		}
		idx.items[i] = item
		idx.rtree.Insert(item)
	}
	return idx
}

// overlapping returns the ids of indexed rings whose boxes intersect the
// box of ring id (including id itself).
func (idx *candidateIndex) overlapping(id int) map[int]bool {
	spatials := idx.rtree.SearchIntersect(idx.items[id].Bounds())
	near := make(map[int]bool, len(spatials))
	for _, s := range spatials {
		near[s.(*indexedRing).id] = true
	}
	return near
}

// remove drops a finalized ring from the index.
func (idx *candidateIndex) remove(id int) {
	idx.rtree.Delete(idx.items[id])
}
