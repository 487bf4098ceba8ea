package topology

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
)

// OrphanVertices returns the vertices that no edge starts or ends at, in
// insertion order.
func OrphanVertices(r store.Reader) []model.VertexID {
	if r == nil {
		return nil
	}

	used := roaring.New()
	for _, e := range r.Edges() {
		used.Add(bit(int32(e.Start)))
		used.Add(bit(int32(e.End)))
	}

	var orphans []model.VertexID
	for _, v := range r.Vertices() {
		if !used.Contains(bit(int32(v.ID))) {
			orphans = append(orphans, v.ID)
		}
	}

	return orphans
}

// UnusedEdges returns the edges that bound no face, in insertion order.
func UnusedEdges(r store.Reader) []model.EdgeID {
	if r == nil {
		return nil
	}

	used := roaring.New()
	for _, f := range r.Faces() {
		for _, eid := range f.All() {
			used.Add(bit(int32(eid)))
		}
	}

	var unused []model.EdgeID
	for _, e := range r.Edges() {
		if !used.Contains(bit(int32(e.ID))) {
			unused = append(unused, e.ID)
		}
	}

	return unused
}

// bit maps an int32 identity onto the uint32 universe of a bitmap.
// Negative identities land in the upper half; the mapping is bijective.
func bit(id int32) uint32 {
	return uint32(id)
}
