package algo

import (
	"fmt"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
)

// Extrude sweeps a closed profile along +Z by distance and writes the
// resulting prism into s.
//
// For N profile points and id base b the sweep creates:
//
//	vertices  b..b+N-1      base loop at the profile positions
//	          b+N..b+2N-1   top loop, z + distance
//	edges     b..b+N-1      base loop, i -> i+1 (wrapping)
//	          b+N..b+2N-1   top loop
//	          b+2N..b+3N-1  vertical, base[i] -> top[i]
//	faces     b             base (base loop edges)
//	          b+1           top (top loop edges)
//	          b+2..b+N+1    side quads [vertical i, top i, vertical i+1, base i]
//
// Each side quad uses the top edge of its own column, top i, so the four
// edges form a closed loop around the quad.
//
// An empty profile returns ErrEmptyProfile without touching s. Requests
// whose identity already exists are recorded in the Result and reported
// through a *SweepError; the remaining entities are still created.
func Extrude(s *store.Store, profile []geom.Point, distance float64, optFns ...SweepOption) (Result, error) {
	if len(profile) == 0 {
		return Result{}, fmt.Errorf("extrude: %w", ErrEmptyProfile)
	}

	opts := applySweepOptions(optFns)
	n := len(profile)
	base := opts.IDBase

	if err := checkIDSpace(base, 3*n); err != nil {
		return Result{}, fmt.Errorf("extrude: %w", err)
	}

	s.ReserveVertices(2 * n)
	s.ReserveEdges(4 * n)
	s.ReserveFaces(n + 2)

	b := newBuilder("extrude", s, base, Counts{Vertices: 2 * n, Edges: 3 * n, Faces: n + 2}, opts.Logger)

	baseVertex := func(i int) model.VertexID { return model.VertexID(base + int32(i)) }
	topVertex := func(i int) model.VertexID { return model.VertexID(base + int32(n+i)) }

	for i, p := range profile {
		b.vertex(baseVertex(i), p.X, p.Y, p.Z)
	}
	for i, p := range profile {
		b.vertex(topVertex(i), p.X, p.Y, p.Z+distance)
	}

	baseEdge := func(i int) model.EdgeID { return model.EdgeID(base + int32(i)) }
	topEdge := func(i int) model.EdgeID { return model.EdgeID(base + int32(n+i)) }
	verticalEdge := func(i int) model.EdgeID { return model.EdgeID(base + int32(2*n+i)) }

	for i := range n {
		b.edge(baseEdge(i), baseVertex(i), baseVertex((i+1)%n))
	}
	for i := range n {
		b.edge(topEdge(i), topVertex(i), topVertex((i+1)%n))
	}
	for i := range n {
		b.edge(verticalEdge(i), baseVertex(i), topVertex(i))
	}

	baseLoop := make([]model.EdgeID, n)
	topLoop := make([]model.EdgeID, n)
	for i := range n {
		baseLoop[i] = baseEdge(i)
		topLoop[i] = topEdge(i)
	}
	b.face(model.FaceID(base), baseLoop)
	b.face(model.FaceID(base+1), topLoop)

	for i := range n {
		next := (i + 1) % n
		b.face(model.FaceID(base+2+int32(i)), []model.EdgeID{
			verticalEdge(i),
			topEdge(i),
			verticalEdge(next),
			baseEdge(i),
		})
	}

	return b.finish()
}
