package model

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/brepgo/geom"
)

// VertexID is the unique identifier of a vertex within a store.
type VertexID int32

// EdgeID is the unique identifier of an edge within a store.
type EdgeID int32

// FaceID is the unique identifier of a face within a store.
type FaceID int32

// Vertex is a point of the boundary representation.
type Vertex struct {
	ID      VertexID
	X, Y, Z float64
}

// Point returns the position of the vertex, carrying its identity.
func (v Vertex) Point() geom.Point {
	return geom.Point{ID: int(v.ID), X: v.X, Y: v.Y, Z: v.Z}
}

// String returns a string representation of the Vertex.
func (v Vertex) String() string {
	return fmt.Sprintf("V%d(%g, %g, %g)", v.ID, v.X, v.Y, v.Z)
}

// EdgeKey is the order-independent signature of an edge.
// Lo is never greater than Hi.
type EdgeKey struct {
	Lo, Hi VertexID
}

// Edge connects two vertices.
//
// The stored direction is kept as given, but two edges with swapped
// endpoints describe the same geometric edge (see Key).
type Edge struct {
	ID         EdgeID
	Start, End VertexID
}

// Key returns the undirected signature of the edge.
func (e Edge) Key() EdgeKey {
	if e.End < e.Start {
		return EdgeKey{Lo: e.End, Hi: e.Start}
	}
	return EdgeKey{Lo: e.Start, Hi: e.End}
}

// Reversed returns the edge with start and end swapped.
func (e Edge) Reversed() Edge {
	return Edge{ID: e.ID, Start: e.End, End: e.Start}
}

// String returns a string representation of the Edge.
func (e Edge) String() string {
	return fmt.Sprintf("E%d(%d->%d)", e.ID, e.Start, e.End)
}

// Face is a planar region bounded by an ordered list of edges.
type Face struct {
	ID    FaceID
	edges []EdgeID
}

// NewFace creates a face. The edge list is copied.
func NewFace(id FaceID, edges []EdgeID) Face {
	return Face{ID: id, edges: slices.Clone(edges)}
}

// Len returns the number of boundary edges.
func (f Face) Len() int {
	return len(f.edges)
}

// EdgeAt returns the i-th boundary edge. It panics if i is out of range.
func (f Face) EdgeAt(i int) EdgeID {
	return f.edges[i]
}

// EdgeIDs returns a copy of the boundary edge list.
func (f Face) EdgeIDs() []EdgeID {
	return slices.Clone(f.edges)
}

// All returns an iterator over the boundary edges in order.
func (f Face) All() iter.Seq2[int, EdgeID] {
	return func(yield func(int, EdgeID) bool) {
		for i, id := range f.edges {
			if !yield(i, id) {
				return
			}
		}
	}
}

// String returns a string representation of the Face.
func (f Face) String() string {
	return fmt.Sprintf("F%d%v", f.ID, f.edges)
}
