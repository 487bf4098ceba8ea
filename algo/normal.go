package algo

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
)

// DefaultNormal is returned for faces whose normal cannot be computed.
// It must not be modified.
var DefaultNormal = geom.Vec3{X: 0, Y: 0, Z: 1}

// FaceNormal computes the normal of f from its first two edges.
//
// With v1 = edge₁.start, v2 = edge₁.end and v3 = edge₂.end the result is
// (v2−v1) × (v3−v1), normalized when its length exceeds geom.Epsilon and
// returned as is otherwise. Faces with fewer than three edges, or whose
// first two edges or those three vertices are missing, yield DefaultNormal.
//
// Only three vertices are considered, so the result is exact for planar
// convex faces and an approximation for anything else.
func FaceNormal(f model.Face, r store.Reader) geom.Vec3 {
	if r == nil || f.Len() < 3 {
		return DefaultNormal
	}

	e1, ok1 := r.Edge(f.EdgeAt(0))
	e2, ok2 := r.Edge(f.EdgeAt(1))
	if !ok1 || !ok2 {
		return DefaultNormal
	}

	v1, ok1 := r.Vertex(e1.Start)
	v2, ok2 := r.Vertex(e1.End)
	v3, ok3 := r.Vertex(e2.End)
	if !ok1 || !ok2 || !ok3 {
		return DefaultNormal
	}

	p1 := v1.Point()
	n := v2.Point().Sub(p1).Cross(v3.Point().Sub(p1))

	// A degenerate (near-zero) normal is returned unnormalized.
	n, _ = n.Normalize(geom.Epsilon)
	return n
}

// FaceNormalByID looks up a face and computes its normal.
// ok is false if the face does not exist.
func FaceNormalByID(r store.Reader, id model.FaceID) (n geom.Vec3, ok bool) {
	if r == nil {
		return geom.Vec3{}, false
	}
	f, ok := r.Face(id)
	if !ok {
		return geom.Vec3{}, false
	}
	return FaceNormal(f, r), true
}

// ProjectPointToFace approximates the projection of p onto f by returning
// the start vertex of the face's first edge.
//
// p is returned unchanged if the face has no edges, its first edge is
// missing, or that edge's start vertex is missing.
func ProjectPointToFace(p geom.Point, f model.Face, r store.Reader) geom.Point {
	if r == nil || f.Len() == 0 {
		return p
	}

	e, ok := r.Edge(f.EdgeAt(0))
	if !ok {
		return p
	}

	v, ok := r.Vertex(e.Start)
	if !ok {
		return p
	}

	return v.Point()
}
