package store

import (
	"slices"

	"github.com/hupe1980/brepgo/model"
)

// Store is the in-memory entity store of one model.
//
// Lookups by identity are O(1) on average; iteration follows insertion
// order. Store is not safe for concurrent mutation.
type Store struct {
	tables
	revision uint64
}

// Compile-time interface checks
var (
	_ Reader = (*Store)(nil)
	_ Reader = (*Snapshot)(nil)
)

// New creates an empty Store.
func New(optFns ...Option) *Store {
	var opts Options
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	return &Store{
		tables: newTables(opts.VertexCapacity, opts.EdgeCapacity, opts.FaceCapacity),
	}
}

// AddVertex inserts a vertex and returns it.
//
// If a vertex with the same identity already exists it is returned unchanged
// and the given coordinates are discarded.
func (s *Store) AddVertex(id model.VertexID, x, y, z float64) model.Vertex {
	if v, ok := s.Vertex(id); ok {
		return v
	}

	v := model.Vertex{ID: id, X: x, Y: y, Z: z}
	s.vertexIndex[id] = len(s.vertices)
	s.vertices = append(s.vertices, v)
	s.revision++

	return v
}

// AddEdge inserts an edge from start to end and returns it.
//
// If an edge with the same identity already exists it is returned unchanged.
// Otherwise both vertices must exist; if one does not, a
// *MissingReferenceError is returned and nothing is recorded.
func (s *Store) AddEdge(id model.EdgeID, start, end model.VertexID) (model.Edge, error) {
	if e, ok := s.Edge(id); ok {
		return e, nil
	}

	for _, vid := range [2]model.VertexID{start, end} {
		if !s.ContainsVertex(vid) {
			return model.Edge{}, &MissingReferenceError{Kind: KindVertex, ID: int32(vid)}
		}
	}

	e := model.Edge{ID: id, Start: start, End: end}
	s.edgeIndex[id] = len(s.edges)
	s.edges = append(s.edges, e)
	s.revision++

	return e, nil
}

// AddFace inserts a face bounded by the given edges and returns it.
//
// If a face with the same identity already exists it is returned unchanged.
// Otherwise every edge must exist; if one does not, a *MissingReferenceError
// is returned and nothing is recorded. The edge list is copied.
func (s *Store) AddFace(id model.FaceID, edgeIDs []model.EdgeID) (model.Face, error) {
	if f, ok := s.Face(id); ok {
		return f, nil
	}

	for _, eid := range edgeIDs {
		if !s.ContainsEdge(eid) {
			return model.Face{}, &MissingReferenceError{Kind: KindEdge, ID: int32(eid)}
		}
	}

	f := model.NewFace(id, edgeIDs)
	s.faceIndex[id] = len(s.faces)
	s.faces = append(s.faces, f)
	s.revision++

	return f, nil
}

// ReserveVertices makes room for n more vertices without reallocating.
// It has no observable effect besides performance.
func (s *Store) ReserveVertices(n int) {
	if n > 0 {
		s.vertices = slices.Grow(s.vertices, n)
	}
}

// ReserveEdges makes room for n more edges without reallocating.
func (s *Store) ReserveEdges(n int) {
	if n > 0 {
		s.edges = slices.Grow(s.edges, n)
	}
}

// ReserveFaces makes room for n more faces without reallocating.
func (s *Store) ReserveFaces(n int) {
	if n > 0 {
		s.faces = slices.Grow(s.faces, n)
	}
}

// Revision returns a counter that increases with every successful
// insertion. Derived data computed at one revision is valid for as long as
// the revision does not change.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Snapshot returns an immutable copy of the current contents.
func (s *Store) Snapshot() *Snapshot {
	return &Snapshot{tables: s.clone(), revision: s.revision}
}
