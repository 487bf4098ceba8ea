package store

import (
	"iter"
	"maps"

	"github.com/hupe1980/brepgo/model"
)

// Reader is the read-only view of a model.
//
// Algorithms and the topology checker depend on Reader rather than on
// *Store, so they accept a live Store and a Snapshot alike.
type Reader interface {
	Vertex(id model.VertexID) (model.Vertex, bool)
	Edge(id model.EdgeID) (model.Edge, bool)
	Face(id model.FaceID) (model.Face, bool)

	// Vertices iterates vertices in insertion order, yielding the position
	// of each vertex in that order alongside it.
	Vertices() iter.Seq2[int, model.Vertex]
	Edges() iter.Seq2[int, model.Edge]
	Faces() iter.Seq2[int, model.Face]

	NumVertices() int
	NumEdges() int
	NumFaces() int
}

// tables is the shared storage of Store and Snapshot: one insertion-ordered
// slice per kind plus an identity index holding positions into that slice.
type tables struct {
	vertices []model.Vertex
	edges    []model.Edge
	faces    []model.Face

	vertexIndex map[model.VertexID]int
	edgeIndex   map[model.EdgeID]int
	faceIndex   map[model.FaceID]int
}

func newTables(nv, ne, nf int) tables {
	return tables{
		vertices:    make([]model.Vertex, 0, nv),
		edges:       make([]model.Edge, 0, ne),
		faces:       make([]model.Face, 0, nf),
		vertexIndex: make(map[model.VertexID]int, nv),
		edgeIndex:   make(map[model.EdgeID]int, ne),
		faceIndex:   make(map[model.FaceID]int, nf),
	}
}

// Vertex returns the vertex with the given identity.
func (t *tables) Vertex(id model.VertexID) (model.Vertex, bool) {
	i, ok := t.vertexIndex[id]
	if !ok {
		return model.Vertex{}, false
	}
	return t.vertices[i], true
}

// Edge returns the edge with the given identity.
func (t *tables) Edge(id model.EdgeID) (model.Edge, bool) {
	i, ok := t.edgeIndex[id]
	if !ok {
		return model.Edge{}, false
	}
	return t.edges[i], true
}

// Face returns the face with the given identity.
func (t *tables) Face(id model.FaceID) (model.Face, bool) {
	i, ok := t.faceIndex[id]
	if !ok {
		return model.Face{}, false
	}
	return t.faces[i], true
}

// ContainsVertex reports whether a vertex with the given identity exists.
func (t *tables) ContainsVertex(id model.VertexID) bool {
	_, ok := t.vertexIndex[id]
	return ok
}

// ContainsEdge reports whether an edge with the given identity exists.
func (t *tables) ContainsEdge(id model.EdgeID) bool {
	_, ok := t.edgeIndex[id]
	return ok
}

// ContainsFace reports whether a face with the given identity exists.
func (t *tables) ContainsFace(id model.FaceID) bool {
	_, ok := t.faceIndex[id]
	return ok
}

// Vertices iterates vertices in insertion order.
func (t *tables) Vertices() iter.Seq2[int, model.Vertex] {
	return seq(t.vertices)
}

// Edges iterates edges in insertion order.
func (t *tables) Edges() iter.Seq2[int, model.Edge] {
	return seq(t.edges)
}

// Faces iterates faces in insertion order.
func (t *tables) Faces() iter.Seq2[int, model.Face] {
	return seq(t.faces)
}

// NumVertices returns the number of vertices.
func (t *tables) NumVertices() int { return len(t.vertices) }

// NumEdges returns the number of edges.
func (t *tables) NumEdges() int { return len(t.edges) }

// NumFaces returns the number of faces.
func (t *tables) NumFaces() int { return len(t.faces) }

// clone returns a deep copy. Entities are immutable values, so copying the
// slices and maps is enough.
func (t *tables) clone() tables {
	c := newTables(len(t.vertices), len(t.edges), len(t.faces))
	c.vertices = append(c.vertices, t.vertices...)
	c.edges = append(c.edges, t.edges...)
	c.faces = append(c.faces, t.faces...)
	maps.Copy(c.vertexIndex, t.vertexIndex)
	maps.Copy(c.edgeIndex, t.edgeIndex)
	maps.Copy(c.faceIndex, t.faceIndex)
	return c
}

func seq[T any](items []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range items {
			if !yield(i, item) {
				return
			}
		}
	}
}
