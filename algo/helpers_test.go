package algo

import (
	"testing"

	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
	"github.com/stretchr/testify/require"
)

func mustFace(t *testing.T, r store.Reader, id model.FaceID) model.Face {
	t.Helper()
	f, ok := r.Face(id)
	require.True(t, ok, "face %d", id)
	return f
}

func mustEdge(t *testing.T, r store.Reader, id model.EdgeID) model.Edge {
	t.Helper()
	e, ok := r.Edge(id)
	require.True(t, ok, "edge %d", id)
	return e
}

func mustVertex(t *testing.T, r store.Reader, id model.VertexID) model.Vertex {
	t.Helper()
	v, ok := r.Vertex(id)
	require.True(t, ok, "vertex %d", id)
	return v
}
