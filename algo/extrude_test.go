package algo

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
	"github.com/hupe1980/brepgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []geom.Point {
	return []geom.Point{
		geom.PtID(1, 0, 0, 0),
		geom.PtID(2, 1, 0, 0),
		geom.PtID(3, 1, 1, 0),
		geom.PtID(4, 0, 1, 0),
	}
}

func TestExtrude(t *testing.T) {
	t.Run("EmptyProfile", func(t *testing.T) {
		s := store.New()
		res, err := Extrude(s, nil, 1)
		require.ErrorIs(t, err, ErrEmptyProfile)
		assert.Equal(t, Result{}, res)
		assert.Zero(t, s.NumVertices())
		assert.Zero(t, s.NumEdges())
		assert.Zero(t, s.NumFaces())
		assert.Zero(t, s.Revision())
	})

	t.Run("Counts", func(t *testing.T) {
		rng := testutil.NewRNG(4711)
		for n := 3; n <= 12; n++ {
			s := store.New()
			prof := rng.StarProfile(n, 1, 2)
			d := 0.5 + rng.Float64()

			res, err := Extrude(s, prof, d)
			require.NoError(t, err)
			assert.True(t, res.OK())

			assert.Equal(t, 2*n, s.NumVertices())
			assert.Equal(t, 3*n, s.NumEdges())
			assert.Equal(t, n+2, s.NumFaces())
			assert.Equal(t, Counts{Vertices: 2 * n, Edges: 3 * n, Faces: n + 2}, res.Created)
			assert.Equal(t, res.Requested(), res.Created)

			for i, p := range prof {
				top := mustVertex(t, s, model.VertexID(n+i+1))
				assert.Equal(t, p.X, top.X)
				assert.Equal(t, p.Y, top.Y)
				assert.InDelta(t, p.Z+d, top.Z, 1e-12)
			}
		}
	})

	t.Run("Numbering", func(t *testing.T) {
		s := store.New()
		_, err := Extrude(s, square(), 2)
		require.NoError(t, err)

		// Base loop, top loop, verticals.
		assert.Equal(t, model.Edge{ID: 1, Start: 1, End: 2}, mustEdge(t, s, 1))
		assert.Equal(t, model.Edge{ID: 4, Start: 4, End: 1}, mustEdge(t, s, 4))
		assert.Equal(t, model.Edge{ID: 5, Start: 5, End: 6}, mustEdge(t, s, 5))
		assert.Equal(t, model.Edge{ID: 8, Start: 8, End: 5}, mustEdge(t, s, 8))
		assert.Equal(t, model.Edge{ID: 9, Start: 1, End: 5}, mustEdge(t, s, 9))
		assert.Equal(t, model.Edge{ID: 12, Start: 4, End: 8}, mustEdge(t, s, 12))

		assert.Equal(t, []model.EdgeID{1, 2, 3, 4}, mustFace(t, s, 1).EdgeIDs())
		assert.Equal(t, []model.EdgeID{5, 6, 7, 8}, mustFace(t, s, 2).EdgeIDs())
		assert.Equal(t, []model.EdgeID{9, 5, 10, 1}, mustFace(t, s, 3).EdgeIDs())
		assert.Equal(t, []model.EdgeID{12, 8, 9, 4}, mustFace(t, s, 6).EdgeIDs())

		assert.InDelta(t, 2.0, mustVertex(t, s, 7).Z, 1e-12)
	})

	t.Run("SideFacesAreClosedLoops", func(t *testing.T) {
		s := store.New()
		_, err := Extrude(s, square(), 1)
		require.NoError(t, err)

		for id := model.FaceID(3); id <= 6; id++ {
			f := mustFace(t, s, id)
			degree := map[model.VertexID]int{}
			for _, eid := range f.All() {
				e := mustEdge(t, s, eid)
				degree[e.Start]++
				degree[e.End]++
			}
			assert.Len(t, degree, 4, "face %d", id)
			for v, d := range degree {
				assert.Equal(t, 2, d, "face %d vertex %d", id, v)
			}
		}
	})

	t.Run("Normals", func(t *testing.T) {
		s := store.New()
		_, err := Extrude(s, square(), 1)
		require.NoError(t, err)

		assert.Equal(t, geom.V(0, 0, 1), FaceNormal(mustFace(t, s, 1), s))
		assert.Equal(t, geom.V(0, 0, 1), FaceNormal(mustFace(t, s, 2), s))
		for id := model.FaceID(3); id <= 6; id++ {
			n := FaceNormal(mustFace(t, s, id), s)
			assert.InDelta(t, 0, n.Z, 1e-12, "side face %d must be vertical", id)
			assert.InDelta(t, 1, n.Length(), 1e-12)
		}
	})

	t.Run("SinglePoint", func(t *testing.T) {
		s := store.New()
		res, err := Extrude(s, []geom.Point{geom.Pt(1, 2, 3)}, 1)
		require.NoError(t, err)
		assert.Equal(t, Counts{Vertices: 2, Edges: 3, Faces: 3}, res.Created)
		assert.Equal(t, model.Edge{ID: 1, Start: 1, End: 1}, mustEdge(t, s, 1))
	})

	t.Run("IDBase", func(t *testing.T) {
		s := store.New()
		res, err := Extrude(s, square(), 1, WithIDBase(100))
		require.NoError(t, err)

		assert.Equal(t, Range{First: 100, Count: 8}, res.Vertices)
		assert.Equal(t, int32(111), res.Edges.Last())
		assert.True(t, res.Faces.Contains(105))
		assert.False(t, res.Faces.Contains(106))
		assert.Equal(t, []model.EdgeID{108, 104, 109, 100}, mustFace(t, s, 102).EdgeIDs())
	})

	t.Run("IDOverflow", func(t *testing.T) {
		s := store.New()
		_, err := Extrude(s, square(), 1, WithIDBase(math.MaxInt32-5))
		require.ErrorIs(t, err, ErrIDOverflow)
		assert.Zero(t, s.NumVertices())
	})
}

func TestExtrudeCollisions(t *testing.T) {
	s := store.New()
	hexagon := make([]geom.Point, 6)
	for i := range hexagon {
		hexagon[i] = geom.RotateZ(geom.PtID(i+1, 1, 0, 0), 2*math.Pi*float64(i)/6)
	}

	_, err := Extrude(s, hexagon, 0.5)
	require.NoError(t, err)
	before := s.Snapshot()

	res, err := Extrude(s, square(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialSweep)
	assert.ErrorIs(t, err, ErrIDCollision)

	var se *SweepError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "extrude", se.Op)
	assert.Len(t, se.Failures, 8+12+6)
	assert.Equal(t, res.Failures, se.Failures)
	assert.Equal(t, Counts{}, res.Created)
	assert.False(t, res.OK())

	for _, f := range res.Failures {
		assert.Equal(t, FailureCollision, f.Kind)
	}
	assert.Equal(t, store.KindVertex, res.Failures[0].Entity)
	assert.Equal(t, int32(1), res.Failures[0].ID)

	// Existing entities are untouched.
	assert.Equal(t, before.NumVertices(), s.NumVertices())
	assert.Equal(t, before.NumEdges(), s.NumEdges())
	assert.Equal(t, before.NumFaces(), s.NumFaces())
	v, _ := s.Vertex(5)
	w, _ := before.Vertex(5)
	assert.Equal(t, w, v)

	assert.Contains(t, err.Error(), "26 collisions")
}

func TestExtrudeDisjointIDBases(t *testing.T) {
	s := store.New()

	_, err := Extrude(s, square(), 1)
	require.NoError(t, err)
	_, err = Extrude(s, geom.TranslateAll(square(), 5, 0, 0), 1, WithIDBase(101))
	require.NoError(t, err)

	assert.Equal(t, 16, s.NumVertices())
	assert.Equal(t, 24, s.NumEdges())
	assert.Equal(t, 12, s.NumFaces())
}

func TestExtrudeLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := store.New()
	_, err := Extrude(s, square(), 1, WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "sweep completed")
	require.Contains(t, buf.String(), `"faces":6`)

	buf.Reset()
	_, err = Extrude(s, square(), 1, WithLogger(logger))
	require.Error(t, err)
	require.Contains(t, buf.String(), "sweep request failed")
	require.Contains(t, buf.String(), "sweep completed with failures")
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "collision", FailureCollision.String())
	assert.Equal(t, "rejected", FailureRejected.String())
	assert.Equal(t, "Unknown(9)", FailureKind(9).String())
}
