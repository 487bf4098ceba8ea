package algo

import (
	"log/slog"
	"math"

	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
)

// Range is a contiguous block of identities, First through First+Count-1.
type Range struct {
	First int32
	Count int
}

// Last returns the last identity of the range. It equals First-1 for an
// empty range.
func (r Range) Last() int32 {
	return r.First + int32(r.Count) - 1
}

// Contains reports whether id lies within the range.
func (r Range) Contains(id int32) bool {
	return id >= r.First && int64(id) < int64(r.First)+int64(r.Count)
}

// Counts holds per-kind entity counts.
type Counts struct {
	Vertices int
	Edges    int
	Faces    int
}

// Result describes what a sweep requested and what it actually created.
type Result struct {
	// Vertices, Edges and Faces are the identity ranges the sweep requested.
	Vertices Range
	Edges    Range
	Faces    Range
	// Created counts the entities that were newly inserted.
	Created Counts
	// Failures lists every request that did not insert a new entity.
	Failures []Failure
}

// OK reports whether every requested entity was created.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

// Requested returns the number of entities the sweep asked for.
func (r Result) Requested() Counts {
	return Counts{Vertices: r.Vertices.Count, Edges: r.Edges.Count, Faces: r.Faces.Count}
}

// builder funnels all store writes of a sweep and records failures.
type builder struct {
	op     string
	s      *store.Store
	res    Result
	logger *slog.Logger
}

func newBuilder(op string, s *store.Store, base int32, c Counts, logger *slog.Logger) *builder {
	return &builder{
		op: op,
		s:  s,
		res: Result{
			Vertices: Range{First: base, Count: c.Vertices},
			Edges:    Range{First: base, Count: c.Edges},
			Faces:    Range{First: base, Count: c.Faces},
		},
		logger: logger,
	}
}

func (b *builder) vertex(id model.VertexID, x, y, z float64) {
	if b.s.ContainsVertex(id) {
		b.fail(FailureCollision, store.KindVertex, int32(id), ErrIDCollision)
		return
	}
	b.s.AddVertex(id, x, y, z)
	b.res.Created.Vertices++
}

func (b *builder) edge(id model.EdgeID, start, end model.VertexID) {
	if b.s.ContainsEdge(id) {
		b.fail(FailureCollision, store.KindEdge, int32(id), ErrIDCollision)
		return
	}
	if _, err := b.s.AddEdge(id, start, end); err != nil {
		b.fail(FailureRejected, store.KindEdge, int32(id), err)
		return
	}
	b.res.Created.Edges++
}

func (b *builder) face(id model.FaceID, edges []model.EdgeID) {
	if b.s.ContainsFace(id) {
		b.fail(FailureCollision, store.KindFace, int32(id), ErrIDCollision)
		return
	}
	if _, err := b.s.AddFace(id, edges); err != nil {
		b.fail(FailureRejected, store.KindFace, int32(id), err)
		return
	}
	b.res.Created.Faces++
}

func (b *builder) fail(kind FailureKind, entity store.Kind, id int32, err error) {
	b.logger.Debug("sweep request failed",
		"op", b.op,
		"kind", kind.String(),
		"entity", string(entity),
		"id", id,
		"error", err,
	)
	b.res.Failures = append(b.res.Failures, Failure{Kind: kind, Entity: entity, ID: id, Err: err})
}

// finish logs the outcome and converts recorded failures into an error.
func (b *builder) finish() (Result, error) {
	attrs := []any{
		"op", b.op,
		"vertices", b.res.Created.Vertices,
		"edges", b.res.Created.Edges,
		"faces", b.res.Created.Faces,
	}

	if len(b.res.Failures) > 0 {
		b.logger.Warn("sweep completed with failures", append(attrs, "failures", len(b.res.Failures))...)
		return b.res, &SweepError{Op: b.op, Failures: b.res.Failures}
	}

	b.logger.Debug("sweep completed", attrs...)
	return b.res, nil
}

// checkIDSpace verifies that base..base+n-1 fits into int32.
func checkIDSpace(base int32, n int) error {
	if int64(base)+int64(n)-1 > math.MaxInt32 {
		return ErrIDOverflow
	}
	return nil
}

// revolveCounts returns the entity counts of a revolve of n points in steps
// steps. The step count is bounded before any multiplication, so huge values
// report ErrIDOverflow instead of wrapping.
func revolveCounts(base int32, n, steps int) (Counts, error) {
	room := min(int64(math.MaxInt32)-int64(base)+1, math.MaxInt32)

	// Edges, (2·steps+1)·n, is the largest of the three counts.
	if int64(n) > room || int64(steps) > (room/int64(n)-1)/2 {
		return Counts{}, ErrIDOverflow
	}

	return Counts{
		Vertices: (steps + 1) * n,
		Edges:    (2*steps + 1) * n,
		Faces:    steps*n + 1,
	}, nil
}
