package brepgo

import (
	"context"
	"log/slog"
	"time"

	"github.com/hupe1980/brepgo/algo"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
	"github.com/hupe1980/brepgo/topology"
)

const (
	opExtrude = "extrude"
	opRevolve = "revolve"
)

// Model is a boundary representation under construction.
//
// It owns one entity store and routes sweeps, checks and normal queries
// through it, logging each operation and reporting it to the configured
// MetricsCollector. Model is not safe for concurrent use; hand a Snapshot to
// concurrent readers instead.
type Model struct {
	store   *store.Store
	normals *algo.NormalCache
	opts    options
}

// Stats summarizes the contents of a model.
type Stats struct {
	Vertices int
	Edges    int
	Faces    int
	Revision uint64
}

// New creates an empty model.
func New(optFns ...Option) *Model {
	opts := applyOptions(optFns)
	s := store.New(opts.storeOptions...)

	return &Model{
		store:   s,
		normals: algo.NewNormalCache(s),
		opts:    opts,
	}
}

// Store returns the underlying entity store.
func (m *Model) Store() *store.Store {
	return m.store
}

// Snapshot returns an immutable copy of the current contents.
func (m *Model) Snapshot() *store.Snapshot {
	return m.store.Snapshot()
}

// Logger returns the model's logger.
func (m *Model) Logger() *Logger {
	return m.opts.logger
}

// Stats returns the current entity counts and store revision.
func (m *Model) Stats() Stats {
	return Stats{
		Vertices: m.store.NumVertices(),
		Edges:    m.store.NumEdges(),
		Faces:    m.store.NumFaces(),
		Revision: m.store.Revision(),
	}
}

// Extrude sweeps profile along +Z by distance. See algo.Extrude.
//
// A partial sweep returns the populated result together with an error that
// matches ErrPartialSweep.
func (m *Model) Extrude(ctx context.Context, profile []geom.Point, distance float64, optFns ...algo.SweepOption) (algo.Result, error) {
	start := time.Now()
	res, err := algo.Extrude(m.store, profile, distance, m.sweepOptions(ctx, optFns)...)
	m.recordSweep(ctx, opExtrude, res, err, time.Since(start))
	return res, err
}

// Revolve sweeps profile around the Z axis by angle radians. See algo.Revolve.
func (m *Model) Revolve(ctx context.Context, profile []geom.Point, axis algo.Axis, angle float64, optFns ...algo.SweepOption) (algo.Result, error) {
	start := time.Now()
	res, err := algo.Revolve(m.store, profile, axis, angle, m.sweepOptions(ctx, optFns)...)
	m.recordSweep(ctx, opRevolve, res, err, time.Since(start))
	return res, err
}

// Check runs the topology checks against the current contents.
func (m *Model) Check(ctx context.Context) topology.Report {
	start := time.Now()
	rep := topology.Check(m.store, m.opts.checkOptions...)

	m.opts.logger.LogCheck(ctx, rep)
	m.opts.metricsCollector.RecordCheck(rep.ErrorCount(),
		len(rep.OrphanVertices)+len(rep.UnusedEdges), time.Since(start))

	return rep
}

// FaceNormal returns the normal of the face with the given identity.
// Results are cached until the model changes. ok is false if the face does
// not exist.
func (m *Model) FaceNormal(id model.FaceID) (n geom.Vec3, ok bool) {
	return m.normals.Normal(id)
}

// sweepOptions prepends the model defaults so per-call options win.
// Per-entity sweep diagnostics are forwarded only at debug level; the
// summary is logged by recordSweep.
func (m *Model) sweepOptions(ctx context.Context, optFns []algo.SweepOption) []algo.SweepOption {
	opts := make([]algo.SweepOption, 0, len(optFns)+2)
	opts = append(opts, algo.WithSteps(m.opts.revolveSteps))
	if l := m.opts.logger.Logger; l.Enabled(ctx, slog.LevelDebug) {
		opts = append(opts, algo.WithLogger(l))
	}
	return append(opts, optFns...)
}

func (m *Model) recordSweep(ctx context.Context, op string, res algo.Result, err error, d time.Duration) {
	m.opts.logger.LogSweep(ctx, op, res, err)

	created := res.Created.Vertices + res.Created.Edges + res.Created.Faces
	m.opts.metricsCollector.RecordSweep(op, created, len(res.Failures), d, err)
}
