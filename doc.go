// Package brepgo provides a minimal boundary-representation (B-rep) kernel
// for Go.
//
// A model is a set of vertices, edges and faces keyed by integer identity.
// Solids are built by sweeping planar profiles (extrude, revolve) and are
// validated by a topology checker that reports duplicate edges, duplicate
// faces and inconsistent face normals.
//
// # Quick Start
//
//	ctx := context.Background()
//	m := brepgo.New(brepgo.WithLogger(brepgo.NewTextLogger(slog.LevelInfo)))
//
//	hex, _ := profile.Regular(6, 1, 0)
//	res, err := m.Extrude(ctx, hex, 0.5)
//	if err != nil {
//	    // errors.Is(err, brepgo.ErrPartialSweep) reports a sweep that
//	    // collided with existing identities; res lists the failures.
//	}
//
//	rep := m.Check(ctx)
//	fmt.Print(rep)
//
// # Identities
//
// Sweeps number their vertices, edges and faces from an identity base,
// 1 by default. Several sweeps on one model collide unless each is given its
// own base:
//
//	m.Extrude(ctx, head, 0.5)
//	m.Extrude(ctx, shaft, 3.0, algo.WithIDBase(100))
//
// A collision never overwrites: the existing entity is kept, and the sweep
// returns a *SweepError listing every request that did not create anything.
//
// # Packages
//
//   - store: the entity store, read-only Reader and immutable Snapshot
//   - geom: points, vectors and rigid transforms
//   - algo: face normals, projection, extrude and revolve
//   - topology: the topology checker
//   - profile: regular polygons, rectangles and orb rings as sweep profiles
//
// # Concurrency
//
// A Model and its Store have a single writer and no internal locking.
// Snapshots are immutable and may be read from any number of goroutines;
// the topology checker runs its checks concurrently on one reader.
package brepgo
