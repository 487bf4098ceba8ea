package algo

import (
	"fmt"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
)

// Axis describes a rotation axis.
//
// It is reserved: Revolve currently always rotates about the Z axis through
// the origin and ignores the axis it is given.
type Axis struct {
	Point     geom.Point
	Direction geom.Vec3
}

// ZAxis is the axis Revolve actually rotates about.
var ZAxis = Axis{Direction: geom.Vec3{Z: 1}}

// Revolve sweeps a closed profile about the Z axis by angle radians in a
// fixed number of equal steps (DefaultRevolveSteps unless WithSteps is
// given) and writes the result into s.
//
// For N profile points, S steps and id base b the sweep creates:
//
//	vertices  (S+1)·N   step s, point i at b + s·N + i, rotated by s·angle/S
//	edges     (S+1)·N   loop edges of every step, b + s·N + i, i -> i+1
//	          S·N       ribs, b + (S+1)·N + i·S + s, step s -> step s+1
//	faces     1         end face b over the step-0 loop
//	          S·N       side quads b + 1 + s·N + i:
//	                    [rib(i,s), loop(s+1,i), rib(i+1,s), loop(s,i)]
//
// The side quads are bounded by two ribs and two loop edges rather than by
// four loop edges, so each quad is a closed loop of adjacent edges.
//
// An empty profile returns ErrEmptyProfile and fewer than one step returns
// ErrInvalidSteps, both without touching s. ErrIDOverflow is returned, also
// without touching s, if the step count leaves no room in the int32 identity
// space. Failures of individual requests are handled as in Extrude.
func Revolve(s *store.Store, profile []geom.Point, axis Axis, angle float64, optFns ...SweepOption) (Result, error) {
	if len(profile) == 0 {
		return Result{}, fmt.Errorf("revolve: %w", ErrEmptyProfile)
	}

	opts := applySweepOptions(optFns)
	if opts.Steps < 1 {
		return Result{}, fmt.Errorf("revolve: %w: %d", ErrInvalidSteps, opts.Steps)
	}

	n := len(profile)
	steps := opts.Steps
	base := opts.IDBase

	c, err := revolveCounts(base, n, steps)
	if err != nil {
		return Result{}, fmt.Errorf("revolve: %w", err)
	}

	s.ReserveVertices(c.Vertices)
	s.ReserveEdges(c.Edges)
	s.ReserveFaces(c.Faces)

	b := newBuilder("revolve", s, base, c, opts.Logger)

	vertex := func(step, i int) model.VertexID {
		return model.VertexID(base + int32(step*n+i))
	}
	loop := func(step, i int) model.EdgeID {
		return model.EdgeID(base + int32(step*n+i))
	}
	rib := func(i, step int) model.EdgeID {
		return model.EdgeID(base + int32((steps+1)*n+i*steps+step))
	}

	stepAngle := angle / float64(steps)
	for step := 0; step <= steps; step++ {
		theta := stepAngle * float64(step)
		for i, p := range profile {
			r := geom.RotateZ(p, theta)
			b.vertex(vertex(step, i), r.X, r.Y, r.Z)
		}
	}

	for step := 0; step <= steps; step++ {
		for i := range n {
			b.edge(loop(step, i), vertex(step, i), vertex(step, (i+1)%n))
		}
	}
	for i := range n {
		for step := range steps {
			b.edge(rib(i, step), vertex(step, i), vertex(step+1, i))
		}
	}

	end := make([]model.EdgeID, n)
	for i := range n {
		end[i] = loop(0, i)
	}
	b.face(model.FaceID(base), end)

	for step := range steps {
		for i := range n {
			next := (i + 1) % n
			b.face(model.FaceID(base+1+int32(step*n+i)), []model.EdgeID{
				rib(i, step),
				loop(step+1, i),
				rib(next, step),
				loop(step, i),
			})
		}
	}

	return b.finish()
}
