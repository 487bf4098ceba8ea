// Package geom provides the pure point and vector math of the kernel.
//
// Nothing in this package touches a store. Transforms return new values and
// carry the identity of their input point through unchanged, so a transformed
// profile can be fed straight into a sweep.
//
// # Transforms
//
//	p := geom.Pt(1, 1, 1)
//	d := geom.Distance(geom.Pt(0, 0, 0), p) // √3
//	q := geom.Translate(p, 1, 2, 3)
//	r := geom.RotateZ(p, math.Pi/2)       // (-1, 1, 1)
//	s := geom.Scale(p, 2)
//
// # Vectors
//
// Vec3 is a free vector (no identity). Cross, Dot and Normalize are what the
// face-normal routine in package algo is built from.
package geom
