// Package algo provides the geometry algorithms that read from or write to a
// store: face normals, point-to-face projection, and the two sweep
// generators, Extrude and Revolve.
//
// # Face Queries
//
// FaceNormal uses only the first two edges of a face (three vertices) and
// falls back to DefaultNormal when the face is too small or references
// missing entities. ProjectPointToFace is an approximation: it returns the
// start vertex of the face's first edge, not a perpendicular projection.
//
// # Sweeps
//
// Both generators number their vertices, edges and faces locally, starting
// at the id base (1 unless WithIDBase is given):
//
//	s := store.New()
//	res, err := algo.Extrude(s, profile, 0.5)
//	if errors.Is(err, algo.ErrPartialSweep) {
//	    // some ids collided with existing entities; see res.Failures
//	}
//
// Running a second sweep on the same store with the default id base makes
// its low ids collide with the first sweep. Collisions are not fatal: the
// existing entity is kept, the request is recorded as a Failure, and the
// sweep finishes. Use WithIDBase to give each sweep its own id range.
//
// Revolve always turns about the Z axis; the Axis argument is reserved.
package algo
