// Package topology detects structural defects in a boundary representation.
//
// Every check is a read-only pass over a store.Reader and returns the
// identities of the offending entities; nothing is ever mutated and no check
// fails. A nil reader yields empty results.
//
// # Errors
//
//   - DuplicateEdges: edges joining the same two vertices, in either direction
//   - DuplicateFaces: faces bounded by the same multiset of edges
//   - NormalInconsistencies: faces whose normal opposes the first face's
//
// # Warnings
//
//   - OrphanVertices: vertices used by no edge
//   - UnusedEdges: edges used by no face
//
// Check runs all of them concurrently and collects a Report:
//
//	rep := topology.Check(s.Snapshot())
//	if rep.HasErrors() {
//	    logger.Warn("topology errors", rep.LogAttrs()...)
//	}
//
// Check only reads. Callers that keep writing to a store while checking it
// must pass a Snapshot.
package topology
