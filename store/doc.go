// Package store provides the indexed entity store of the kernel.
//
// A Store owns every vertex, edge and face of one model. Entities are keyed
// by their integer identity and also kept in insertion order:
//
//	s := store.New()
//	s.AddVertex(1, 0, 0, 0)
//	s.AddVertex(2, 1, 0, 0)
//	e, err := s.AddEdge(1, 1, 2)
//	if errors.Is(err, store.ErrMissingReference) {
//	    // one of the endpoints is unknown
//	}
//	for i, v := range s.Vertices() {
//	    fmt.Println(i, v)
//	}
//
// # Identity
//
// Adding an entity whose identity already exists is a no-op that returns the
// existing entity: the first write wins and the new data is discarded.
// Edges require both endpoints to exist; faces require every edge to exist.
// A rejected insertion leaves the store untouched.
//
// # Concurrency
//
// Store has no internal locking. Build a model from a single goroutine, then
// either stop writing and share the Store read-only, or take a Snapshot and
// hand that to concurrent readers while writing continues.
package store
