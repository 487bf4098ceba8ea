package store

// Snapshot is an immutable copy of a Store taken at one revision.
//
// A Snapshot is safe for concurrent use by multiple goroutines and is not
// affected by later writes to the Store it was taken from.
type Snapshot struct {
	tables
	revision uint64
}

// Revision returns the store revision the snapshot was taken at.
func (s *Snapshot) Revision() uint64 {
	return s.revision
}
