package store

import (
	"errors"
	"fmt"
)

// ErrMissingReference is returned when an edge or face refers to an entity
// that does not exist in the store.
var ErrMissingReference = errors.New("missing reference")

// Kind names an entity kind in diagnostics.
type Kind string

const (
	KindVertex Kind = "vertex"
	KindEdge   Kind = "edge"
	KindFace   Kind = "face"
)

// MissingReferenceError reports which referenced entity was not found.
//
// It matches ErrMissingReference via errors.Is.
type MissingReferenceError struct {
	// Kind is the kind of the missing entity.
	Kind Kind
	// ID is the identity of the missing entity.
	ID int32
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %d does not exist", ErrMissingReference, e.Kind, e.ID)
}

func (e *MissingReferenceError) Unwrap() error { return ErrMissingReference }
