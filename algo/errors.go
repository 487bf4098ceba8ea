package algo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/brepgo/store"
)

var (
	// ErrEmptyProfile is returned when a sweep is given no profile points.
	ErrEmptyProfile = errors.New("profile is empty")

	// ErrInvalidSteps is returned when a revolve is configured with fewer
	// than one angular step.
	ErrInvalidSteps = errors.New("revolve steps must be positive")

	// ErrIDOverflow is returned when the ids a sweep would assign do not fit
	// into the int32 identity space.
	ErrIDOverflow = errors.New("sweep ids overflow int32")

	// ErrIDCollision marks a sweep request whose identity already existed.
	ErrIDCollision = errors.New("identity already exists")

	// ErrPartialSweep is matched by a *SweepError.
	ErrPartialSweep = errors.New("sweep completed with failures")
)

// FailureKind classifies a failed entity request of a sweep.
type FailureKind uint8

const (
	// FailureCollision means the identity already existed; the existing
	// entity was kept unchanged.
	FailureCollision FailureKind = iota + 1
	// FailureRejected means the store refused the entity because it
	// referenced something that does not exist.
	FailureRejected
)

func (k FailureKind) String() string {
	switch k {
	case FailureCollision:
		return "collision"
	case FailureRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Failure describes one entity request of a sweep that did not create a new
// entity.
type Failure struct {
	Kind   FailureKind
	Entity store.Kind
	ID     int32
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s %d: %s: %v", f.Entity, f.ID, f.Kind, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// SweepError aggregates the failures of one sweep.
//
// It matches ErrPartialSweep via errors.Is, and every individual failure is
// reachable through errors.Is / errors.As as well.
type SweepError struct {
	// Op is the sweep operation, "extrude" or "revolve".
	Op       string
	Failures []Failure
}

func (e *SweepError) Error() string {
	var collisions, rejected int
	for _, f := range e.Failures {
		switch f.Kind {
		case FailureCollision:
			collisions++
		case FailureRejected:
			rejected++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: %d collisions, %d rejected", e.Op, ErrPartialSweep, collisions, rejected)
	if len(e.Failures) > 0 {
		fmt.Fprintf(&b, " (first: %v)", e.Failures[0])
	}
	return b.String()
}

// Is reports whether target is ErrPartialSweep.
func (e *SweepError) Is(target error) bool {
	return target == ErrPartialSweep
}

// Unwrap returns the individual failures.
func (e *SweepError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
