package brepgo

import (
	"github.com/hupe1980/brepgo/algo"
	"github.com/hupe1980/brepgo/profile"
	"github.com/hupe1980/brepgo/store"
)

// Sentinel errors of the subpackages, re-exported so callers of the facade
// can match them without importing the subpackages.
var (
	// ErrMissingReference is returned when an edge or face refers to an
	// entity that does not exist.
	ErrMissingReference = store.ErrMissingReference
	// ErrEmptyProfile is returned by sweeps given no profile points.
	ErrEmptyProfile = algo.ErrEmptyProfile
	// ErrInvalidSteps is returned by revolves with fewer than one step.
	ErrInvalidSteps = algo.ErrInvalidSteps
	// ErrIDOverflow is returned when a sweep's identities would exceed int32.
	ErrIDOverflow = algo.ErrIDOverflow
	// ErrPartialSweep matches every sweep that created only part of its entities.
	ErrPartialSweep = algo.ErrPartialSweep
	// ErrInvalidProfile is returned by the profile builders.
	ErrInvalidProfile = profile.ErrInvalidProfile
)

type (
	// MissingReferenceError names the entity that could not be found.
	MissingReferenceError = store.MissingReferenceError
	// SweepError lists the failures of a partial sweep.
	SweepError = algo.SweepError
)
