package algo

import "log/slog"

// DefaultRevolveSteps is the number of angular steps of a revolve.
const DefaultRevolveSteps = 4

// SweepOptions configures Extrude and Revolve.
type SweepOptions struct {
	// IDBase is the first vertex, edge and face identity a sweep assigns.
	IDBase int32
	// Steps is the number of angular steps of a revolve. Ignored by Extrude.
	Steps int
	// Logger receives sweep diagnostics. Nil discards them.
	Logger *slog.Logger
}

// SweepOption configures a sweep.
type SweepOption func(*SweepOptions)

// WithIDBase sets the first identity the sweep assigns to vertices, edges
// and faces. The default is 1.
func WithIDBase(base int32) SweepOption {
	return func(o *SweepOptions) {
		o.IDBase = base
	}
}

// WithSteps sets the number of angular steps of a revolve.
func WithSteps(n int) SweepOption {
	return func(o *SweepOptions) {
		o.Steps = n
	}
}

// WithLogger configures structured logging for the sweep.
func WithLogger(logger *slog.Logger) SweepOption {
	return func(o *SweepOptions) {
		o.Logger = logger
	}
}

func applySweepOptions(optFns []SweepOption) SweepOptions {
	o := SweepOptions{
		IDBase: 1,
		Steps:  DefaultRevolveSteps,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
