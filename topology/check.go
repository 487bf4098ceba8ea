package topology

import (
	"github.com/hupe1980/brepgo/store"
	"golang.org/x/sync/errgroup"
)

// Options configures Check.
type Options struct {
	// Concurrency bounds the number of checks running at once.
	// Values below 1 mean no limit.
	Concurrency int
	// SkipWarnings disables the orphan vertex and unused edge checks.
	SkipWarnings bool
}

// Option configures Check.
type Option func(*Options)

// WithConcurrency bounds the number of checks running at once.
// WithConcurrency(1) runs them one after another.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithoutWarnings skips the orphan vertex and unused edge checks.
func WithoutWarnings() Option {
	return func(o *Options) {
		o.SkipWarnings = true
	}
}

// Check runs every check against r and returns the combined report.
//
// The checks run concurrently and only read r. r must not be written to
// until Check returns; pass a Snapshot to keep writing in parallel.
func Check(r store.Reader, optFns ...Option) Report {
	var opts Options
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	var (
		rep Report
		g   errgroup.Group
	)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	// Each goroutine writes a distinct field of rep.
	g.Go(func() error {
		rep.DuplicateEdges = DuplicateEdges(r)
		return nil
	})
	g.Go(func() error {
		rep.DuplicateFaces = DuplicateFaces(r)
		return nil
	})
	g.Go(func() error {
		rep.NormalInconsistencies = NormalInconsistencies(r)
		return nil
	})
	if !opts.SkipWarnings {
		g.Go(func() error {
			rep.OrphanVertices = OrphanVertices(r)
			return nil
		})
		g.Go(func() error {
			rep.UnusedEdges = UnusedEdges(r)
			return nil
		})
	}

	_ = g.Wait() // checks never fail

	return rep
}

// DetectAll runs the error checks and reports whether any of them found
// something. Warnings do not count.
func DetectAll(r store.Reader) bool {
	return Check(r, WithoutWarnings()).HasErrors()
}
