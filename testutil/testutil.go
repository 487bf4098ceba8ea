package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/brepgo/geom"
	"github.com/stretchr/testify/require"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Point returns a point without identity whose coordinates lie in
// [-scale, scale).
func (r *RNG) Point(scale float64) geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return geom.Pt(
		(r.rand.Float64()*2-1)*scale,
		(r.rand.Float64()*2-1)*scale,
		(r.rand.Float64()*2-1)*scale,
	)
}

// Points returns n random points with identities 1..n.
func (r *RNG) Points(n int, scale float64) []geom.Point {
	out := make([]geom.Point, n)
	for i := range out {
		p := r.Point(scale)
		p.ID = i + 1
		out[i] = p
	}
	return out
}

// StarProfile returns a simple counter-clockwise polygon in the z=0 plane
// with n vertices at evenly spaced angles and radii drawn from [minR, maxR).
// Identities are 1..n. Evenly spaced angles keep the polygon star-shaped
// around the origin, so it never self-intersects.
func (r *RNG) StarProfile(n int, minR, maxR float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]geom.Point, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		radius := minR + r.rand.Float64()*(maxR-minR)
		sin, cos := math.Sincos(angle)
		out[i] = geom.PtID(i+1, radius*cos, radius*sin, 0)
	}
	return out
}

// RequirePointsInDelta fails the test unless want and got have the same
// length and every pair of points matches coordinate-wise within delta.
// Identities are ignored.
func RequirePointsInDelta(t require.TestingT, want, got []geom.Point, delta float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, want[i].ApproxEqual(got[i], delta),
			"point %d: want %v, got %v (delta %g)", i, want[i], got[i], delta)
	}
}
