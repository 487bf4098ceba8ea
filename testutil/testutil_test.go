package testutil

import (
	"math"
	"testing"

	"github.com/hupe1980/brepgo/geom"
	"github.com/stretchr/testify/assert"
)

func TestPointRange(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		p := rng.Point(3)
		assert.GreaterOrEqual(t, p.X, -3.0)
		assert.Less(t, p.X, 3.0)
		assert.GreaterOrEqual(t, p.Z, -3.0)
		assert.Less(t, p.Z, 3.0)
	}
}

func TestPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.Points(5, 1)
	assert.Len(t, pts, 5)
	for i, p := range pts {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestStarProfile(t *testing.T) {
	rng := NewRNG(4711)

	prof := rng.StarProfile(8, 1, 2)
	assert.Len(t, prof, 8)

	var area float64
	for i, p := range prof {
		r := math.Hypot(p.X, p.Y)
		assert.GreaterOrEqual(t, r, 1.0-1e-12)
		assert.Less(t, r, 2.0)
		assert.Zero(t, p.Z)
		q := prof[(i+1)%len(prof)]
		area += p.X*q.Y - q.X*p.Y
	}
	assert.Positive(t, area, "profile must be counter-clockwise")
}

func TestReset(t *testing.T) {
	rng := NewRNG(99)
	first := rng.Point(1)
	rng.Reset()
	assert.Equal(t, first, rng.Point(1))
	assert.Equal(t, int64(99), rng.Seed())
}

func TestRequirePointsInDelta(t *testing.T) {
	want := []geom.Point{geom.Pt(1, 2, 3)}
	got := []geom.Point{geom.PtID(7, 1+1e-10, 2, 3)}
	RequirePointsInDelta(t, want, got, 1e-9)
}
