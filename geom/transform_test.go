package geom_test

import (
	"math"
	"testing"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   geom.Point
		expected float64
	}{
		{"Unit diagonal", geom.Pt(0, 0, 0), geom.Pt(1, 1, 1), math.Sqrt(3)},
		{"Same point", geom.Pt(2, -3, 4), geom.Pt(2, -3, 4), 0},
		{"Axis aligned", geom.Pt(0, 0, 0), geom.Pt(0, 0, -5), 5},
		{"Pythagorean", geom.Pt(1, 1, 0), geom.Pt(4, 5, 0), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, geom.Distance(tt.p1, tt.p2), 1e-12)
		})
	}
}

func TestDistanceProperties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for range 100 {
		p1 := rng.Point(100)
		p2 := rng.Point(100)

		assert.Zero(t, geom.Distance(p1, p1))
		assert.Equal(t, geom.Distance(p1, p2), geom.Distance(p2, p1))
	}
}

func TestTranslate(t *testing.T) {
	p := geom.PtID(1, 0, 0, 0)

	got := geom.Translate(p, 1, 2, 3)
	assert.Equal(t, geom.PtID(1, 1, 2, 3), got)

	t.Run("RoundTrip", func(t *testing.T) {
		rng := testutil.NewRNG(42)
		for range 100 {
			p := rng.Point(1000)
			dx, dy, dz := rng.Float64()*10, rng.Float64()*10, rng.Float64()*10

			back := geom.Translate(geom.Translate(p, dx, dy, dz), -dx, -dy, -dz)
			assert.True(t, back.ApproxEqual(p, 1e-9), "got %v want %v", back, p)
			assert.Equal(t, p.ID, back.ID)
		}
	})
}

func TestRotateZ(t *testing.T) {
	t.Run("QuarterTurn", func(t *testing.T) {
		got := geom.RotateZ(geom.PtID(2, 1, 1, 1), math.Pi/2)
		assert.Equal(t, 2, got.ID)
		assert.InDelta(t, -1.0, got.X, 1e-12)
		assert.InDelta(t, 1.0, got.Y, 1e-12)
		assert.Equal(t, 1.0, got.Z)
	})

	t.Run("InverseRestores", func(t *testing.T) {
		rng := testutil.NewRNG(7)
		for range 200 {
			p := rng.Point(50)
			theta := (rng.Float64() - 0.5) * 8 * math.Pi

			back := geom.RotateZ(geom.RotateZ(p, theta), -theta)
			require.True(t, back.ApproxEqual(p, 1e-9), "theta=%g got %v want %v", theta, back, p)
		}
	})

	t.Run("PreservesRadius", func(t *testing.T) {
		p := geom.Pt(3, 4, 7)
		r := geom.RotateZ(p, 1.234)
		assert.InDelta(t, 5.0, math.Hypot(r.X, r.Y), 1e-12)
	})
}

func TestScale(t *testing.T) {
	got := geom.Scale(geom.PtID(9, 1, -2, 0.5), 2)
	assert.Equal(t, geom.PtID(9, 2, -4, 1), got)

	assert.Equal(t, geom.Pt(0, 0, 0), geom.Scale(geom.Pt(5, 6, 7), 0))
}

func TestTranslateAll(t *testing.T) {
	in := []geom.Point{geom.PtID(1, 0, 0, 0), geom.PtID(2, 1, 0, 0)}

	out := geom.TranslateAll(in, 0, 0, 2)
	require.Len(t, out, 2)
	assert.Equal(t, geom.PtID(1, 0, 0, 2), out[0])
	assert.Equal(t, geom.PtID(2, 1, 0, 2), out[1])
	assert.Equal(t, 0.0, in[0].Z, "input must not be modified")
}
