package profile

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/brepgo/geom"
	"github.com/paulmach/orb"
)

// ErrInvalidProfile is returned when a profile cannot be built from the
// given parameters.
var ErrInvalidProfile = errors.New("profile: invalid profile")

// Regular returns a regular n-gon of the given circumradius in the plane z.
// Point i has identity i+1 and sits at angle 2π·i/n, so the loop runs
// counter-clockwise starting on the positive X axis.
func Regular(n int, radius, z float64) ([]geom.Point, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: regular polygon needs at least 3 sides, got %d", ErrInvalidProfile, n)
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("%w: radius must be positive and finite, got %g", ErrInvalidProfile, radius)
	}

	pts := make([]geom.Point, n)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = geom.PtID(i+1, radius*cos, radius*sin, z)
	}
	return pts, nil
}

// MustRegular is like Regular but panics on invalid parameters.
// It is meant for fixed, known-good shapes.
func MustRegular(n int, radius, z float64) []geom.Point {
	pts, err := Regular(n, radius, z)
	if err != nil {
		panic(err)
	}
	return pts
}

// Rectangle returns the axis-aligned rectangle [-halfW, halfW] × [-halfH, halfH]
// in the plane z, counter-clockwise from (-halfW, -halfH). Identities are 1..4.
func Rectangle(halfW, halfH, z float64) ([]geom.Point, error) {
	if !(halfW > 0) || !(halfH > 0) {
		return nil, fmt.Errorf("%w: rectangle extents must be positive, got %g x %g", ErrInvalidProfile, halfW, halfH)
	}

	return []geom.Point{
		geom.PtID(1, -halfW, -halfH, z),
		geom.PtID(2, halfW, -halfH, z),
		geom.PtID(3, halfW, halfH, z),
		geom.PtID(4, -halfW, halfH, z),
	}, nil
}

// MustRectangle is like Rectangle but panics on invalid parameters.
func MustRectangle(halfW, halfH, z float64) []geom.Point {
	pts, err := Rectangle(halfW, halfH, z)
	if err != nil {
		panic(err)
	}
	return pts
}

// FromRing lifts a planar ring into the plane z. A closing point equal to
// the first one is dropped. Identities are assigned 1..n in ring order.
func FromRing(ring orb.Ring, z float64) ([]geom.Point, error) {
	if len(ring) > 1 && ring.Closed() {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, fmt.Errorf("%w: ring needs at least 3 distinct points, got %d", ErrInvalidProfile, len(ring))
	}

	pts := make([]geom.Point, len(ring))
	for i, p := range ring {
		pts[i] = geom.PtID(i+1, p.X(), p.Y(), z)
	}
	return pts, nil
}

// Ring returns the closed XY ring of the profile. Z is dropped.
func Ring(points []geom.Point) orb.Ring {
	if len(points) == 0 {
		return nil
	}

	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, p.XY())
	}
	return append(ring, ring[0])
}

// Orientation returns the winding of the profile's XY projection:
// orb.CCW, orb.CW, or 0 for fewer than three points or zero area.
func Orientation(points []geom.Point) orb.Orientation {
	if len(points) < 3 {
		return 0
	}
	return Ring(points).Orientation()
}

// EnsureCCW returns the profile wound counter-clockwise. A clockwise profile
// is returned reversed as a new slice; any other profile is returned as is.
// Identities travel with their points.
func EnsureCCW(points []geom.Point) []geom.Point {
	if Orientation(points) != orb.CW {
		return points
	}

	out := slices.Clone(points)
	slices.Reverse(out)
	return out
}

// Bounds returns the XY bounding box of the profile.
// The zero Bound is returned for an empty profile.
func Bounds(points []geom.Point) orb.Bound {
	if len(points) == 0 {
		return orb.Bound{}
	}
	return Ring(points).Bound()
}
