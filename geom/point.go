package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Point is a position in 3D space with an integer identity.
//
// The identity is opaque to geom. Sweeps use it only to echo a profile point
// back to the caller; it does not have to be unique.
type Point struct {
	ID      int
	X, Y, Z float64
}

// Pt is a convenience function to create a Point without identity.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// PtID creates a Point with the given identity.
func PtID(id int, x, y, z float64) Point {
	return Point{ID: id, X: x, Y: y, Z: z}
}

// Vec returns the position of p as a vector from the origin.
func (p Point) Vec() Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec3 {
	return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// XY drops the Z coordinate and returns the planar orb point.
func (p Point) XY() orb.Point {
	return orb.Point{p.X, p.Y}
}

// ApproxEqual reports whether both coordinates are within eps of each other.
// Identities are ignored.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps &&
		math.Abs(p.Y-q.Y) <= eps &&
		math.Abs(p.Z-q.Z) <= eps
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("P%d(%g, %g, %g)", p.ID, p.X, p.Y, p.Z)
}
