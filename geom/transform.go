package geom

import "math"

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return p2.Sub(p1).Length()
}

// Translate moves p by (dx, dy, dz).
func Translate(p Point, dx, dy, dz float64) Point {
	return Point{ID: p.ID, X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// RotateZ rotates p about the Z axis by angle radians (counter-clockwise
// when looking down the Z axis). Z is unchanged.
func RotateZ(p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		ID: p.ID,
		X:  p.X*cos - p.Y*sin,
		Y:  p.X*sin + p.Y*cos,
		Z:  p.Z,
	}
}

// Scale multiplies every coordinate of p by factor. The origin is the fixed
// point.
func Scale(p Point, factor float64) Point {
	return Point{ID: p.ID, X: p.X * factor, Y: p.Y * factor, Z: p.Z * factor}
}

// TranslateAll applies Translate to every point of ps and returns a new slice.
func TranslateAll(ps []Point, dx, dy, dz float64) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = Translate(p, dx, dy, dz)
	}
	return out
}
