// Package profile builds planar profiles for the sweep generators.
//
// A profile is an ordered, open loop of points: the last point connects back
// to the first implicitly. Orientation and bounds are computed on the XY
// projection through github.com/paulmach/orb.
package profile
