package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphericalToCartesian maps view angles to a point on a sphere centered at the origin.
// theta is the azimuth measured from +X in the XY plane, phi is the elevation above
// the XY plane, so the polar angle is pi/2 - phi:
//
//	x = r*cos(theta)*sin(pi/2-phi)
//	y = r*sin(theta)*sin(pi/2-phi)
//	z = r*cos(pi/2-phi)
//
// Parameters:
//   - theta: azimuth in radians
//   - phi: elevation in radians
//   - r: distance from the origin
//
// Returns:
//   - mgl64.Vec3: the Cartesian point
func SphericalToCartesian(theta, phi, r float64) mgl64.Vec3 {
	// mgl64 takes (radius, polar angle, azimuth).
	return mgl64.SphericalToCartesian(r, math.Pi/2-phi, theta)
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
