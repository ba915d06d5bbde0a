package common

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrZeroVector is returned when a direction is requested from a vector of length zero.
var ErrZeroVector = errors.New("zero-length vector has no direction")

// WorldUp is the world-space up axis. The scene is Z-up.
var WorldUp = mgl64.Vec3{0, 0, 1}

// Normalize returns the unit vector pointing in the direction of v.
// Unlike mgl64.Vec3.Normalize it never produces NaN components.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl64.Vec3: the unit vector, or the zero vector on error
//   - error: ErrZeroVector if v has length zero
func Normalize(v mgl64.Vec3) (mgl64.Vec3, error) {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}, ErrZeroVector
	}
	return v.Mul(1 / l), nil
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
//
// Parameters:
//   - a, b: the vectors to compare
//   - eps: absolute per-component tolerance
//
// Returns:
//   - bool: true if the vectors are equal within eps
func ApproxEqual(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
