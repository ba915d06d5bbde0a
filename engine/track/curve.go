// Package track implements the race track geometry: closed piecewise cubic Bezier
// curves, the procedural test track, lane projection and the named track presets.
package track

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Curve is a parametric curve evaluated over the global parameter t in [0, 1].
type Curve interface {
	// PointAt returns the point on the curve at t.
	//
	// Parameters:
	//   - t: global curve parameter in [0, 1]
	//
	// Returns:
	//   - mgl64.Vec3: the point at t
	//   - error: ErrParameterOutOfRange if t is outside [0, 1]
	PointAt(t float64) (mgl64.Vec3, error)

	// TangentAt returns the unnormalized first derivative of the curve at t.
	//
	// Parameters:
	//   - t: global curve parameter in [0, 1]
	//
	// Returns:
	//   - mgl64.Vec3: the derivative at t
	//   - error: ErrParameterOutOfRange if t is outside [0, 1]
	TangentAt(t float64) (mgl64.Vec3, error)

	// Segments returns the number of cubic segments, or 0 for closed-form curves.
	Segments() int
}

// checkParameter rejects t outside [0, 1]. NaN is rejected as well.
func checkParameter(t float64) error {
	if !(t >= 0 && t <= 1) {
		return fmt.Errorf("%w: t=%v", ErrParameterOutOfRange, t)
	}
	return nil
}

// testCurve is the control-point free ellipse used as the default track.
type testCurve struct{}

var _ Curve = testCurve{}

// NewTestCurve returns the procedural test track: an ellipse with semi-axes
// 10 (X) and 14 (Y) lying in the plane z = 1.
//
// Returns:
//   - Curve: the test track curve
func NewTestCurve() Curve {
	return testCurve{}
}

func (testCurve) PointAt(t float64) (mgl64.Vec3, error) {
	if err := checkParameter(t); err != nil {
		return mgl64.Vec3{}, err
	}
	a := 2 * math.Pi * t
	return mgl64.Vec3{10 * math.Cos(a), 14 * math.Sin(a), 1}, nil
}

func (testCurve) TangentAt(t float64) (mgl64.Vec3, error) {
	if err := checkParameter(t); err != nil {
		return mgl64.Vec3{}, err
	}
	a := 2 * math.Pi * t
	return mgl64.Vec3{-20 * math.Pi * math.Sin(a), 28 * math.Pi * math.Cos(a), 0}, nil
}

func (testCurve) Segments() int {
	return 0
}
