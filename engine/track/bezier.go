package track

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// bezierSpline is a piecewise cubic Bezier curve. Segment i uses control points
// 3i..3i+3, so consecutive segments share an endpoint.
type bezierSpline struct {
	points   []mgl64.Vec3
	segments int
}

var _ Curve = &bezierSpline{}

// NewBezierSpline creates a piecewise cubic Bezier curve from a control polygon of
// 3N+1 points (N >= 1). The polygon does not have to be closed; closure is a
// requirement of Track, not of the curve itself.
//
// Parameters:
//   - points: the control polygon, copied by the constructor
//
// Returns:
//   - Curve: the spline
//   - error: ErrInvalidControlPolygon if the point count is not 3N+1 with N >= 1
func NewBezierSpline(points []mgl64.Vec3) (Curve, error) {
	if len(points) < 4 || (len(points)-1)%3 != 0 {
		return nil, fmt.Errorf("%w: %d control points, want 3N+1 with N >= 1", ErrInvalidControlPolygon, len(points))
	}
	cp := make([]mgl64.Vec3, len(points))
	copy(cp, points)
	return &bezierSpline{
		points:   cp,
		segments: (len(cp) - 1) / 3,
	}, nil
}

func (b *bezierSpline) Segments() int {
	return b.segments
}

func (b *bezierSpline) PointAt(t float64) (mgl64.Vec3, error) {
	if err := checkParameter(t); err != nil {
		return mgl64.Vec3{}, err
	}
	seg, s := segmentAt(t, b.segments)
	p0, p1, p2, p3 := b.segment(seg)
	return mgl64.CubicBezierCurve3D(s, p0, p1, p2, p3), nil
}

func (b *bezierSpline) TangentAt(t float64) (mgl64.Vec3, error) {
	if err := checkParameter(t); err != nil {
		return mgl64.Vec3{}, err
	}
	seg, s := segmentAt(t, b.segments)
	p0, p1, p2, p3 := b.segment(seg)
	return cubicBezierDerivative(s, p0, p1, p2, p3), nil
}

// segment returns the four control points of segment i.
func (b *bezierSpline) segment(i int) (p0, p1, p2, p3 mgl64.Vec3) {
	return b.points[3*i], b.points[3*i+1], b.points[3*i+2], b.points[3*i+3]
}

// segmentAt maps the global parameter t in [0, 1] onto a segment index and the
// segment-local parameter in [0, 1].
//
// t == 1 selects the end of the last segment. Without this the search below finds
// no segment and the seam would fall back to the start of segment 0.
func segmentAt(t float64, segments int) (int, float64) {
	if t == 1 {
		return segments - 1, 1
	}

	segLength := 1 / float64(segments)

	// 1/N*N can round below 1, leaving t in no segment; use the last one then.
	seg, found := segments-1, false
	for i := 0; i < segments; i++ {
		if t < segLength*float64(i+1) {
			seg, found = i, true
			break
		}
	}

	d := t - segLength*float64(seg)
	if found {
		d = math.Mod(d, segLength)
	}
	s := d * float64(segments)
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}
	return seg, s
}

// cubicBezierDerivative evaluates B'(s) = 3(P1-P0)(1-s)^2 + 6(P2-P1)s(1-s) + 3(P3-P2)s^2.
func cubicBezierDerivative(s float64, p0, p1, p2, p3 mgl64.Vec3) mgl64.Vec3 {
	u := 1 - s
	return p1.Sub(p0).Mul(3 * u * u).
		Add(p2.Sub(p1).Mul(6 * s * u)).
		Add(p3.Sub(p2).Mul(3 * s * s))
}
