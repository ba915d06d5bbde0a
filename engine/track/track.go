package track

import (
	"fmt"

	"github.com/Carmen-Shannon/robotrace/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Track is a closed race track with four lanes around its centerline.
type Track interface {
	// Name returns the track's display name.
	Name() string

	// IsTestTrack reports whether the track is the control-point free test ellipse.
	IsTestTrack() bool

	// Segments returns the number of Bezier segments (0 for the test track).
	Segments() int

	// ControlPoints returns a copy of the control polygon (nil for the test track).
	ControlPoints() []mgl64.Vec3

	// LaneWidth returns the width of one lane.
	LaneWidth() float64

	// PointAt returns the centerline point at t.
	//
	// Parameters:
	//   - t: track parameter in [0, 1]
	//
	// Returns:
	//   - mgl64.Vec3: the centerline point
	//   - error: ErrParameterOutOfRange if t is outside [0, 1]
	PointAt(t float64) (mgl64.Vec3, error)

	// TangentAt returns the unnormalized centerline tangent at t.
	//
	// Parameters:
	//   - t: track parameter in [0, 1]
	//
	// Returns:
	//   - mgl64.Vec3: the tangent
	//   - error: ErrParameterOutOfRange if t is outside [0, 1]
	TangentAt(t float64) (mgl64.Vec3, error)

	// LanePoint returns the center of a lane at t. Use this to position a robot.
	//
	// Parameters:
	//   - lane: lane number, 1 (inner) to 4 (outer)
	//   - t: track parameter in [0, 1]
	//
	// Returns:
	//   - mgl64.Vec3: the lane point
	//   - error: ErrParameterOutOfRange or ErrDegenerateTangent
	LanePoint(lane int, t float64) (mgl64.Vec3, error)

	// LaneTangent returns the tangent of a lane at t. Use this to orient a robot.
	// The lane offset does not change the tangent.
	//
	// Parameters:
	//   - lane: lane number, 1 (inner) to 4 (outer)
	//   - t: track parameter in [0, 1]
	//
	// Returns:
	//   - mgl64.Vec3: the tangent
	//   - error: ErrParameterOutOfRange if t is outside [0, 1]
	LaneTangent(lane int, t float64) (mgl64.Vec3, error)
}

// trackImpl is immutable after construction and safe for concurrent use.
type trackImpl struct {
	name      string
	points    []mgl64.Vec3
	curve     Curve
	projector LaneProjector
}

var _ Track = &trackImpl{}

// NewTrack creates a track from a closed control polygon.
// An empty polygon selects the procedural test track. Otherwise the polygon must
// hold 3N+1 points and its first point must equal its last point exactly.
//
// Parameters:
//   - points: the control polygon, copied by the constructor
//   - options: functional options to configure the track
//
// Returns:
//   - Track: the track
//   - error: ErrInvalidControlPolygon if the polygon is malformed or not closed
func NewTrack(points []mgl64.Vec3, options ...TrackBuilderOption) (Track, error) {
	tr := &trackImpl{
		projector: LaneProjector{LaneWidth: DefaultLaneWidth},
	}
	for _, option := range options {
		option(tr)
	}
	if !(tr.projector.LaneWidth > 0) {
		return nil, fmt.Errorf("track %q: lane width must be positive, got %v", tr.name, tr.projector.LaneWidth)
	}

	if len(points) == 0 {
		tr.name = common.Coalesce(tr.name, "test")
		tr.curve = NewTestCurve()
		return tr, nil
	}

	if (len(points)-1)%3 != 0 {
		return nil, fmt.Errorf("%w: track %q has %d control points, want 3N+1", ErrInvalidControlPolygon, tr.name, len(points))
	}
	first, last := points[0], points[len(points)-1]
	if first[0] != last[0] || first[1] != last[1] || first[2] != last[2] {
		return nil, fmt.Errorf("%w: track %q is not closed, first %v != last %v", ErrInvalidControlPolygon, tr.name, first, last)
	}

	tr.name = common.Coalesce(tr.name, "custom")
	curve, err := NewBezierSpline(points)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", tr.name, err)
	}
	tr.curve = curve
	tr.points = make([]mgl64.Vec3, len(points))
	copy(tr.points, points)
	return tr, nil
}

func (tr *trackImpl) Name() string {
	return tr.name
}

func (tr *trackImpl) IsTestTrack() bool {
	return tr.points == nil
}

func (tr *trackImpl) Segments() int {
	return tr.curve.Segments()
}

func (tr *trackImpl) ControlPoints() []mgl64.Vec3 {
	if tr.points == nil {
		return nil
	}
	cp := make([]mgl64.Vec3, len(tr.points))
	copy(cp, tr.points)
	return cp
}

func (tr *trackImpl) LaneWidth() float64 {
	return tr.projector.LaneWidth
}

func (tr *trackImpl) PointAt(t float64) (mgl64.Vec3, error) {
	return tr.curve.PointAt(t)
}

func (tr *trackImpl) TangentAt(t float64) (mgl64.Vec3, error) {
	return tr.curve.TangentAt(t)
}

func (tr *trackImpl) LanePoint(lane int, t float64) (mgl64.Vec3, error) {
	point, err := tr.curve.PointAt(t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	tangent, err := tr.curve.TangentAt(t)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return tr.projector.Project(point, tangent, lane)
}

func (tr *trackImpl) LaneTangent(_ int, t float64) (mgl64.Vec3, error) {
	return tr.curve.TangentAt(t)
}
