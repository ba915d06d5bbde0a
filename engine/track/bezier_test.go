package track

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approxVec = cmpopts.EquateApprox(0, 1e-9)

func straightSegment() []mgl64.Vec3 {
	return []mgl64.Vec3{{0, 0, 0}, {0, 2.5, 0}, {0, 5, 0}, {0, 7.5, 0}}
}

func TestNewBezierSpline_PointCount(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		pts := make([]mgl64.Vec3, 3*n+1)
		c, err := NewBezierSpline(pts)
		require.NoError(t, err, "segments=%d", n)
		assert.Equal(t, n, c.Segments())
	}

	for _, count := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		_, err := NewBezierSpline(make([]mgl64.Vec3, count))
		assert.ErrorIs(t, err, ErrInvalidControlPolygon, "count=%d", count)
	}
}

func TestNewBezierSpline_CopiesPoints(t *testing.T) {
	pts := straightSegment()
	c, err := NewBezierSpline(pts)
	require.NoError(t, err)

	pts[3] = mgl64.Vec3{100, 100, 100}
	end, err := c.PointAt(1)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{0, 7.5, 0}, end)
}

func TestBezierSpline_StraightSegment(t *testing.T) {
	t.Parallel()
	c, err := NewBezierSpline(straightSegment())
	require.NoError(t, err)

	mid, err := c.PointAt(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.75, mid.Y(), 1e-12)
	assert.Zero(t, mid.X())

	// evenly spaced control points give a constant derivative of 3*(P1-P0)
	for _, tt := range []float64{0, 0.25, 0.5, 0.9, 1} {
		tan, err := c.TangentAt(tt)
		require.NoError(t, err)
		if diff := cmp.Diff(mgl64.Vec3{0, 7.5, 0}, tan, approxVec); diff != "" {
			t.Errorf("TangentAt(%v) mismatch (-want +got):\n%s", tt, diff)
		}
	}
}

func TestBezierSpline_ParameterOutOfRange(t *testing.T) {
	t.Parallel()
	c, err := NewBezierSpline(straightSegment())
	require.NoError(t, err)

	for _, bad := range []float64{-0.0001, 1.0001, -1, 2, math.NaN(), math.Inf(1)} {
		_, err := c.PointAt(bad)
		assert.ErrorIs(t, err, ErrParameterOutOfRange, "PointAt(%v)", bad)
		_, err = c.TangentAt(bad)
		assert.ErrorIs(t, err, ErrParameterOutOfRange, "TangentAt(%v)", bad)
	}
}

func TestSegmentAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		t         float64
		segments  int
		wantSeg   int
		wantLocal float64
	}{
		{name: "start", t: 0, segments: 2, wantSeg: 0, wantLocal: 0},
		{name: "inside first", t: 0.25, segments: 2, wantSeg: 0, wantLocal: 0.5},
		{name: "boundary goes to next segment", t: 0.5, segments: 2, wantSeg: 1, wantLocal: 0},
		{name: "inside last", t: 0.75, segments: 2, wantSeg: 1, wantLocal: 0.5},
		{name: "t=1 stays on last segment", t: 1, segments: 2, wantSeg: 1, wantLocal: 1},
		{name: "t=1 single segment", t: 1, segments: 1, wantSeg: 0, wantLocal: 1},
		{name: "t=1 five segments", t: 1, segments: 5, wantSeg: 4, wantLocal: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seg, local := segmentAt(tc.t, tc.segments)
			assert.Equal(t, tc.wantSeg, seg)
			assert.InDelta(t, tc.wantLocal, local, 1e-9)
			assert.GreaterOrEqual(t, local, 0.0)
			assert.LessOrEqual(t, local, 1.0)
		})
	}
}

func TestBezierSpline_SeamUsesLastSegment(t *testing.T) {
	t.Parallel()
	// two segments whose tangents differ at the shared seam point
	pts := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {2, 1, 0}, {2, 2, 0},
		{2, 3, 0}, {-1, 3, 0}, {0, 0, 0},
	}
	c, err := NewBezierSpline(pts)
	require.NoError(t, err)

	end, err := c.TangentAt(1)
	require.NoError(t, err)
	start, err := c.TangentAt(0)
	require.NoError(t, err)

	// B'(1) of the last segment is 3*(P3-P2), B'(0) of the first is 3*(P1-P0)
	assert.Equal(t, mgl64.Vec3{3, -9, 0}, end)
	assert.Equal(t, mgl64.Vec3{3, 0, 0}, start)
}

func TestCubicBezierDerivative_MatchesFiniteDifference(t *testing.T) {
	t.Parallel()
	p0, p1, p2, p3 := mgl64.Vec3{0, 0, 1}, mgl64.Vec3{3, 5, 1}, mgl64.Vec3{7, -2, 2}, mgl64.Vec3{9, 4, 0}
	const h = 1e-6
	for _, s := range []float64{0.1, 0.33, 0.5, 0.8} {
		fd := mgl64.CubicBezierCurve3D(s+h, p0, p1, p2, p3).Sub(mgl64.CubicBezierCurve3D(s-h, p0, p1, p2, p3)).Mul(1 / (2 * h))
		got := cubicBezierDerivative(s, p0, p1, p2, p3)
		assert.Empty(t, cmp.Diff(fd, got, cmpopts.EquateApprox(0, 1e-5)), "s=%v", s)
	}
}

func TestTestCurve(t *testing.T) {
	t.Parallel()
	c := NewTestCurve()
	assert.Zero(t, c.Segments())

	p, err := c.PointAt(0)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{10, 0, 1}, p)

	q, err := c.PointAt(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0, q.X(), 1e-9)
	assert.InDelta(t, 14, q.Y(), 1e-9)

	tan, err := c.TangentAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 28*math.Pi, tan.Y(), 1e-9)

	for _, bad := range []float64{-0.5, 1.5} {
		_, err := c.PointAt(bad)
		assert.ErrorIs(t, err, ErrParameterOutOfRange)
		_, err = c.TangentAt(bad)
		assert.ErrorIs(t, err, ErrParameterOutOfRange)
	}
}
