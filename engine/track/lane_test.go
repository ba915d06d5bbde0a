package track

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneProjector_Offset(t *testing.T) {
	t.Parallel()
	lp := LaneProjector{LaneWidth: DefaultLaneWidth}

	assert.InDelta(t, -1.5*DefaultLaneWidth, lp.Offset(1), 1e-12)
	assert.InDelta(t, -0.5*DefaultLaneWidth, lp.Offset(2), 1e-12)
	assert.InDelta(t, 0.5*DefaultLaneWidth, lp.Offset(3), 1e-12)
	assert.InDelta(t, 1.5*DefaultLaneWidth, lp.Offset(4), 1e-12)

	// not clamped
	assert.InDelta(t, -2.5*DefaultLaneWidth, lp.Offset(0), 1e-12)
	assert.InDelta(t, 4.5*DefaultLaneWidth, lp.Offset(7), 1e-12)
}

func TestLaneProjector_PerpendicularSign(t *testing.T) {
	t.Parallel()
	lp := LaneProjector{LaneWidth: DefaultLaneWidth}

	perp, err := lp.Perpendicular(mgl64.Vec3{0, 5, 0})
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, perp)

	perp, err = lp.Perpendicular(mgl64.Vec3{2, 0, 7})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(mgl64.Vec3{0, -1, 0}, perp, approxVec))
}

func TestLaneProjector_DegenerateTangent(t *testing.T) {
	t.Parallel()
	lp := LaneProjector{LaneWidth: DefaultLaneWidth}

	for _, tan := range []mgl64.Vec3{{0, 0, 0}, {0, 0, 3}} {
		_, err := lp.Project(mgl64.Vec3{1, 2, 3}, tan, 1)
		assert.ErrorIs(t, err, ErrDegenerateTangent, "tangent %v", tan)
	}
}
