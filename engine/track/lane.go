package track

import (
	"fmt"

	"github.com/Carmen-Shannon/robotrace/common"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultLaneWidth is the width of one lane in meters. A track has four lanes.
const DefaultLaneWidth = 1.22

// LaneCount is the number of lanes the scene places robots on.
const LaneCount = 4

// LaneProjector places points on a lane by offsetting a centerline point
// sideways, perpendicular to the tangent in the XY plane.
type LaneProjector struct {
	LaneWidth float64
}

// Offset returns the signed distance of the lane center from the track centerline.
// Lanes 1..4 land at -1.5, -0.5, +0.5 and +1.5 lane widths. Other lane numbers are
// extrapolated linearly.
//
// Parameters:
//   - lane: the lane number
//
// Returns:
//   - float64: the signed offset along the perpendicular
func (lp LaneProjector) Offset(lane int) float64 {
	return float64(lane)*lp.LaneWidth - 2.5*lp.LaneWidth
}

// Perpendicular returns normalize(tangent x Z), the sideways unit direction.
// For a tangent along +Y the result is +X.
//
// Parameters:
//   - tangent: the curve tangent
//
// Returns:
//   - mgl64.Vec3: the unit perpendicular
//   - error: ErrDegenerateTangent if the tangent has no horizontal component
func (lp LaneProjector) Perpendicular(tangent mgl64.Vec3) (mgl64.Vec3, error) {
	perp, err := common.Normalize(tangent.Cross(common.WorldUp))
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("%w: tangent %v", ErrDegenerateTangent, tangent)
	}
	return perp, nil
}

// Project offsets a centerline point onto the given lane.
//
// Parameters:
//   - point: the centerline point
//   - tangent: the centerline tangent at point
//   - lane: the lane number
//
// Returns:
//   - mgl64.Vec3: the lane point
//   - error: ErrDegenerateTangent if no perpendicular exists
func (lp LaneProjector) Project(point, tangent mgl64.Vec3, lane int) (mgl64.Vec3, error) {
	perp, err := lp.Perpendicular(tangent)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return point.Add(perp.Mul(lp.Offset(lane))), nil
}
