package camera

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoFocusEntity is returned when a following mode is selected without any robots to follow.
var ErrNoFocusEntity = errors.New("camera mode requires at least one focus entity")

// State is the eye, center and up triple fed to the view matrix.
type State struct {
	Eye    mgl64.Vec3
	Center mgl64.Vec3
	Up     mgl64.Vec3
}

// EntitySnapshot is a read-only view of a robot for one frame.
type EntitySnapshot struct {
	Position         mgl64.Vec3
	Direction        mgl64.Vec3
	DistanceTraveled float64
}

// ViewParams are the user-controlled view angles used by ModeDefault.
type ViewParams struct {
	// Theta is the azimuth in radians, measured from +X.
	Theta float64
	// Phi is the elevation above the ground plane in radians.
	Phi float64
	// Distance is the radius of the orbit sphere.
	Distance float64
	// Center is the look-at point.
	Center mgl64.Vec3
}

// CameraController turns the selected mode and the robot snapshots into a camera State
// once per frame. Apart from the AUTO timer it holds no state across frames, so changing
// the mode between frames changes the computation immediately.
type CameraController interface {
	// Update computes the camera State for this frame.
	//
	// Parameters:
	//   - mode: the selected camera mode, unknown values behave as ModeDefault
	//   - view: the global view parameters used by ModeDefault
	//   - focus: the robots the following modes may track
	//   - elapsed: time since the previous frame, accumulated only by successful ModeAuto updates
	//
	// Returns:
	//   - State: the computed camera state
	//   - error: ErrNoFocusEntity if a following mode has no robots, or a wrapped
	//     common.ErrZeroVector if a robot has no heading
	Update(mode Mode, view ViewParams, focus []EntitySnapshot, elapsed time.Duration) (State, error)

	// State returns the state computed by the last successful Update.
	//
	// Returns:
	//   - State: the last camera state
	State() State

	// AutoMode returns the sub-mode ModeAuto currently delegates to.
	//
	// Returns:
	//   - Mode: one of ModeHelicopter, ModeMotorcycle or ModeFirstPerson
	AutoMode() Mode

	// AutoElapsed returns the time accumulated in ModeAuto since the last switch.
	//
	// Returns:
	//   - time.Duration: the accumulated time
	AutoElapsed() time.Duration

	// AutoInterval returns how long ModeAuto stays on one sub-mode.
	//
	// Returns:
	//   - time.Duration: the switch interval
	AutoInterval() time.Duration
}
