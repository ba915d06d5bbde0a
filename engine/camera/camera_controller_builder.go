package camera

import "time"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRand sets the random source ModeAuto draws sub-modes from.
//
// Parameters:
//   - r: the random source, ignored if nil
//
// Returns:
//   - CameraControllerOption: functional option to set the random source
func WithRand(r Rand) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if r != nil {
			cc.rand = r
		}
	}
}

// WithSeed seeds the default random source.
//
// Parameters:
//   - seed: the PCG seed
//
// Returns:
//   - CameraControllerOption: functional option to seed the random source
func WithSeed(seed uint64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rand = NewRand(seed)
	}
}

// WithAutoInterval sets how long ModeAuto stays on one sub-mode.
//
// Parameters:
//   - interval: the switch interval, ignored unless positive
//
// Returns:
//   - CameraControllerOption: functional option to set the interval
func WithAutoInterval(interval time.Duration) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if interval > 0 {
			cc.autoInterval = interval
		}
	}
}

// WithMotorcycleOffset sets the sideways distance between the motorcycle camera and the leader.
//
// Parameters:
//   - offset: distance along the leader's perpendicular
//
// Returns:
//   - CameraControllerOption: functional option to set the offset
func WithMotorcycleOffset(offset float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.motorcycleOffset = offset
	}
}

// WithHelicopterHeight sets how far above the focus robot the helicopter camera hovers.
//
// Parameters:
//   - height: height above the robot
//
// Returns:
//   - CameraControllerOption: functional option to set the height
func WithHelicopterHeight(height float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.helicopterHeight = height
	}
}
