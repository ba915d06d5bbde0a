package camera

import "github.com/go-gl/mathgl/mgl64"

type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's vertical field of view.
//
// Parameters:
//   - degrees: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(degrees float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = mgl64.DegToRad(degrees)
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithState sets the state the first matrices are built from.
//
// Parameters:
//   - state: the initial eye, center and up
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial state
func WithState(state State) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.state = state
	}
}
