package camera

import "github.com/go-gl/mathgl/mgl64"

// OrbitViewOption is a functional option for configuring an OrbitView.
type OrbitViewOption func(*orbitViewImpl)

// WithAngles sets the initial azimuth and elevation.
//
// Parameters:
//   - theta: azimuth in radians
//   - phi: elevation in radians
//
// Returns:
//   - OrbitViewOption: functional option to set the view angles
func WithAngles(theta, phi float64) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.params.Theta = theta
		ov.params.Phi = phi
	}
}

// WithDistance sets the initial distance between the eye and the origin.
//
// Parameters:
//   - distance: the orbit radius
//
// Returns:
//   - OrbitViewOption: functional option to set the distance
func WithDistance(distance float64) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.params.Distance = distance
	}
}

// WithCenter sets the initial look-at point.
//
// Parameters:
//   - center: the look-at point
//
// Returns:
//   - OrbitViewOption: functional option to set the center
func WithCenter(center mgl64.Vec3) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.params.Center = center
	}
}

// WithDistanceBounds sets the minimum and maximum view distance.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - OrbitViewOption: functional option to set distance bounds
func WithDistanceBounds(min, max float64) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.minDistance = min
		ov.maxDistance = max
	}
}

// WithPhiBounds sets the minimum and maximum elevation.
//
// Parameters:
//   - min: minimum elevation in radians
//   - max: maximum elevation in radians
//
// Returns:
//   - OrbitViewOption: functional option to set elevation bounds
func WithPhiBounds(min, max float64) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.minPhi = min
		ov.maxPhi = max
	}
}

// WithOrbitSpeed sets the keyboard orbit step.
//
// Parameters:
//   - speed: radians per orbit call
//
// Returns:
//   - OrbitViewOption: functional option to set orbit speed
func WithOrbitSpeed(speed float64) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.orbitSpeed = speed
	}
}

// WithMouseSensitivity sets the radians per pixel of mouse drag.
//
// Parameters:
//   - sensitivity: multiplier for mouse movement
//
// Returns:
//   - OrbitViewOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float64) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the zoom multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - OrbitViewOption: functional option to set zoom speed
func WithZoomSpeed(speed float64) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.zoomSpeed = speed
	}
}

// WithPanSpeed sets the pan multiplier.
//
// Parameters:
//   - speed: multiplier for pan input
//
// Returns:
//   - OrbitViewOption: functional option to set pan speed
func WithPanSpeed(speed float64) OrbitViewOption {
	return func(ov *orbitViewImpl) {
		ov.panSpeed = speed
	}
}
