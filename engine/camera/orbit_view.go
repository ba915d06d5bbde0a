package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/robotrace/common"
	"github.com/go-gl/mathgl/mgl64"
)

// OrbitView owns the user-controlled ViewParams of the default camera mode.
// Orbit methods change the view angles, Zoom changes the distance and the Pan
// methods slide the look-at point over the ground plane.
type OrbitView interface {
	// Params returns a snapshot of the current view parameters.
	//
	// Returns:
	//   - ViewParams: the current view parameters
	Params() ViewParams

	// OrbitLeft rotates the view left around the center by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the view right around the center by one orbit speed step.
	OrbitRight()

	// OrbitUp raises the view by one orbit speed step, clamped to the maximum elevation.
	OrbitUp()

	// OrbitDown lowers the view by one orbit speed step, clamped to the minimum elevation.
	OrbitDown()

	// Drag applies a mouse drag to the view angles.
	//
	// Parameters:
	//   - dx, dy: cursor movement in pixels
	Drag(dx, dy float64)

	// Zoom moves the eye toward the center. Positive delta zooms in.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float64)

	// PanForward moves the center along the horizontal viewing direction.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanForward(delta float64)

	// PanRight moves the center along the horizontal right axis of the view.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanRight(delta float64)

	// PanUp moves the center along world up.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanUp(delta float64)

	// Reset restores the view parameters the OrbitView was created with.
	Reset()
}

type orbitViewImpl struct {
	mu *sync.Mutex

	params  ViewParams
	initial ViewParams

	minPhi      float64
	maxPhi      float64
	minDistance float64
	maxDistance float64

	orbitSpeed       float64
	mouseSensitivity float64
	zoomSpeed        float64
	panSpeed         float64
}

var _ OrbitView = &orbitViewImpl{}

// NewOrbitView creates an OrbitView looking at the origin from theta pi/4,
// phi pi/3 and distance 21.
//
// Parameters:
//   - options: functional options to configure the view
//
// Returns:
//   - OrbitView: the newly created view
func NewOrbitView(options ...OrbitViewOption) OrbitView {
	ov := &orbitViewImpl{
		mu: &sync.Mutex{},
		params: ViewParams{
			Theta:    math.Pi / 4,
			Phi:      math.Pi / 3,
			Distance: 21,
		},
		minPhi:           0.05,
		maxPhi:           math.Pi/2 - 0.05,
		minDistance:      2,
		maxDistance:      200,
		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        1.0,
		panSpeed:         0.5,
	}
	for _, option := range options {
		option(ov)
	}
	ov.clamp()
	ov.initial = ov.params
	return ov
}

func (ov *orbitViewImpl) Params() ViewParams {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	return ov.params
}

func (ov *orbitViewImpl) OrbitLeft() {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.params.Theta -= ov.orbitSpeed
}

func (ov *orbitViewImpl) OrbitRight() {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.params.Theta += ov.orbitSpeed
}

func (ov *orbitViewImpl) OrbitUp() {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.params.Phi += ov.orbitSpeed
	ov.clamp()
}

func (ov *orbitViewImpl) OrbitDown() {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.params.Phi -= ov.orbitSpeed
	ov.clamp()
}

func (ov *orbitViewImpl) Drag(dx, dy float64) {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.params.Theta -= dx * ov.mouseSensitivity
	ov.params.Phi += dy * ov.mouseSensitivity
	ov.clamp()
}

func (ov *orbitViewImpl) Zoom(delta float64) {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.params.Distance -= delta * ov.zoomSpeed
	ov.clamp()
}

func (ov *orbitViewImpl) PanForward(delta float64) {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	forward, _ := ov.groundAxes()
	ov.params.Center = ov.params.Center.Add(forward.Mul(delta * ov.panSpeed))
}

func (ov *orbitViewImpl) PanRight(delta float64) {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	_, right := ov.groundAxes()
	ov.params.Center = ov.params.Center.Add(right.Mul(delta * ov.panSpeed))
}

func (ov *orbitViewImpl) PanUp(delta float64) {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.params.Center = ov.params.Center.Add(common.WorldUp.Mul(delta * ov.panSpeed))
}

func (ov *orbitViewImpl) Reset() {
	ov.mu.Lock()
	defer ov.mu.Unlock()
	ov.params = ov.initial
}

// groundAxes returns the horizontal forward and right unit vectors of the view.
// The eye sits at azimuth theta, so the view looks along -(cos theta, sin theta).
// Caller must hold the mutex.
func (ov *orbitViewImpl) groundAxes() (forward, right mgl64.Vec3) {
	sin, cos := math.Sincos(ov.params.Theta)
	forward = mgl64.Vec3{-cos, -sin, 0}
	right = forward.Cross(common.WorldUp)
	return forward, right
}

// clamp keeps phi and the distance inside their bounds. Caller must hold the mutex.
func (ov *orbitViewImpl) clamp() {
	ov.params.Phi = common.Clamp(ov.params.Phi, ov.minPhi, ov.maxPhi)
	ov.params.Distance = common.Clamp(ov.params.Distance, ov.minDistance, ov.maxDistance)
}
