package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	followNear = 0.1
	followFar  = 50.0
)

type cameraImpl struct {
	mu *sync.Mutex

	fov    float64
	aspect float64
	near   float64
	far    float64

	state State

	viewMatrix              mgl64.Mat4
	projectionMatrix        mgl64.Mat4
	viewProjectionMatrix    mgl64.Mat4
	inverseProjectionMatrix mgl64.Mat4
}

// Camera holds the perspective settings and turns a controller State into the
// view and projection matrices for the frame.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float64: field of view in radians
	Fov() float64

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// Near returns the near clipping plane distance used for the last Update.
	//
	// Returns:
	//   - float64: near plane distance
	Near() float64

	// Far returns the far clipping plane distance used for the last Update.
	//
	// Returns:
	//   - float64: far plane distance
	Far() float64

	// State returns the controller state the matrices were built from.
	//
	// Returns:
	//   - State: the last applied state
	State() State

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl64.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl64.Mat4

	// InverseProjectionMatrix returns the inverse of the projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the inverse projection matrix
	InverseProjectionMatrix() mgl64.Mat4

	// Update applies a controller state and recomputes every matrix. The default
	// view scales its clip planes with the view distance, the following modes use
	// fixed planes close to the robots.
	//
	// Parameters:
	//   - state: the controller output for this frame
	//   - mode: the mode that produced the state
	//   - viewDistance: the orbit distance of the default view
	Update(state State, mode Mode, viewDistance float64)

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float64)

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float64)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with a 40 degree field of view looking from the
// controller's initial eye at the origin.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		fov:    mgl64.DegToRad(40),
		aspect: 1.0,
		near:   followNear,
		far:    followFar,
		state: State{
			Eye: mgl64.Vec3{3, 6, 5},
			Up:  mgl64.Vec3{0, 0, 1},
		},
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) InverseProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix
}

func (c *cameraImpl) Update(state State, mode Mode, viewDistance float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	if mode.follows() {
		c.near = followNear
		c.far = followFar
	} else {
		c.near = 0.1 * viewDistance
		c.far = 10 * viewDistance
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, view-projection and inverse
// projection matrices. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	near := c.near
	if !(near > 0) {
		near = followNear
	}
	far := math.Max(c.far, near*2)

	c.viewMatrix = mgl64.LookAtV(c.state.Eye, c.state.Center, c.state.Up)
	c.projectionMatrix = mgl64.Perspective(c.fov, c.aspect, near, far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.inverseProjectionMatrix = c.projectionMatrix.Inv()
}
