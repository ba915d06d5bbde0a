package camera

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/robotrace/common"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultAutoInterval is how long ModeAuto keeps a sub-mode.
	DefaultAutoInterval = 3 * time.Second
	// DefaultMotorcycleOffset is the sideways distance of the motorcycle camera.
	DefaultMotorcycleOffset = 3.0
	// DefaultHelicopterHeight is the hover height of the helicopter camera.
	DefaultHelicopterHeight = 15.0

	motorcycleEyeHeight    = 1.5
	motorcycleCenterHeight = 1.1
	firstPersonEyeHeight   = 1.75
	firstPersonEyeForward  = 0.5
)

type cameraControllerImpl struct {
	mu *sync.Mutex

	state State

	rand             Rand
	autoInterval     time.Duration
	autoElapsed      time.Duration
	autoMode         Mode
	motorcycleOffset float64
	helicopterHeight float64
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller starting in the default view with ModeAuto
// parked on ModeHelicopter.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},
		state: State{
			Eye:    mgl64.Vec3{3, 6, 5},
			Center: mgl64.Vec3{},
			Up:     common.WorldUp,
		},
		autoInterval:     DefaultAutoInterval,
		autoMode:         ModeHelicopter,
		motorcycleOffset: DefaultMotorcycleOffset,
		helicopterHeight: DefaultHelicopterHeight,
	}
	for _, option := range options {
		option(cc)
	}
	if cc.rand == nil {
		cc.rand = NewRand(uint64(time.Now().UnixNano()))
	}
	return cc
}

func (cc *cameraControllerImpl) Update(mode Mode, view ViewParams, focus []EntitySnapshot, elapsed time.Duration) (State, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	// the AUTO timer and sub-mode are committed only when the update succeeds
	autoMode, autoElapsed := cc.autoMode, cc.autoElapsed
	if mode == ModeAuto {
		autoElapsed += elapsed
		if autoElapsed >= cc.autoInterval {
			autoMode = autoModes[cc.rand.IntN(len(autoModes))]
			autoElapsed = 0
		}
		mode = autoMode
	}

	var (
		s   State
		err error
	)
	switch mode {
	case ModeHelicopter:
		s, err = cc.helicopter(focus)
	case ModeMotorcycle:
		s, err = cc.motorcycle(focus)
	case ModeFirstPerson:
		s, err = cc.firstPerson(focus)
	default:
		s = defaultState(view)
	}
	if err != nil {
		return cc.state, fmt.Errorf("camera %s: %w", mode, err)
	}
	cc.state = s
	cc.autoMode, cc.autoElapsed = autoMode, autoElapsed
	return s, nil
}

func (cc *cameraControllerImpl) State() State {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state
}

func (cc *cameraControllerImpl) AutoMode() Mode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.autoMode
}

func (cc *cameraControllerImpl) AutoElapsed() time.Duration {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.autoElapsed
}

func (cc *cameraControllerImpl) AutoInterval() time.Duration {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.autoInterval
}

// defaultState places the eye on the view sphere. The sphere is centered on the origin,
// not on view.Center, so panning slides the look-at point under a fixed eye.
func defaultState(view ViewParams) State {
	return State{
		Eye:    common.SphericalToCartesian(view.Theta, view.Phi, view.Distance),
		Center: view.Center,
		Up:     common.WorldUp,
	}
}

// helicopter hovers above the first focus robot with the up vector along its heading,
// so the picture rotates with the robot.
func (cc *cameraControllerImpl) helicopter(focus []EntitySnapshot) (State, error) {
	if len(focus) == 0 {
		return State{}, ErrNoFocusEntity
	}
	e := focus[0]
	up, err := common.Normalize(e.Direction)
	if err != nil {
		return State{}, err
	}
	return State{
		Eye:    e.Position.Add(mgl64.Vec3{0, 0, cc.helicopterHeight}),
		Center: e.Position,
		Up:     up,
	}, nil
}

func (cc *cameraControllerImpl) motorcycle(focus []EntitySnapshot) (State, error) {
	e, ok := leader(focus)
	if !ok {
		return State{}, ErrNoFocusEntity
	}
	side, err := common.Normalize(e.Direction.Cross(common.WorldUp))
	if err != nil {
		return State{}, err
	}
	eye := e.Position.Add(side.Mul(cc.motorcycleOffset))
	eye[2] = e.Position.Z() + motorcycleEyeHeight
	return State{
		Eye:    eye,
		Center: e.Position.Add(mgl64.Vec3{0, 0, motorcycleCenterHeight}),
		Up:     common.WorldUp,
	}, nil
}

func (cc *cameraControllerImpl) firstPerson(focus []EntitySnapshot) (State, error) {
	e, ok := last(focus)
	if !ok {
		return State{}, ErrNoFocusEntity
	}
	dir, err := common.Normalize(e.Direction)
	if err != nil {
		return State{}, err
	}
	head := e.Position.Add(mgl64.Vec3{0, 0, firstPersonEyeHeight})
	return State{
		Eye:    head.Add(dir.Mul(firstPersonEyeForward)),
		Center: head.Add(dir),
		Up:     common.WorldUp,
	}, nil
}

// leader returns the entity with the greatest distance traveled. The first one wins ties.
func leader(focus []EntitySnapshot) (EntitySnapshot, bool) {
	if len(focus) == 0 {
		return EntitySnapshot{}, false
	}
	best := focus[0]
	for _, e := range focus[1:] {
		if e.DistanceTraveled > best.DistanceTraveled {
			best = e
		}
	}
	return best, true
}

// last returns the entity with the least distance traveled. The first one wins ties.
func last(focus []EntitySnapshot) (EntitySnapshot, bool) {
	if len(focus) == 0 {
		return EntitySnapshot{}, false
	}
	worst := focus[0]
	for _, e := range focus[1:] {
		if e.DistanceTraveled < worst.DistanceTraveled {
			worst = e
		}
	}
	return worst, true
}
