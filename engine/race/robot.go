// Package race advances the four robots around a track and exposes them as
// camera focus entities.
package race

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/track"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// InitialLapStep is the fraction of a lap a robot covers per millisecond before its first redraw.
	InitialLapStep = 1.0 / 40000

	minLapMs          = 32500
	lapSpreadMs       = 15000
	minRedrawMs       = 3000
	redrawSpreadMs    = 5000
	initialGaitSpeed  = 18.0
	gaitPeriod        = 10.0
	gaitPerLapStepMul = initialGaitSpeed / InitialLapStep
)

// Robot is one racer. It integrates its own lap parameter and periodically redraws
// its pace from the shared random source.
type Robot interface {
	// Lane returns the 1-based lane the robot runs in.
	//
	// Returns:
	//   - int: the lane
	Lane() int

	// Param returns the track parameter in [0, 1].
	//
	// Returns:
	//   - float64: the position along the lap
	Param() float64

	// Distance returns the cumulative number of laps covered.
	//
	// Returns:
	//   - float64: laps since the start
	Distance() float64

	// LapStep returns the current pace as fraction of a lap per millisecond.
	//
	// Returns:
	//   - float64: the pace
	LapStep() float64

	// GaitPhase returns the walking animation phase in [0, 10).
	//
	// Returns:
	//   - float64: the gait phase
	GaitPhase() float64

	// Position returns the world position set by the last Place.
	//
	// Returns:
	//   - mgl64.Vec3: the robot position
	Position() mgl64.Vec3

	// Direction returns the heading set by the last Place. It is the track tangent
	// and is not normalized.
	//
	// Returns:
	//   - mgl64.Vec3: the robot heading
	Direction() mgl64.Vec3

	// Advance moves the robot forward by dt and redraws its pace when the redraw
	// countdown runs out.
	//
	// Parameters:
	//   - dt: the simulated time step
	Advance(dt time.Duration)

	// Place updates position and direction from the robot's lane on tr.
	//
	// Parameters:
	//   - tr: the track to place the robot on
	//
	// Returns:
	//   - error: the track error if the lane point or tangent cannot be evaluated
	Place(tr track.Track) error

	// Snapshot returns the robot as a camera focus entity.
	//
	// Returns:
	//   - camera.EntitySnapshot: position, direction and distance
	Snapshot() camera.EntitySnapshot
}

type robotImpl struct {
	mu *sync.Mutex

	lane      int
	param     float64
	distance  float64
	lapStep   float64
	gaitSpeed float64
	gait      float64
	redrawMs  float64

	position  mgl64.Vec3
	direction mgl64.Vec3

	rand camera.Rand
}

var _ Robot = &robotImpl{}

// NewRobot creates a robot at the start line with the initial pace. The first pace
// redraw is scheduled 3 to 8 seconds in.
//
// Parameters:
//   - lane: the 1-based lane
//   - r: the random source, usually shared by every robot of a race; nil seeds one from the clock
//   - options: functional options to configure the robot
//
// Returns:
//   - Robot: the newly created robot
func NewRobot(lane int, r camera.Rand, options ...RobotBuilderOption) Robot {
	rb := &robotImpl{
		mu:        &sync.Mutex{},
		lane:      lane,
		lapStep:   InitialLapStep,
		gaitSpeed: initialGaitSpeed,
		rand:      r,
	}
	for _, option := range options {
		option(rb)
	}
	if rb.rand == nil {
		rb.rand = camera.NewRand(uint64(time.Now().UnixNano()))
	}
	rb.redrawMs = float64(minRedrawMs + rb.rand.IntN(redrawSpreadMs))
	return rb
}

func (rb *robotImpl) Lane() int {
	return rb.lane
}

func (rb *robotImpl) Param() float64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.param
}

func (rb *robotImpl) Distance() float64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.distance
}

func (rb *robotImpl) LapStep() float64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.lapStep
}

func (rb *robotImpl) GaitPhase() float64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.gait
}

func (rb *robotImpl) Position() mgl64.Vec3 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.position
}

func (rb *robotImpl) Direction() mgl64.Vec3 {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.direction
}

func (rb *robotImpl) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	ms := float64(dt) / float64(time.Millisecond)

	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.param += rb.lapStep * ms
	rb.distance += rb.lapStep * ms
	for rb.param > 1 {
		rb.param--
	}

	rb.gait += ms / 1000 * rb.gaitSpeed
	for rb.gait >= gaitPeriod {
		rb.gait -= gaitPeriod
	}

	rb.redrawMs -= ms
	if rb.redrawMs < 0 {
		lapMs := float64(minLapMs + rb.rand.IntN(lapSpreadMs))
		rb.lapStep = 1 / lapMs
		rb.gaitSpeed = rb.lapStep * gaitPerLapStepMul
		rb.redrawMs = float64(minRedrawMs + rb.rand.IntN(redrawSpreadMs))
	}
}

func (rb *robotImpl) Place(tr track.Track) error {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	pos, err := tr.LanePoint(rb.lane, rb.param)
	if err != nil {
		return fmt.Errorf("robot in lane %d: %w", rb.lane, err)
	}
	dir, err := tr.LaneTangent(rb.lane, rb.param)
	if err != nil {
		return fmt.Errorf("robot in lane %d: %w", rb.lane, err)
	}
	rb.position = pos
	rb.direction = dir
	return nil
}

func (rb *robotImpl) Snapshot() camera.EntitySnapshot {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return camera.EntitySnapshot{
		Position:         rb.position,
		Direction:        rb.direction,
		DistanceTraveled: rb.distance,
	}
}
