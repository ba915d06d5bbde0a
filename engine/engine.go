// Package engine drives the race simulation at a fixed tick rate and produces
// one camera Frame per tick.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/profiler"
	"github.com/Carmen-Shannon/robotrace/engine/race"
	"github.com/Carmen-Shannon/robotrace/internal/monitoring"
	"github.com/go-gl/mathgl/mgl64"
)

// Frame is the outcome of one engine tick.
type Frame struct {
	// Index counts ticks from 1.
	Index uint64
	// Delta is the simulated time of this tick.
	Delta time.Duration
	// Mode is the selected camera mode.
	Mode camera.Mode
	// ActiveMode is the mode that produced State. It differs from Mode only in ModeAuto.
	ActiveMode camera.Mode
	// Track is the name of the track the robots ran on.
	Track string
	// State is the controller output.
	State camera.State
	// ViewProjection is the camera matrix built from State.
	ViewProjection mgl64.Mat4
	// Robots are the robot snapshots ordered by lane.
	Robots []camera.EntitySnapshot
}

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	tickRateChannel chan time.Duration

	running bool

	quitChannel chan struct{}
	quitOnce    sync.Once

	race       race.Race
	controller camera.CameraController
	camera     camera.Camera
	orbitView  camera.OrbitView

	mode       camera.Mode
	paused     bool
	frame      Frame
	frameCount uint64

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(Frame)
}

// Engine advances the race and the camera controller once per tick.
// It never touches the window, so it can run headless and in tests.
type Engine interface {
	// Race returns the race being simulated.
	//
	// Returns:
	//   - race.Race: the race
	Race() race.Race

	// Controller returns the camera controller.
	//
	// Returns:
	//   - camera.CameraController: the controller
	Controller() camera.CameraController

	// Camera returns the camera fed by the controller.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// OrbitView returns the view parameters used by the default camera mode.
	//
	// Returns:
	//   - camera.OrbitView: the orbit view
	OrbitView() camera.OrbitView

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - hz: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(hz float64)

	// TickRate returns the interval between ticks.
	//
	// Returns:
	//   - time.Duration: the tick interval
	TickRate() time.Duration

	// SetTickCallback registers the function called with every frame Step produces.
	//
	// Parameters:
	//   - callback: function called after each successful tick
	SetTickCallback(callback func(Frame))

	// SetMode selects the camera mode used from the next tick on.
	//
	// Parameters:
	//   - mode: the camera mode
	SetMode(mode camera.Mode)

	// Mode returns the selected camera mode.
	//
	// Returns:
	//   - camera.Mode: the selected mode
	Mode() camera.Mode

	// SetPaused freezes or resumes the robots. The camera keeps updating while paused.
	//
	// Parameters:
	//   - paused: true to freeze the race
	SetPaused(paused bool)

	// Paused reports whether the race is frozen.
	//
	// Returns:
	//   - bool: true if paused
	Paused() bool

	// Frame returns the last frame produced by Step.
	//
	// Returns:
	//   - Frame: the last frame
	Frame() Frame

	// Step runs one tick: the race advances by dt, the controller computes the camera
	// state for the selected mode and the camera rebuilds its matrices.
	//
	// Parameters:
	//   - dt: the simulated time step
	//
	// Returns:
	//   - Frame: the produced frame
	//   - error: the race or camera error, also logged
	Step(dt time.Duration) (Frame, error)

	// Run ticks at the configured rate until ctx is done or Quit is called.
	// Tick errors are logged and do not stop the loop.
	//
	// Parameters:
	//   - ctx: context cancelling the loop
	//
	// Returns:
	//   - error: ctx.Err() if the context ended the loop, nil after Quit
	Run(ctx context.Context) error

	// Quit signals Run to stop. Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine. Components not supplied through options are
// created with their defaults: a race on the test track, a camera controller,
// a camera and an orbit view.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: error if the default race cannot be created
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		mu:              &sync.Mutex{},
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.race == nil {
		r, err := race.NewRace()
		if err != nil {
			return nil, fmt.Errorf("create race: %w", err)
		}
		e.race = r
	}
	if e.controller == nil {
		e.controller = camera.NewCameraController()
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	if e.orbitView == nil {
		e.orbitView = camera.NewOrbitView()
	}
	return e, nil
}

func (e *engine) Race() race.Race {
	return e.race
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) OrbitView() camera.OrbitView {
	return e.orbitView
}

func (e *engine) SetMode(mode camera.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if mode != e.mode {
		monitoring.Logf("[Engine] camera mode %s -> %s", e.mode, mode)
	}
	e.mode = mode
}

func (e *engine) Mode() camera.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

func (e *engine) SetPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = paused
}

func (e *engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

func (e *engine) Frame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

func (e *engine) SetTickCallback(callback func(Frame)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) Step(dt time.Duration) (Frame, error) {
	e.mu.Lock()
	mode := e.mode
	raceDt := dt
	if e.paused {
		raceDt = 0
	}
	e.mu.Unlock()

	if err := e.race.Advance(raceDt); err != nil {
		monitoring.Logf("[Engine] advance race: %v", err)
		return Frame{}, err
	}
	robots := e.race.Snapshots()
	view := e.orbitView.Params()

	state, err := e.controller.Update(mode, view, robots, dt)
	if err != nil {
		monitoring.Logf("[Engine] update camera: %v", err)
		return Frame{}, err
	}
	e.camera.Update(state, mode, view.Distance)

	active := mode
	if mode == camera.ModeAuto {
		active = e.controller.AutoMode()
	}

	e.mu.Lock()
	e.frameCount++
	f := Frame{
		Index:          e.frameCount,
		Delta:          dt,
		Mode:           mode,
		ActiveMode:     active,
		Track:          e.race.Track().Name(),
		State:          state,
		ViewProjection: e.camera.ViewProjectionMatrix(),
		Robots:         robots,
	}
	e.frame = f
	callback := e.tickCallback
	profile := e.profilingEnabled
	e.mu.Unlock()

	if callback != nil {
		callback(f)
	}
	if profile {
		e.profiler.Tick()
	}
	return f, nil
}

func (e *engine) Run(ctx context.Context) error {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	return e.handleEngine(ctx)
}

// Quit signals the tick loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate tick loop. The measured wall-clock time between
// ticks is the simulated step, and the rate can change while running via tickRateChannel.
func (e *engine) handleEngine(ctx context.Context) error {
	ticker := time.NewTicker(e.TickRate())
	defer ticker.Stop()

	lastTick := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.quitChannel:
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTick)
			lastTick = now
			// errors are already logged by Step
			_, _ = e.Step(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(hz float64) {
	newRate := tickInterval(hz)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// replace any pending update so the latest rate wins
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) TickRate() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engineTickRate
}

// tickInterval converts a rate in hertz to the interval between ticks, defaulting to 60Hz.
func tickInterval(hz float64) time.Duration {
	if hz <= 0 {
		hz = 60
	}
	return time.Duration(float64(time.Second) / hz)
}
