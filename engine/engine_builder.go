package engine

import (
	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/profiler"
	"github.com/Carmen-Shannon/robotrace/engine/race"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - hz: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(hz float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(hz)
	}
}

// WithRace sets the race the engine simulates.
//
// Parameters:
//   - r: the race
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRace(r race.Race) EngineBuilderOption {
	return func(e *engine) {
		e.race = r
	}
}

// WithController sets the camera controller.
//
// Parameters:
//   - cc: the controller
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(cc camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = cc
	}
}

// WithCamera sets the camera fed by the controller.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithOrbitView sets the view parameters used by the default camera mode.
//
// Parameters:
//   - ov: the orbit view
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithOrbitView(ov camera.OrbitView) EngineBuilderOption {
	return func(e *engine) {
		e.orbitView = ov
	}
}

// WithMode sets the initial camera mode.
//
// Parameters:
//   - mode: the camera mode
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMode(mode camera.Mode) EngineBuilderOption {
	return func(e *engine) {
		e.mode = mode
	}
}
