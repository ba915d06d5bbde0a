// Package controls maps window input onto the race engine.
package controls

import (
	"fmt"

	"github.com/Carmen-Shannon/robotrace/common"
	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/race"
	"github.com/Carmen-Shannon/robotrace/engine/track"
	"github.com/Carmen-Shannon/robotrace/internal/monitoring"
)

// Target is the part of the engine the controls drive.
type Target interface {
	SetMode(mode camera.Mode)
	OrbitView() camera.OrbitView
	Race() race.Race
	SetPaused(paused bool)
	Paused() bool
}

// modeKeys selects the camera mode with the number keys.
var modeKeys = map[uint32]camera.Mode{
	common.Key0: camera.ModeDefault,
	common.Key1: camera.ModeHelicopter,
	common.Key2: camera.ModeMotorcycle,
	common.Key3: camera.ModeFirstPerson,
	common.Key4: camera.ModeAuto,
}

// Controls translates key presses, drags and scrolls into engine calls.
type Controls struct {
	target   Target
	panStep  float64
	zoomStep float64
	options  []track.TrackBuilderOption
}

// NewControls creates Controls for target. Track options are applied to every
// preset the track key switches to.
//
// Parameters:
//   - target: the engine to drive
//   - options: options for tracks built by the track key
//
// Returns:
//   - *Controls: the controls
func NewControls(target Target, options ...track.TrackBuilderOption) *Controls {
	return &Controls{
		target:   target,
		panStep:  1,
		zoomStep: 1,
		options:  options,
	}
}

// HandleKey applies one key press.
//
// Parameters:
//   - keyCode: the key code, see common.Key*
//
// Returns:
//   - bool: true if the key is bound
//   - error: the error switching tracks
func (c *Controls) HandleKey(keyCode uint32) (bool, error) {
	if mode, ok := modeKeys[keyCode]; ok {
		c.target.SetMode(mode)
		return true, nil
	}

	ov := c.target.OrbitView()
	switch keyCode {
	case common.KeyLeft:
		ov.OrbitLeft()
	case common.KeyRight:
		ov.OrbitRight()
	case common.KeyUp:
		ov.OrbitUp()
	case common.KeyDown:
		ov.OrbitDown()
	case common.KeyW:
		ov.PanForward(c.panStep)
	case common.KeyS:
		ov.PanForward(-c.panStep)
	case common.KeyD:
		ov.PanRight(c.panStep)
	case common.KeyA:
		ov.PanRight(-c.panStep)
	case common.KeyQ:
		ov.PanUp(c.panStep)
	case common.KeyZ:
		ov.PanUp(-c.panStep)
	case common.KeySpace:
		c.target.SetPaused(!c.target.Paused())
	case common.KeyT:
		return true, c.nextTrack()
	default:
		return false, nil
	}
	return true, nil
}

// Drag orbits the default view with the mouse.
func (c *Controls) Drag(dx, dy float64) {
	c.target.OrbitView().Drag(dx, dy)
}

// Scroll zooms the default view. Scrolling up zooms in.
func (c *Controls) Scroll(delta float64) {
	c.target.OrbitView().Zoom(delta * c.zoomStep)
}

func (c *Controls) nextTrack() error {
	r := c.target.Race()
	name := track.NextPreset(r.Track().Name())
	tr, err := track.Preset(name, c.options...)
	if err != nil {
		return fmt.Errorf("switch track: %w", err)
	}
	if err := r.SetTrack(tr); err != nil {
		return fmt.Errorf("switch track: %w", err)
	}
	monitoring.Logf("[Controls] track %q", name)
	return nil
}
