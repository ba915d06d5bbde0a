// Command robotrace runs the robot race with a desktop window for the camera controls.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/Carmen-Shannon/robotrace/engine"
	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/race"
	"github.com/Carmen-Shannon/robotrace/engine/track"
	"github.com/Carmen-Shannon/robotrace/engine/window"
	"github.com/Carmen-Shannon/robotrace/internal/config"
	"github.com/Carmen-Shannon/robotrace/internal/controls"
	"github.com/Carmen-Shannon/robotrace/internal/monitoring"
)

var (
	configPath = flag.String("config", "", "path to a JSON config file (defaults apply when empty)")
	trackName  = flag.String("track", "", "track preset, overrides the config")
	modeName   = flag.String("mode", "", "initial camera mode, overrides the config")
	profile    = flag.Bool("profile", false, "log tick rate and memory statistics")
	headless   = flag.Duration("headless", 0, "run without a window for this long, then print the final frame")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("robotrace: %v", err)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// ── Race ────────────────────────────────────────────────────────────
	tr, err := track.Preset(cfg.GetTrack(), track.WithLaneWidth(cfg.GetLaneWidth()))
	if err != nil {
		return err
	}
	raceOpts := []race.RaceBuilderOption{race.WithTrack(tr)}
	ctrlOpts := []camera.CameraControllerOption{
		camera.WithAutoInterval(cfg.GetAutoInterval()),
		camera.WithMotorcycleOffset(cfg.GetMotorcycleOffset()),
	}
	if seed, ok := cfg.GetSeed(); ok {
		raceOpts = append(raceOpts, race.WithSeed(seed))
		ctrlOpts = append(ctrlOpts, camera.WithSeed(seed+1))
	}
	r, err := race.NewRace(raceOpts...)
	if err != nil {
		return err
	}

	// ── Engine + Camera ─────────────────────────────────────────────────
	eng, err := engine.NewEngine(
		engine.WithRace(r),
		engine.WithTickRate(cfg.GetTickRateHz()),
		engine.WithProfiling(cfg.GetProfiling() || *profile),
		engine.WithMode(cfg.GetCameraMode()),
		engine.WithController(camera.NewCameraController(ctrlOpts...)),
		engine.WithCamera(camera.NewCamera(
			camera.WithFov(cfg.GetFovDeg()),
			camera.WithAspect(float64(cfg.GetWindowWidth())/float64(cfg.GetWindowHeight())),
		)),
		engine.WithOrbitView(camera.NewOrbitView(
			camera.WithAngles(cfg.GetTheta(), cfg.GetPhi()),
			camera.WithDistance(cfg.GetViewDistance()),
		)),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless > 0 {
		return runHeadless(ctx, eng, *headless)
	}
	return runWindow(ctx, eng, cfg, tr)
}

// loadConfig reads the config file, if any, and applies the flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Empty()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *trackName != "" {
		cfg.Track = trackName
	}
	if *modeName != "" {
		cfg.CameraMode = modeName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runHeadless(ctx context.Context, eng engine.Engine, d time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	if err := eng.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	f := eng.Frame()
	monitoring.Logf("[Engine] run %s: %d ticks on %q, camera %s (%s)", eng.Race().ID(), f.Index, f.Track, f.Mode, f.ActiveMode)
	for _, rb := range eng.Race().Robots() {
		monitoring.Logf("[Race] lane %d: %.3f laps", rb.Lane(), rb.Distance())
	}
	return nil
}

func runWindow(ctx context.Context, eng engine.Engine, cfg *config.Config, tr track.Track) error {
	// ── Window ──────────────────────────────────────────────────────────
	// GLFW must stay on the main goroutine; the engine ticks in its own goroutine.
	win, err := window.NewWindow(
		window.WithTitle(cfg.GetWindowTitle()),
		window.WithSize(cfg.GetWindowWidth(), cfg.GetWindowHeight()),
	)
	if err != nil {
		return err
	}
	defer win.Close()

	ctl := controls.NewControls(eng, track.WithLaneWidth(tr.LaneWidth()))
	win.SetKeyDownCallback(func(keyCode uint32) {
		if _, err := ctl.HandleKey(keyCode); err != nil {
			monitoring.Logf("[Controls] %v", err)
		}
	})
	win.SetDragCallback(ctl.Drag)
	win.SetScrollCallback(ctl.Scroll)
	win.SetResizeCallback(func(width, height int) {
		if height > 0 {
			eng.Camera().SetAspect(float64(width) / float64(height))
		}
	})
	eng.Camera().SetAspect(float64(win.Width()) / float64(max(win.Height(), 1)))

	var ticks atomic.Uint64
	eng.SetTickCallback(func(engine.Frame) {
		ticks.Add(1)
	})

	runErr := make(chan error, 1)
	go func() {
		runErr <- eng.Run(ctx)
	}()

	// ── Message loop ────────────────────────────────────────────────────
	lastTitle := time.Now()
	win.SetUpdateCallback(func() {
		if ctx.Err() != nil {
			win.Close()
			return
		}
		if since := time.Since(lastTitle); since >= 250*time.Millisecond {
			f := eng.Frame()
			tps := float64(ticks.Swap(0)) / since.Seconds()
			win.SetTitle(fmt.Sprintf("%s - %s - camera %s - %.0f tps", cfg.GetWindowTitle(), f.Track, f.ActiveMode, tps))
			lastTitle = time.Now()
		}
		time.Sleep(time.Millisecond)
	})
	win.ProcessMessages()

	eng.Quit()
	if err := <-runErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
