package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/track"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestEmptyConfigDefaults(t *testing.T) {
	cfg := Empty()

	if got := cfg.GetTrack(); got != track.PresetTest {
		t.Errorf("GetTrack() = %q, want %q", got, track.PresetTest)
	}
	if _, ok := cfg.GetSeed(); ok {
		t.Error("GetSeed() should report no seed")
	}
	if got := cfg.GetLaneWidth(); got != track.DefaultLaneWidth {
		t.Errorf("GetLaneWidth() = %f, want %f", got, track.DefaultLaneWidth)
	}
	if got := cfg.GetTickRateHz(); got != 60 {
		t.Errorf("GetTickRateHz() = %f, want 60", got)
	}
	if cfg.GetProfiling() {
		t.Error("GetProfiling() = true, want false")
	}
	if got := cfg.GetCameraMode(); got != camera.ModeDefault {
		t.Errorf("GetCameraMode() = %v, want default", got)
	}
	if got := cfg.GetAutoInterval(); got != 3*time.Second {
		t.Errorf("GetAutoInterval() = %v, want 3s", got)
	}
	if got := cfg.GetMotorcycleOffset(); got != 3.0 {
		t.Errorf("GetMotorcycleOffset() = %f, want 3", got)
	}
	if got := cfg.GetTheta(); got != math.Pi/4 {
		t.Errorf("GetTheta() = %f, want pi/4", got)
	}
	if got := cfg.GetPhi(); got != math.Pi/3 {
		t.Errorf("GetPhi() = %f, want pi/3", got)
	}
	if got := cfg.GetViewDistance(); got != 21 {
		t.Errorf("GetViewDistance() = %f, want 21", got)
	}
	if cfg.GetWindowWidth() != 1280 || cfg.GetWindowHeight() != 720 {
		t.Errorf("window size = %dx%d, want 1280x720", cfg.GetWindowWidth(), cfg.GetWindowHeight())
	}
	if cfg.GetWindowTitle() != "Robot Race" {
		t.Errorf("GetWindowTitle() = %q", cfg.GetWindowTitle())
	}
	if cfg.GetFovDeg() != 40 {
		t.Errorf("GetFovDeg() = %f, want 40", cfg.GetFovDeg())
	}
}

func TestDefaultsFileMatchesGetters(t *testing.T) {
	file := MustLoadDefault()
	empty := Empty()

	if file.GetTrack() != empty.GetTrack() {
		t.Errorf("track: file %q, code %q", file.GetTrack(), empty.GetTrack())
	}
	if file.GetLaneWidth() != empty.GetLaneWidth() {
		t.Errorf("lane_width: file %f, code %f", file.GetLaneWidth(), empty.GetLaneWidth())
	}
	if file.GetTickRateHz() != empty.GetTickRateHz() {
		t.Errorf("tick_rate_hz: file %f, code %f", file.GetTickRateHz(), empty.GetTickRateHz())
	}
	if file.GetCameraMode() != empty.GetCameraMode() {
		t.Errorf("camera_mode: file %v, code %v", file.GetCameraMode(), empty.GetCameraMode())
	}
	if file.GetAutoInterval() != empty.GetAutoInterval() {
		t.Errorf("auto_interval: file %v, code %v", file.GetAutoInterval(), empty.GetAutoInterval())
	}
	if file.GetMotorcycleOffset() != empty.GetMotorcycleOffset() {
		t.Errorf("motorcycle_offset: file %f, code %f", file.GetMotorcycleOffset(), empty.GetMotorcycleOffset())
	}
	if math.Abs(file.GetTheta()-empty.GetTheta()) > 1e-12 || math.Abs(file.GetPhi()-empty.GetPhi()) > 1e-12 {
		t.Errorf("angles: file (%f, %f), code (%f, %f)", file.GetTheta(), file.GetPhi(), empty.GetTheta(), empty.GetPhi())
	}
	if file.GetViewDistance() != empty.GetViewDistance() || file.GetFovDeg() != empty.GetFovDeg() {
		t.Error("view distance or fov differ between file and code")
	}
	if file.GetWindowWidth() != empty.GetWindowWidth() || file.GetWindowHeight() != empty.GetWindowHeight() {
		t.Error("window size differs between file and code")
	}
	if file.GetWindowTitle() != empty.GetWindowTitle() {
		t.Error("window title differs between file and code")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "race.json", `{
  "track": "eight",
  "seed": 42,
  "camera_mode": "motorcycle",
  "auto_interval": "1500ms",
  "tick_rate_hz": 30,
  "profiling": true,
  "window_width": 800
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GetTrack() != track.PresetEight {
		t.Errorf("GetTrack() = %q, want eight", cfg.GetTrack())
	}
	if seed, ok := cfg.GetSeed(); !ok || seed != 42 {
		t.Errorf("GetSeed() = %d, %v, want 42, true", seed, ok)
	}
	if cfg.GetCameraMode() != camera.ModeMotorcycle {
		t.Errorf("GetCameraMode() = %v, want motorcycle", cfg.GetCameraMode())
	}
	if cfg.GetAutoInterval() != 1500*time.Millisecond {
		t.Errorf("GetAutoInterval() = %v, want 1.5s", cfg.GetAutoInterval())
	}
	if cfg.GetTickRateHz() != 30 || !cfg.GetProfiling() {
		t.Errorf("engine settings = %f, %v", cfg.GetTickRateHz(), cfg.GetProfiling())
	}
	// omitted fields keep their defaults
	if cfg.GetWindowWidth() != 800 || cfg.GetWindowHeight() != 720 {
		t.Errorf("window size = %dx%d, want 800x720", cfg.GetWindowWidth(), cfg.GetWindowHeight())
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{"wrong extension", "race.yaml", `{}`, ".json extension"},
		{"bad json", "race.json", `{"track":`, "parse config JSON"},
		{"unknown track", "race.json", `{"track": "monza"}`, "unknown track preset"},
		{"unknown mode", "race.json", `{"camera_mode": "drone"}`, "unknown camera mode"},
		{"bad interval", "race.json", `{"auto_interval": "soon"}`, "invalid auto_interval"},
		{"negative interval", "race.json", `{"auto_interval": "-1s"}`, "auto_interval must be positive"},
		{"zero tick rate", "race.json", `{"tick_rate_hz": 0}`, "tick_rate_hz must be positive"},
		{"zero lane width", "race.json", `{"lane_width": 0}`, "lane_width must be positive"},
		{"bad fov", "race.json", `{"fov_deg": 180}`, "fov_deg"},
		{"bad phi", "race.json", `{"phi": 2}`, "phi must be within"},
		{"bad window", "race.json", `{"window_height": -5}`, "window_height must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.file, tc.body)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingAndOversized(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	big := `{"window_title": "` + strings.Repeat("x", maxFileSize) + `"}`
	path := writeConfig(t, "big.json", big)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("expected size error, got %v", err)
	}
}
