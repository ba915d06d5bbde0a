// Package config loads the robotrace JSON configuration.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/track"
)

// DefaultConfigPath is the path to the canonical defaults file.
const DefaultConfigPath = "config/robotrace.defaults.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Config is the root configuration. Every field is optional; the Get* methods
// supply the default for fields left out of the file.
type Config struct {
	// Race
	Track     *string  `json:"track,omitempty"`
	Seed      *uint64  `json:"seed,omitempty"`
	LaneWidth *float64 `json:"lane_width,omitempty"`

	// Engine
	TickRateHz *float64 `json:"tick_rate_hz,omitempty"`
	Profiling  *bool    `json:"profiling,omitempty"`

	// Camera
	CameraMode       *string  `json:"camera_mode,omitempty"`
	AutoInterval     *string  `json:"auto_interval,omitempty"` // duration string like "3s"
	MotorcycleOffset *float64 `json:"motorcycle_offset,omitempty"`
	FovDeg           *float64 `json:"fov_deg,omitempty"`
	Theta            *float64 `json:"theta,omitempty"`
	Phi              *float64 `json:"phi,omitempty"`
	ViewDistance     *float64 `json:"view_distance,omitempty"`

	// Window
	WindowWidth  *int    `json:"window_width,omitempty"`
	WindowHeight *int    `json:"window_height,omitempty"`
	WindowTitle  *string `json:"window_title,omitempty"`
}

// Empty returns a Config with all fields set to nil.
func Empty() *Config {
	return &Config{}
}

// Load reads a Config from a JSON file. The file must have a .json extension and be
// at most 1MB. Fields omitted from the file keep their defaults, so partial configs are safe.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefault loads DefaultConfigPath from the current directory or one of its
// parents. Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefault() *Config {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks the values that are set.
func (c *Config) Validate() error {
	if c.Track != nil {
		if _, ok := knownTracks()[*c.Track]; !ok {
			return fmt.Errorf("%w: %q", track.ErrUnknownPreset, *c.Track)
		}
	}
	if c.CameraMode != nil {
		if _, err := camera.ParseMode(*c.CameraMode); err != nil {
			return fmt.Errorf("camera_mode: %w", err)
		}
	}
	if c.AutoInterval != nil && *c.AutoInterval != "" {
		d, err := time.ParseDuration(*c.AutoInterval)
		if err != nil {
			return fmt.Errorf("invalid auto_interval '%s': %w", *c.AutoInterval, err)
		}
		if d <= 0 {
			return fmt.Errorf("auto_interval must be positive, got %s", d)
		}
	}
	if err := positive("tick_rate_hz", c.TickRateHz); err != nil {
		return err
	}
	if err := positive("lane_width", c.LaneWidth); err != nil {
		return err
	}
	if err := positive("view_distance", c.ViewDistance); err != nil {
		return err
	}
	if c.FovDeg != nil && !(*c.FovDeg > 0 && *c.FovDeg < 180) {
		return fmt.Errorf("fov_deg must be between 0 and 180, got %f", *c.FovDeg)
	}
	if c.Phi != nil && math.Abs(*c.Phi) > math.Pi/2 {
		return fmt.Errorf("phi must be within [-pi/2, pi/2], got %f", *c.Phi)
	}
	if c.MotorcycleOffset != nil && math.IsNaN(*c.MotorcycleOffset) {
		return fmt.Errorf("motorcycle_offset must be a number")
	}
	if c.WindowWidth != nil && *c.WindowWidth <= 0 {
		return fmt.Errorf("window_width must be positive, got %d", *c.WindowWidth)
	}
	if c.WindowHeight != nil && *c.WindowHeight <= 0 {
		return fmt.Errorf("window_height must be positive, got %d", *c.WindowHeight)
	}
	return nil
}

func positive(name string, v *float64) error {
	if v != nil && !(*v > 0) {
		return fmt.Errorf("%s must be positive, got %f", name, *v)
	}
	return nil
}

func knownTracks() map[string]struct{} {
	out := make(map[string]struct{})
	for _, n := range track.PresetNames() {
		out[n] = struct{}{}
	}
	return out
}

// GetTrack returns the preset track name or the default.
func (c *Config) GetTrack() string {
	if c.Track == nil {
		return track.PresetTest
	}
	return *c.Track
}

// GetSeed returns the random seed and whether one was configured.
func (c *Config) GetSeed() (uint64, bool) {
	if c.Seed == nil {
		return 0, false
	}
	return *c.Seed, true
}

// GetLaneWidth returns the lane width or the default.
func (c *Config) GetLaneWidth() float64 {
	if c.LaneWidth == nil {
		return track.DefaultLaneWidth
	}
	return *c.LaneWidth
}

// GetTickRateHz returns the engine tick rate or the default.
func (c *Config) GetTickRateHz() float64 {
	if c.TickRateHz == nil {
		return 60
	}
	return *c.TickRateHz
}

// GetProfiling returns the profiling flag or the default.
func (c *Config) GetProfiling() bool {
	if c.Profiling == nil {
		return false
	}
	return *c.Profiling
}

// GetCameraMode returns the initial camera mode or the default.
func (c *Config) GetCameraMode() camera.Mode {
	if c.CameraMode == nil {
		return camera.ModeDefault
	}
	m, err := camera.ParseMode(*c.CameraMode)
	if err != nil {
		return camera.ModeDefault // default on parse error
	}
	return m
}

// GetAutoInterval parses and returns the AutoInterval as a time.Duration.
func (c *Config) GetAutoInterval() time.Duration {
	if c.AutoInterval == nil || *c.AutoInterval == "" {
		return camera.DefaultAutoInterval
	}
	d, err := time.ParseDuration(*c.AutoInterval)
	if err != nil || d <= 0 {
		return camera.DefaultAutoInterval
	}
	return d
}

// GetMotorcycleOffset returns the motorcycle camera offset or the default.
func (c *Config) GetMotorcycleOffset() float64 {
	if c.MotorcycleOffset == nil {
		return camera.DefaultMotorcycleOffset
	}
	return *c.MotorcycleOffset
}

// GetFovDeg returns the vertical field of view in degrees or the default.
func (c *Config) GetFovDeg() float64 {
	if c.FovDeg == nil {
		return 40
	}
	return *c.FovDeg
}

// GetTheta returns the initial view azimuth or the default.
func (c *Config) GetTheta() float64 {
	if c.Theta == nil {
		return math.Pi / 4
	}
	return *c.Theta
}

// GetPhi returns the initial view elevation or the default.
func (c *Config) GetPhi() float64 {
	if c.Phi == nil {
		return math.Pi / 3
	}
	return *c.Phi
}

// GetViewDistance returns the initial view distance or the default.
func (c *Config) GetViewDistance() float64 {
	if c.ViewDistance == nil {
		return 21
	}
	return *c.ViewDistance
}

// GetWindowWidth returns the window width or the default.
func (c *Config) GetWindowWidth() int {
	if c.WindowWidth == nil {
		return 1280
	}
	return *c.WindowWidth
}

// GetWindowHeight returns the window height or the default.
func (c *Config) GetWindowHeight() int {
	if c.WindowHeight == nil {
		return 720
	}
	return *c.WindowHeight
}

// GetWindowTitle returns the window title or the default.
func (c *Config) GetWindowTitle() string {
	if c.WindowTitle == nil {
		return "Robot Race"
	}
	return *c.WindowTitle
}
