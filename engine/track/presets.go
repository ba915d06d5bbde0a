package track

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Preset track names.
const (
	PresetTest  = "test"
	PresetO     = "o"
	PresetL     = "l"
	PresetC     = "c"
	PresetEight = "eight"
)

// presetPoints holds the control polygons of the built-in tracks. All tracks lie
// in the plane z = 1. The test track has no control points.
var presetPoints = map[string][]mgl64.Vec3{
	PresetTest: nil,
	PresetO: {
		{0, -15, 1},
		{12, -15, 1}, {12, 15, 1}, {0, 15, 1},
		{-12, 15, 1}, {-12, -15, 1}, {0, -15, 1},
	},
	PresetL: {
		{-8, 8, 1},
		{-8, 2, 1}, {-8, -4, 1}, {-4, -6, 1},
		{0, -8, 1}, {2, -8, 1}, {8, -8, 1},
		{16, -8, 1}, {16, 0, 1}, {8, 0, 1},
		{2, 0, 1}, {0, 2, 1}, {0, 8, 1},
		{0, 16, 1}, {-8, 16, 1}, {-8, 8, 1},
	},
	PresetC: {
		{4, 12, 1},
		{-8, 12, 1}, {-12, 8, 1}, {-12, 0, 1},
		{-12, -8, 1}, {-8, -12, 1}, {4, -12, 1},
		{10, -12, 1}, {10, -4, 1}, {4, -4, 1},
		{-4, -4, 1}, {-4, 4, 1}, {4, 4, 1},
		{10, 4, 1}, {10, 12, 1}, {4, 12, 1},
	},
	PresetEight: {
		{0, 0, 1},
		{-24, -8, 1}, {8, -24, 1}, {0, 0, 1},
		{-8, 24, 1}, {24, 8, 1}, {0, 0, 1},
	},
}

// presetOrder is the menu order of the presets.
var presetOrder = []string{PresetTest, PresetO, PresetL, PresetC, PresetEight}

// PresetNames returns the preset names in menu order.
func PresetNames() []string {
	names := make([]string, len(presetOrder))
	copy(names, presetOrder)
	return names
}

// Preset builds one of the built-in tracks by name.
//
// Parameters:
//   - name: one of PresetNames()
//   - options: extra options applied after the preset's name
//
// Returns:
//   - Track: the track
//   - error: ErrUnknownPreset if name is not a preset
func Preset(name string, options ...TrackBuilderOption) (Track, error) {
	points, ok := presetPoints[name]
	if !ok {
		known := PresetNames()
		sort.Strings(known)
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPreset, name, known)
	}
	return NewTrack(points, append([]TrackBuilderOption{WithName(name)}, options...)...)
}

// NextPreset returns the preset following name in menu order, wrapping around.
// Unknown names restart at the first preset.
func NextPreset(name string) string {
	for i, n := range presetOrder {
		if n == name {
			return presetOrder[(i+1)%len(presetOrder)]
		}
	}
	return presetOrder[0]
}
