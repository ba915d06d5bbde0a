package race

import (
	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/track"
	"github.com/google/uuid"
)

// RaceBuilderOption is a functional option for configuring a Race.
type RaceBuilderOption func(*raceImpl)

// WithTrack sets the track the race starts on.
//
// Parameters:
//   - tr: the track
//
// Returns:
//   - RaceBuilderOption: functional option to set the track
func WithTrack(tr track.Track) RaceBuilderOption {
	return func(r *raceImpl) {
		r.track = tr
	}
}

// WithRand sets the random source shared by the robots.
//
// Parameters:
//   - rnd: the random source
//
// Returns:
//   - RaceBuilderOption: functional option to set the random source
func WithRand(rnd camera.Rand) RaceBuilderOption {
	return func(r *raceImpl) {
		r.rand = rnd
	}
}

// WithSeed seeds the random source shared by the robots.
//
// Parameters:
//   - seed: the PCG seed
//
// Returns:
//   - RaceBuilderOption: functional option to seed the random source
func WithSeed(seed uint64) RaceBuilderOption {
	return func(r *raceImpl) {
		r.rand = camera.NewRand(seed)
	}
}

// WithID sets the run ID instead of generating a random one.
//
// Parameters:
//   - id: the run ID
//
// Returns:
//   - RaceBuilderOption: functional option to set the run ID
func WithID(id uuid.UUID) RaceBuilderOption {
	return func(r *raceImpl) {
		r.id = id
	}
}
