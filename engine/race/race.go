package race

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/robotrace/engine/camera"
	"github.com/Carmen-Shannon/robotrace/engine/track"
	"github.com/Carmen-Shannon/robotrace/internal/monitoring"
	"github.com/google/uuid"
)

// ErrNoTrack is returned when a race is advanced without a track.
var ErrNoTrack = errors.New("race has no track")

// Race runs one robot per lane on a shared track.
type Race interface {
	// ID returns the identifier of this race run.
	//
	// Returns:
	//   - uuid.UUID: the run ID
	ID() uuid.UUID

	// Track returns the track the robots run on.
	//
	// Returns:
	//   - track.Track: the current track
	Track() track.Track

	// SetTrack swaps the track. Robots keep their lap parameter and distance and
	// are placed on the new track immediately.
	//
	// Parameters:
	//   - tr: the new track
	//
	// Returns:
	//   - error: ErrNoTrack if tr is nil, or the placement error
	SetTrack(tr track.Track) error

	// Robots returns the robots ordered by lane.
	//
	// Returns:
	//   - []Robot: one robot per lane
	Robots() []Robot

	// Advance moves every robot by dt and places them on the track.
	//
	// Parameters:
	//   - dt: the simulated time step
	//
	// Returns:
	//   - error: the first placement error
	Advance(dt time.Duration) error

	// Elapsed returns the simulated time since the race started.
	//
	// Returns:
	//   - time.Duration: the total of every Advance step
	Elapsed() time.Duration

	// Snapshots returns the robots as camera focus entities, ordered by lane.
	//
	// Returns:
	//   - []camera.EntitySnapshot: one snapshot per robot
	Snapshots() []camera.EntitySnapshot

	// Leader returns the robot with the greatest distance. The lowest lane wins ties.
	//
	// Returns:
	//   - Robot: the leading robot
	Leader() Robot
}

type raceImpl struct {
	mu *sync.Mutex

	id      uuid.UUID
	track   track.Track
	robots  []Robot
	elapsed time.Duration
	rand    camera.Rand
}

var _ Race = &raceImpl{}

// NewRace creates a race with one robot in each of the track.LaneCount lanes, all drawing
// their pace from one shared random source. Without WithTrack the race runs on the test track.
//
// Parameters:
//   - options: functional options to configure the race
//
// Returns:
//   - Race: the newly created race
//   - error: the error placing the robots on the start line
func NewRace(options ...RaceBuilderOption) (Race, error) {
	r := &raceImpl{
		mu: &sync.Mutex{},
		id: uuid.New(),
	}
	for _, option := range options {
		option(r)
	}
	if r.rand == nil {
		r.rand = camera.NewRand(uint64(time.Now().UnixNano()))
	}
	if r.track == nil {
		tr, err := track.NewTrack(nil)
		if err != nil {
			return nil, err
		}
		r.track = tr
	}

	r.robots = make([]Robot, track.LaneCount)
	for i := range r.robots {
		r.robots[i] = NewRobot(i+1, r.rand)
	}
	if err := r.place(); err != nil {
		return nil, err
	}
	monitoring.Logf("[Race] run %s started on track %q", r.id, r.track.Name())
	return r, nil
}

func (r *raceImpl) ID() uuid.UUID {
	return r.id
}

func (r *raceImpl) Track() track.Track {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.track
}

func (r *raceImpl) SetTrack(tr track.Track) error {
	if tr == nil {
		return ErrNoTrack
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.track = tr
	monitoring.Logf("[Race] run %s switched to track %q", r.id, tr.Name())
	return r.place()
}

func (r *raceImpl) Robots() []Robot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Robot, len(r.robots))
	copy(out, r.robots)
	return out
}

func (r *raceImpl) Advance(dt time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.track == nil {
		return ErrNoTrack
	}
	for _, rb := range r.robots {
		rb.Advance(dt)
	}
	r.elapsed += dt
	return r.place()
}

func (r *raceImpl) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsed
}

func (r *raceImpl) Snapshots() []camera.EntitySnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]camera.EntitySnapshot, len(r.robots))
	for i, rb := range r.robots {
		out[i] = rb.Snapshot()
	}
	return out
}

func (r *raceImpl) Leader() Robot {
	r.mu.Lock()
	defer r.mu.Unlock()
	best := r.robots[0]
	for _, rb := range r.robots[1:] {
		if rb.Distance() > best.Distance() {
			best = rb
		}
	}
	return best
}

// place puts every robot on the current track. Caller must hold the mutex.
func (r *raceImpl) place() error {
	for _, rb := range r.robots {
		if err := rb.Place(r.track); err != nil {
			return fmt.Errorf("race %s: %w", r.id, err)
		}
	}
	return nil
}
