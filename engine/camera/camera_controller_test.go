package camera

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/robotrace/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of draws and records the bounds it was asked for.
type seqRand struct {
	draws  []int
	bounds []int
}

func (r *seqRand) IntN(n int) int {
	r.bounds = append(r.bounds, n)
	v := r.draws[0]
	r.draws = r.draws[1:]
	return v
}

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

// threeRobots has distances {1, 5, 2}: the leader is index 1, the last is index 0.
func threeRobots() []EntitySnapshot {
	return []EntitySnapshot{
		{Position: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{2, 0, 0}, DistanceTraveled: 1},
		{Position: mgl64.Vec3{10, 0, 1}, Direction: mgl64.Vec3{0, 1, 0}, DistanceTraveled: 5},
		{Position: mgl64.Vec3{-4, 3, 0}, Direction: mgl64.Vec3{0, -1, 0}, DistanceTraveled: 2},
	}
}

func TestCameraController_DefaultMode(t *testing.T) {
	t.Parallel()
	cc := NewCameraController(WithSeed(1))
	center := mgl64.Vec3{1, 2, 3}

	s, err := cc.Update(ModeDefault, ViewParams{Theta: 0, Phi: 0, Distance: 10, Center: center}, nil, time.Second)
	require.NoError(t, err)
	assertVec(t, mgl64.Vec3{10, 0, 0}, s.Eye)
	assert.Equal(t, center, s.Center)
	assert.Equal(t, common.WorldUp, s.Up)

	s, err = cc.Update(ModeDefault, ViewParams{Theta: math.Pi / 2, Phi: math.Pi / 2, Distance: 4}, nil, 0)
	require.NoError(t, err)
	assertVec(t, mgl64.Vec3{0, 0, 4}, s.Eye)

	s, err = cc.Update(ModeDefault, ViewParams{Theta: math.Pi / 4, Phi: math.Pi / 3, Distance: 21}, nil, 0)
	require.NoError(t, err)
	horizontal := 21 * math.Sin(math.Pi/2-math.Pi/3)
	assertVec(t, mgl64.Vec3{
		horizontal * math.Cos(math.Pi/4),
		horizontal * math.Sin(math.Pi/4),
		21 * math.Cos(math.Pi/2-math.Pi/3),
	}, s.Eye)
	assert.Equal(t, s, cc.State())
}

func TestCameraController_UnknownModeIsDefault(t *testing.T) {
	t.Parallel()
	cc := NewCameraController(WithSeed(1))
	view := ViewParams{Theta: 1, Phi: 0.5, Distance: 7}

	want, err := cc.Update(ModeDefault, view, nil, 0)
	require.NoError(t, err)
	for _, m := range []Mode{-1, 5, 42} {
		got, err := cc.Update(m, view, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got, "mode %d", int(m))
	}
}

func TestCameraController_Helicopter(t *testing.T) {
	t.Parallel()
	cc := NewCameraController(WithSeed(1))
	focus := threeRobots()

	s, err := cc.Update(ModeHelicopter, ViewParams{}, focus, 0)
	require.NoError(t, err)
	assert.Equal(t, focus[0].Position, s.Center)
	assertVec(t, mgl64.Vec3{0, 0, DefaultHelicopterHeight}, s.Eye)
	// up follows the robot heading, not world up
	assertVec(t, mgl64.Vec3{1, 0, 0}, s.Up)

	cc = NewCameraController(WithSeed(1), WithHelicopterHeight(30))
	s, err = cc.Update(ModeHelicopter, ViewParams{}, focus[1:], 0)
	require.NoError(t, err)
	assertVec(t, mgl64.Vec3{10, 0, 31}, s.Eye)
}

func TestCameraController_MotorcycleFollowsLeader(t *testing.T) {
	t.Parallel()
	cc := NewCameraController(WithSeed(1))

	s, err := cc.Update(ModeMotorcycle, ViewParams{}, threeRobots(), 0)
	require.NoError(t, err)
	// leader at (10,0,1) heading +Y, perpendicular is +X
	assertVec(t, mgl64.Vec3{10 + DefaultMotorcycleOffset, 0, 2.5}, s.Eye)
	assertVec(t, mgl64.Vec3{10, 0, 2.1}, s.Center)
	assert.Equal(t, common.WorldUp, s.Up)
}

func TestCameraController_MotorcycleOffset(t *testing.T) {
	t.Parallel()
	cc := NewCameraController(WithSeed(1), WithMotorcycleOffset(5))
	focus := []EntitySnapshot{{Position: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{1, 0, 0}}}

	s, err := cc.Update(ModeMotorcycle, ViewParams{}, focus, 0)
	require.NoError(t, err)
	assertVec(t, mgl64.Vec3{0, -5, 1.5}, s.Eye)
}

func TestCameraController_FirstPersonFollowsLast(t *testing.T) {
	t.Parallel()
	cc := NewCameraController(WithSeed(1))

	s, err := cc.Update(ModeFirstPerson, ViewParams{}, threeRobots(), 0)
	require.NoError(t, err)
	// last robot at origin heading +X
	assertVec(t, mgl64.Vec3{0.5, 0, 1.75}, s.Eye)
	assertVec(t, mgl64.Vec3{1, 0, 1.75}, s.Center)
	assert.Equal(t, common.WorldUp, s.Up)
}

func TestCameraController_TiesPickFirst(t *testing.T) {
	t.Parallel()
	focus := []EntitySnapshot{
		{Position: mgl64.Vec3{1, 0, 0}, DistanceTraveled: 3},
		{Position: mgl64.Vec3{2, 0, 0}, DistanceTraveled: 3},
	}
	best, ok := leader(focus)
	require.True(t, ok)
	assert.Equal(t, focus[0], best)

	worst, ok := last(focus)
	require.True(t, ok)
	assert.Equal(t, focus[0], worst)

	_, ok = leader(nil)
	assert.False(t, ok)
}

func TestCameraController_NoFocus(t *testing.T) {
	t.Parallel()
	cc := NewCameraController(WithSeed(1))
	before := cc.State()

	for _, m := range []Mode{ModeHelicopter, ModeMotorcycle, ModeFirstPerson, ModeAuto} {
		s, err := cc.Update(m, ViewParams{}, nil, 0)
		assert.ErrorIs(t, err, ErrNoFocusEntity, "mode %s", m)
		assert.Equal(t, before, s)
	}
	assert.Equal(t, before, cc.State())
}

func TestCameraController_ZeroDirection(t *testing.T) {
	t.Parallel()
	cc := NewCameraController(WithSeed(1))
	focus := []EntitySnapshot{{Position: mgl64.Vec3{1, 1, 0}}}

	for _, m := range []Mode{ModeHelicopter, ModeMotorcycle, ModeFirstPerson} {
		_, err := cc.Update(m, ViewParams{}, focus, 0)
		assert.ErrorIs(t, err, common.ErrZeroVector, "mode %s", m)
	}
}

func TestCameraController_AutoFailureKeepsTimer(t *testing.T) {
	t.Parallel()
	r := &seqRand{draws: []int{2, 1, 1}}
	cc := NewCameraController(WithRand(r))
	before := cc.State()

	// the interval elapses but there is nobody to follow
	s, err := cc.Update(ModeAuto, ViewParams{}, nil, 5*time.Second)
	require.ErrorIs(t, err, ErrNoFocusEntity)
	assert.Equal(t, before, s)
	assert.Equal(t, ModeHelicopter, cc.AutoMode())
	assert.Equal(t, time.Duration(0), cc.AutoElapsed())

	_, err = cc.Update(ModeAuto, ViewParams{}, []EntitySnapshot{{Position: mgl64.Vec3{1, 0, 0}}}, 5*time.Second)
	require.ErrorIs(t, err, common.ErrZeroVector)
	assert.Equal(t, ModeHelicopter, cc.AutoMode())
	assert.Equal(t, time.Duration(0), cc.AutoElapsed())

	// the next successful update is the one that switches
	_, err = cc.Update(ModeAuto, ViewParams{}, threeRobots(), 3*time.Second)
	require.NoError(t, err)
	assert.Equal(t, ModeMotorcycle, cc.AutoMode())
	assert.Equal(t, time.Duration(0), cc.AutoElapsed())
}

func TestCameraController_AutoTiming(t *testing.T) {
	t.Parallel()
	r := &seqRand{draws: []int{1, 2}}
	cc := NewCameraController(WithRand(r))
	focus := threeRobots()

	require.Equal(t, ModeHelicopter, cc.AutoMode())
	require.Equal(t, DefaultAutoInterval, cc.AutoInterval())

	// below the interval nothing switches
	for i := 0; i < 2; i++ {
		s, err := cc.Update(ModeAuto, ViewParams{}, focus, time.Second)
		require.NoError(t, err)
		assert.Equal(t, ModeHelicopter, cc.AutoMode())
		assert.Equal(t, focus[0].Position, s.Center)
	}
	assert.Equal(t, 2*time.Second, cc.AutoElapsed())
	assert.Empty(t, r.bounds)

	// time spent outside AUTO does not count
	_, err := cc.Update(ModeDefault, ViewParams{Distance: 5}, focus, 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cc.AutoElapsed())

	// reaching the interval switches exactly once and resets the timer
	s, err := cc.Update(ModeAuto, ViewParams{}, focus, time.Second)
	require.NoError(t, err)
	assert.Equal(t, ModeMotorcycle, cc.AutoMode())
	assert.Equal(t, time.Duration(0), cc.AutoElapsed())
	assert.Equal(t, []int{3}, r.bounds)
	assertVec(t, mgl64.Vec3{10, 0, 2.1}, s.Center)

	_, err = cc.Update(ModeAuto, ViewParams{}, focus, 2999*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, ModeMotorcycle, cc.AutoMode())
	assert.Len(t, r.bounds, 1)

	// a single large step also switches only once
	s, err = cc.Update(ModeAuto, ViewParams{}, focus, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, ModeFirstPerson, cc.AutoMode())
	assert.Equal(t, time.Duration(0), cc.AutoElapsed())
	assert.Len(t, r.bounds, 2)
	assertVec(t, mgl64.Vec3{1, 0, 1.75}, s.Center)
}

func TestCameraController_AutoInterval(t *testing.T) {
	t.Parallel()
	r := &seqRand{draws: []int{2}}
	cc := NewCameraController(WithRand(r), WithAutoInterval(500*time.Millisecond), WithAutoInterval(0))
	assert.Equal(t, 500*time.Millisecond, cc.AutoInterval())

	_, err := cc.Update(ModeAuto, ViewParams{}, threeRobots(), 500*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, ModeFirstPerson, cc.AutoMode())
}

func TestCameraController_AutoSeededDeterminism(t *testing.T) {
	t.Parallel()
	run := func() []Mode {
		cc := NewCameraController(WithSeed(99))
		var modes []Mode
		for i := 0; i < 20; i++ {
			_, err := cc.Update(ModeAuto, ViewParams{}, threeRobots(), DefaultAutoInterval)
			require.NoError(t, err)
			modes = append(modes, cc.AutoMode())
		}
		return modes
	}
	first := run()
	assert.Equal(t, first, run())
	for _, m := range first {
		assert.Contains(t, autoModes[:], m)
	}
}
