package track

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

// samplerPool is shared by all SampleLanes calls. Its NumCPU-1 workers stay parked
// for the life of the process once the first call starts them.
var (
	samplerPoolOnce sync.Once
	samplerPool     worker.DynamicWorkerPool
)

func lanePool() worker.DynamicWorkerPool {
	samplerPoolOnce.Do(func() {
		samplerPool = worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), 64, 1*time.Second)
	})
	return samplerPool
}

// Parameters returns n evenly spaced track parameters covering [0, 1] inclusive.
//
// Parameters:
//   - n: number of samples, at least 2
//
// Returns:
//   - []float64: the parameters, first 0 and last exactly 1
func Parameters(n int) []float64 {
	if n < 2 {
		n = 2
	}
	ts := floats.Span(make([]float64, n), 0, 1)
	// Span computes the last element from the step; pin it so the seam rule applies.
	ts[n-1] = 1
	return ts
}

// SampleCenterline samples the track centerline at n evenly spaced parameters.
//
// Parameters:
//   - tr: the track to sample
//   - n: number of samples, at least 2
//
// Returns:
//   - []mgl64.Vec3: the sampled points
//   - error: the first geometry error encountered
func SampleCenterline(tr Track, n int) ([]mgl64.Vec3, error) {
	ts := Parameters(n)
	pts := make([]mgl64.Vec3, len(ts))
	for i, t := range ts {
		p, err := tr.PointAt(t)
		if err != nil {
			return nil, fmt.Errorf("sample centerline of %q at t=%v: %w", tr.Name(), t, err)
		}
		pts[i] = p
	}
	return pts, nil
}

// SampleLanes samples each lane at n evenly spaced parameters. Lanes are sampled
// in parallel on a shared worker pool.
//
// Parameters:
//   - ctx: cancels submission of lanes not yet started
//   - tr: the track to sample
//   - lanes: the lane numbers to sample
//   - n: samples per lane, at least 2
//
// Returns:
//   - map[int][]mgl64.Vec3: sampled points keyed by lane
//   - error: ctx.Err() or the first geometry error encountered
func SampleLanes(ctx context.Context, tr Track, lanes []int, n int) (map[int][]mgl64.Vec3, error) {
	ts := Parameters(n)
	pool := lanePool()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	out := make(map[int][]mgl64.Vec3, len(lanes))

	for id, lane := range lanes {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		laneCap := lane
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				pts := make([]mgl64.Vec3, len(ts))
				for i, t := range ts {
					p, err := tr.LanePoint(laneCap, t)
					if err != nil {
						err = fmt.Errorf("sample lane %d of %q at t=%v: %w", laneCap, tr.Name(), t, err)
						mu.Lock()
						if firstErr == nil {
							firstErr = err
						}
						mu.Unlock()
						return nil, err
					}
					pts[i] = p
				}

				mu.Lock()
				out[laneCap] = pts
				mu.Unlock()
				return nil, nil
			},
		})
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
