package fiveq

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// trialJob is one Monte Carlo iteration waiting for a worker.
type trialJob struct {
	id      string
	x       bool
	rate    float64
	rateIdx int
	trial   int
	seed    int64
}

/*
TrialPool fans the trials of a sweep out across a fixed set of workers.
Trials carry no shared state, so workers accumulate into private SweepStats
and merge by summation when the batch drains.
*/
type TrialPool struct {
	ctx     context.Context
	cancel  context.CancelFunc
	workers int

	mu  sync.Mutex
	err error
}

// NewTrialPool creates a pool that runs sweeps on the given number of
// workers. Close releases it.
func NewTrialPool(workers int) *TrialPool {
	ctx, cancel := context.WithCancel(context.Background())
	return &TrialPool{
		ctx:     ctx,
		cancel:  cancel,
		workers: workers,
	}
}

/*
Sweep runs trials-per-rate cycles for every rate across the pool's workers
and returns the rate→success-probability map. Each trial seeds its own
generator from the run seed and its sweep position, so the result is
identical to a sequential run with the same seed.
*/
func (p *TrialPool) Sweep(x bool, rates []float64, trials int, seed int64) (map[float64]float64, error) {
	if err := validateSweep(rates, trials, p.workers); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log.Printf("sweep %s: %d jobs across %d workers", runID, len(rates)*trials, p.workers)

	stats := NewSweepStats()
	jobs := make(chan trialJob, p.workers*4)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.runWorker(jobs, stats)
		}()
	}

	for ri, rate := range rates {
		for t := 0; t < trials; t++ {
			job := trialJob{
				id:      fmt.Sprintf("%s/%d-%d", runID, ri, t),
				x:       x,
				rate:    rate,
				rateIdx: ri,
				trial:   t,
				seed:    seed,
			}
			select {
			case jobs <- job:
			case <-p.ctx.Done():
				close(jobs)
				wg.Wait()
				return nil, p.sweepErr()
			}
		}
	}
	close(jobs)
	wg.Wait()

	if err := p.sweepErr(); err != nil {
		return nil, err
	}
	return stats.Rates(), nil
}

func (p *TrialPool) runWorker(jobs <-chan trialJob, stats *SweepStats) {
	local := NewSweepStats()
	defer stats.Merge(local)

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			res, err := RunTrial(job.x, job.rate, trialRNG(job.seed, job.rateIdx, job.trial))
			if err != nil {
				log.Printf("trial %s failed: %v", job.id, err)
				p.fail(err)
				return
			}
			local.Record(job.rate, res.Success)
		}
	}
}

// fail records the first error and stops the batch.
func (p *TrialPool) fail(err error) {
	p.mu.Lock()
	if p.err == nil {
		p.err = err
	}
	p.mu.Unlock()
	p.cancel()
}

// sweepErr reports why a batch stopped: the first trial failure, or the
// pool's cancellation if no trial failed.
func (p *TrialPool) sweepErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	return p.ctx.Err()
}

// Close stops the pool. In-flight sweeps return with whatever error the
// cancellation surfaces.
func (p *TrialPool) Close() {
	if p == nil {
		return
	}
	p.cancel()
}
