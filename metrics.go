package fiveq

import "sync"

/*
SweepStats accumulates trial outcomes per error rate. Workers record into
their own instance and merge into a shared one when they finish, so the only
cross-goroutine traffic is the final summation.
*/
type SweepStats struct {
	mu        sync.RWMutex
	successes map[float64]int
	trials    map[float64]int
}

func NewSweepStats() *SweepStats {
	return &SweepStats{
		successes: make(map[float64]int),
		trials:    make(map[float64]int),
	}
}

// Record counts one finished trial at the given rate.
func (st *SweepStats) Record(rate float64, success bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.trials[rate]++
	if success {
		st.successes[rate]++
	}
}

// Merge folds another accumulator into this one by summing its counts.
func (st *SweepStats) Merge(other *SweepStats) {
	other.mu.RLock()
	defer other.mu.RUnlock()
	st.mu.Lock()
	defer st.mu.Unlock()

	for rate, n := range other.trials {
		st.trials[rate] += n
	}
	for rate, n := range other.successes {
		st.successes[rate] += n
	}
}

// Counts returns the success and trial counts recorded for a rate.
func (st *SweepStats) Counts(rate float64) (successes, trials int) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.successes[rate], st.trials[rate]
}

// Rates finalizes the accumulator into a rate→success-probability map.
func (st *SweepStats) Rates() map[float64]float64 {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make(map[float64]float64, len(st.trials))
	for rate, n := range st.trials {
		if n > 0 {
			out[rate] = float64(st.successes[rate]) / float64(n)
		}
	}
	return out
}
