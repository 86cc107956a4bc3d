package fiveq

import (
	"fmt"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
)

// TrialResult is the outcome of one encode→error→correct→measure cycle.
type TrialResult struct {
	Observed string
	Success  bool
}

/*
RunTrial executes a single cycle of the five-qubit code: prepare a fresh
9-qubit register, encode x into the data qubits, push the data qubits
through the error channel, extract the syndrome, apply the correction, and
measure the data register. The observed string is written with data qubit 4
leftmost; success means it is literally a member of the codeword set for x.
*/
func RunTrial(x bool, p float64, rng *rand.Rand) (TrialResult, error) {
	channel, err := NewErrorChannel(p)
	if err != nil {
		return TrialResult{}, err
	}

	s, err := NewStateVector(DataQubits + CheckQubits)
	if err != nil {
		return TrialResult{}, err
	}
	if err := s.Compose(encodingOps(x), dataRegister); err != nil {
		return TrialResult{}, err
	}
	if err := channel.Apply(s, dataRegister, rng); err != nil {
		return TrialResult{}, err
	}

	syndrome, err := ExtractSyndrome(s, rng)
	if err != nil {
		return TrialResult{}, err
	}
	if err := Recover(s, syndrome); err != nil {
		return TrialResult{}, err
	}

	var buf [DataQubits]byte
	for q := 0; q < DataQubits; q++ {
		bit, err := s.Measure(q, rng)
		if err != nil {
			return TrialResult{}, err
		}
		buf[DataQubits-1-q] = '0' + byte(bit)
	}
	observed := string(buf[:])

	return TrialResult{Observed: observed, Success: isCodeword(x, observed)}, nil
}

/*
RunSweep runs trials-per-rate cycles for every rate and returns the map from
rate to measured success probability. All parameters are validated before
the first trial starts. Trials are independent: each one draws from its own
generator derived from the run seed, so results do not depend on how many
workers execute them.
*/
func RunSweep(x bool, rates []float64, trials int, opts ...SweepOption) (map[float64]float64, error) {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validateSweep(rates, trials, cfg.Workers); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if !cfg.seeded {
		seed = rand.Int64()
	}

	errnie.Info(
		"sweep: x=%v, %d rates, %d trials per rate, %d workers, seed %d",
		x,
		len(rates),
		trials,
		cfg.Workers,
		seed,
	)

	if cfg.Workers > 1 {
		pool := NewTrialPool(cfg.Workers)
		defer pool.Close()
		return pool.Sweep(x, rates, trials, seed)
	}

	stats := NewSweepStats()
	for ri, p := range rates {
		for t := 0; t < trials; t++ {
			res, err := RunTrial(x, p, trialRNG(seed, ri, t))
			if err != nil {
				return nil, err
			}
			stats.Record(p, res.Success)
		}
	}
	return stats.Rates(), nil
}

// trialRNG derives the generator for one trial from the run seed and the
// trial's position in the sweep. Every trial gets its own stream, so the
// sweep is reproducible regardless of execution order.
func trialRNG(seed int64, rateIdx, trial int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(rateIdx)<<32|uint64(uint32(trial))))
}

func validateSweep(rates []float64, trials, workers int) error {
	if trials <= 0 {
		return &InvalidParameterError{
			Param:  "trials",
			Reason: fmt.Sprintf("trial count %d must be positive", trials),
		}
	}
	if len(rates) == 0 {
		return &InvalidParameterError{
			Param:  "rates",
			Reason: "no error rates supplied",
		}
	}
	if workers < 1 {
		return &InvalidParameterError{
			Param:  "workers",
			Reason: fmt.Sprintf("worker count %d must be positive", workers),
		}
	}
	for _, p := range rates {
		if _, err := NewErrorChannel(p); err != nil {
			return err
		}
	}
	return nil
}
