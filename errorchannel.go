package fiveq

import (
	"fmt"
	"math/rand/v2"
)

// maxErrorRate keeps the per-qubit no-error probability 1-3p nonnegative.
const maxErrorRate = 1.0 / 3.0

/*
ErrorChannel injects random Pauli noise: for each addressed qubit it draws
three independent uniforms and applies X, Y, Z for each draw that lands
below the rate. The three components are independent Bernoulli(p) events,
so more than one can fire on the same qubit.
*/
type ErrorChannel struct {
	Rate float64
}

// NewErrorChannel validates the rate before any simulation work happens.
func NewErrorChannel(p float64) (*ErrorChannel, error) {
	if p < 0 || p > maxErrorRate {
		return nil, &InvalidParameterError{
			Param:  "p",
			Reason: fmt.Sprintf("error rate %v outside [0, 1/3]", p),
		}
	}
	return &ErrorChannel{Rate: p}, nil
}

/*
Apply runs the channel over the given qubits. The draw order is fixed
(X, then Y, then Z, per qubit in slice order), so a given rng state always
produces the same error pattern.
*/
func (c *ErrorChannel) Apply(s *StateVector, qubits []int, rng *rand.Rand) error {
	for _, q := range qubits {
		if rng.Float64() < c.Rate {
			if err := s.Apply(PauliX, q); err != nil {
				return err
			}
		}
		if rng.Float64() < c.Rate {
			if err := s.Apply(PauliY, q); err != nil {
				return err
			}
		}
		if rng.Float64() < c.Rate {
			if err := s.Apply(PauliZ, q); err != nil {
				return err
			}
		}
	}
	return nil
}
