package fiveq

import (
	"fmt"
	"math/rand/v2"
)

/*
ExtractSyndrome measures the four stabilizer generators against the check
qubits and returns the packed 4-bit syndrome, generator 0 in the most
significant bit. Each generator is measured by the standard phase-kickback
circuit: Hadamard the check qubit, apply the generator's Pauli factors
controlled on it, Hadamard again, measure. The data register is left
collapsed consistently with the outcome; the check qubits are consumed and
must not be reused.
*/
func ExtractSyndrome(s *StateVector, rng *rand.Rand) (int, error) {
	if s.Qubits() < DataQubits+CheckQubits {
		return 0, &DimensionError{
			Op:     "ExtractSyndrome",
			Detail: fmt.Sprintf("need %d qubits, state has %d", DataQubits+CheckQubits, s.Qubits()),
		}
	}

	syndrome := 0
	for i, gen := range stabilizers {
		check := DataQubits + i

		if err := s.Apply(Hadamard, check); err != nil {
			return 0, err
		}
		for _, term := range gen.Terms {
			if err := s.ApplyControlled(term.Op, check, term.Qubit); err != nil {
				return 0, err
			}
		}
		if err := s.Apply(Hadamard, check); err != nil {
			return 0, err
		}

		bit, err := s.Measure(check, rng)
		if err != nil {
			return 0, err
		}
		syndrome = syndrome<<1 | bit
	}
	return syndrome, nil
}
