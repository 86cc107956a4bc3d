package fiveq

import "fmt"

/*
Recover looks up the syndrome in the fixed correction table and applies the
indicated single-qubit Pauli to the indicated data qubit. Syndrome 0 is the
no-op entry and leaves the state untouched.
*/
func Recover(s *StateVector, syndrome int) error {
	if syndrome < 0 || syndrome >= len(recoveryTable) {
		return &InvalidParameterError{
			Param:  "syndrome",
			Reason: fmt.Sprintf("value %d outside [0, 16)", syndrome),
		}
	}
	c := recoveryTable[syndrome]
	if c == nil {
		return nil
	}
	return s.Apply(c.Gate, c.Qubit)
}
