package fiveq

import "fmt"

// DimensionError reports a gate applied with the wrong arity or with target
// indices that do not fit the state. Always a programming error; never
// recovered at runtime.
type DimensionError struct {
	Op     string
	Detail string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("fiveq: dimension error in %s: %s", e.Op, e.Detail)
}

// InvalidParameterError reports configuration rejected before any simulation
// work starts, such as an error rate outside [0, 1/3] or a non-positive
// trial count.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("fiveq: invalid parameter %s: %s", e.Param, e.Reason)
}

// NumericalDriftError reports a state norm that wandered away from 1 by more
// than the tolerance after a sequence of gate applications. Indicates a bug
// in gate application, not a runtime condition.
type NumericalDriftError struct {
	Norm float64
}

func (e *NumericalDriftError) Error() string {
	return fmt.Sprintf("fiveq: state norm drifted to %v", e.Norm)
}
