package fiveq

import (
	"math"
	"math/cmplx"
)

/*
Gate is a unitary operator tagged with its arity. The matrix is a square
2^arity table in row-major order; for two-qubit gates the basis is ordered
|control,target⟩ = |00⟩, |01⟩, |10⟩, |11⟩.
*/
type Gate struct {
	Name   string
	Arity  int
	Matrix [][]complex128
}

// The fixed gate set. No parameterized rotations are needed for this code.
var (
	PauliX = Gate{Name: "X", Arity: 1, Matrix: [][]complex128{
		{0, 1},
		{1, 0},
	}}

	PauliY = Gate{Name: "Y", Arity: 1, Matrix: [][]complex128{
		{0, -1i},
		{1i, 0},
	}}

	PauliZ = Gate{Name: "Z", Arity: 1, Matrix: [][]complex128{
		{1, 0},
		{0, -1},
	}}

	// H = 1/√2 * [1  1]
	//            [1 -1]
	Hadamard = Gate{Name: "H", Arity: 1, Matrix: [][]complex128{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}}

	// S = diag(1, i)
	PhaseS = Gate{Name: "S", Arity: 1, Matrix: [][]complex128{
		{1, 0},
		{0, 1i},
	}}
)

// Controlled two-qubit forms of the gates above.
var (
	CX = Controlled(PauliX)
	CY = Controlled(PauliY)
	CZ = Controlled(PauliZ)
)

/*
Controlled lifts a single-qubit gate to its two-qubit controlled form:
identity on the control-|0⟩ block, the gate itself on the control-|1⟩ block.
*/
func Controlled(g Gate) Gate {
	m := [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, g.Matrix[0][0], g.Matrix[0][1]},
		{0, 0, g.Matrix[1][0], g.Matrix[1][1]},
	}
	return Gate{Name: "C" + g.Name, Arity: 2, Matrix: m}
}

// IsUnitary reports whether g's matrix satisfies U†U = I within eps.
func IsUnitary(g Gate, eps float64) bool {
	dim := 1 << g.Arity
	if len(g.Matrix) != dim {
		return false
	}
	for r := 0; r < dim; r++ {
		if len(g.Matrix[r]) != dim {
			return false
		}
	}
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			var sum complex128
			for k := 0; k < dim; k++ {
				sum += cmplx.Conj(g.Matrix[k][r]) * g.Matrix[k][c]
			}
			want := complex128(0)
			if r == c {
				want = 1
			}
			if cmplx.Abs(sum-want) > eps {
				return false
			}
		}
	}
	return true
}
