package fiveq

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// normEps is the tolerance on the state norm; drifting past it after a gate
// sequence means gate application itself is broken.
const normEps = 1e-9

/*
StateVector is a dense complex amplitude vector over n qubits. Qubit q owns
bit 1<<q of the basis index, so amplitude index 0 is |0…0⟩. Each trial owns
exactly one StateVector; nothing is shared across trials.
*/
type StateVector struct {
	amps   []complex128
	qubits int
}

// NewStateVector returns the computational-basis state |0…0⟩ over n qubits.
func NewStateVector(n int) (*StateVector, error) {
	if n < 1 || n > 30 {
		return nil, &DimensionError{
			Op:     "NewStateVector",
			Detail: fmt.Sprintf("qubit count %d outside [1, 30]", n),
		}
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &StateVector{amps: amps, qubits: n}, nil
}

// Qubits returns the number of qubits the state spans.
func (s *StateVector) Qubits() int {
	return s.qubits
}

// Amplitudes returns a copy of the amplitude vector.
func (s *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// Clone returns an independent copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &StateVector{amps: amps, qubits: s.qubits}
}

// Norm returns the Euclidean norm of the amplitude vector.
func (s *StateVector) Norm() float64 {
	var sum float64
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

/*
Apply contracts a gate's matrix against the addressed qubit axes, leaving
every other qubit untouched. The loop walks each basis-index group once and
rewrites its amplitudes through the matrix, which is the tensor contraction
of the gate against the full state.
*/
func (s *StateVector) Apply(g Gate, targets ...int) error {
	if len(targets) != g.Arity {
		return &DimensionError{
			Op:     "Apply " + g.Name,
			Detail: fmt.Sprintf("gate arity %d, got %d targets", g.Arity, len(targets)),
		}
	}
	for i, t := range targets {
		if t < 0 || t >= s.qubits {
			return &DimensionError{
				Op:     "Apply " + g.Name,
				Detail: fmt.Sprintf("target %d out of range [0, %d)", t, s.qubits),
			}
		}
		for _, u := range targets[:i] {
			if t == u {
				return &DimensionError{
					Op:     "Apply " + g.Name,
					Detail: fmt.Sprintf("duplicate target %d", t),
				}
			}
		}
	}

	switch g.Arity {
	case 1:
		s.apply1(g.Matrix, targets[0])
	case 2:
		s.apply2(g.Matrix, targets[0], targets[1])
	default:
		return &DimensionError{
			Op:     "Apply " + g.Name,
			Detail: fmt.Sprintf("unsupported arity %d", g.Arity),
		}
	}
	return nil
}

/*
ApplyControlled applies gate to target only in the subspace where control is
|1⟩. The conditioning lives in the lifted 4x4 matrix, so superpositions of
the control qubit behave correctly.
*/
func (s *StateVector) ApplyControlled(g Gate, control, target int) error {
	if g.Arity != 1 {
		return &DimensionError{
			Op:     "ApplyControlled " + g.Name,
			Detail: fmt.Sprintf("need a single-qubit gate, got arity %d", g.Arity),
		}
	}
	return s.Apply(Controlled(g), control, target)
}

func (s *StateVector) apply1(m [][]complex128, q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = m[0][0]*a0 + m[0][1]*a1
			s.amps[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
}

func (s *StateVector) apply2(m [][]complex128, q1, q2 int) {
	b1, b2 := 1<<q1, 1<<q2
	for i := range s.amps {
		if i&b1 == 0 && i&b2 == 0 {
			// q1 is the high-order qubit of the matrix basis.
			idx := [4]int{i, i | b2, i | b1, i | b1 | b2}
			var in [4]complex128
			for k, x := range idx {
				in[k] = s.amps[x]
			}
			for r := 0; r < 4; r++ {
				s.amps[idx[r]] = m[r][0]*in[0] + m[r][1]*in[1] + m[r][2]*in[2] + m[r][3]*in[3]
			}
		}
	}
}

/*
Measure samples a Z-basis outcome for one qubit according to the squared
amplitude mass in its two subspaces, zeroes the non-selected subspace, and
renormalizes the survivors. This is the only place randomness touches the
quantum state.
*/
func (s *StateVector) Measure(q int, rng *rand.Rand) (int, error) {
	if q < 0 || q >= s.qubits {
		return 0, &DimensionError{
			Op:     "Measure",
			Detail: fmt.Sprintf("qubit %d out of range [0, %d)", q, s.qubits),
		}
	}

	bit := 1 << q
	var p1 float64
	for i, a := range s.amps {
		if i&bit != 0 {
			p1 += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	outcome := 0
	mass := 1 - p1
	if rng.Float64() < p1 {
		outcome = 1
		mass = p1
	}

	scale := complex(1/math.Sqrt(mass), 0)
	for i := range s.amps {
		if (i&bit != 0) == (outcome == 1) {
			s.amps[i] *= scale
		} else {
			s.amps[i] = 0
		}
	}
	return outcome, nil
}

/*
Compose applies an ordered gate sequence as one unit. Each operation's
targets index into the supplied target list, so a subcircuit written over
qubits 0..k-1 can be placed on any k qubits of the state. The norm is
checked once at the end of the sequence.
*/
func (s *StateVector) Compose(ops []Operation, targets []int) error {
	for _, op := range ops {
		mapped := make([]int, len(op.Targets))
		for k, t := range op.Targets {
			if t < 0 || t >= len(targets) {
				return &DimensionError{
					Op:     "Compose " + op.Gate.Name,
					Detail: fmt.Sprintf("subcircuit qubit %d outside %d targets", t, len(targets)),
				}
			}
			mapped[k] = targets[t]
		}
		if err := s.Apply(op.Gate, mapped...); err != nil {
			return err
		}
	}
	return s.checkNorm()
}

// Operation is one step of a gate sequence: a gate plus the subcircuit
// qubits it acts on.
type Operation struct {
	Gate    Gate
	Targets []int
}

func (s *StateVector) checkNorm() error {
	if n := s.Norm(); math.Abs(n-1) > normEps {
		return &NumericalDriftError{Norm: n}
	}
	return nil
}
