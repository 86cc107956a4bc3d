package fiveq

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func amplitudesClose(a, b []complex128, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmplx.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestStateVector(t *testing.T) {
	Convey("Given a freshly created state", t, func() {
		s, err := NewStateVector(3)
		So(err, ShouldBeNil)

		Convey("It starts in |000⟩", func() {
			amps := s.Amplitudes()
			So(len(amps), ShouldEqual, 8)
			So(amps[0], ShouldEqual, complex128(1))
			for i := 1; i < 8; i++ {
				So(amps[i], ShouldEqual, complex128(0))
			}
			So(s.Norm(), ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("Pauli-X flips the addressed qubit", func() {
			So(s.Apply(PauliX, 1), ShouldBeNil)
			amps := s.Amplitudes()
			So(amps[2], ShouldEqual, complex128(1))
			So(amps[0], ShouldEqual, complex128(0))
		})

		Convey("Hadamard splits the amplitude evenly", func() {
			So(s.Apply(Hadamard, 0), ShouldBeNil)
			amps := s.Amplitudes()
			So(real(amps[0]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(real(amps[1]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(s.Norm(), ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("Other qubits are left invariant", func() {
			So(s.Apply(PauliX, 2), ShouldBeNil)
			So(s.Apply(Hadamard, 0), ShouldBeNil)
			amps := s.Amplitudes()
			// all amplitude mass keeps qubit 2 set
			for i, a := range amps {
				if i&(1<<2) == 0 {
					So(a, ShouldEqual, complex128(0))
				}
			}
		})
	})

	Convey("Given invalid gate applications", t, func() {
		s, _ := NewStateVector(2)

		Convey("Target out of range is a DimensionError", func() {
			err := s.Apply(PauliX, 5)
			var dimErr *DimensionError
			So(errors.As(err, &dimErr), ShouldBeTrue)
		})

		Convey("Arity mismatch is a DimensionError", func() {
			err := s.Apply(CX, 0)
			var dimErr *DimensionError
			So(errors.As(err, &dimErr), ShouldBeTrue)
		})

		Convey("Duplicate targets are a DimensionError", func() {
			err := s.Apply(CX, 1, 1)
			var dimErr *DimensionError
			So(errors.As(err, &dimErr), ShouldBeTrue)
		})

		Convey("A zero-qubit state cannot be created", func() {
			_, err := NewStateVector(0)
			var dimErr *DimensionError
			So(errors.As(err, &dimErr), ShouldBeTrue)
		})
	})

	Convey("Given a controlled gate", t, func() {
		Convey("It acts when the control is |1⟩", func() {
			s, _ := NewStateVector(2)
			So(s.Apply(PauliX, 1), ShouldBeNil)
			So(s.ApplyControlled(PauliX, 1, 0), ShouldBeNil)
			amps := s.Amplitudes()
			So(amps[3], ShouldEqual, complex128(1))
		})

		Convey("It is the identity when the control is |0⟩", func() {
			s, _ := NewStateVector(2)
			So(s.ApplyControlled(PauliX, 1, 0), ShouldBeNil)
			amps := s.Amplitudes()
			So(amps[0], ShouldEqual, complex128(1))
		})

		Convey("It conditions at the tensor level on superposed controls", func() {
			s, _ := NewStateVector(2)
			So(s.Apply(Hadamard, 1), ShouldBeNil)
			So(s.ApplyControlled(PauliX, 1, 0), ShouldBeNil)
			amps := s.Amplitudes()
			// (|00⟩ + |11⟩)/√2
			So(real(amps[0]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(real(amps[3]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(amps[1], ShouldEqual, complex128(0))
			So(amps[2], ShouldEqual, complex128(0))
		})
	})

	Convey("Given a measurement", t, func() {
		rng := rand.New(rand.NewPCG(11, 23))

		Convey("A basis state measures deterministically and survives", func() {
			s, _ := NewStateVector(2)
			So(s.Apply(PauliX, 0), ShouldBeNil)
			before := s.Amplitudes()
			for i := 0; i < 10; i++ {
				bit, err := s.Measure(0, rng)
				So(err, ShouldBeNil)
				So(bit, ShouldEqual, 1)
			}
			So(amplitudesClose(s.Amplitudes(), before, 1e-12), ShouldBeTrue)
		})

		Convey("Collapse leaves all mass on the observed subspace, renormalized", func() {
			s, _ := NewStateVector(1)
			So(s.Apply(Hadamard, 0), ShouldBeNil)
			bit, err := s.Measure(0, rng)
			So(err, ShouldBeNil)
			amps := s.Amplitudes()
			So(cmplx.Abs(amps[bit]), ShouldAlmostEqual, 1, 1e-12)
			So(amps[1-bit], ShouldEqual, complex128(0))
			So(s.Norm(), ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("Measuring an out-of-range qubit is a DimensionError", func() {
			s, _ := NewStateVector(1)
			_, err := s.Measure(3, rng)
			var dimErr *DimensionError
			So(errors.As(err, &dimErr), ShouldBeTrue)
		})
	})

	Convey("Given a composed subcircuit", t, func() {
		Convey("Subcircuit indices map onto the supplied targets", func() {
			s, _ := NewStateVector(4)
			ops := []Operation{
				{Gate: PauliX, Targets: []int{0}},
				{Gate: CX, Targets: []int{0, 1}},
			}
			So(s.Compose(ops, []int{2, 3}), ShouldBeNil)
			amps := s.Amplitudes()
			// qubits 2 and 3 both flipped
			So(amps[12], ShouldEqual, complex128(1))
		})

		Convey("A subcircuit index outside the target list is a DimensionError", func() {
			s, _ := NewStateVector(2)
			ops := []Operation{{Gate: PauliX, Targets: []int{1}}}
			err := s.Compose(ops, []int{0})
			var dimErr *DimensionError
			So(errors.As(err, &dimErr), ShouldBeTrue)
		})

		Convey("The norm survives a long gate sequence", func() {
			s, _ := NewStateVector(5)
			So(s.Compose(encodingOps(true), dataRegister), ShouldBeNil)
			So(s.Norm(), ShouldAlmostEqual, 1, 1e-9)
		})
	})
}
