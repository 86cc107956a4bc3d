package fiveq

import (
	"errors"
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecovery(t *testing.T) {
	Convey("Given syndrome zero", t, func() {
		Convey("The state is left bit-for-bit unchanged", func() {
			s := encodedRegister(true)
			before := s.Amplitudes()
			So(Recover(s, 0), ShouldBeNil)
			So(s.Amplitudes(), ShouldResemble, before)
		})
	})

	Convey("Given a syndrome outside the table", t, func() {
		Convey("Recovery fails before touching the state", func() {
			s := encodedRegister(false)
			for _, syndrome := range []int{-1, 16, 100} {
				err := Recover(s, syndrome)
				var paramErr *InvalidParameterError
				So(errors.As(err, &paramErr), ShouldBeTrue)
			}
		})
	})

	Convey("Given a forced X error on qubit 0", t, func() {
		rng := rand.New(rand.NewPCG(4, 4))

		Convey("Extraction yields syndrome 1 and recovery restores a codeword", func() {
			s := encodedRegister(false)
			So(s.Apply(PauliX, 0), ShouldBeNil)

			syndrome, err := ExtractSyndrome(s, rng)
			So(err, ShouldBeNil)
			So(syndrome, ShouldEqual, 1)

			So(Recover(s, syndrome), ShouldBeNil)

			var buf [DataQubits]byte
			for q := 0; q < DataQubits; q++ {
				bit, err := s.Measure(q, rng)
				So(err, ShouldBeNil)
				buf[DataQubits-1-q] = '0' + byte(bit)
			}
			So(isCodeword(false, string(buf[:])), ShouldBeTrue)
		})
	})

	Convey("Given every correctable error in turn", t, func() {
		rng := rand.New(rand.NewPCG(5, 5))

		Convey("The full extract-recover cycle returns to the right codespace", func() {
			for syndrome := 1; syndrome < 16; syndrome++ {
				c := recoveryTable[syndrome]
				s := encodedRegister(true)
				So(s.Apply(c.Gate, c.Qubit), ShouldBeNil)

				measured, err := ExtractSyndrome(s, rng)
				So(err, ShouldBeNil)
				So(Recover(s, measured), ShouldBeNil)

				var buf [DataQubits]byte
				for q := 0; q < DataQubits; q++ {
					bit, err := s.Measure(q, rng)
					So(err, ShouldBeNil)
					buf[DataQubits-1-q] = '0' + byte(bit)
				}
				So(isCodeword(true, string(buf[:])), ShouldBeTrue)
			}
		})
	})
}
