package fiveq

// Register layout used throughout: data qubits 0..4 carry the logical state,
// check qubits 5..8 are the syndrome ancillas.
const (
	DataQubits  = 5
	CheckQubits = 4
)

var dataRegister = []int{0, 1, 2, 3, 4}

/*
encodingOps returns the state-preparation sequence for the logical value x:
an optional flip of qubit 4 (only when x is true), then the fixed gate
sequence that spreads the bit across all five physical qubits. The order is
part of the code definition and must not be rearranged.
*/
func encodingOps(x bool) []Operation {
	ops := make([]Operation, 0, 19)
	if x {
		ops = append(ops, Operation{Gate: PauliX, Targets: []int{4}})
	}
	ops = append(ops,
		Operation{Gate: Hadamard, Targets: []int{0}},
		Operation{Gate: PhaseS, Targets: []int{0}},
		Operation{Gate: CZ, Targets: []int{0, 1}},
		Operation{Gate: CZ, Targets: []int{0, 3}},
		Operation{Gate: CY, Targets: []int{0, 4}},
		Operation{Gate: Hadamard, Targets: []int{1}},
		Operation{Gate: CZ, Targets: []int{1, 2}},
		Operation{Gate: CZ, Targets: []int{1, 3}},
		Operation{Gate: CX, Targets: []int{1, 4}},
		Operation{Gate: Hadamard, Targets: []int{2}},
		Operation{Gate: CZ, Targets: []int{2, 0}},
		Operation{Gate: CZ, Targets: []int{2, 1}},
		Operation{Gate: CX, Targets: []int{2, 4}},
		Operation{Gate: Hadamard, Targets: []int{3}},
		Operation{Gate: PhaseS, Targets: []int{3}},
		Operation{Gate: CZ, Targets: []int{3, 0}},
		Operation{Gate: CZ, Targets: []int{3, 2}},
		Operation{Gate: CY, Targets: []int{3, 4}},
	)
	return ops
}

// Encode builds the five-qubit logical state for the bit x.
func Encode(x bool) (*StateVector, error) {
	s, err := NewStateVector(DataQubits)
	if err != nil {
		return nil, err
	}
	if err := s.Compose(encodingOps(x), dataRegister); err != nil {
		return nil, err
	}
	return s, nil
}

// pauliTerm is one non-identity factor of a stabilizer generator.
type pauliTerm struct {
	Qubit int
	Op    Gate
}

// The four stabilizer generators: XZZXI, IXZZX, XIXZZ, ZXIXZ. Identity
// factors are simply absent from the term lists.
var stabilizers = [CheckQubits]struct {
	Name  string
	Terms []pauliTerm
}{
	{Name: "XZZXI", Terms: []pauliTerm{{0, PauliX}, {1, PauliZ}, {2, PauliZ}, {3, PauliX}}},
	{Name: "IXZZX", Terms: []pauliTerm{{1, PauliX}, {2, PauliZ}, {3, PauliZ}, {4, PauliX}}},
	{Name: "XIXZZ", Terms: []pauliTerm{{0, PauliX}, {2, PauliX}, {3, PauliZ}, {4, PauliZ}}},
	{Name: "ZXIXZ", Terms: []pauliTerm{{0, PauliZ}, {1, PauliX}, {3, PauliX}, {4, PauliZ}}},
}

// Correction is a single-qubit Pauli applied to one data qubit.
type Correction struct {
	Gate  Gate
	Qubit int
}

/*
recoveryTable maps each of the 16 syndromes to its correction; the nil entry
at 0 is the no-op. Each nonzero syndrome corresponds to exactly one
single-qubit Pauli error, enumerating all 15 single-error cases. The index
packs generator 0 into the most significant bit.
*/
var recoveryTable = [16]*Correction{
	0:  nil,
	1:  {PauliX, 0},
	2:  {PauliZ, 2},
	3:  {PauliX, 4},
	4:  {PauliZ, 4},
	5:  {PauliZ, 1},
	6:  {PauliX, 3},
	7:  {PauliY, 4},
	8:  {PauliX, 1},
	9:  {PauliZ, 3},
	10: {PauliZ, 0},
	11: {PauliY, 0},
	12: {PauliX, 2},
	13: {PauliY, 1},
	14: {PauliY, 2},
	15: {PauliY, 3},
}

// The measurement outcomes consistent with each logical value, written with
// data qubit 4 leftmost. Fixed data derived from the code's stabilizer
// group, not computed at runtime.
var (
	codewordsFalse = []string{
		"00000", "10010", "01001", "10100",
		"01010", "11011", "00110", "11000",
		"11101", "00011", "11110", "01111",
		"10001", "01100", "10111", "00101",
	}
	codewordsTrue = []string{
		"11111", "01101", "10110", "01011",
		"10101", "00100", "11001", "00111",
		"00010", "11100", "00001", "10000",
		"01110", "10011", "01000", "11010",
	}

	codewordSetFalse = toSet(codewordsFalse)
	codewordSetTrue  = toSet(codewordsTrue)
)

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Codewords returns the 16 five-bit strings consistent with the logical
// value x, qubit 4 leftmost.
func Codewords(x bool) []string {
	src := codewordsFalse
	if x {
		src = codewordsTrue
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// isCodeword reports whether the observed string is a member of the
// codeword set for the logical value x.
func isCodeword(x bool, observed string) bool {
	set := codewordSetFalse
	if x {
		set = codewordSetTrue
	}
	_, ok := set[observed]
	return ok
}
