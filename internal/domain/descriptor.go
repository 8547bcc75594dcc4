package domain

// IntegerSequence is the ordered list of signed integers taken from the
// inner list of a descriptor. Position i is coordinate i in the solver's
// ambient space.
type IntegerSequence []int

// Len returns the ambient dimension described by the sequence.
func (s IntegerSequence) Len() int {
	return len(s)
}

// ScalarBound is the modulus of the single inhomogeneous congruence handed
// to the solver.
type ScalarBound int

// Descriptor is the sole pipeline input: a sequence plus its bound.
// It is constructed by parsing one line and consumed once.
type Descriptor struct {
	// Sequence holds the congruence coefficients, in order.
	Sequence IntegerSequence

	// Bound is the congruence modulus n.
	Bound ScalarBound
}
