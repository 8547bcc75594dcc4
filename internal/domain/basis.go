package domain

// Vector is one Hilbert basis element with the solver's trailing
// homogenizing coordinate already removed.
type Vector []int

// BasisSet is the ordered list of vectors extracted from a solver report.
// A nil or empty BasisSet is valid and means no elements were found.
type BasisSet []Vector

// Len returns the number of vectors in the set.
func (b BasisSet) Len() int {
	return len(b)
}

// Empty reports whether the set holds no vectors.
func (b BasisSet) Empty() bool {
	return len(b) == 0
}
