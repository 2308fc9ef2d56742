package fcmath

// Stdev is a single-pass running mean/variance accumulator using Welford's
// algorithm, chosen over naive two-pass variance for numerical stability
// under streaming single-precision input. The zero value is an empty
// accumulator; Clear resets it. Stdev is not internally synchronized, so
// concurrent use of one accumulator needs caller-supplied mutual exclusion.
type Stdev struct {
	n          int
	oldM, newM float32
	oldS, newS float32
}

// Clear empties the accumulator.
func (s *Stdev) Clear() {
	s.n = 0
}

// Push folds one sample into the accumulator.
func (s *Stdev) Push(x float32) {
	s.n++
	if s.n == 1 {
		s.oldM = x
		s.newM = x
		s.oldS = 0
		return
	}
	s.newM = s.oldM + (x-s.oldM)/float32(s.n)
	s.newS = s.oldS + (x-s.oldM)*(x-s.newM)
	s.oldM = s.newM
	s.oldS = s.newS
}

// Count returns the number of samples pushed since the last Clear.
func (s *Stdev) Count() int {
	return s.n
}

// Mean returns the current mean estimate, or 0 before the first sample.
func (s *Stdev) Mean() float32 {
	if s.n > 0 {
		return s.newM
	}
	return 0
}

// Variance returns the Bessel-corrected sample variance, or 0 for fewer than
// two samples (a deliberate non-NaN fallback).
func (s *Stdev) Variance() float32 {
	if s.n > 1 {
		return s.newS / float32(s.n-1)
	}
	return 0
}

// StandardDeviation returns the square root of Variance.
func (s *Stdev) StandardDeviation() float32 {
	return sqrtf(s.Variance())
}
