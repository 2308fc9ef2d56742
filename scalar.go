package fcmath

// ApplyDeadband returns 0 when |value| is below the deadband, otherwise the
// value shrunk toward zero by the deadband magnitude, so the response stays
// continuous at the boundary.
func ApplyDeadband(value, deadband int32) int32 {
	if abs32(value) < deadband {
		return 0
	}
	if value >= 0 {
		return value - deadband
	}
	return value + deadband
}

// ApplyDeadbandF is the float32 variant of ApplyDeadband.
func ApplyDeadbandF(value, deadband float32) float32 {
	if absf(value) < deadband {
		return 0
	}
	if value >= 0 {
		return value - deadband
	}
	return value + deadband
}

// ScaleRange remaps x from the source interval [srcFrom, srcTo] to the
// destination interval [destFrom, destTo]. The multiply runs in a 64-bit
// intermediate so that multiply-before-divide cannot overflow for 32-bit
// scale inputs. A zero-width source interval divides by zero and is a caller
// error.
func ScaleRange(x, srcFrom, srcTo, destFrom, destTo int) int {
	a := int64(destTo-destFrom) * int64(x-srcFrom)
	b := int64(srcTo - srcFrom)
	return int(a/b) + destFrom
}

// ScaleRangeF is the float32 variant of ScaleRange. A zero-width source
// interval is a caller error.
func ScaleRangeF(x, srcFrom, srcTo, destFrom, destTo float32) float32 {
	a := (destTo - destFrom) * (x - srcFrom)
	b := srcTo - srcFrom
	return a/b + destFrom
}

// GCD returns the greatest common divisor of num and denom by the Euclidean
// algorithm, with GCD(n, 0) = n.
func GCD(num, denom int) int {
	if denom == 0 {
		return num
	}
	return GCD(denom, num%denom)
}

// Fix12 is a signed fixed-point scalar with 12 fractional bits.
type Fix12 int32

const fix12Shift = 12

// NewFix12 constructs the Q12 representation of num/den using
// round-toward-zero integer division. den must be non-zero.
func NewFix12(num, den int16) Fix12 {
	return Fix12((int32(num) << fix12Shift) / int32(den))
}

// Multiply scales input by the Q12 factor. Overflow of the pre-shift product
// is a caller-sizing responsibility.
func (q Fix12) Multiply(input int16) int16 {
	return int16((int32(input) * int32(q)) >> fix12Shift)
}

// Percent converts the Q12 factor to an integer percentage.
func (q Fix12) Percent() int16 {
	return int16((100 * int32(q)) >> fix12Shift)
}

// ArraySubInt32 stores minuend[i] - subtrahend[i] into dest for the first
// len(dest) indices. The writes are independent per index; dest must not
// alias a later-read index of either input in a shifted way.
func ArraySubInt32(dest, minuend, subtrahend []int32) {
	for i := range dest {
		dest[i] = minuend[i] - subtrahend[i]
	}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
