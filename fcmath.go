// Package fcmath is the numeric kernel of a flight-control estimator and
// controller: cheap transcendental approximations, Euler and quaternion
// orientation algebra, running statistics and fixed-window median filters.
//
// Every routine is a bounded, allocation-free computation over small
// fixed-size values. Nothing here performs I/O or holds hidden state; the
// only stateful type is the caller-owned Stdev accumulator, which is not
// internally synchronized. All arithmetic is single precision, with the
// error bound of each approximation documented on the function.
package fcmath

import "math"

// Pi is the single-precision value of pi used throughout the kernel.
const Pi = float32(math.Pi)

const degToRad = Pi / 180

// DegreesToRadians converts an integer angle in degrees to radians.
func DegreesToRadians(degrees int16) float32 {
	return float32(degrees) * degToRad
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
