package fcmath

// TrigMode selects which sine polynomial coefficient set a Trig value uses.
// It is the construction-time equivalent of a compile-time accuracy switch:
// exactly one set is active per Trig value, and the choice never changes at
// runtime.
type TrigMode int

const (
	// TrigAccurate evaluates four odd polynomial terms.
	// Maximum absolute sine error is about 2.6e-6 rad.
	TrigAccurate TrigMode = iota

	// TrigFast drops the ninth-order term, trading one multiplication for a
	// slightly different error profile. Maximum absolute sine error is about
	// 2.3e-6 rad, cosine about 2.9e-6 rad.
	TrigFast
)

// Odd-power minimax coefficients (x^3, x^5, x^7, x^9) per TrigMode.
var sinPoly = [2][4]float32{
	TrigAccurate: {-1.666665710e-1, 8.333017292e-3, -1.980661520e-4, 2.600054768e-6},
	TrigFast:     {-1.666568107e-1, 8.312366210e-3, -1.849218155e-4, 0},
}

// Trig evaluates the polynomial sine and cosine approximations with a fixed
// accuracy mode. The zero value uses TrigAccurate. Trig values are free to
// copy and safe for unrestricted concurrent use.
type Trig struct {
	mode TrigMode
}

// NewTrig returns a Trig using the given coefficient set.
func NewTrig(mode TrigMode) Trig {
	return Trig{mode: mode}
}

// Mode returns the coefficient set this Trig was constructed with.
func (t Trig) Mode() TrigMode {
	return t.mode
}

// Sin approximates sin(x) for x in radians. Inputs whose integer truncation
// exceeds +-32 (5 * 360 deg) are treated as invalid and yield 0. The angle is
// wrapped into [-pi, pi], reflected into [-pi/2, pi/2] and fed to an odd
// ninth-order minimax polynomial.
func (t Trig) Sin(x float32) float32 {
	if xi := int32(x); xi < -32 || xi > 32 {
		// Stop here on error input (5 * 360 deg).
		return 0
	}
	for x > Pi {
		// Always wrap the input angle to -pi..pi.
		x -= 2 * Pi
	}
	for x < -Pi {
		x += 2 * Pi
	}
	if x > 0.5*Pi {
		// We just pick -90..+90 deg.
		x = 0.5*Pi - (x - 0.5*Pi)
	} else if x < -0.5*Pi {
		x = -0.5*Pi - (0.5*Pi + x)
	}
	c := &sinPoly[t.mode]
	x2 := x * x
	return x + x*x2*(c[0]+x2*(c[1]+x2*(c[2]+x2*c[3])))
}

// Cos approximates cos(x) as Sin(x + pi/2), inheriting Sin's range guard and
// error bound.
func (t Trig) Cos(x float32) float32 {
	return t.Sin(x + 0.5*Pi)
}

// Coefficients of the rational arctangent approximation used by Atan2.
const (
	atanCoef1 = 3.14551665884836e-07
	atanCoef2 = 0.99997356613987
	atanCoef3 = 0.14744007058297684
	atanCoef4 = 0.3099814292351353
	atanCoef5 = 0.05030176425872175
	atanCoef6 = 0.1471039133652469
	atanCoef7 = 0.6444640676891548
)

// Atan2 is a quadrant-aware arctangent built from a rational minimax
// approximation of atan(min/max). Maximum absolute error is about 7.2e-7 rad.
// Atan2(0, 0) returns 0 rather than dividing by zero.
func Atan2(y, x float32) float32 {
	absX := absf(x)
	absY := absf(y)
	res := max(absX, absY)
	if res != 0 {
		res = min(absX, absY) / res
	}
	res = -((((atanCoef5*res-atanCoef4)*res-atanCoef3)*res-atanCoef2)*res - atanCoef1) /
		((atanCoef7*res+atanCoef6)*res + 1)
	if absY > absX {
		res = Pi/2 - res
	}
	if x < 0 {
		res = Pi - res
	}
	if y < 0 {
		res = -res
	}
	return res
}

// Acos approximates acos(x) for x in [-1, 1] with a maximum absolute error of
// about 6.8e-5 rad. Inputs outside [-1, 1] are not rejected; the intermediate
// square root produces NaN, which propagates to the result.
func Acos(x float32) float32 {
	xa := absf(x)
	result := sqrtf(1-xa) * (1.5707288 + xa*(-0.2121144+xa*(0.0742610+xa*(-0.0187293))))
	if x < 0 {
		return Pi - result
	}
	return result
}
