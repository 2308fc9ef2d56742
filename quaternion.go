package fcmath

// Quaternion is a 4-component quaternion in (w, x, y, z) order. A rotation
// quaternion is expected, but not enforced, to have unit modulus. A vector
// quaternion has W == 0 and carries a pure 3-vector.
type Quaternion struct {
	W, X, Y, Z float32
}

// QuaternionProducts holds the ten pairwise component products of a
// quaternion, precomputed so that callers converting an attitude to a matrix
// do not recompute them. It is derived fresh by Products on every call and
// has no independent lifecycle.
type QuaternionProducts struct {
	WW, WX, WY, WZ, XX, XY, XZ, YY, YZ, ZZ float32
}

// IdentityQuaternion returns the identity rotation (w = 1).
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// VectorQuaternion wraps a 3-vector as a pure vector quaternion (w = 0).
func VectorQuaternion(v Vector) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector returns the vector part of q.
func (q Quaternion) Vector() Vector {
	return Vector{X: q.X, Y: q.Y, Z: q.Z}
}

// Multiply returns the Hamilton product q*r.
func (q Quaternion) Multiply(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Add returns the component-wise sum q+r.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return Quaternion{W: q.W + r.W, X: q.X + r.X, Y: q.Y + r.Y, Z: q.Z + r.Z}
}

// Conjugate returns q with its vector part negated.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Dot returns the 4-component dot product of q and r.
func (q Quaternion) Dot(r Quaternion) float32 {
	return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z
}

// Norm returns the squared modulus of q.
func (q Quaternion) Norm() float32 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Modulus returns the Euclidean length of q.
func (q Quaternion) Modulus() float32 {
	return sqrtf(q.Norm())
}

// Normalized returns q scaled to unit modulus. A quaternion of exactly zero
// modulus is returned unchanged rather than dividing by zero.
func (q Quaternion) Normalized() Quaternion {
	n, _ := q.NormalizedOK()
	return n
}

// NormalizedOK is Normalized plus a flag reporting whether normalization was
// possible. The flag is false only for an exactly zero input, in which case
// q is returned unchanged.
func (q Quaternion) NormalizedOK() (Quaternion, bool) {
	modulus := q.Modulus()
	if modulus == 0 {
		return q, false
	}
	return Quaternion{
		W: q.W / modulus,
		X: q.X / modulus,
		Y: q.Y / modulus,
		Z: q.Z / modulus,
	}, true
}

// Products computes the pairwise component products of q.
func (q Quaternion) Products() QuaternionProducts {
	return QuaternionProducts{
		WW: q.W * q.W,
		WX: q.W * q.X,
		WY: q.W * q.Y,
		WZ: q.W * q.Z,
		XX: q.X * q.X,
		XY: q.X * q.Y,
		XZ: q.X * q.Z,
		YY: q.Y * q.Y,
		YZ: q.Y * q.Z,
		ZZ: q.Z * q.Z,
	}
}

// TransformVectorBodyToEarth rotates the vector quaternion v from the body
// frame to the earth frame of the reference rotation ref, computing
// ref * v * conj(ref). v is treated as a pure vector quaternion: its W
// component is ignored and the result has W == 0 up to rounding.
func (ref Quaternion) TransformVectorBodyToEarth(v Quaternion) Quaternion {
	v.W = 0
	return ref.Multiply(v).Multiply(ref.Conjugate())
}

// TransformVectorEarthToBody rotates the vector quaternion v from the earth
// frame to the body frame of the reference rotation ref, computing
// conj(ref) * v * ref. v is treated as a pure vector quaternion: its W
// component is ignored and the result has W == 0 up to rounding.
func (ref Quaternion) TransformVectorEarthToBody(v Quaternion) Quaternion {
	v.W = 0
	return ref.Conjugate().Multiply(v).Multiply(ref)
}
