package fcmath

// Vector is a free 3-vector. The coordinate frame it lives in (body or earth)
// is a caller-tracked invariant, not encoded in the type.
type Vector struct {
	X, Y, Z float32
}

// EulerAngles is a ZYX (yaw, pitch, roll) rotation from the earth frame to
// the body frame, in radians.
type EulerAngles struct {
	Roll, Pitch, Yaw float32
}

// RotationMatrix is a 3x3 matrix indexed as [row][axis] with axes ordered
// X, Y, Z. Matrices built by Trig.RotationMatrix from finite Euler angles are
// orthonormal; no invariant is checked at runtime.
type RotationMatrix [3][3]float32

// RotationMatrix assembles the earth-to-body matrix equivalent to the
// composition Rz(yaw)*Ry(pitch)*Rx(roll), using the approximated sine and
// cosine. The per-cell formulas are fixed: consumers index the result by the
// same (row, axis) convention, so this exact assignment is part of the
// contract, not just "a" valid rotation matrix.
func (t Trig) RotationMatrix(a EulerAngles) RotationMatrix {
	cosx := t.Cos(a.Roll)
	sinx := t.Sin(a.Roll)
	cosy := t.Cos(a.Pitch)
	siny := t.Sin(a.Pitch)
	cosz := t.Cos(a.Yaw)
	sinz := t.Sin(a.Yaw)

	coszcosx := cosz * cosx
	sinzcosx := sinz * cosx
	coszsinx := sinx * cosz
	sinzsinx := sinx * sinz

	var m RotationMatrix
	m[0][0] = cosz * cosy
	m[0][1] = -cosy * sinz
	m[0][2] = siny
	m[1][0] = sinzcosx + coszsinx*siny
	m[1][1] = coszcosx - sinzsinx*siny
	m[1][2] = -sinx * cosy
	m[2][0] = sinzsinx - coszcosx*siny
	m[2][1] = coszsinx + sinzcosx*siny
	m[2][2] = cosy * cosx
	return m
}

// Apply rotates v by m using the row-vector-times-matrix convention.
func (m *RotationMatrix) Apply(v Vector) Vector {
	return Vector{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// Rotate rotates v by the given Euler angles.
func (t Trig) Rotate(v Vector, a EulerAngles) Vector {
	m := t.RotationMatrix(a)
	return m.Apply(v)
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float32 {
	return sqrtf(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns v scaled to unit length. A vector of exactly zero length
// is returned unchanged rather than dividing by zero.
func (v Vector) Normalized() Vector {
	n, _ := v.NormalizedOK()
	return n
}

// NormalizedOK is Normalized plus a flag reporting whether normalization was
// possible. The flag is false only for an exactly zero-length input, in which
// case v is returned unchanged.
func (v Vector) NormalizedOK() (Vector, bool) {
	length := v.Length()
	if length == 0 {
		return v, false
	}
	return Vector{X: v.X / length, Y: v.Y / length, Z: v.Z / length}, true
}
