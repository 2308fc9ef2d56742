package fcmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refRotationMatrix builds the reference matrix with double-precision trig,
// cell for cell.
func refRotationMatrix(a EulerAngles) RotationMatrix {
	cx, sx := math.Cos(float64(a.Roll)), math.Sin(float64(a.Roll))
	cy, sy := math.Cos(float64(a.Pitch)), math.Sin(float64(a.Pitch))
	cz, sz := math.Cos(float64(a.Yaw)), math.Sin(float64(a.Yaw))
	return RotationMatrix{
		{float32(cz * cy), float32(-cy * sz), float32(sy)},
		{float32(sz*cx + sx*cz*sy), float32(cz*cx - sx*sz*sy), float32(-sx * cy)},
		{float32(sx*sz - cz*cx*sy), float32(sx*cz + sz*cx*sy), float32(cy * cx)},
	}
}

func TestRotationMatrixCells(t *testing.T) {
	tr := NewTrig(TrigAccurate)
	angles := []EulerAngles{
		{},
		{Roll: 0.3, Pitch: -0.5, Yaw: 1.2},
		{Roll: -1.1, Pitch: 0.7, Yaw: -2.9},
		{Roll: Pi / 2, Pitch: 0, Yaw: Pi},
	}
	for _, a := range angles {
		got := tr.RotationMatrix(a)
		want := refRotationMatrix(a)
		// Each cell combines up to three approximated trig factors, so the
		// per-cell tolerance is a few times the single-call error bound.
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 5e-5)); diff != "" {
			t.Errorf("RotationMatrix(%+v) mismatch (-want +got):\n%s", a, diff)
		}
	}
}

func TestRotationMatrixIdentity(t *testing.T) {
	tr := NewTrig(TrigAccurate)
	got := tr.RotationMatrix(EulerAngles{})
	want := RotationMatrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("identity mismatch (-want +got):\n%s", diff)
	}
}

func TestRotationMatrixOrthonormal(t *testing.T) {
	tr := NewTrig(TrigAccurate)
	rng := rand.New(rand.NewSource(42))
	dot := func(m *RotationMatrix, i, j int) float64 {
		return float64(m[i][0])*float64(m[j][0]) +
			float64(m[i][1])*float64(m[j][1]) +
			float64(m[i][2])*float64(m[j][2])
	}
	for i := 0; i < 200; i++ {
		a := EulerAngles{
			Roll:  float32((rng.Float64() - 0.5) * 2 * math.Pi),
			Pitch: float32((rng.Float64() - 0.5) * 2 * math.Pi),
			Yaw:   float32((rng.Float64() - 0.5) * 2 * math.Pi),
		}
		m := tr.RotationMatrix(a)
		for row := 0; row < 3; row++ {
			assert.InDelta(t, 1, dot(&m, row, row), 5e-5, "row %d norm, angles %+v", row, a)
		}
		assert.InDelta(t, 0, dot(&m, 0, 1), 5e-5, "rows 0,1, angles %+v", a)
		assert.InDelta(t, 0, dot(&m, 0, 2), 5e-5, "rows 0,2, angles %+v", a)
		assert.InDelta(t, 0, dot(&m, 1, 2), 5e-5, "rows 1,2, angles %+v", a)
	}
}

func TestRotateMatchesMatrix(t *testing.T) {
	tr := NewTrig(TrigAccurate)
	a := EulerAngles{Roll: 0.4, Pitch: -0.2, Yaw: 2.1}
	v := Vector{X: 1, Y: -2, Z: 3}

	m := tr.RotationMatrix(a)
	want := m.Apply(v)
	got := tr.Rotate(v, a)
	assert.Equal(t, want, got)
}

func TestRotatePreservesLength(t *testing.T) {
	tr := NewTrig(TrigAccurate)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := Vector{
			X: float32((rng.Float64() - 0.5) * 20),
			Y: float32((rng.Float64() - 0.5) * 20),
			Z: float32((rng.Float64() - 0.5) * 20),
		}
		a := EulerAngles{
			Roll:  float32((rng.Float64() - 0.5) * 2 * math.Pi),
			Pitch: float32((rng.Float64() - 0.5) * 2 * math.Pi),
			Yaw:   float32((rng.Float64() - 0.5) * 2 * math.Pi),
		}
		rotated := tr.Rotate(v, a)
		assert.InDelta(t, float64(v.Length()), float64(rotated.Length()), 1e-3)
	}
}

func TestRotateZeroAnglesIsIdentity(t *testing.T) {
	tr := NewTrig(TrigAccurate)
	v := Vector{X: 0.5, Y: -1.5, Z: 2.5}
	got := tr.Rotate(v, EulerAngles{})
	// Cos(0) is the approximated Sin(pi/2), so "identity" carries the
	// polynomial's error.
	if diff := cmp.Diff(v, got, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("rotation by zero angles changed the vector (-want +got):\n%s", diff)
	}
}

func TestVectorLength(t *testing.T) {
	assert.InDelta(t, 5, Vector{X: 3, Y: 4}.Length(), 1e-6)
	assert.Zero(t, Vector{}.Length())
}

func TestVectorNormalized(t *testing.T) {
	got := Vector{X: 3, Y: 4}.Normalized()
	if diff := cmp.Diff(Vector{X: 0.6, Y: 0.8}, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("normalized mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 1, got.Length(), 1e-6)
}

func TestVectorNormalizedZero(t *testing.T) {
	// A zero-length vector passes through unchanged instead of dividing by zero.
	zero := Vector{}
	assert.Equal(t, zero, zero.Normalized())

	got, ok := zero.NormalizedOK()
	require.False(t, ok)
	assert.Equal(t, zero, got)

	_, ok = Vector{X: 1e-3}.NormalizedOK()
	assert.True(t, ok)
}
