package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)
	assert.True(t, IsIdentity(m))
}

func TestIsIdentityRejectsNonIdentity(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	m[12] = 0.5
	assert.False(t, IsIdentity(m))
}

func TestMul4Identity(t *testing.T) {
	a := make([]float32, 16)
	Perspective(a, math32.Pi/4, 1.5, 1, 10000)
	id := make([]float32, 16)
	Identity(id)

	out := make([]float32, 16)
	Mul4(out, a, id)
	assert.Equal(t, a, out)

	Mul4(out, id, a)
	assert.Equal(t, a, out)
}

func TestMul4InPlace(t *testing.T) {
	// Mul4 buffers internally, so out may alias an operand.
	a := []float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}
	b := make([]float32, 16)
	Translate(b, 1, 2, 3)

	Mul4(a, a, b)
	assert.InDelta(t, float32(2), a[0], 1e-6)
	assert.InDelta(t, float32(2), a[12], 1e-6)
	assert.InDelta(t, float32(4), a[13], 1e-6)
	assert.InDelta(t, float32(6), a[14], 1e-6)
}

func TestPerspectiveEntries(t *testing.T) {
	m := make([]float32, 16)
	fovY := math32.Pi / 4
	Perspective(m, fovY, 1.0, 1, 10000)

	f := 1.0 / math32.Tan(fovY/2)
	assert.InDelta(t, f, m[0], 1e-6)
	assert.InDelta(t, f, m[5], 1e-6)
	assert.InDelta(t, float32(-1), m[11], 1e-6)
	assert.Equal(t, float32(0), m[15])

	// Aspect only scales the x column.
	wide := make([]float32, 16)
	Perspective(wide, fovY, 2.0, 1, 10000)
	assert.InDelta(t, f/2.0, wide[0], 1e-6)
	assert.InDelta(t, f, wide[5], 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, math32.Pi/4, 1.0, 1, 10000)

	// A point at -near maps to depth 0, a point at -far maps to depth 1.
	nearZ := (m[10]*(-1) + m[14]) / 1
	farZ := (m[10]*(-10000) + m[14]) / 10000
	assert.InDelta(t, float32(0), nearZ, 1e-4)
	assert.InDelta(t, float32(1), farZ, 1e-4)
}

func TestTranslate(t *testing.T) {
	m := make([]float32, 16)
	Translate(m, 1, -2, 3)
	assert.Equal(t, float32(1), m[12])
	assert.Equal(t, float32(-2), m[13])
	assert.Equal(t, float32(3), m[14])
	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(1), m[15])
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2, 3}
	b := SliceToBytes(data)
	assert.Len(t, b, 12)
	assert.Nil(t, SliceToBytes([]float32(nil)))
}
