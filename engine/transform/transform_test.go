package transform

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()

	assert.InDelta(t, 45.0*(math.Pi/180.0), tr.Fov(), 1e-6)
	assert.InDelta(t, 1.0, tr.Aspect(), 1e-6)
	assert.InDelta(t, 1.0, tr.Near(), 1e-6)
	assert.InDelta(t, 10000.0, tr.Far(), 1e-6)

	mv := tr.ModelViewMatrix()
	assert.True(t, common.IsIdentity(mv[:]))
}

func TestNewTransformProjection(t *testing.T) {
	tr := NewTransform()
	proj := tr.ProjectionMatrix()

	f := 1.0 / math32.Tan(45.0*(math32.Pi/180.0)/2.0)
	assert.InDelta(t, f, proj[0], 1e-5)
	assert.InDelta(t, f, proj[5], 1e-5)
	assert.Equal(t, proj[0], proj[5])
	assert.InDelta(t, -1.0, proj[11], 1e-6)
}

func TestSetAspectRecomputesProjection(t *testing.T) {
	tr := NewTransform()
	before := tr.ProjectionMatrix()

	tr.SetAspect(2)
	after := tr.ProjectionMatrix()

	assert.InDelta(t, before[0]/2, after[0], 1e-5)
	assert.Equal(t, before[5], after[5])
}

func TestWithModelTranslation(t *testing.T) {
	tr := NewTransform(WithModelTranslation(0, 0, -6))
	mv := tr.ModelViewMatrix()

	assert.InDelta(t, -6.0, mv[14], 1e-6)
	assert.Zero(t, mv[12])
	assert.Zero(t, mv[13])
	assert.InDelta(t, 1.0, mv[0], 1e-6)
	assert.InDelta(t, 1.0, mv[15], 1e-6)
}

func TestTranslateAccumulates(t *testing.T) {
	tr := NewTransform()
	tr.Translate(1, 2, -3)
	tr.Translate(0, 0, -3)

	mv := tr.ModelViewMatrix()
	assert.InDelta(t, 1.0, mv[12], 1e-6)
	assert.InDelta(t, 2.0, mv[13], 1e-6)
	assert.InDelta(t, -6.0, mv[14], 1e-6)

	tr.ResetModelView()
	mv = tr.ModelViewMatrix()
	assert.True(t, common.IsIdentity(mv[:]))
}

func TestUniformBytes(t *testing.T) {
	tr := NewTransform(WithModelTranslation(0, 0, -6))
	data := tr.UniformBytes()
	require.Len(t, data, TransformUniformSize)

	// Projection occupies the first matrix slot.
	proj := tr.ProjectionMatrix()
	m0 := math.Float32frombits(binary.LittleEndian.Uint32(data[0:4]))
	assert.Equal(t, proj[0], m0)

	// Model-view occupies the second. Element 14 holds the z translation.
	mv14 := math.Float32frombits(binary.LittleEndian.Uint32(data[64+14*4 : 64+15*4]))
	assert.InDelta(t, -6.0, mv14, 1e-6)
}

func TestUniqueProviderLabels(t *testing.T) {
	a := NewTransform()
	b := NewTransform()
	require.NotNil(t, a.BindGroupProvider())
	require.NotNil(t, b.BindGroupProvider())
	assert.NotEqual(t, a.BindGroupProvider().Label(), b.BindGroupProvider().Label())
}
