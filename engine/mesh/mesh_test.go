package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	m := NewSquare()
	assert.Equal(t, "square", m.Name())
	assert.Equal(t, TopologyTriangleStrip, m.Topology())
	assert.Equal(t, 4, m.VertexCount())
	assert.Len(t, m.VertexData(), 12)
	assert.Equal(t, 0, m.IndexCount())
	assert.Nil(t, m.IndexData())

	for i := 0; i < len(m.VertexData()); i += 3 {
		assert.InDelta(t, 0.5, math32.Abs(m.VertexData()[i]), 1e-6)
		assert.InDelta(t, 0.5, math32.Abs(m.VertexData()[i+1]), 1e-6)
		assert.Zero(t, m.VertexData()[i+2])
	}
}

func TestNewTriangle(t *testing.T) {
	m := NewTriangle()
	assert.Equal(t, "triangle", m.Name())
	assert.Equal(t, TopologyTriangleList, m.Topology())
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, []float32{0, 0.5, 0, -0.5, -0.5, 0, 0.5, -0.5, 0}, m.VertexData())
	assert.Equal(t, 0, m.IndexCount())
}

func TestNewRhombus(t *testing.T) {
	m := NewRhombus()
	assert.Equal(t, "rhombus", m.Name())
	assert.Equal(t, TopologyTriangleStrip, m.Topology())
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, []float32{0, 0.5, 0, -0.35, 0, 0, 0.35, 0, 0, 0, -0.5, 0}, m.VertexData())
}

func TestNewSphere(t *testing.T) {
	m := NewSphere(0.5)
	assert.Equal(t, "sphere", m.Name())
	assert.Equal(t, TopologyTriangleFan, m.Topology())
	assert.Equal(t, sphereVertexCount, m.VertexCount())

	// Every vertex sits on the sphere surface.
	verts := m.VertexData()
	for i := 0; i < len(verts); i += 3 {
		r := math32.Sqrt(verts[i]*verts[i] + verts[i+1]*verts[i+1] + verts[i+2]*verts[i+2])
		assert.InDelta(t, 0.5, r, 1e-5)
	}

	// The spiral starts at the north pole and ends at the south pole.
	assert.InDelta(t, 0.5, verts[1], 1e-5)
	assert.InDelta(t, -0.5, verts[len(verts)-2], 1e-5)
}

func TestNewSphereRadiusScaling(t *testing.T) {
	base := NewSphere(0.5)
	scaled := NewSphere(2)

	require.Equal(t, base.VertexCount(), scaled.VertexCount())
	for i, v := range base.VertexData() {
		assert.InDelta(t, v*4, scaled.VertexData()[i], 1e-5)
	}
}

func TestSphereFanIndices(t *testing.T) {
	m := NewSphere(1)
	require.Equal(t, (sphereVertexCount-2)*3, m.IndexCount())

	indices := m.IndexData()
	for i := 0; i < len(indices); i += 3 {
		tri := i / 3
		assert.Equal(t, uint16(0), indices[i])
		assert.Equal(t, uint16(tri+1), indices[i+1])
		assert.Equal(t, uint16(tri+2), indices[i+2])
	}
}

func TestBuildFanIndicesDegenerate(t *testing.T) {
	assert.Nil(t, buildFanIndices(0))
	assert.Nil(t, buildFanIndices(2))
	assert.Equal(t, []uint16{0, 1, 2}, buildFanIndices(3))
}

func TestTopologyPrimitiveTopology(t *testing.T) {
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, TopologyTriangleList.PrimitiveTopology())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleStrip, TopologyTriangleStrip.PrimitiveTopology())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, TopologyTriangleFan.PrimitiveTopology())
}

func TestTopologyString(t *testing.T) {
	assert.Equal(t, "triangle-list", TopologyTriangleList.String())
	assert.Equal(t, "triangle-strip", TopologyTriangleStrip.String())
	assert.Equal(t, "triangle-fan", TopologyTriangleFan.String())
}

func TestMeshBytes(t *testing.T) {
	m := NewSquare()
	assert.Len(t, m.VertexBytes(), 4*12)
	assert.Nil(t, m.IndexBytes())

	s := NewSphere(1)
	assert.Len(t, s.IndexBytes(), 2*s.IndexCount())
}

func TestNewMeshDefaults(t *testing.T) {
	a := NewMesh(WithVertexData([]float32{0, 0, 0}))
	b := NewMesh(WithVertexData([]float32{0, 0, 0}))
	assert.NotEmpty(t, a.Name())
	assert.NotEqual(t, a.Name(), b.Name())
	require.NotNil(t, a.Provider())
	assert.Equal(t, a.Name()+"-mesh", a.Provider().Label())
}
