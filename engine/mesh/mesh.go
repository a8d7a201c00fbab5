package mesh

import (
	"fmt"
	"sync/atomic"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// Topology describes how a mesh's vertices assemble into triangles.
type Topology int

const (
	// TopologyTriangleList assembles each consecutive group of three vertices into a triangle.
	TopologyTriangleList Topology = iota
	// TopologyTriangleStrip assembles each vertex with the previous two into a triangle.
	TopologyTriangleStrip
	// TopologyTriangleFan assembles each pair of consecutive vertices with the first vertex
	// into a triangle. WebGPU has no native fan topology, so fan meshes carry a generated
	// index buffer and draw as an indexed triangle list.
	TopologyTriangleFan
)

// PrimitiveTopology maps the mesh topology to the WebGPU primitive topology a pipeline
// drawing this mesh must use. Fan meshes map to TriangleList since the fan is emulated
// through the index buffer.
//
// Returns:
//   - wgpu.PrimitiveTopology: the WebGPU topology for this mesh topology
func (t Topology) PrimitiveTopology() wgpu.PrimitiveTopology {
	switch t {
	case TopologyTriangleStrip:
		return wgpu.PrimitiveTopologyTriangleStrip
	default:
		return wgpu.PrimitiveTopologyTriangleList
	}
}

func (t Topology) String() string {
	switch t {
	case TopologyTriangleList:
		return "triangle-list"
	case TopologyTriangleStrip:
		return "triangle-strip"
	case TopologyTriangleFan:
		return "triangle-fan"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// meshCounter provides unique default names for meshes created without WithName.
var meshCounter uint64

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name       string
	topology   Topology
	vertexData []float32
	indexData  []uint16
	provider   bind_group_provider.BindGroupProvider
}

// Mesh defines the interface for drawable geometry.
// A Mesh holds immutable vertex positions staged on the CPU, the topology those
// vertices assemble with, and a BindGroupProvider the Renderer fills with the GPU
// vertex and index buffers on upload.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Topology retrieves the primitive assembly for this mesh.
	//
	// Returns:
	//   - Topology: the mesh topology
	Topology() Topology

	// VertexData retrieves the staged vertex positions as packed xyz triples.
	//
	// Returns:
	//   - []float32: the vertex data, 3 floats per vertex
	VertexData() []float32

	// VertexCount retrieves the number of vertices in this mesh.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// VertexBytes retrieves the staged vertex data as raw bytes for buffer upload.
	//
	// Returns:
	//   - []byte: the vertex data bytes
	VertexBytes() []byte

	// IndexData retrieves the staged index data, or nil when the mesh draws non-indexed.
	//
	// Returns:
	//   - []uint16: the index data, or nil
	IndexData() []uint16

	// IndexBytes retrieves the staged index data as raw bytes for buffer upload, or nil
	// when the mesh draws non-indexed.
	//
	// Returns:
	//   - []byte: the index data bytes, or nil
	IndexBytes() []byte

	// IndexCount retrieves the number of indices, or 0 when the mesh draws non-indexed.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Provider retrieves the BindGroupProvider holding this mesh's GPU buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	Provider() bind_group_provider.BindGroupProvider

	// Release releases any GPU resources held by this mesh's provider.
	Release()
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh from the given options.
// A default name is generated when WithName is not supplied, and the mesh carries a
// fresh BindGroupProvider for the Renderer to populate during upload.
//
// Parameters:
//   - options: functional options to configure the mesh
//
// Returns:
//   - Mesh: the newly created mesh
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	if m.name == "" {
		m.name = fmt.Sprintf("mesh-%d", atomic.AddUint64(&meshCounter, 1)-1)
	}
	if m.provider == nil {
		m.provider = bind_group_provider.NewBindGroupProvider(m.name + "-mesh")
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Topology() Topology {
	return m.topology
}

func (m *mesh) VertexData() []float32 {
	return m.vertexData
}

func (m *mesh) VertexCount() int {
	return len(m.vertexData) / 3
}

func (m *mesh) VertexBytes() []byte {
	return common.SliceToBytes(m.vertexData)
}

func (m *mesh) IndexData() []uint16 {
	return m.indexData
}

func (m *mesh) IndexBytes() []byte {
	if len(m.indexData) == 0 {
		return nil
	}
	return common.SliceToBytes(m.indexData)
}

func (m *mesh) IndexCount() int {
	return len(m.indexData)
}

func (m *mesh) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}

func (m *mesh) Release() {
	if m.provider != nil {
		m.provider.Release()
	}
}
