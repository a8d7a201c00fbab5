package mesh

import (
	"github.com/Carmen-Shannon/prism-go/engine/renderer/bind_group_provider"
)

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithTopology is an option builder that sets the primitive assembly of the Mesh.
//
// Parameters:
//   - topology: the mesh topology to set
//
// Returns:
//   - MeshBuilderOption: a function that applies the topology option to a mesh
func WithTopology(topology Topology) MeshBuilderOption {
	return func(m *mesh) {
		m.topology = topology
	}
}

// WithVertexData is an option builder that sets the staged vertex positions of the Mesh.
//
// Parameters:
//   - data: the vertex data to set, 3 floats per vertex
//
// Returns:
//   - MeshBuilderOption: a function that applies the vertex data option to a mesh
func WithVertexData(data []float32) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = data
	}
}

// WithIndexData is an option builder that sets the staged index data of the Mesh.
//
// Parameters:
//   - data: the index data to set
//
// Returns:
//   - MeshBuilderOption: a function that applies the index data option to a mesh
func WithIndexData(data []uint16) MeshBuilderOption {
	return func(m *mesh) {
		m.indexData = data
	}
}

// WithProvider is an option builder that sets the BindGroupProvider for mesh GPU resources.
//
// Parameters:
//   - provider: the BindGroupProvider holding vertex/index buffers
//
// Returns:
//   - MeshBuilderOption: a function that applies the provider option to a mesh
func WithProvider(provider bind_group_provider.BindGroupProvider) MeshBuilderOption {
	return func(m *mesh) {
		m.provider = provider
	}
}
