package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShaderVertex(t *testing.T) {
	s, err := NewShader("primitive_vert", ShaderTypeVertex, PrimitiveVertexSource)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "primitive_vert", s.Key())
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	require.NotNil(t, s.Module())
	assert.Equal(t, PrimitiveVertexSource, s.Module().WGSLDescriptor.Code)
}

func TestVertexLayoutParsing(t *testing.T) {
	s, err := NewShader("primitive_vert", ShaderTypeVertex, PrimitiveVertexSource)
	require.NoError(t, err)

	layouts := s.VertexLayout(0)
	require.Len(t, layouts, 1)

	layout := layouts[0]
	// One tightly packed vec3f position attribute at location 0.
	assert.Equal(t, uint64(12), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	require.Len(t, layout.Attributes, 1)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)
}

func TestTransformUniformResolution(t *testing.T) {
	s, err := NewShader("primitive_vert", ShaderTypeVertex, PrimitiveVertexSource)
	require.NoError(t, err)

	desc := s.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 1)

	entry := desc.Entries[0]
	assert.Equal(t, uint32(0), entry.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex, entry.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	// Two mat4x4<f32>: projection then modelView.
	assert.Equal(t, uint64(128), entry.Buffer.MinBindingSize)

	assert.Equal(t, "transforms", s.BindGroupVarName(0, 0))
	binding, ok := s.BindGroupFromVarName(0, "transforms")
	assert.True(t, ok)
	assert.Equal(t, 0, binding)

	_, ok = s.BindGroupFromVarName(0, "missing")
	assert.False(t, ok)
}

func TestNewShaderFragment(t *testing.T) {
	s, err := NewShader("primitive_frag", ShaderTypeFragment, PrimitiveFragmentSource)
	require.NoError(t, err)

	assert.Equal(t, "fs_main", s.EntryPoint())
	assert.Empty(t, s.VertexLayouts())
	assert.Empty(t, s.BindGroupLayoutDescriptors())
}

func TestNewShaderInvalidSource(t *testing.T) {
	// Syntactically broken source has no recognizable entry point; the parse
	// fails with a diagnostic and no shader handle is produced.
	s, err := NewShader("broken", ShaderTypeVertex, "fn { not wgsl ]]")
	assert.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "broken")
}

func TestNewShaderEmptySource(t *testing.T) {
	s, err := NewShader("empty", ShaderTypeVertex, "")
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestNewShaderWrongStage(t *testing.T) {
	// A fragment-only source compiled as a vertex stage has no @vertex entry point.
	s, err := NewShader("mismatched", ShaderTypeVertex, PrimitiveFragmentSource)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestNewShaderVertexWithoutInputStruct(t *testing.T) {
	src := `
@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`
	s, err := NewShader("no_inputs", ShaderTypeVertex, src)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestStripComments(t *testing.T) {
	src := "a // line\n/* block /* nested */ still */ b\n"
	out := stripComments(src)
	assert.NotContains(t, out, "line")
	assert.NotContains(t, out, "nested")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}

func TestComputeStructSizes(t *testing.T) {
	structs := parseStructBlocks(stripComments(PrimitiveVertexSource))
	sizes := computeStructSizes(structs)

	layout, ok := sizes["TransformUniform"]
	require.True(t, ok)
	assert.Equal(t, uint64(128), layout.size)
	assert.Equal(t, uint64(16), layout.align)
}
