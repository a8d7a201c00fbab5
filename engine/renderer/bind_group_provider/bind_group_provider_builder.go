package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption defines a functional option for configuring a BindGroupProvider.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBindGroup sets the bind group for the provider.
//
// Parameters:
//   - bg: the bind group to set
//
// Returns:
//   - BindGroupProviderOption: the option to apply
func WithBindGroup(bg *wgpu.BindGroup) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroup = bg
	}
}

// WithBindGroupLayout sets the bind group layout for the provider.
//
// Parameters:
//   - bgl: the bind group layout to set
//
// Returns:
//   - BindGroupProviderOption: the option to apply
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = bgl
	}
}

// WithBuffer sets a buffer at the given binding index for the provider.
//
// Parameters:
//   - binding: the binding index for this buffer
//   - buf: the buffer to associate with this binding
//
// Returns:
//   - BindGroupProviderOption: the option to apply
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		if p.buffers == nil {
			p.buffers = make(map[int]*wgpu.Buffer)
		}
		p.buffers[binding] = buf
	}
}

// WithVertexBuffer sets the vertex buffer for the provider.
//
// Parameters:
//   - buf: the vertex buffer to set
//
// Returns:
//   - BindGroupProviderOption: the option to apply
func WithVertexBuffer(buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.vertexBuffer = buf
	}
}

// WithIndexBuffer sets the index buffer for the provider.
//
// Parameters:
//   - buf: the index buffer to set
//
// Returns:
//   - BindGroupProviderOption: the option to apply
func WithIndexBuffer(buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexBuffer = buf
	}
}

// WithIndexCount sets the index count for indexed draw calls.
//
// Parameters:
//   - count: the index count
//
// Returns:
//   - BindGroupProviderOption: the option to apply
func WithIndexCount(count int) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexCount = count
	}
}
