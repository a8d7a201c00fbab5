package renderer

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/prism-go/engine/mesh"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/prism-go/engine/transform"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawRecord captures one DrawCall issued against the fake backend.
type drawRecord struct {
	pipelineKey     string
	meshLabel       string
	vertexCount     uint32
	indexCount      int
	indexed         bool
	bindGroupLabels []string
}

// bufferWriteRecord captures one queued buffer write.
type bufferWriteRecord struct {
	providerLabel string
	binding       int
	offset        uint64
	data          []byte
}

// fakeBackend implements the backend interface and records every call so tests can
// assert on the GPU command sequence without real hardware.
type fakeBackend struct {
	calls []string

	registeredPipelines []string
	meshUploads         map[string][2]int // provider label -> vertex bytes, index bytes
	bindGroupLayouts    map[string]wgpu.BindGroupLayoutDescriptor
	bufferWrites        []bufferWriteRecord
	draws               []drawRecord

	surfaceWidth  int
	surfaceHeight int

	beginFrameErr error
}

var _ RendererBackend = &fakeBackend{}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		meshUploads:      make(map[string][2]int),
		bindGroupLayouts: make(map[string]wgpu.BindGroupLayoutDescriptor),
	}
}

// newTestRenderer builds a renderer over a fake backend, bypassing GPU adapter setup.
func newTestRenderer(fake *fakeBackend) *renderer {
	return &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   BackendTypeWGPU,
		backend:       fake,
	}
}

func (f *fakeBackend) Device() *wgpu.Device       { return nil }
func (f *fakeBackend) Queue() *wgpu.Queue         { return nil }
func (f *fakeBackend) Instance() *wgpu.Instance   { return nil }
func (f *fakeBackend) Adapter() *wgpu.Adapter     { return nil }
func (f *fakeBackend) Surface() *wgpu.Surface     { return nil }
func (f *fakeBackend) SetDevice(*wgpu.Device)     {}
func (f *fakeBackend) SetQueue(*wgpu.Queue)       {}
func (f *fakeBackend) SetInstance(*wgpu.Instance) {}
func (f *fakeBackend) SetAdapter(*wgpu.Adapter)   {}
func (f *fakeBackend) SetSurface(*wgpu.Surface)   {}
func (f *fakeBackend) SetPresentMode(PresentMode) { f.calls = append(f.calls, "SetPresentMode") }

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.surfaceWidth = width
	f.surfaceHeight = height
	f.calls = append(f.calls, "ConfigureSurface")
}

func (f *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	f.registeredPipelines = append(f.registeredPipelines, p.PipelineKey())
	f.calls = append(f.calls, "RegisterRenderPipeline")
	return nil
}

func (f *fakeBackend) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	f.meshUploads[provider.Label()] = [2]int{len(vertexData), len(indexData)}
	provider.SetVertexBuffer(new(wgpu.Buffer))
	if len(indexData) > 0 {
		provider.SetIndexBuffer(new(wgpu.Buffer))
	}
	provider.SetIndexCount(indexCount)
	f.calls = append(f.calls, "InitMeshBuffers")
	return nil
}

func (f *fakeBackend) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	f.bindGroupLayouts[provider.Label()] = descriptor
	for _, entry := range descriptor.Entries {
		provider.SetBuffer(int(entry.Binding), new(wgpu.Buffer))
	}
	provider.SetBindGroup(new(wgpu.BindGroup))
	f.calls = append(f.calls, "InitBindGroup")
	return nil
}

func (f *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	for _, w := range writes {
		f.bufferWrites = append(f.bufferWrites, bufferWriteRecord{
			providerLabel: w.Provider.Label(),
			binding:       w.Binding,
			offset:        w.Offset,
			data:          w.Data,
		})
	}
	f.calls = append(f.calls, "WriteBuffers")
}

func (f *fakeBackend) BeginFrame() error {
	if f.beginFrameErr != nil {
		return f.beginFrameErr
	}
	f.calls = append(f.calls, "BeginFrame")
	return nil
}

func (f *fakeBackend) DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, vertexCount uint32, bindGroups []bind_group_provider.BindGroupProvider) {
	labels := make([]string, 0, len(bindGroups))
	for _, bg := range bindGroups {
		labels = append(labels, bg.Label())
	}
	f.draws = append(f.draws, drawRecord{
		pipelineKey:     p.PipelineKey(),
		meshLabel:       meshProvider.Label(),
		vertexCount:     vertexCount,
		indexCount:      meshProvider.IndexCount(),
		indexed:         meshProvider.IndexBuffer() != nil,
		bindGroupLabels: labels,
	})
	f.calls = append(f.calls, "DrawCall")
}

func (f *fakeBackend) EndFrame() { f.calls = append(f.calls, "EndFrame") }
func (f *fakeBackend) Present()  { f.calls = append(f.calls, "Present") }

func mustVertexShader(t *testing.T) shader.Shader {
	t.Helper()
	s, err := shader.NewShader("primitive-vert", shader.ShaderTypeVertex, shader.PrimitiveVertexSource)
	require.NoError(t, err)
	return s
}

func mustFragmentShader(t *testing.T) shader.Shader {
	t.Helper()
	s, err := shader.NewShader("primitive-frag", shader.ShaderTypeFragment, shader.PrimitiveFragmentSource)
	require.NoError(t, err)
	return s
}

func TestRegisterPipelines(t *testing.T) {
	fake := newFakeBackend()
	r := newTestRenderer(fake)

	vs := mustVertexShader(t)
	fs := mustFragmentShader(t)

	strip := pipeline.NewPipeline("primitive-strip",
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleStrip),
	)
	list := pipeline.NewPipeline("primitive-list",
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	)

	require.NoError(t, r.RegisterPipelines(strip, list))
	assert.Equal(t, []string{"primitive-strip", "primitive-list"}, fake.registeredPipelines)
	assert.Same(t, strip, r.Pipeline("primitive-strip"))
	assert.Same(t, list, r.Pipeline("primitive-list"))

	// Re-registering a cached key skips backend pipeline creation.
	require.NoError(t, r.RegisterPipelines(strip))
	assert.Len(t, fake.registeredPipelines, 2)
}

func TestDrawMeshUnknownPipeline(t *testing.T) {
	fake := newFakeBackend()
	r := newTestRenderer(fake)

	sq := mesh.NewSquare()
	tr := transform.NewTransform()

	err := r.DrawMesh("missing", sq, tr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
	assert.Empty(t, fake.draws)
}

func TestUploadMesh(t *testing.T) {
	fake := newFakeBackend()
	r := newTestRenderer(fake)

	sq := mesh.NewSquare()
	require.NoError(t, r.UploadMesh(sq))

	sizes := fake.meshUploads[sq.Provider().Label()]
	assert.Equal(t, 4*3*4, sizes[0])
	assert.Zero(t, sizes[1])
	assert.NotNil(t, sq.Provider().VertexBuffer())
	assert.Nil(t, sq.Provider().IndexBuffer())

	sp := mesh.NewSphere(1)
	require.NoError(t, r.UploadMesh(sp))

	sizes = fake.meshUploads[sp.Provider().Label()]
	assert.Equal(t, sp.VertexCount()*3*4, sizes[0])
	assert.Equal(t, sp.IndexCount()*2, sizes[1])
	assert.NotNil(t, sp.Provider().IndexBuffer())
	assert.Equal(t, sp.IndexCount(), sp.Provider().IndexCount())
}

func TestInitAndWriteTransform(t *testing.T) {
	fake := newFakeBackend()
	r := newTestRenderer(fake)

	vs := mustVertexShader(t)
	tr := transform.NewTransform()

	require.NoError(t, r.InitTransform(tr, vs.BindGroupLayoutDescriptor(0)))

	desc := fake.bindGroupLayouts[tr.BindGroupProvider().Label()]
	require.Len(t, desc.Entries, 1)
	assert.Equal(t, uint32(0), desc.Entries[0].Binding)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, desc.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(transform.TransformUniformSize), desc.Entries[0].Buffer.MinBindingSize)
	assert.NotNil(t, tr.BindGroupProvider().BindGroup())

	r.WriteTransform(tr)
	require.Len(t, fake.bufferWrites, 1)
	w := fake.bufferWrites[0]
	assert.Equal(t, tr.BindGroupProvider().Label(), w.providerLabel)
	assert.Equal(t, 0, w.binding)
	assert.Len(t, w.data, transform.TransformUniformSize)
}

// TestRenderSquareFrame drives a full frame for a 640x480 surface and asserts the
// recorded GPU command sequence: upload, uniform write, frame begin, one draw with
// the strip pipeline and the transform bind group, frame end, present.
func TestRenderSquareFrame(t *testing.T) {
	fake := newFakeBackend()
	r := newTestRenderer(fake)

	vs := mustVertexShader(t)
	fs := mustFragmentShader(t)

	strip := pipeline.NewPipeline("primitive-strip",
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleStrip),
	)
	require.NoError(t, r.RegisterPipelines(strip))

	sq := mesh.NewSquare()
	tr := transform.NewTransform(
		transform.WithAspect(640.0/480.0),
		transform.WithModelTranslation(0, 0, -6),
	)

	require.NoError(t, r.UploadMesh(sq))
	require.NoError(t, r.InitTransform(tr, vs.BindGroupLayoutDescriptor(0)))

	r.WriteTransform(tr)
	require.NoError(t, r.BeginFrame())
	require.NoError(t, r.DrawMesh("primitive-strip", sq, tr))
	r.EndFrame()
	r.Present()

	assert.Equal(t, []string{
		"RegisterRenderPipeline",
		"InitMeshBuffers",
		"InitBindGroup",
		"WriteBuffers",
		"BeginFrame",
		"DrawCall",
		"EndFrame",
		"Present",
	}, fake.calls)

	require.Len(t, fake.draws, 1)
	draw := fake.draws[0]
	assert.Equal(t, "primitive-strip", draw.pipelineKey)
	assert.Equal(t, sq.Provider().Label(), draw.meshLabel)
	assert.Equal(t, uint32(4), draw.vertexCount)
	assert.False(t, draw.indexed)
	assert.Equal(t, []string{tr.BindGroupProvider().Label()}, draw.bindGroupLabels)

	// The uniform write carries the perspective projection for the 640x480 aspect
	// followed by the translated model-view matrix.
	require.Len(t, fake.bufferWrites, 1)
	data := fake.bufferWrites[0].data
	f := 1.0 / math32.Tan(45.0*(math32.Pi/180.0)/2.0)
	m0 := math.Float32frombits(binary.LittleEndian.Uint32(data[0:4]))
	m5 := math.Float32frombits(binary.LittleEndian.Uint32(data[5*4 : 6*4]))
	assert.InDelta(t, f/(640.0/480.0), m0, 1e-5)
	assert.InDelta(t, f, m5, 1e-5)
	mv14 := math.Float32frombits(binary.LittleEndian.Uint32(data[64+14*4 : 64+15*4]))
	assert.InDelta(t, -6.0, mv14, 1e-5)
}

// TestRenderAllPrimitivesFrame draws all four primitive meshes in one frame and checks
// each mesh routes through the pipeline matching its topology, with the sphere drawing
// indexed through its fan index buffer.
func TestRenderAllPrimitivesFrame(t *testing.T) {
	fake := newFakeBackend()
	r := newTestRenderer(fake)

	vs := mustVertexShader(t)
	fs := mustFragmentShader(t)

	meshes := []mesh.Mesh{
		mesh.NewSquare(),
		mesh.NewTriangle(),
		mesh.NewRhombus(),
		mesh.NewSphere(0.5),
	}

	pipelines := make(map[mesh.Topology]pipeline.Pipeline)
	for _, m := range meshes {
		topo := m.Topology()
		if _, ok := pipelines[topo]; ok {
			continue
		}
		p := pipeline.NewPipeline(fmt.Sprintf("primitive-%s", topo),
			pipeline.WithVertexShader(vs),
			pipeline.WithFragmentShader(fs),
			pipeline.WithTopology(topo.PrimitiveTopology()),
		)
		pipelines[topo] = p
		require.NoError(t, r.RegisterPipelines(p))
	}

	tr := transform.NewTransform(transform.WithModelTranslation(0, 0, -6))
	require.NoError(t, r.InitTransform(tr, vs.BindGroupLayoutDescriptor(0)))
	for _, m := range meshes {
		require.NoError(t, r.UploadMesh(m))
	}

	r.WriteTransform(tr)
	require.NoError(t, r.BeginFrame())
	for _, m := range meshes {
		require.NoError(t, r.DrawMesh(pipelines[m.Topology()].PipelineKey(), m, tr))
	}
	r.EndFrame()
	r.Present()

	require.Len(t, fake.draws, 4)

	assert.Equal(t, "primitive-triangle-strip", fake.draws[0].pipelineKey)
	assert.Equal(t, uint32(4), fake.draws[0].vertexCount)
	assert.False(t, fake.draws[0].indexed)

	assert.Equal(t, "primitive-triangle-list", fake.draws[1].pipelineKey)
	assert.Equal(t, uint32(3), fake.draws[1].vertexCount)
	assert.False(t, fake.draws[1].indexed)

	assert.Equal(t, "primitive-triangle-strip", fake.draws[2].pipelineKey)
	assert.Equal(t, uint32(4), fake.draws[2].vertexCount)

	// Sphere fan emulation: indexed triangle list
	sphereDraw := fake.draws[3]
	assert.Equal(t, "primitive-triangle-fan", sphereDraw.pipelineKey)
	assert.True(t, sphereDraw.indexed)
	assert.Equal(t, (270-2)*3, sphereDraw.indexCount)

	// Every draw binds the shared transform at group 0.
	for _, d := range fake.draws {
		assert.Equal(t, []string{tr.BindGroupProvider().Label()}, d.bindGroupLabels)
	}
}

func TestResizeReconfiguresSurface(t *testing.T) {
	fake := newFakeBackend()
	r := newTestRenderer(fake)

	r.Resize(800, 600)
	assert.Equal(t, 800, fake.surfaceWidth)
	assert.Equal(t, 600, fake.surfaceHeight)
	assert.Contains(t, fake.calls, "ConfigureSurface")
}
