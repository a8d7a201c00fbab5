package transform

import (
	"math"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/bind_group_provider"
)

// transformCount is an atomic counter used to generate unique bind group provider names for each transform instance.
var transformCount atomic.Uint64

// TransformUniformSize is the byte size of the transform uniform block: two 4x4
// float32 matrices, projection followed by model-view.
const TransformUniformSize = 128

type transformImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	projectionMatrix [16]float32
	modelViewMatrix  [16]float32

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Transform defines the interface for the per-scene transform state.
// A Transform holds the perspective settings and the model-view matrix the vertex
// shader multiplies positions through. The model-view matrix starts as identity and
// only changes through Translate or the WithModelTranslation option.
type Transform interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ModelViewMatrix returns the current 4x4 model-view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the model-view matrix
	ModelViewMatrix() [16]float32

	// UniformBytes packs the projection and model-view matrices into the byte layout of
	// the shader's transform uniform block: projection first, model-view second,
	// TransformUniformSize bytes total.
	//
	// Returns:
	//   - []byte: the packed uniform data
	UniformBytes() []byte

	// BindGroupProvider returns the transform's bind group provider for GPU resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetFov sets the field of view in radians and recomputes the projection matrix.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes the projection matrix.
	// Call this when the drawing surface resizes.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes the projection matrix.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes the projection matrix.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Translate post-multiplies the model-view matrix by a translation, moving
	// subsequently drawn geometry by (x, y, z) in view space.
	//
	// Parameters:
	//   - x, y, z: translation components
	Translate(x, y, z float32)

	// ResetModelView resets the model-view matrix to identity.
	ResetModelView()

	// SetBindGroupProvider sets the transform's bind group provider.
	//
	// Parameters:
	//   - provider: the bind group provider to set
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Transform = &transformImpl{}

// NewTransform creates a new Transform with default perspective settings: a 45 degree
// field of view, square aspect, and clip planes at 1 and 10000. The model-view matrix
// starts as identity.
//
// Parameters:
//   - options: functional options to configure the transform
//
// Returns:
//   - Transform: the newly created transform
func NewTransform(options ...TransformBuilderOption) Transform {
	t := &transformImpl{
		mu:              &sync.Mutex{},
		fov:             45.0 * (math.Pi / 180.0), // radians
		aspect:          1.0,
		near:            1.0,
		far:             10000.0,
		modelViewMatrix: [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			"transform_" + strconv.FormatUint(transformCount.Load(), 10),
		),
	}
	for _, option := range options {
		option(t)
	}
	t.updateProjection()
	transformCount.Add(1)
	return t
}

func (t *transformImpl) Fov() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fov
}

func (t *transformImpl) Aspect() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.aspect
}

func (t *transformImpl) Near() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.near
}

func (t *transformImpl) Far() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.far
}

func (t *transformImpl) ProjectionMatrix() [16]float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.projectionMatrix
}

func (t *transformImpl) ModelViewMatrix() [16]float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.modelViewMatrix
}

func (t *transformImpl) UniformBytes() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()

	packed := make([]float32, 32)
	copy(packed[:16], t.projectionMatrix[:])
	copy(packed[16:], t.modelViewMatrix[:])

	out := make([]byte, TransformUniformSize)
	copy(out, common.SliceToBytes(packed))
	return out
}

func (t *transformImpl) SetFov(fov float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fov = fov
	t.updateProjection()
}

func (t *transformImpl) SetAspect(aspect float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.aspect = aspect
	t.updateProjection()
}

func (t *transformImpl) SetNear(near float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.near = near
	t.updateProjection()
}

func (t *transformImpl) SetFar(far float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.far = far
	t.updateProjection()
}

func (t *transformImpl) Translate(x, y, z float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var translation [16]float32
	common.Translate(translation[:], x, y, z)
	common.Mul4(t.modelViewMatrix[:], t.modelViewMatrix[:], translation[:])
}

func (t *transformImpl) ResetModelView() {
	t.mu.Lock()
	defer t.mu.Unlock()
	common.Identity(t.modelViewMatrix[:])
}

func (t *transformImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bindGroupProvider
}

func (t *transformImpl) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bindGroupProvider = provider
}

// updateProjection recalculates the projection matrix from the perspective settings.
// Caller must hold the mutex.
func (t *transformImpl) updateProjection() {
	common.Perspective(t.projectionMatrix[:], t.fov, t.aspect, t.near, t.far)
}
