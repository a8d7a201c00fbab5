package transform

import (
	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/bind_group_provider"
)

// TransformBuilderOption is a functional option for configuring a Transform via NewTransform.
type TransformBuilderOption func(*transformImpl)

// WithFov is an option builder that sets the vertical field of view.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - TransformBuilderOption: a function that applies the fov option to a transform
func WithFov(fov float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.fov = fov
	}
}

// WithAspect is an option builder that sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - TransformBuilderOption: a function that applies the aspect option to a transform
func WithAspect(aspect float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.aspect = aspect
	}
}

// WithNear is an option builder that sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - TransformBuilderOption: a function that applies the near option to a transform
func WithNear(near float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.near = near
	}
}

// WithFar is an option builder that sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - TransformBuilderOption: a function that applies the far option to a transform
func WithFar(far float32) TransformBuilderOption {
	return func(t *transformImpl) {
		t.far = far
	}
}

// WithModelTranslation is an option builder that sets the model-view matrix to a pure
// translation, pushing drawn geometry to (x, y, z) in view space. Without this option
// the model-view matrix stays identity.
//
// Parameters:
//   - x, y, z: translation components
//
// Returns:
//   - TransformBuilderOption: a function that applies the translation option to a transform
func WithModelTranslation(x, y, z float32) TransformBuilderOption {
	return func(t *transformImpl) {
		common.Translate(t.modelViewMatrix[:], x, y, z)
	}
}

// WithBindGroupProvider is an option builder that sets the transform's bind group provider.
//
// Parameters:
//   - provider: the bind group provider to set
//
// Returns:
//   - TransformBuilderOption: a function that applies the provider option to a transform
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) TransformBuilderOption {
	return func(t *transformImpl) {
		t.bindGroupProvider = provider
	}
}
