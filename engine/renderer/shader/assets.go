package shader

import _ "embed"

// The primitive shader pair is the only program this engine ships: the vertex
// stage transforms a vec3 position by projection * modelView, the fragment
// stage emits opaque white. Both are embedded so the sources are versioned
// with the package rather than loaded from disk at runtime.

//go:embed assets/primitive-vert.wgsl
var PrimitiveVertexSource string

//go:embed assets/primitive-frag.wgsl
var PrimitiveFragmentSource string
