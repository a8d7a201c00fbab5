package mesh

import (
	"github.com/chewxy/math32"
)

// sphereVertexCount is the number of vertices in the generated sphere table.
const sphereVertexCount = 270

// sphereBaseRadius is the radius the sphere vertex table is authored at. NewSphere
// scales the table by radius/sphereBaseRadius when staging vertex data.
const sphereBaseRadius = float32(0.5)

// sphereSpiralTurns is the number of full revolutions the sphere spiral makes from
// pole to pole.
const sphereSpiralTurns = float32(12)

// NewSquare creates a unit square in the XY plane centered on the origin, spanning
// -0.5 to 0.5 on both axes. It draws as a triangle strip of two triangles.
//
// Returns:
//   - Mesh: the square mesh
func NewSquare() Mesh {
	return NewMesh(
		WithName("square"),
		WithTopology(TopologyTriangleStrip),
		WithVertexData([]float32{
			0.5, 0.5, 0,
			-0.5, 0.5, 0,
			0.5, -0.5, 0,
			-0.5, -0.5, 0,
		}),
	)
}

// NewTriangle creates an isoceles triangle in the XY plane centered on the origin,
// with its apex at y=0.5 and its base at y=-0.5.
//
// Returns:
//   - Mesh: the triangle mesh
func NewTriangle() Mesh {
	return NewMesh(
		WithName("triangle"),
		WithTopology(TopologyTriangleList),
		WithVertexData([]float32{
			0, 0.5, 0,
			-0.5, -0.5, 0,
			0.5, -0.5, 0,
		}),
	)
}

// NewRhombus creates a rhombus in the XY plane centered on the origin, taller than it
// is wide. It draws as a triangle strip of two triangles sharing the horizontal diagonal.
//
// Returns:
//   - Mesh: the rhombus mesh
func NewRhombus() Mesh {
	return NewMesh(
		WithName("rhombus"),
		WithTopology(TopologyTriangleStrip),
		WithVertexData([]float32{
			0, 0.5, 0,
			-0.35, 0, 0,
			0.35, 0, 0,
			0, -0.5, 0,
		}),
	)
}

// NewSphere creates a sphere of the given radius centered on the origin. The surface is
// a fixed 270-vertex spiral winding from the north pole to the south pole, assembled as
// a triangle fan anchored at the first vertex.
//
// Parameters:
//   - radius: the sphere radius
//
// Returns:
//   - Mesh: the sphere mesh
func NewSphere(radius float32) Mesh {
	scale := radius / sphereBaseRadius
	verts := buildSphereVertices()
	if scale != 1 {
		for i := range verts {
			verts[i] *= scale
		}
	}
	return NewMesh(
		WithName("sphere"),
		WithTopology(TopologyTriangleFan),
		WithVertexData(verts),
		WithIndexData(buildFanIndices(sphereVertexCount)),
	)
}

// buildSphereVertices generates the sphere vertex table at sphereBaseRadius. Vertices
// spiral from the north pole down to the south pole, so consecutive vertices fanned
// against vertex 0 tile the surface.
func buildSphereVertices() []float32 {
	verts := make([]float32, 0, sphereVertexCount*3)
	for i := range sphereVertexCount {
		t := float32(i) / float32(sphereVertexCount-1)
		theta := t * math32.Pi
		phi := t * sphereSpiralTurns * 2 * math32.Pi
		verts = append(verts,
			sphereBaseRadius*math32.Sin(theta)*math32.Cos(phi),
			sphereBaseRadius*math32.Cos(theta),
			sphereBaseRadius*math32.Sin(theta)*math32.Sin(phi),
		)
	}
	return verts
}

// buildFanIndices generates the index list that draws a triangle fan as an indexed
// triangle list. Each pair of consecutive vertices forms a triangle with vertex 0,
// matching fan assembly exactly.
//
// Parameters:
//   - vertexCount: the number of vertices in the fan
//
// Returns:
//   - []uint16: indices forming (vertexCount-2) triangles, or nil for degenerate fans
func buildFanIndices(vertexCount int) []uint16 {
	if vertexCount < 3 {
		return nil
	}
	indices := make([]uint16, 0, (vertexCount-2)*3)
	for i := 1; i < vertexCount-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return indices
}
