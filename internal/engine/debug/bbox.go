package debug

import "github.com/Faultbox/pathway/pkg/math"

// BoxWireframeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxWireframeVertexCount = 24

// BoxWireframeVertices creates line vertices for a wireframe box.
// Format: [x, y, z] per vertex, 24 vertices.
func BoxWireframeVertices(lo, hi math.Vec3) []float32 {
	return []float32{
		// Bottom face (4 edges)
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, lo.X, hi.Y, lo.Z,
		lo.X, hi.Y, lo.Z, lo.X, lo.Y, lo.Z,
		// Top face (4 edges)
		lo.X, lo.Y, hi.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, lo.Y, hi.Z,
		// Vertical edges (4 edges)
		lo.X, lo.Y, lo.Z, lo.X, lo.Y, hi.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		lo.X, hi.Y, lo.Z, lo.X, hi.Y, hi.Z,
	}
}

// FootprintBoxVertices returns a box wireframe centred on the origin with the
// given half-extents, the shape drawn per instance by the viewer.
// A zero extent on any axis is widened to min so flat meshes stay visible.
func FootprintBoxVertices(extent math.Vec3, minExtent float32) []float32 {
	e := math.Vec3{
		X: max(extent.X, minExtent),
		Y: max(extent.Y, minExtent),
		Z: max(extent.Z, minExtent),
	}
	return BoxWireframeVertices(e.Scale(-1), e)
}
