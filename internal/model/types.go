package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Model holds triangulated geometry. Polygons with more than three corners
// are split into a fan around their first corner.
type Model struct {
	verts []mgl64.Vec3
	faces [][3]int // indices into verts
}

// NumVerts returns the number of vertex positions.
func (m *Model) NumVerts() int { return len(m.verts) }

// NumFaces returns the number of triangles.
func (m *Model) NumFaces() int { return len(m.faces) }

// Vert returns corner 0, 1 or 2 of a face in model space.
func (m *Model) Vert(face, corner int) mgl64.Vec3 {
	return m.verts[m.faces[face][corner]]
}

// Face returns the vertex indices of a face.
func (m *Model) Face(face int) [3]int {
	return m.faces[face]
}

// Bounds returns the component-wise min and max over all vertices.
// An empty model returns zero vectors.
func (m *Model) Bounds() (lo, hi mgl64.Vec3) {
	if len(m.verts) == 0 {
		return
	}
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.verts {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}
	return lo, hi
}
