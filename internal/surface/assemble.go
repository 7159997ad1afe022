package surface

import (
	"GopherSurface/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// NormalCalculator computes per-vertex normals for a flat vertex buffer and triangle
// list. mesh.RecalculateNormals is the default.
type NormalCalculator func(vertices []float32, faces []int32) []float32

// Assemble copies lattice heights into the vertex buffer, recalculates normals and
// uploads vertices, colors and normals to model. Horizontal coordinates are left as
// the grid built them.
func Assemble(grid *Grid, model *mesh.Model, normals NormalCalculator) {
	resolution := grid.Resolution
	for v, z := 0, 0; z <= resolution; z++ {
		for x := 0; x <= resolution; x, v = x+1, v+1 {
			grid.Vertices[v][1] = grid.Lattice.Height(x, z)
		}
	}

	model.SetVertices(grid.Vertices)
	model.SetColors(grid.Colors)

	flat := normals(model.Vertices, model.Faces)
	for i := range grid.Normals {
		if i*3+2 < len(flat) {
			grid.Normals[i] = mgl32.Vec3{flat[i*3], flat[i*3+1], flat[i*3+2]}
		}
	}
	model.SetNormals(grid.Normals)
}
