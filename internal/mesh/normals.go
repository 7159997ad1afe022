package mesh

import (
	"GopherSurface/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// RecalculateNormals averages the face normals around every vertex. Vertices that
// touch no valid triangle get an up vector.
func RecalculateNormals(vertices []float32, faces []int32) []float32 {
	if len(vertices) == 0 {
		return nil
	}

	normals := make([]float32, len(vertices))
	vertexCount := int32(len(vertices) / 3)

	skipped := 0
	for i := 0; i+2 < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= vertexCount || i1 >= vertexCount || i2 >= vertexCount {
			skipped++
			continue
		}

		v0 := mgl32.Vec3{vertices[i0*3], vertices[i0*3+1], vertices[i0*3+2]}
		v1 := mgl32.Vec3{vertices[i1*3], vertices[i1*3+1], vertices[i1*3+2]}
		v2 := mgl32.Vec3{vertices[i2*3], vertices[i2*3+1], vertices[i2*3+2]}

		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		if normal.Len() == 0 {
			// Degenerate triangle
			continue
		}
		normal = normal.Normalize()

		for _, idx := range [3]int32{i0, i1, i2} {
			normals[idx*3] += normal[0]
			normals[idx*3+1] += normal[1]
			normals[idx*3+2] += normal[2]
		}
	}

	if skipped > 0 {
		logger.Log.Debug("Skipped triangles with out of range indices",
			zap.Int("skipped", skipped),
			zap.Int32("vertices", vertexCount))
	}

	for i := 0; i+2 < len(normals); i += 3 {
		normal := mgl32.Vec3{normals[i], normals[i+1], normals[i+2]}
		if normal.Len() == 0 {
			normals[i], normals[i+1], normals[i+2] = 0, 1, 0
			continue
		}
		normal = normal.Normalize()
		normals[i], normals[i+1], normals[i+2] = normal[0], normal[1], normal[2]
	}

	return normals
}
