package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Model holds the CPU-side buffers a renderer needs to draw a mesh.
type Model struct {
	Name          string    // Model name
	Vertices      []float32 // Vertex positions, 3 per vertex
	Normals       []float32 // Normal vectors, 3 per vertex
	Colors        []float32 // Vertex colors, RGBA
	TextureCoords []float32 // UVs, 2 per vertex
	Faces         []int32   // Triangle list
	IsDirty       bool      // Buffers changed since the last upload
}

func NewModel(name string) *Model {
	return &Model{Name: name}
}

// Clear drops every buffer, used when the topology changes
func (m *Model) Clear() {
	m.Vertices = nil
	m.Normals = nil
	m.Colors = nil
	m.TextureCoords = nil
	m.Faces = nil
	m.IsDirty = true
}

func (m *Model) VertexCount() int {
	return len(m.Vertices) / 3
}

func (m *Model) TriangleCount() int {
	return len(m.Faces) / 3
}

func (m *Model) SetVertices(vertices []mgl32.Vec3) {
	m.Vertices = flattenVec3(m.Vertices, vertices)
	m.IsDirty = true
}

func (m *Model) SetNormals(normals []mgl32.Vec3) {
	m.Normals = flattenVec3(m.Normals, normals)
	m.IsDirty = true
}

func (m *Model) SetColors(colors []mgl32.Vec4) {
	flat := m.Colors[:0]
	if cap(flat) < len(colors)*4 {
		flat = make([]float32, 0, len(colors)*4)
	}
	for _, c := range colors {
		flat = append(flat, c.X(), c.Y(), c.Z(), c.W())
	}
	m.Colors = flat
	m.IsDirty = true
}

func (m *Model) SetTextureCoords(uv []mgl32.Vec2) {
	flat := make([]float32, 0, len(uv)*2)
	for _, c := range uv {
		flat = append(flat, c.X(), c.Y())
	}
	m.TextureCoords = flat
	m.IsDirty = true
}

func (m *Model) SetTriangles(faces []int32) {
	m.Faces = append(m.Faces[:0], faces...)
	m.IsDirty = true
}

// Vertex returns the i-th vertex position
func (m *Model) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// InterleavedData packs position (3), texture coordinates (2) and normal (3) per vertex.
// Missing UVs or normals are filled with zeros and up vectors.
func (m *Model) InterleavedData() []float32 {
	count := m.VertexCount()
	data := make([]float32, 0, count*8)
	for i := 0; i < count; i++ {
		data = append(data, m.Vertices[i*3:i*3+3]...)
		if len(m.TextureCoords) >= i*2+2 {
			data = append(data, m.TextureCoords[i*2:i*2+2]...)
		} else {
			data = append(data, 0, 0)
		}
		if len(m.Normals) >= i*3+3 {
			data = append(data, m.Normals[i*3:i*3+3]...)
		} else {
			data = append(data, 0, 1, 0)
		}
	}
	return data
}

// Bounds returns the axis-aligned box around all vertices
func (m *Model) Bounds() (min, max mgl32.Vec3) {
	count := m.VertexCount()
	if count == 0 {
		return
	}
	min = m.Vertex(0)
	max = min
	for i := 1; i < count; i++ {
		v := m.Vertex(i)
		for axis := 0; axis < 3; axis++ {
			if v[axis] < min[axis] {
				min[axis] = v[axis]
			}
			if v[axis] > max[axis] {
				max[axis] = v[axis]
			}
		}
	}
	return
}

// Helper to flatten Vec3 array, reusing dst when it is large enough
func flattenVec3(dst []float32, vertices []mgl32.Vec3) []float32 {
	flat := dst[:0]
	if cap(flat) < len(vertices)*3 {
		flat = make([]float32, 0, len(vertices)*3)
	}
	for _, v := range vertices {
		flat = append(flat, v.X(), v.Y(), v.Z())
	}
	return flat
}
