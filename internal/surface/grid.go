package surface

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Lattice is the (resolution+1)² grid of points the displacement engine works on,
// stored row-major with z as the outer axis. Only heights change after creation.
type Lattice struct {
	resolution int
	points     []mgl32.Vec3
}

func newLattice(resolution int) *Lattice {
	side := resolution + 1
	l := &Lattice{
		resolution: resolution,
		points:     make([]mgl32.Vec3, side*side),
	}
	stepSize := 1 / float32(resolution)
	for v, z := 0, 0; z <= resolution; z++ {
		for x := 0; x <= resolution; x, v = x+1, v+1 {
			l.points[v] = mgl32.Vec3{float32(x)*stepSize - 0.5, 0, float32(z)*stepSize - 0.5}
		}
	}
	return l
}

func (l *Lattice) Resolution() int {
	return l.resolution
}

// Len is the number of lattice points.
func (l *Lattice) Len() int {
	return len(l.points)
}

// Contains reports whether (x, z) addresses a lattice point.
func (l *Lattice) Contains(x, z int) bool {
	return x >= 0 && z >= 0 && x <= l.resolution && z <= l.resolution
}

// IsCorner reports whether (x, z) is one of the four seeded corners.
func (l *Lattice) IsCorner(x, z int) bool {
	return (x == 0 || x == l.resolution) && (z == 0 || z == l.resolution)
}

// Index maps (x, z) to the flat buffer position. Coordinates below zero clamp to zero
// and coordinates past the edge clamp to the last row or column.
func (l *Lattice) Index(x, z int) int {
	x = clampInt(x, 0, l.resolution)
	z = clampInt(z, 0, l.resolution)
	return z*(l.resolution+1) + x
}

// Point returns the lattice point at the clamped coordinate.
func (l *Lattice) Point(x, z int) mgl32.Vec3 {
	return l.points[l.Index(x, z)]
}

// Height returns the height at the clamped coordinate.
func (l *Lattice) Height(x, z int) float32 {
	return l.points[l.Index(x, z)].Y()
}

// SetHeight writes a height. Coordinates outside the lattice are ignored and the
// call reports false.
func (l *Lattice) SetHeight(x, z int, height float32) bool {
	if !l.Contains(x, z) {
		return false
	}
	l.points[z*(l.resolution+1)+x][1] = height
	return true
}

// ResetHeights flattens the lattice back onto the unit square.
func (l *Lattice) ResetHeights() {
	for i := range l.points {
		l.points[i][1] = 0
	}
}

// Grid is everything allocated for one resolution: the lattice, the flat per-vertex
// buffers index-aligned with it and the triangle list.
type Grid struct {
	Resolution int
	Lattice    *Lattice
	Vertices   []mgl32.Vec3
	Colors     []mgl32.Vec4
	Normals    []mgl32.Vec3
	UV         []mgl32.Vec2
	Triangles  []int32
}

// NewGrid allocates a fresh grid for resolution. Nothing is shared with grids of
// other resolutions.
func NewGrid(resolution int) (*Grid, error) {
	if resolution < MinResolution {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidResolution, resolution)
	}

	lattice := newLattice(resolution)
	count := lattice.Len()
	grid := &Grid{
		Resolution: resolution,
		Lattice:    lattice,
		Vertices:   make([]mgl32.Vec3, count),
		Colors:     make([]mgl32.Vec4, count),
		Normals:    make([]mgl32.Vec3, count),
		UV:         make([]mgl32.Vec2, count),
		Triangles:  Triangles(resolution),
	}

	stepSize := 1 / float32(resolution)
	for v, z := 0, 0; z <= resolution; z++ {
		for x := 0; x <= resolution; x, v = x+1, v+1 {
			grid.Vertices[v] = lattice.points[v]
			grid.Colors[v] = mgl32.Vec4{0, 0, 0, 1}
			grid.Normals[v] = mgl32.Vec3{0, 1, 0}
			grid.UV[v] = mgl32.Vec2{float32(x) * stepSize, float32(z) * stepSize}
		}
	}

	return grid, nil
}

// Triangles builds the index buffer for a regular grid: two triangles per cell,
// v, v+R+1, v+1 and v+1, v+R+1, v+R+2.
func Triangles(resolution int) []int32 {
	triangles := make([]int32, resolution*resolution*6)
	r := int32(resolution)
	// v skips the last vertex of every row
	for t, v, y := 0, int32(0), 0; y < resolution; y, v = y+1, v+1 {
		for x := 0; x < resolution; x, v, t = x+1, v+1, t+6 {
			triangles[t] = v
			triangles[t+1] = v + r + 1
			triangles[t+2] = v + 1
			triangles[t+3] = v + 1
			triangles[t+4] = v + r + 1
			triangles[t+5] = v + r + 2
		}
	}
	return triangles
}
