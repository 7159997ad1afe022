package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
)

// Generator is the default Sampler. All three noise families share one seed so a
// surface can be reproduced from a single number.
type Generator struct {
	value   *ValueNoise
	perlin  *perlin.Perlin
	simplex opensimplex.Noise
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		value: NewValueNoise(seed),
		// A single octave: Sum does the fractal layering itself
		perlin:  perlin.NewPerlin(2, 2, 1, seed),
		simplex: opensimplex.New(seed),
	}
}

// Method returns the single-octave sampler for a kind and dimension count. Dimensions
// outside 1..3 are clamped and unknown kinds fall back to Perlin.
func (g *Generator) Method(kind Kind, dimensions int) Method {
	if dimensions < 1 {
		dimensions = 1
	}
	if dimensions > 3 {
		dimensions = 3
	}

	switch kind {
	case Value:
		return [3]Method{g.value1D, g.value2D, g.value3D}[dimensions-1]
	case Simplex:
		return [3]Method{g.simplex1D, g.simplex2D, g.simplex3D}[dimensions-1]
	default:
		return [3]Method{g.perlin1D, g.perlin2D, g.perlin3D}[dimensions-1]
	}
}

// Sum implements Sampler.
func (g *Generator) Sum(kind Kind, dimensions int, point mgl32.Vec3, frequency float32, octaves int, lacunarity, persistence float32) float32 {
	return Sum(g.Method(kind, dimensions), point, frequency, octaves, lacunarity, persistence)
}

func scaled(point mgl32.Vec3, frequency float32) (float64, float64, float64) {
	p := point.Mul(frequency)
	return float64(p.X()), float64(p.Y()), float64(p.Z())
}

func (g *Generator) value1D(point mgl32.Vec3, frequency float32) float32 {
	x, _, _ := scaled(point, frequency)
	return float32(g.value.Value1D(x))
}

func (g *Generator) value2D(point mgl32.Vec3, frequency float32) float32 {
	x, y, _ := scaled(point, frequency)
	return float32(g.value.Value2D(x, y))
}

func (g *Generator) value3D(point mgl32.Vec3, frequency float32) float32 {
	x, y, z := scaled(point, frequency)
	return float32(g.value.Value3D(x, y, z))
}

func (g *Generator) perlin1D(point mgl32.Vec3, frequency float32) float32 {
	x, _, _ := scaled(point, frequency)
	return float32(g.perlin.Noise1D(x))
}

func (g *Generator) perlin2D(point mgl32.Vec3, frequency float32) float32 {
	x, y, _ := scaled(point, frequency)
	return float32(g.perlin.Noise2D(x, y))
}

func (g *Generator) perlin3D(point mgl32.Vec3, frequency float32) float32 {
	x, y, z := scaled(point, frequency)
	return float32(g.perlin.Noise3D(x, y, z))
}

// opensimplex has no 1D variant; sample the 2D field along the x axis
func (g *Generator) simplex1D(point mgl32.Vec3, frequency float32) float32 {
	x, _, _ := scaled(point, frequency)
	return float32(g.simplex.Eval2(x, 0))
}

func (g *Generator) simplex2D(point mgl32.Vec3, frequency float32) float32 {
	x, y, _ := scaled(point, frequency)
	return float32(g.simplex.Eval2(x, y))
}

func (g *Generator) simplex3D(point mgl32.Vec3, frequency float32) float32 {
	x, y, z := scaled(point, frequency)
	return float32(g.simplex.Eval3(x, y, z))
}
