package noise

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePoints() []mgl32.Vec3 {
	var points []mgl32.Vec3
	for i := 0; i < 64; i++ {
		f := float32(i) * 0.173
		points = append(points, mgl32.Vec3{f - 3, f*0.5 + 1.25, -f * 0.75})
	}
	return points
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{Value, Perlin, Simplex} {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	parsed, err := ParseKind("  Perlin ")
	require.NoError(t, err)
	assert.Equal(t, Perlin, parsed)

	_, err = ParseKind("worley")
	assert.Error(t, err)
}

func TestKindCentered(t *testing.T) {
	assert.False(t, Value.Centered())
	assert.True(t, Perlin.Centered())
	assert.True(t, Simplex.Centered())
}

func TestValueNoiseRange(t *testing.T) {
	g := NewGenerator(42)
	for dims := 1; dims <= 3; dims++ {
		method := g.Method(Value, dims)
		for _, p := range samplePoints() {
			v := method(p, 4)
			assert.GreaterOrEqual(t, v, float32(0), "dims=%d point=%v", dims, p)
			assert.LessOrEqual(t, v, float32(1), "dims=%d point=%v", dims, p)
		}
	}
}

func TestCenteredNoiseRange(t *testing.T) {
	g := NewGenerator(7)
	for _, kind := range []Kind{Perlin, Simplex} {
		for dims := 1; dims <= 3; dims++ {
			method := g.Method(kind, dims)
			for _, p := range samplePoints() {
				v := method(p, 3)
				assert.GreaterOrEqual(t, v, float32(-1), "%s dims=%d", kind, dims)
				assert.LessOrEqual(t, v, float32(1), "%s dims=%d", kind, dims)
			}
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(1234)
	b := NewGenerator(1234)
	for _, kind := range []Kind{Value, Perlin, Simplex} {
		for _, p := range samplePoints() {
			assert.Equal(t,
				a.Sum(kind, 3, p, 2, 4, 2, 0.5),
				b.Sum(kind, 3, p, 2, 4, 2, 0.5))
		}
	}
}

func TestValueNoiseAtLatticePoint(t *testing.T) {
	v := NewValueNoise(99)
	// At integer coordinates the interpolation weight is zero
	expected := float64(v.perm[v.perm[3]+5]) / hashMask
	assert.InDelta(t, expected, v.Value2D(3, 5), 1e-12)
}

func TestSumSingleOctaveMatchesMethod(t *testing.T) {
	g := NewGenerator(5)
	method := g.Method(Simplex, 2)
	p := mgl32.Vec3{0.3, -1.7, 2}
	assert.Equal(t, method(p, 1.5), Sum(method, p, 1.5, 1, 2, 0.5))
}

func TestSumNormalizesByAmplitudeRange(t *testing.T) {
	var frequencies []float32
	constant := func(_ mgl32.Vec3, frequency float32) float32 {
		frequencies = append(frequencies, frequency)
		return 1
	}

	got := Sum(constant, mgl32.Vec3{}, 1, 3, 2, 0.5)

	assert.InDelta(t, 1.0, got, 1e-6)
	assert.Equal(t, []float32{1, 2, 4}, frequencies)
}

func TestMethodClampsDimensions(t *testing.T) {
	g := NewGenerator(3)
	p := mgl32.Vec3{0.25, 0.5, 0.75}
	assert.Equal(t, g.Method(Perlin, 1)(p, 1), g.Method(Perlin, 0)(p, 1))
	assert.Equal(t, g.Method(Perlin, 3)(p, 1), g.Method(Perlin, 9)(p, 1))
}
