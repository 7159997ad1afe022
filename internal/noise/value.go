package noise

import (
	"math"
	"math/rand"
)

const hashMask = 255

// ValueNoise interpolates pseudo-random values attached to integer lattice points
type ValueNoise struct {
	perm [512]int // Permutation table (doubled for wrapping)
}

// NewValueNoise creates a value noise generator with a seeded permutation table
func NewValueNoise(seed int64) *ValueNoise {
	noise := &ValueNoise{}
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 256; i++ {
		noise.perm[i] = i
	}

	// Fisher-Yates shuffle
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		noise.perm[i], noise.perm[j] = noise.perm[j], noise.perm[i]
	}

	for i := 0; i < 256; i++ {
		noise.perm[256+i] = noise.perm[i]
	}

	return noise
}

// smooth is the quintic 6t^5 - 15t^4 + 10t^3 curve
func smooth(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func (noise *ValueNoise) value(hash int) float64 {
	return float64(hash) / hashMask
}

func cell(v float64) (int, float64) {
	floor := math.Floor(v)
	return int(floor) & hashMask, v - floor
}

// Value1D samples value noise along a line
func (noise *ValueNoise) Value1D(x float64) float64 {
	i0, t := cell(x)
	h0 := noise.perm[i0]
	h1 := noise.perm[i0+1]
	return lerp(smooth(t), noise.value(h0), noise.value(h1))
}

// Value2D samples value noise on a plane
func (noise *ValueNoise) Value2D(x, y float64) float64 {
	ix, tx := cell(x)
	iy, ty := cell(y)

	h0 := noise.perm[ix]
	h1 := noise.perm[ix+1]
	h00 := noise.perm[h0+iy]
	h10 := noise.perm[h1+iy]
	h01 := noise.perm[h0+iy+1]
	h11 := noise.perm[h1+iy+1]

	u := smooth(tx)
	return lerp(smooth(ty),
		lerp(u, noise.value(h00), noise.value(h10)),
		lerp(u, noise.value(h01), noise.value(h11)))
}

// Value3D samples value noise in space
func (noise *ValueNoise) Value3D(x, y, z float64) float64 {
	ix, tx := cell(x)
	iy, ty := cell(y)
	iz, tz := cell(z)

	h0 := noise.perm[ix]
	h1 := noise.perm[ix+1]
	h00 := noise.perm[h0+iy]
	h10 := noise.perm[h1+iy]
	h01 := noise.perm[h0+iy+1]
	h11 := noise.perm[h1+iy+1]

	u := smooth(tx)
	v := smooth(ty)
	return lerp(smooth(tz),
		lerp(v,
			lerp(u, noise.value(noise.perm[h00+iz]), noise.value(noise.perm[h10+iz])),
			lerp(u, noise.value(noise.perm[h01+iz]), noise.value(noise.perm[h11+iz]))),
		lerp(v,
			lerp(u, noise.value(noise.perm[h00+iz+1]), noise.value(noise.perm[h10+iz+1])),
			lerp(u, noise.value(noise.perm[h01+iz+1]), noise.value(noise.perm[h11+iz+1]))))
}
