package noise

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind selects the coherent noise family a Sampler evaluates.
type Kind int

const (
	// Value noise interpolates hashed lattice values and lies in [0, 1].
	Value Kind = iota
	// Perlin gradient noise lies in [-1, 1].
	Perlin
	// Simplex noise lies in [-1, 1].
	Simplex
)

var kindNames = map[Kind]string{
	Value:   "value",
	Perlin:  "perlin",
	Simplex: "simplex",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Centered reports whether samples of this kind are symmetric around zero.
func (k Kind) Centered() bool {
	return k != Value
}

// ParseKind maps a configuration name to a Kind.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == normalized {
			return kind, nil
		}
	}
	return Value, fmt.Errorf("unknown noise kind %q", name)
}

// Method samples one octave of noise at point scaled by frequency.
type Method func(point mgl32.Vec3, frequency float32) float32

// Sampler is the fractal noise source consumed by the surface coloring pass.
type Sampler interface {
	Sum(kind Kind, dimensions int, point mgl32.Vec3, frequency float32, octaves int, lacunarity, persistence float32) float32
}

// Sum adds octaves of method, each at lacunarity times the previous frequency and
// persistence times the previous amplitude, normalized by the summed amplitudes so the
// result stays in the method's range.
func Sum(method Method, point mgl32.Vec3, frequency float32, octaves int, lacunarity, persistence float32) float32 {
	sum := method(point, frequency)
	amplitude := float32(1)
	amplitudeRange := float32(1)
	for o := 1; o < octaves; o++ {
		frequency *= lacunarity
		amplitude *= persistence
		amplitudeRange += amplitude
		sum += method(point, frequency) * amplitude
	}
	return sum / amplitudeRange
}
