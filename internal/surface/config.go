package surface

import (
	"errors"
	"fmt"

	"GopherSurface/internal/gradient"
	"GopherSurface/internal/noise"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinResolution     = 1
	MaxResolution     = 1024
	DefaultResolution = 10
	MaxOctaves        = 8
	MinLacunarity     = 1
	MaxLacunarity     = 4
	MaxDimensions     = 3
	DefaultNoise      = "perlin"
)

var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidFrequency  = errors.New("frequency must be positive")
)

// Config holds the parameters a refresh reads. Offset and Rotation place the noise
// sampling plane; Rotation is in degrees.
type Config struct {
	Resolution          int             `json:"resolution" mapstructure:"resolution"`
	Offset              mgl32.Vec3      `json:"offset" mapstructure:"offset"`
	Rotation            mgl32.Vec3      `json:"rotation" mapstructure:"rotation"`
	Strength            float32         `json:"strength" mapstructure:"strength"`
	Damping             bool            `json:"damping" mapstructure:"damping"`
	Frequency           float32         `json:"frequency" mapstructure:"frequency"`
	Octaves             int             `json:"octaves" mapstructure:"octaves"`
	Lacunarity          float32         `json:"lacunarity" mapstructure:"lacunarity"`
	Persistence         float32         `json:"persistence" mapstructure:"persistence"`
	Dimensions          int             `json:"dimensions" mapstructure:"dimensions"`
	Noise               string          `json:"noise" mapstructure:"noise"`
	ColoringForStrength bool            `json:"coloring_for_strength" mapstructure:"coloring_for_strength"`
	Gradient            gradient.Config `json:"gradient" mapstructure:"gradient"`
}

func DefaultConfig() Config {
	return Config{
		Resolution:  DefaultResolution,
		Strength:    1,
		Frequency:   1,
		Octaves:     1,
		Lacunarity:  2,
		Persistence: 0.5,
		Dimensions:  3,
		Noise:       DefaultNoise,
	}
}

// Clone returns a deep copy, safe to compare against later edits of c.
func (c Config) Clone() Config {
	c.Gradient = c.Gradient.Clone()
	return c
}

// Clamp forces every ranged parameter into its published range, the way an editor
// slider would.
func (c *Config) Clamp() {
	c.Resolution = clampInt(c.Resolution, MinResolution, MaxResolution)
	c.Strength = mgl32.Clamp(c.Strength, 0, 1)
	c.Octaves = clampInt(c.Octaves, 1, MaxOctaves)
	c.Lacunarity = mgl32.Clamp(c.Lacunarity, MinLacunarity, MaxLacunarity)
	c.Persistence = mgl32.Clamp(c.Persistence, 0, 1)
	c.Dimensions = clampInt(c.Dimensions, 1, MaxDimensions)
}

// Validate reports the first parameter outside its range.
func (c Config) Validate() error {
	if c.Resolution < MinResolution || c.Resolution > MaxResolution {
		return fmt.Errorf("%w: got %d, max %d", ErrInvalidResolution, c.Resolution, MaxResolution)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidFrequency, c.Frequency)
	}
	if c.Strength < 0 || c.Strength > 1 {
		return fmt.Errorf("strength %g outside [0, 1]", c.Strength)
	}
	if c.Octaves < 1 || c.Octaves > MaxOctaves {
		return fmt.Errorf("octaves %d outside [1, %d]", c.Octaves, MaxOctaves)
	}
	if c.Lacunarity < MinLacunarity || c.Lacunarity > MaxLacunarity {
		return fmt.Errorf("lacunarity %g outside [%d, %d]", c.Lacunarity, MinLacunarity, MaxLacunarity)
	}
	if c.Persistence < 0 || c.Persistence > 1 {
		return fmt.Errorf("persistence %g outside [0, 1]", c.Persistence)
	}
	if c.Dimensions < 1 || c.Dimensions > MaxDimensions {
		return fmt.Errorf("dimensions %d outside [1, %d]", c.Dimensions, MaxDimensions)
	}
	if _, err := noise.ParseKind(c.Noise); err != nil {
		return err
	}
	return nil
}

// NoiseKind returns the configured noise family, Perlin when the name is unknown.
func (c Config) NoiseKind() noise.Kind {
	kind, err := noise.ParseKind(c.Noise)
	if err != nil {
		return noise.Perlin
	}
	return kind
}

// Amplitude is the scale applied to normalized samples.
func (c Config) Amplitude() float32 {
	if c.Damping {
		return c.Strength / c.Frequency
	}
	return c.Strength
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
