package cmd

import (
	"fmt"
	"strings"

	"GopherSurface/internal/surface"

	"github.com/spf13/viper"
)

// settings mirrors the top level of a surface.yaml file.
type settings struct {
	Surface surface.Config `mapstructure:"surface"`
}

// setDefaults registers every surface key so env overrides resolve even when no
// config file mentions them.
func setDefaults(v *viper.Viper) {
	d := surface.DefaultConfig()
	v.SetDefault("surface.resolution", d.Resolution)
	v.SetDefault("surface.offset", []float32{d.Offset[0], d.Offset[1], d.Offset[2]})
	v.SetDefault("surface.rotation", []float32{d.Rotation[0], d.Rotation[1], d.Rotation[2]})
	v.SetDefault("surface.strength", d.Strength)
	v.SetDefault("surface.damping", d.Damping)
	v.SetDefault("surface.frequency", d.Frequency)
	v.SetDefault("surface.octaves", d.Octaves)
	v.SetDefault("surface.lacunarity", d.Lacunarity)
	v.SetDefault("surface.persistence", d.Persistence)
	v.SetDefault("surface.dimensions", d.Dimensions)
	v.SetDefault("surface.noise", d.Noise)
	v.SetDefault("surface.coloring_for_strength", d.ColoringForStrength)
}

func configureViper(v *viper.Viper) {
	setDefaults(v)
	v.SetEnvPrefix("SURFACEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// loadSurfaceConfig decodes and validates the surface section.
func loadSurfaceConfig(v *viper.Viper) (surface.Config, error) {
	s := settings{Surface: surface.DefaultConfig()}
	if err := v.Unmarshal(&s); err != nil {
		return surface.Config{}, fmt.Errorf("failed to decode surface config: %w", err)
	}

	if err := s.Surface.Validate(); err != nil {
		return s.Surface, fmt.Errorf("invalid surface config: %w", err)
	}
	return s.Surface, nil
}
