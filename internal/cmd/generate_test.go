package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"GopherSurface/internal/behaviour"
	"GopherSurface/internal/gradient"
	"GopherSurface/internal/mesh"
	"GopherSurface/internal/surface"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
surface:
  resolution: 6
  offset: [1, 2.5, 0]
  rotation: [0, 90, 0]
  strength: 0.5
  damping: true
  frequency: 2
  octaves: 3
  noise: simplex
  dimensions: 2
  gradient:
    mode: fixed
    color_keys:
      - time: 0
        color: "#000000"
      - time: 1
        color: "#ff8000"
`

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	configureViper(v)
	if yaml != "" {
		path := filepath.Join(t.TempDir(), "surface.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
		v.SetConfigFile(path)
		require.NoError(t, v.ReadInConfig())
	}
	return v
}

func TestLoadSurfaceConfigDefaults(t *testing.T) {
	config, err := loadSurfaceConfig(newTestViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, surface.DefaultConfig(), config)
}

func TestLoadSurfaceConfigFile(t *testing.T) {
	config, err := loadSurfaceConfig(newTestViper(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 6, config.Resolution)
	assert.Equal(t, mgl32.Vec3{1, 2.5, 0}, config.Offset)
	assert.Equal(t, mgl32.Vec3{0, 90, 0}, config.Rotation)
	assert.Equal(t, float32(0.5), config.Strength)
	assert.True(t, config.Damping)
	assert.Equal(t, float32(2), config.Frequency)
	assert.Equal(t, 3, config.Octaves)
	assert.Equal(t, float32(2), config.Lacunarity)
	assert.Equal(t, "simplex", config.Noise)
	assert.Equal(t, 2, config.Dimensions)
	assert.Equal(t, "fixed", config.Gradient.Mode)
	require.Len(t, config.Gradient.ColorKeys, 2)
	assert.Equal(t, "#ff8000", config.Gradient.ColorKeys[1].Color)
}

func TestLoadSurfaceConfigEnv(t *testing.T) {
	t.Setenv("SURFACEGEN_SURFACE_RESOLUTION", "7")
	t.Setenv("SURFACEGEN_SURFACE_NOISE", "value")

	config, err := loadSurfaceConfig(newTestViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 7, config.Resolution)
	assert.Equal(t, "value", config.Noise)
}

func TestLoadSurfaceConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"zero resolution", "surface:\n  resolution: 0\n", surface.ErrInvalidResolution},
		{"too large", "surface:\n  resolution: 5000\n", surface.ErrInvalidResolution},
		{"zero frequency", "surface:\n  frequency: 0\n", surface.ErrInvalidFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSurfaceConfig(newTestViper(t, tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := loadSurfaceConfig(newTestViper(t, "surface:\n  noise: fractal\n"))
	assert.Error(t, err)
}

func testOptions(t *testing.T) generateOptions {
	return generateOptions{
		OutDir:      t.TempDir(),
		Name:        "terrain",
		Seed:        42,
		Preview:     true,
		PreviewSize: 32,
	}
}

func TestGenerateSurfaceWritesFiles(t *testing.T) {
	config := surface.DefaultConfig()
	config.Resolution = 4
	opts := testOptions(t)

	result, err := generateSurface(config, opts)
	require.NoError(t, err)

	assert.Equal(t, 25, result.Summary.Vertices)
	assert.Equal(t, 32, result.Summary.Triangles)
	require.Len(t, result.Files, 5)
	for _, name := range []string{"terrain.obj", "terrain.mesh", "terrain.json", "color.png", "height.png"} {
		assert.FileExists(t, filepath.Join(opts.OutDir, name))
	}

	data, err := os.ReadFile(filepath.Join(opts.OutDir, "terrain.json"))
	require.NoError(t, err)
	var summary mesh.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, "terrain", summary.Name)
	assert.True(t, summary.HasColors)

	for _, name := range []string{"terrain.mesh", "terrain.obj"} {
		model, err := loadMeshFile(filepath.Join(opts.OutDir, name))
		require.NoError(t, err, name)
		assert.Equal(t, 25, model.VertexCount(), name)
		assert.Equal(t, 32, model.TriangleCount(), name)
	}
}

func TestGenerateSurfaceNoPreview(t *testing.T) {
	config := surface.DefaultConfig()
	config.Resolution = 2
	opts := testOptions(t)
	opts.Preview = false

	result, err := generateSurface(config, opts)
	require.NoError(t, err)
	assert.Len(t, result.Files, 3)
	assert.NoFileExists(t, filepath.Join(opts.OutDir, "color.png"))
}

func TestGenerateSurfaceDeterministic(t *testing.T) {
	config := surface.DefaultConfig()
	config.Resolution = 8

	first := testOptions(t)
	second := testOptions(t)
	_, err := generateSurface(config, first)
	require.NoError(t, err)
	_, err = generateSurface(config, second)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(first.OutDir, "terrain.mesh"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second.OutDir, "terrain.mesh"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateSurfaceErrors(t *testing.T) {
	config := surface.DefaultConfig()
	config.Resolution = 0
	_, err := generateSurface(config, testOptions(t))
	assert.ErrorIs(t, err, surface.ErrInvalidResolution)

	config = surface.DefaultConfig()
	config.Gradient.Mode = "stepped"
	_, err = generateSurface(config, testOptions(t))
	assert.Error(t, err)
}

func TestGenerateSurfaceAppliesGradient(t *testing.T) {
	config := surface.DefaultConfig()
	config.Resolution = 2
	config.Gradient = gradient.Config{
		Mode:      "fixed",
		ColorKeys: []gradient.ColorKeyConfig{{Time: 0, Color: "#ff0000"}},
	}
	opts := testOptions(t)
	opts.Preview = false

	_, err := generateSurface(config, opts)
	require.NoError(t, err)

	model, err := loadMeshFile(filepath.Join(opts.OutDir, "terrain.mesh"))
	require.NoError(t, err)
	require.Len(t, model.Colors, 9*4)
	for i := 0; i < len(model.Colors); i += 4 {
		assert.Equal(t, []float32{1, 0, 0, 1}, model.Colors[i:i+4], "vertex %d", i/4)
	}
}

func TestSceneSurfaceLookup(t *testing.T) {
	config := surface.DefaultConfig()
	config.Resolution = 1
	opts := testOptions(t)

	manager := newScene(config, opts)
	defer manager.Clear()

	component, err := sceneSurface(manager, opts.Name)
	require.NoError(t, err)
	assert.Equal(t, 4, component.Mesh().VertexCount())

	_, err = sceneSurface(manager, "missing")
	assert.Error(t, err)

	manager.RegisterGameObject(behaviour.NewGameObject("empty"))
	_, err = sceneSurface(manager, "empty")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	config := surface.DefaultConfig()
	config.Resolution = 3
	opts := testOptions(t)
	opts.Preview = false
	_, err := generateSurface(config, opts)
	require.NoError(t, err)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"inspect", filepath.Join(opts.OutDir, "terrain.mesh")})
	require.NoError(t, rootCmd.Execute())

	var summary mesh.Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, 16, summary.Vertices)
	assert.Equal(t, 18, summary.Triangles)
}

func TestLoadMeshFileMissing(t *testing.T) {
	_, err := loadMeshFile(filepath.Join(t.TempDir(), "nope.mesh"))
	assert.Error(t, err)
}
