package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"GopherSurface/internal/behaviour"
	"GopherSurface/internal/logger"
	"GopherSurface/internal/mesh"
	"GopherSurface/internal/noise"
	"GopherSurface/internal/preview"
	"GopherSurface/internal/surface"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a surface mesh",
	Long:  `Generate a displaced, noise-colored surface and write it as OBJ, binary mesh, JSON summary and PNG previews.`,
	RunE:  runGenerate,
}

type generateOptions struct {
	OutDir      string
	Name        string
	Seed        int64
	Preview     bool
	PreviewSize int
}

type generateResult struct {
	Files   []string
	Summary mesh.Summary
}

func init() {
	rootCmd.AddCommand(generateCmd)

	d := surface.DefaultConfig()

	generateCmd.Flags().StringP("out", "o", "out", "Output directory")
	generateCmd.Flags().String("name", "surface", "Mesh name and output file base name")
	generateCmd.Flags().Int64("seed", 1337, "Deterministic seed for noise and displacement")
	generateCmd.Flags().Bool("preview", true, "Write color.png and height.png previews")
	generateCmd.Flags().Int("preview-size", 256, "Preview size in pixels (square)")

	// Surface overrides
	generateCmd.Flags().IntP("resolution", "r", d.Resolution, "Grid resolution (cells per side)")
	generateCmd.Flags().String("noise", d.Noise, "Noise kind (value, perlin, simplex)")
	generateCmd.Flags().Float32("frequency", d.Frequency, "Noise frequency")
	generateCmd.Flags().Float32("strength", d.Strength, "Noise strength (0..1)")
	generateCmd.Flags().Int("octaves", d.Octaves, "Noise octaves")
	generateCmd.Flags().Bool("damping", d.Damping, "Divide strength by frequency")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"generate.out", "out"},
		{"generate.name", "name"},
		{"generate.seed", "seed"},
		{"generate.preview", "preview"},
		{"generate.preview_size", "preview-size"},
		{"surface.resolution", "resolution"},
		{"surface.noise", "noise"},
		{"surface.frequency", "frequency"},
		{"surface.strength", "strength"},
		{"surface.octaves", "octaves"},
		{"surface.damping", "damping"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, generateCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := generateOptions{
		OutDir:      viper.GetString("generate.out"),
		Name:        viper.GetString("generate.name"),
		Seed:        viper.GetInt64("generate.seed"),
		Preview:     viper.GetBool("generate.preview"),
		PreviewSize: viper.GetInt("generate.preview_size"),
	}
	if opts.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if opts.Preview && opts.PreviewSize <= 0 {
		return fmt.Errorf("preview-size must be positive")
	}

	config, err := loadSurfaceConfig(viper.GetViper())
	if err != nil {
		return err
	}

	result, err := generateSurface(config, opts)
	if err != nil {
		return err
	}

	for _, path := range result.Files {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// generateSurface refreshes a surface once through the component lifecycle and writes
// every output file.
func generateSurface(config surface.Config, opts generateOptions) (*generateResult, error) {
	manager := newScene(config, opts)
	defer manager.Clear()

	component, err := sceneSurface(manager, opts.Name)
	if err != nil {
		return nil, err
	}
	if err := component.LastError(); err != nil {
		return nil, fmt.Errorf("failed to generate surface: %w", err)
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	model := component.Mesh()
	result := &generateResult{Summary: mesh.Summarize(model)}
	base := filepath.Join(opts.OutDir, opts.Name)

	outputs := []struct {
		path  string
		write func(io.Writer) error
	}{
		{base + ".obj", func(w io.Writer) error { return mesh.WriteOBJ(w, model) }},
		{base + ".mesh", func(w io.Writer) error { return mesh.WriteMeshBinary(w, mesh.SerializeMesh(model)) }},
		{base + ".json", func(w io.Writer) error {
			data, err := mesh.SerializeSummaryToJSON(model)
			if err != nil {
				return err
			}
			_, err = w.Write(append(data, '\n'))
			return err
		}},
	}
	for _, out := range outputs {
		if err := writeFile(out.path, out.write); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, out.path)
	}

	if opts.Preview {
		files, err := writePreviews(component.Creator().Grid(), opts)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, files...)
	}

	logger.Log.Info("Surface generated",
		zap.String("name", opts.Name),
		zap.Int("resolution", config.Resolution),
		zap.Int("vertices", result.Summary.Vertices),
		zap.Int("triangles", result.Summary.Triangles),
		zap.String("out", opts.OutDir))
	return result, nil
}

// newScene registers one object named after the mesh carrying the surface component.
// Adding the component enables it, which runs the first refresh.
func newScene(config surface.Config, opts generateOptions) *behaviour.ComponentManager {
	component := behaviour.NewSurfaceComponent(config,
		surface.WithSampler(noise.NewGenerator(opts.Seed)),
		surface.WithRandom(rand.New(rand.NewSource(opts.Seed))),
		surface.WithModel(mesh.NewModel(opts.Name)),
	)

	obj := behaviour.NewGameObject(opts.Name)
	obj.AddComponent(component)

	manager := behaviour.NewComponentManager()
	manager.RegisterGameObject(obj)
	return manager
}

func sceneSurface(manager *behaviour.ComponentManager, name string) (*behaviour.SurfaceComponent, error) {
	obj := manager.FindGameObject(name)
	if obj == nil {
		return nil, fmt.Errorf("no object named %q in scene", name)
	}
	component, ok := obj.Component("SurfaceComponent").(*behaviour.SurfaceComponent)
	if !ok {
		return nil, fmt.Errorf("object %q has no surface component", name)
	}
	return component, nil
}

func writePreviews(grid *surface.Grid, opts generateOptions) ([]string, error) {
	colorImg, err := preview.ColorImage(grid)
	if err != nil {
		return nil, err
	}
	heightImg, err := preview.HeightImage(grid)
	if err != nil {
		return nil, err
	}

	colorPath := filepath.Join(opts.OutDir, "color.png")
	if err := preview.WritePNG(colorPath, preview.Upscale(colorImg, opts.PreviewSize)); err != nil {
		return nil, err
	}
	heightPath := filepath.Join(opts.OutDir, "height.png")
	if err := preview.WritePNG(heightPath, preview.Upscale(heightImg, opts.PreviewSize)); err != nil {
		return nil, err
	}
	return []string{colorPath, heightPath}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
