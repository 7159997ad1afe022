package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"GopherSurface/internal/mesh"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print a JSON summary of a mesh file",
	Long:  `Inspect reads a .mesh or .obj file and prints its vertex count, triangle count and bounds as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	model, err := loadMeshFile(args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(mesh.Summarize(model), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// loadMeshFile picks the decoder by extension; anything but .obj is read as binary mesh.
func loadMeshFile(path string) (*mesh.Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".obj") {
		model, err := mesh.LoadOBJ(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return model, nil
	}

	serialized, err := mesh.ReadMeshBinary(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return mesh.DeserializeMesh(serialized), nil
}
