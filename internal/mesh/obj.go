package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"GopherSurface/internal/logger"

	"go.uber.org/zap"
)

// WriteOBJ writes the model as Wavefront OBJ. Vertex colors use the common
// "v x y z r g b" extension. Indices are shared between v, vt and vn.
func WriteOBJ(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	if model.Name != "" {
		fmt.Fprintf(bw, "o %s\n", model.Name)
	}

	count := model.VertexCount()
	hasColors := len(model.Colors) >= count*4
	for i := 0; i < count; i++ {
		v := model.Vertices[i*3 : i*3+3]
		if hasColors {
			c := model.Colors[i*4 : i*4+3]
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", v[0], v[1], v[2], c[0], c[1], c[2])
		} else {
			fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
		}
	}

	hasUV := len(model.TextureCoords) >= count*2
	if hasUV {
		for i := 0; i < count; i++ {
			fmt.Fprintf(bw, "vt %g %g\n", model.TextureCoords[i*2], model.TextureCoords[i*2+1])
		}
	}

	hasNormals := len(model.Normals) >= count*3
	if hasNormals {
		for i := 0; i < count; i++ {
			n := model.Normals[i*3 : i*3+3]
			fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
		}
	}

	for i := 0; i+2 < len(model.Faces); i += 3 {
		bw.WriteString("f")
		for _, idx := range model.Faces[i : i+3] {
			// .obj indices start at 1
			ref := idx + 1
			switch {
			case hasUV && hasNormals:
				fmt.Fprintf(bw, " %d/%d/%d", ref, ref, ref)
			case hasUV:
				fmt.Fprintf(bw, " %d/%d", ref, ref)
			case hasNormals:
				fmt.Fprintf(bw, " %d//%d", ref, ref)
			default:
				fmt.Fprintf(bw, " %d", ref)
			}
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// LoadOBJ reads the subset of OBJ that WriteOBJ produces: positions with optional
// colors, texture coordinates, normals and faces. Quads and polygons are fan
// triangulated. Texture and normal indices are assumed to match vertex indices.
func LoadOBJ(r io.Reader) (*Model, error) {
	model := &Model{}
	var colors []float32

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "o":
			if len(parts) > 1 {
				model.Name = strings.Join(parts[1:], " ")
			}
		case "v":
			values, err := parseFloats(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(values) < 3 {
				return nil, fmt.Errorf("line %d: vertex needs 3 components, got %d", lineNo, len(values))
			}
			model.Vertices = append(model.Vertices, values[:3]...)
			if len(values) >= 6 {
				colors = append(colors, values[3], values[4], values[5], 1)
			}
		case "vt":
			values, err := parseFloats(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(values) < 2 {
				return nil, fmt.Errorf("line %d: texture coordinate needs 2 components", lineNo)
			}
			model.TextureCoords = append(model.TextureCoords, values[0], values[1])
		case "vn":
			values, err := parseFloats(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(values) < 3 {
				return nil, fmt.Errorf("line %d: normal needs 3 components", lineNo)
			}
			model.Normals = append(model.Normals, values[:3]...)
		case "f":
			face, err := parseFace(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			model.Faces = append(model.Faces, face...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(colors)/4 == model.VertexCount() {
		model.Colors = colors
	}
	model.IsDirty = true
	return model, nil
}

func parseFloats(parts []string) ([]float32, error) {
	values := make([]float32, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid value %v: %w", part, err)
		}
		values = append(values, float32(val))
	}
	return values, nil
}

func parseFace(parts []string) ([]int32, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(parts))
	}

	face := make([]int32, 0, len(parts))
	for _, part := range parts {
		vals := strings.Split(part, "/")
		vertexIdx, err := strconv.ParseInt(vals[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %v: %w", vals[0], err)
		}
		face = append(face, int32(vertexIdx-1))
	}

	if len(face) == 3 {
		return face, nil
	}
	if len(face) > 4 {
		logger.Log.Debug("Face with more than 4 vertices, using fan triangulation", zap.Int("vertexCount", len(face)))
	}
	triangulated := make([]int32, 0, (len(face)-2)*3)
	for i := 1; i < len(face)-1; i++ {
		triangulated = append(triangulated, face[0], face[i], face[i+1])
	}
	return triangulated, nil
}
