package mesh

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	meshMagic   = 0x4D455348 // "MESH"
	meshVersion = 1

	// Upper bound on any single decoded buffer, guards against corrupt length prefixes
	maxSliceLen = 1 << 28
)

var ErrInvalidMesh = errors.New("invalid mesh data")

// SerializedMesh contains all data needed to reconstruct a mesh
type SerializedMesh struct {
	Name          string    `json:"name"`
	Vertices      []float32 `json:"vertices,omitempty"`
	Normals       []float32 `json:"normals,omitempty"`
	Colors        []float32 `json:"colors,omitempty"`
	TextureCoords []float32 `json:"texture_coords,omitempty"`
	Faces         []int32   `json:"faces,omitempty"`
}

// Summary is the JSON description printed by tooling
type Summary struct {
	Name      string     `json:"name"`
	Vertices  int        `json:"vertices"`
	Triangles int        `json:"triangles"`
	HasColors bool       `json:"has_colors"`
	HasUV     bool       `json:"has_uv"`
	BoundsMin [3]float32 `json:"bounds_min"`
	BoundsMax [3]float32 `json:"bounds_max"`
}

func SerializeMesh(model *Model) *SerializedMesh {
	return &SerializedMesh{
		Name:          model.Name,
		Vertices:      model.Vertices,
		Normals:       model.Normals,
		Colors:        model.Colors,
		TextureCoords: model.TextureCoords,
		Faces:         model.Faces,
	}
}

func DeserializeMesh(mesh *SerializedMesh) *Model {
	return &Model{
		Name:          mesh.Name,
		Vertices:      mesh.Vertices,
		Normals:       mesh.Normals,
		Colors:        mesh.Colors,
		TextureCoords: mesh.TextureCoords,
		Faces:         mesh.Faces,
		IsDirty:       true,
	}
}

// EncodeMeshBinary encodes mesh data to compressed binary format
func EncodeMeshBinary(mesh *SerializedMesh) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMeshBinary(&buf, mesh); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteMeshBinary(w io.Writer, mesh *SerializedMesh) error {
	gzWriter := gzip.NewWriter(w)

	header := []uint32{meshMagic, meshVersion}
	if err := binary.Write(gzWriter, binary.LittleEndian, header); err != nil {
		return err
	}

	name := []byte(mesh.Name)
	if err := binary.Write(gzWriter, binary.LittleEndian, int32(len(name))); err != nil {
		return err
	}
	if _, err := gzWriter.Write(name); err != nil {
		return err
	}

	for _, data := range [][]float32{mesh.Vertices, mesh.Normals, mesh.Colors, mesh.TextureCoords} {
		if err := writeFloat32Slice(gzWriter, data); err != nil {
			return err
		}
	}
	if err := writeInt32Slice(gzWriter, mesh.Faces); err != nil {
		return err
	}

	return gzWriter.Close()
}

// DecodeMeshBinary decodes compressed binary mesh data
func DecodeMeshBinary(data []byte) (*SerializedMesh, error) {
	return ReadMeshBinary(bytes.NewReader(data))
}

func ReadMeshBinary(r io.Reader) (*SerializedMesh, error) {
	gzReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	var header [2]uint32
	if err := binary.Read(gzReader, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrInvalidMesh, err)
	}
	if header[0] != meshMagic {
		return nil, fmt.Errorf("%w: bad magic %x", ErrInvalidMesh, header[0])
	}
	if header[1] != meshVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidMesh, header[1])
	}

	var nameLen int32
	if err := binary.Read(gzReader, binary.LittleEndian, &nameLen); err != nil {
		return nil, err
	}
	if nameLen < 0 || nameLen > 1<<16 {
		return nil, fmt.Errorf("%w: name length %d", ErrInvalidMesh, nameLen)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(gzReader, name); err != nil {
		return nil, err
	}

	mesh := &SerializedMesh{Name: string(name)}
	for _, dst := range []*[]float32{&mesh.Vertices, &mesh.Normals, &mesh.Colors, &mesh.TextureCoords} {
		*dst, err = readFloat32Slice(gzReader)
		if err != nil {
			return nil, err
		}
	}
	mesh.Faces, err = readInt32Slice(gzReader)
	if err != nil {
		return nil, err
	}

	return mesh, nil
}

// Summarize describes a model for scene listings and the inspect command
func Summarize(model *Model) Summary {
	min, max := model.Bounds()
	return Summary{
		Name:      model.Name,
		Vertices:  model.VertexCount(),
		Triangles: model.TriangleCount(),
		HasColors: len(model.Colors) > 0,
		HasUV:     len(model.TextureCoords) > 0,
		BoundsMin: [3]float32{min.X(), min.Y(), min.Z()},
		BoundsMax: [3]float32{max.X(), max.Y(), max.Z()},
	}
}

func SerializeSummaryToJSON(model *Model) ([]byte, error) {
	return json.MarshalIndent(Summarize(model), "", "  ")
}

// Helper functions for binary encoding
func writeFloat32Slice(w io.Writer, data []float32) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(data))); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return binary.Write(w, binary.LittleEndian, data)
}

func writeInt32Slice(w io.Writer, data []int32) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(data))); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return binary.Write(w, binary.LittleEndian, data)
}

func readLength(r io.Reader) (int, error) {
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return 0, err
	}
	if count < 0 || count > maxSliceLen {
		return 0, fmt.Errorf("%w: buffer length %d", ErrInvalidMesh, count)
	}
	return int(count), nil
}

func readFloat32Slice(r io.Reader) ([]float32, error) {
	count, err := readLength(r)
	if err != nil || count == 0 {
		return nil, err
	}
	data := make([]float32, count)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, err
	}
	return data, nil
}

func readInt32Slice(r io.Reader) ([]int32, error) {
	count, err := readLength(r)
	if err != nil || count == 0 {
		return nil, err
	}
	data := make([]int32, count)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, err
	}
	return data, nil
}
