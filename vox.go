package voxmesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const voxMagicNumber = "VOX "

var ErrNotVoxFile = errors.New("not a valid VOX file")

// VoxGridVoxel is one grid cell of a .vox model: integer coordinates plus an
// index into the file's palette.
type VoxGridVoxel struct {
	X, Y, Z    uint32
	ColorIndex byte
}

// VoxGridModel is one SIZE/XYZI model pair from a .vox file.
type VoxGridModel struct {
	SizeX, SizeY, SizeZ uint32
	Voxels              []VoxGridVoxel
}

// VoxPalette holds 256 RGBA colours; index 0 is unused by convention.
type VoxPalette [256][4]byte

type VoxMaterial struct {
	ID       int
	Type     int
	Weight   float32
	Property map[string]string
}

// VoxFile is a parsed MagicaVoxel document.
type VoxFile struct {
	Version   int
	Models    []VoxGridModel
	Palette   VoxPalette
	Materials []VoxMaterial
}

// LoadVoxFile parses a MagicaVoxel .vox file from disk.
func LoadVoxFile(filename string) (*VoxFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadVox(file)
}

// ReadVox parses a MagicaVoxel document from r. Unknown chunks are skipped;
// a missing RGBA chunk leaves the default palette in place.
func ReadVox(r io.Reader) (*VoxFile, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != voxMagicNumber {
		return nil, ErrNotVoxFile
	}

	var version int32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}

	vf := &VoxFile{
		Version: int(version),
		Palette: defaultVoxPalette(),
	}

	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(r, chunkID[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		var chunkSize, childrenSize int32
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &childrenSize); err != nil {
			return nil, err
		}
		if chunkSize < 0 {
			return nil, fmt.Errorf("%s chunk has negative size %d", chunkID[:], chunkSize)
		}

		data := make([]byte, chunkSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}

		switch string(chunkID[:]) {
		case "MAIN":
			// Container for every other chunk.
			continue
		case "SIZE":
			if len(data) < 12 {
				return nil, errors.New("SIZE chunk too small")
			}
			if n := len(vf.Models); n == 0 || len(vf.Models[n-1].Voxels) > 0 {
				vf.Models = append(vf.Models, VoxGridModel{})
			}
			model := &vf.Models[len(vf.Models)-1]
			model.SizeX = binary.LittleEndian.Uint32(data[0:4])
			model.SizeY = binary.LittleEndian.Uint32(data[4:8])
			model.SizeZ = binary.LittleEndian.Uint32(data[8:12])
		case "XYZI":
			if len(vf.Models) == 0 {
				return nil, errors.New("XYZI chunk before any SIZE chunk")
			}
			if len(data) < 4 {
				return nil, errors.New("XYZI chunk too small")
			}
			model := &vf.Models[len(vf.Models)-1]
			numVoxels := int(binary.LittleEndian.Uint32(data[:4]))
			if 4+numVoxels*4 > len(data) {
				return nil, errors.New("XYZI chunk data overflow")
			}
			model.Voxels = make([]VoxGridVoxel, numVoxels)
			for i := 0; i < numVoxels; i++ {
				offset := 4 + i*4
				model.Voxels[i] = VoxGridVoxel{
					X:          uint32(data[offset]),
					Y:          uint32(data[offset+1]),
					Z:          uint32(data[offset+2]),
					ColorIndex: data[offset+3],
				}
			}
		case "RGBA":
			// Palette slot i+1 takes file colour i; slot 0 stays free.
			for i := 0; i < 255; i++ {
				offset := i * 4
				if offset+3 >= len(data) {
					break
				}
				copy(vf.Palette[i+1][:], data[offset:offset+4])
			}
		case "MATL":
			mat, err := parseVoxMaterial(data)
			if err != nil {
				return nil, fmt.Errorf("parsing MATL chunk: %w", err)
			}
			vf.Materials = append(vf.Materials, mat)
		}
	}

	return vf, nil
}

func parseVoxMaterial(data []byte) (VoxMaterial, error) {
	mat := VoxMaterial{Property: make(map[string]string)}

	if len(data) < 8 {
		return mat, errors.New("material chunk too small")
	}
	mat.ID = int(binary.LittleEndian.Uint32(data[:4]))
	mat.Type = int(binary.LittleEndian.Uint32(data[4:8]))
	data = data[8:]

	readString := func() (string, error) {
		if len(data) < 4 {
			return "", errors.New("truncated material dictionary")
		}
		n := int(binary.LittleEndian.Uint32(data[:4]))
		data = data[4:]
		if n > len(data) {
			return "", errors.New("truncated material dictionary")
		}
		s := string(data[:n])
		data = data[n:]
		return s, nil
	}

	for len(data) > 0 {
		key, err := readString()
		if err != nil {
			return mat, err
		}
		value, err := readString()
		if err != nil {
			return mat, err
		}

		switch key {
		case "_weight":
			var weight float32
			if _, err := fmt.Sscanf(value, "%f", &weight); err != nil {
				return mat, fmt.Errorf("parsing material weight %q: %w", value, err)
			}
			mat.Weight = weight
		default:
			mat.Property[key] = value
		}
	}

	return mat, nil
}

func defaultVoxPalette() VoxPalette {
	var palette VoxPalette
	for i := range palette {
		palette[i] = [4]byte{255, 255, 255, 255} // white fallback
	}
	return palette
}
