package mesh

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

const (
	meshMagic   = uint32(0x564D5348) // "VMSH"
	meshVersion = uint32(1)
)

// Encode writes the mesh as gzip-compressed little-endian binary:
// magic, version, then the four buffers as length-prefixed slices.
func Encode(w io.Writer, m *Mesh) error {
	gz := gzip.NewWriter(w)

	if err := binary.Write(gz, binary.LittleEndian, meshMagic); err != nil {
		return err
	}
	if err := binary.Write(gz, binary.LittleEndian, meshVersion); err != nil {
		return err
	}

	if err := writeFloat32Slice(gz, m.Positions); err != nil {
		return err
	}
	if err := writeFloat32Slice(gz, m.Normals); err != nil {
		return err
	}
	if err := writeFloat32Slice(gz, m.UVs); err != nil {
		return err
	}
	if err := writeInt32Slice(gz, m.Indices); err != nil {
		return err
	}

	return gz.Close()
}

// Decode reads a mesh written by Encode, validating magic and version.
func Decode(r io.Reader) (*Mesh, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh stream: %w", err)
	}
	defer gz.Close()

	var magic, version uint32
	if err := binary.Read(gz, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("could not read mesh header: %w", err)
	}
	if magic != meshMagic {
		return nil, fmt.Errorf("not a mesh stream: magic 0x%08X", magic)
	}
	if err := binary.Read(gz, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("could not read mesh version: %w", err)
	}
	if version != meshVersion {
		return nil, fmt.Errorf("unsupported mesh version %d", version)
	}

	m := &Mesh{}
	if m.Positions, err = readFloat32Slice(gz); err != nil {
		return nil, err
	}
	if m.Normals, err = readFloat32Slice(gz); err != nil {
		return nil, err
	}
	if m.UVs, err = readFloat32Slice(gz); err != nil {
		return nil, err
	}
	if m.Indices, err = readInt32Slice(gz); err != nil {
		return nil, err
	}

	return m, nil
}

func writeFloat32Slice(w io.Writer, data []float32) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(data))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, data)
}

func writeInt32Slice(w io.Writer, data []int32) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(data))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, data)
}

// Slices are read in bounded chunks so a corrupt length prefix cannot
// force a huge allocation before the stream runs dry.
const readChunk = 1 << 16

func readFloat32Slice(r io.Reader) ([]float32, error) {
	n, err := readSliceLen(r)
	if err != nil {
		return nil, err
	}

	data := make([]float32, 0, min(n, readChunk))
	for remaining := n; remaining > 0; {
		c := min(remaining, readChunk)
		buf := make([]float32, c)
		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, err
		}
		data = append(data, buf...)
		remaining -= c
	}
	return data, nil
}

func readInt32Slice(r io.Reader) ([]int32, error) {
	n, err := readSliceLen(r)
	if err != nil {
		return nil, err
	}

	data := make([]int32, 0, min(n, readChunk))
	for remaining := n; remaining > 0; {
		c := min(remaining, readChunk)
		buf := make([]int32, c)
		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, err
		}
		data = append(data, buf...)
		remaining -= c
	}
	return data, nil
}

func readSliceLen(r io.Reader) (int, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid slice length %d", n)
	}
	return int(n), nil
}
