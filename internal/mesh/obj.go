package mesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ emits the mesh as Wavefront OBJ so generated terrain can be
// opened in standard tooling. Faces reference position, UV and normal
// with the same 1-based index since the buffers are parallel.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "o terrain")

	for i := 0; i+2 < len(m.Positions); i += 3 {
		fmt.Fprintf(bw, "v %g %g %g\n", m.Positions[i], m.Positions[i+1], m.Positions[i+2])
	}
	for i := 0; i+1 < len(m.UVs); i += 2 {
		fmt.Fprintf(bw, "vt %g %g\n", m.UVs[i], m.UVs[i+1])
	}
	for i := 0; i+2 < len(m.Normals); i += 3 {
		fmt.Fprintf(bw, "vn %g %g %g\n", m.Normals[i], m.Normals[i+1], m.Normals[i+2])
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Indices[i] + 1
		b := m.Indices[i+1] + 1
		c := m.Indices[i+2] + 1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}
