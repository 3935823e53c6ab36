package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Load reads a Wavefront OBJ file.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("model: %s: %w", path, err)
	}
	return m, nil
}

// Parse reads OBJ geometry. Only "v" and "f" records are used; texture
// coordinates, normals, groups and materials are skipped.
func Parse(r io.Reader) (*Model, error) {
	m := &Model{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.verts = append(m.verts, v)
		case "f":
			if err := m.addFace(fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return m, nil
}

func parseVertex(fields []string) (mgl64.Vec3, error) {
	if len(fields) < 3 {
		return mgl64.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var v mgl64.Vec3
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[k], err)
		}
		v[k] = f
	}
	return v, nil
}

// addFace resolves "i", "i/t", "i//n" and "i/t/n" corners. Negative indices
// count back from the last vertex read so far.
func (m *Model) addFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face needs at least 3 corners, got %d", len(fields))
	}

	idx := make([]int, len(fields))
	for i, f := range fields {
		ref, _, _ := strings.Cut(f, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return fmt.Errorf("face corner %q: %w", f, err)
		}
		switch {
		case n > 0:
			n--
		case n < 0:
			n += len(m.verts)
		default:
			return fmt.Errorf("face corner %q: index 0", f)
		}
		if n < 0 || n >= len(m.verts) {
			return fmt.Errorf("face corner %q: vertex out of range (have %d)", f, len(m.verts))
		}
		idx[i] = n
	}

	for i := 1; i+1 < len(idx); i++ {
		m.faces = append(m.faces, [3]int{idx[0], idx[i], idx[i+1]})
	}
	return nil
}
