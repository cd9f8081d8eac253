// Package sphere generates UV-sphere meshes with interleaved positions and
// normals.
package sphere

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Stride is the number of floats per vertex: position xyz then normal xyz.
const Stride = 6

var ErrResolution = errors.New("sphere: need at least 3 sectors and 2 stacks")

// Mesh is built once and never modified; draws place it with a model
// transform.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Build tessellates a sphere by stacks of latitude from +90° to -90° and
// sectors of longitude from 0° to 360°. The seam column is duplicated so
// there are (stacks+1)*(sectors+1) vertices.
func Build(radius float32, sectors, stacks int) (Mesh, error) {
	if radius <= 0 {
		return Mesh{}, fmt.Errorf("sphere: radius %v must be positive", radius)
	}
	if sectors < 3 || stacks < 2 {
		return Mesh{}, fmt.Errorf("%w (got %d sectors, %d stacks)", ErrResolution, sectors, stacks)
	}

	m := Mesh{
		Vertices: make([]float32, 0, (stacks+1)*(sectors+1)*Stride),
		Indices:  make([]uint32, 0, 3*(2*stacks*sectors-2*sectors)),
	}

	stackStep := math32.Pi / float32(stacks)
	sectorStep := 2 * math32.Pi / float32(sectors)

	for i := 0; i <= stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sin, cos := math32.Sincos(float32(j) * sectorStep)
			pos := mgl32.Vec3{xy * cos, xy * sin, z}
			n := pos.Normalize()
			m.Vertices = append(m.Vertices, pos[0], pos[1], pos[2], n[0], n[1], n[2])
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
		}
	}

	return m, nil
}

func (m Mesh) VertexCount() int {
	return len(m.Vertices) / Stride
}

func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns the position of vertex i.
func (m Mesh) Position(i int) mgl32.Vec3 {
	o := i * Stride
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns the outward unit normal of vertex i.
func (m Mesh) Normal(i int) mgl32.Vec3 {
	o := i*Stride + 3
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}
