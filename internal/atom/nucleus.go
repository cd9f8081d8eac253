package atom

import "github.com/go-gl/mathgl/mgl32"

const (
	// NucleusParticleRadius is the sphere radius used for every nucleus particle.
	NucleusParticleRadius = 0.1

	octant = 0.12
	axis   = 0.16
)

var nucleus = []mgl32.Vec3{
	{0, 0, 0},

	{octant, octant, octant},
	{-octant, octant, octant},
	{octant, -octant, octant},
	{-octant, -octant, octant},
	{octant, octant, -octant},
	{-octant, octant, -octant},
	{octant, -octant, -octant},
	{-octant, -octant, -octant},

	{axis, 0, 0},
	{-axis, 0, 0},
	{0, axis, 0},
	{0, -axis, 0},
	{0, 0, axis},
	{0, 0, -axis},
}

// NucleusPositions returns the fixed particle offsets of the nucleus cluster.
// The layout is a visual approximation and does not depend on the atomic
// number. The returned slice is a copy.
func NucleusPositions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(nucleus))
	copy(out, nucleus)
	return out
}
