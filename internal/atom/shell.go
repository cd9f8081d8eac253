// Package atom places electrons in shells around a nucleus and moves them
// along their orbits.
package atom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinAtomicNumber = 1
	MaxAtomicNumber = 118

	// MaxShells is the number of shells the allocator will populate.
	MaxShells = 7

	BaseRadius  = 0.8
	RadiusScale = 0.4

	// ShellSpeed is the angular speed of shell 1 in degrees per second.
	// Shell n moves at ShellSpeed/n.
	ShellSpeed = 45.0

	// ElectronRadius is the sphere radius used to draw an electron.
	ElectronRadius = 0.03
)

// ShellCapacity returns the maximum occupancy 2n² of shell n.
func ShellCapacity(n int) int {
	return 2 * n * n
}

// ShellRadius returns the orbit radius shared by every electron of shell n.
func ShellRadius(n int) float32 {
	return BaseRadius + float32(n*n)*RadiusScale
}

// ShellCounts returns how many electrons each populated shell receives for
// atomic number z. Electrons that do not fit in MaxShells shells are left
// out.
func ShellCounts(z int) []int {
	var counts []int
	remaining := z
	for n := 1; remaining > 0 && n <= MaxShells; n++ {
		k := min(ShellCapacity(n), remaining)
		counts = append(counts, k)
		remaining -= k
	}
	return counts
}

// Allocate builds the electrons of atomic number z, filling shells from the
// inside out. Placement is deterministic.
func Allocate(z int) []Electron {
	counts := ShellCounts(z)
	if len(counts) == 0 {
		return nil
	}

	electrons := make([]Electron, 0, z)
	for idx, k := range counts {
		n := idx + 1
		radius := ShellRadius(n)
		speed := float32(ShellSpeed) / float32(n)
		color := ShellColor(n)

		for i := 0; i < k; i++ {
			electrons = append(electrons, Electron{
				Shell:  n,
				Radius: radius,
				Speed:  speed,
				Angle:  360 / float32(k) * float32(i),
				Normal: planeNormal(n, k, i),
				Color:  color,
			})
		}
	}
	return electrons
}

// planeNormal scatters the orbital planes of the k electrons of shell n so
// they do not all share one plane.
func planeNormal(n, k, i int) mgl32.Vec3 {
	phi := mgl32.DegToRad(float32(i) * (180 / float32(k)))
	theta := mgl32.DegToRad(float32(i%n)*(180/float32(n)) + float32(n)*20)

	sinPhi, cosPhi := math32.Sincos(phi)
	sinTheta, cosTheta := math32.Sincos(theta)
	return mgl32.Vec3{
		sinPhi * cosTheta,
		sinPhi * sinTheta,
		cosPhi,
	}.Normalize()
}
