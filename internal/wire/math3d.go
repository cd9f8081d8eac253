package wire

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Vec3 struct {
	X, Y, Z float64
}

func FromVec3(v mgl32.Vec3) Vec3 {
	return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Rotate turns the point into the snapshot's view frame: yaw about the
// vertical axis first, then pitch about the horizontal one. Angles are in
// radians.
func (v Vec3) Rotate(yaw, pitch float64) Vec3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)

	x := v.X*cy + v.Z*sy
	z := v.Z*cy - v.X*sy
	return Vec3{
		X: x,
		Y: v.Y*cp - z*sp,
		Z: v.Y*sp + z*cp,
	}
}

// Project maps the point to pixel coordinates with +Y up the screen.
// fov: focal scale in pixels
// viewerDistance: distance from the eye to the origin along +Z
func (v Vec3) Project(width, height int, fov, viewerDistance float64) (x, y int) {
	factor := fov / (viewerDistance + v.Z)
	x = int(math.Round(v.X*factor)) + width/2
	y = height/2 - int(math.Round(v.Y*factor))
	return x, y
}
