package atom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// OrbitSegments is the default number of samples in an orbit path.
const OrbitSegments = 60

type Electron struct {
	Shell int

	Radius float32
	// Angle is the current position along the orbit, in degrees in [0,360).
	Angle float32
	// Speed is in degrees per second; the sign gives the direction.
	Speed float32
	// Normal is the unit axis the electron rotates about.
	Normal mgl32.Vec3

	Color colorful.Color
}

// Advance moves the electron along its orbit by dt seconds.
func (e *Electron) Advance(dt float32) {
	e.Angle = wrapDegrees(e.Angle + e.Speed*dt)
}

// Position returns the electron's current offset from the nucleus centre.
func (e Electron) Position() mgl32.Vec3 {
	return e.PositionAt(e.Angle)
}

// PositionAt rotates (Radius, 0, 0) about Normal by angle degrees using the
// right-hand rule.
func (e Electron) PositionAt(angle float32) mgl32.Vec3 {
	q := mgl32.QuatRotate(mgl32.DegToRad(angle), e.Normal)
	return q.Rotate(mgl32.Vec3{e.Radius, 0, 0})
}

// Model returns the translation placing a unit-centred sphere at Position.
func (e Electron) Model() mgl32.Mat4 {
	p := e.Position()
	return mgl32.Translate3D(p.X(), p.Y(), p.Z())
}

// OrbitPath samples the closed trajectory of the electron at segments equal
// angle steps, starting at angle 0.
func (e Electron) OrbitPath(segments int) []mgl32.Vec3 {
	if segments < 3 {
		segments = OrbitSegments
	}
	path := make([]mgl32.Vec3, segments)
	step := 360 / float32(segments)
	for i := range path {
		path[i] = e.PositionAt(float32(i) * step)
	}
	return path
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// Mod of a tiny negative value can round back up to 360.
	if a >= 360 {
		a = 0
	}
	return a
}
