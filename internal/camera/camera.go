// Package camera implements a free-fly camera driven by keyboard, mouse and
// scroll input. Increments are applied directly with no smoothing.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MoveSpeed   = 0.1
	ZoomSpeed   = 0.1
	Sensitivity = 0.2

	// MaxPitch keeps the view from flipping over the poles.
	MaxPitch = 89.0

	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

var WorldUp = mgl32.Vec3{0, 1, 0}

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

type Camera struct {
	Position mgl32.Vec3

	// Yaw and Pitch are in degrees. Yaw -90 looks down -Z.
	Yaw, Pitch float32
	// Distance from Position to the look-at target.
	Distance float32

	FOV       float32 // vertical, degrees
	Aspect    float32
	Near, Far float32
}

// New returns a camera at pos looking at target.
func New(pos, target mgl32.Vec3) *Camera {
	c := &Camera{
		Position: pos,
		Distance: 1,
		Yaw:      -90,
		FOV:      DefaultFOV,
		Aspect:   1,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
	c.LookAt(target)
	return c
}

// LookAt points the camera at target without moving it.
func (c *Camera) LookAt(target mgl32.Vec3) {
	d := target.Sub(c.Position)
	dist := d.Len()
	if dist == 0 {
		return
	}
	d = d.Mul(1 / dist)
	c.Distance = dist
	c.Pitch = clampPitch(mgl32.RadToDeg(math32.Asin(mgl32.Clamp(d.Y(), -1, 1))))
	c.Yaw = mgl32.RadToDeg(math32.Atan2(d.Z(), d.X()))
}

// Forward returns the unit look direction.
func (c *Camera) Forward() mgl32.Vec3 {
	yaw, pitch := mgl32.DegToRad(c.Yaw), mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Right is forward × world up, normalised.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(WorldUp).Normalize()
}

// Target is the look-at point.
func (c *Camera) Target() mgl32.Vec3 {
	return c.Position.Add(c.Forward().Mul(c.Distance))
}

// Move translates the camera and its target together. Up and Down move along
// the world up axis.
func (c *Camera) Move(dir Direction, amount float32) {
	var delta mgl32.Vec3
	switch dir {
	case Forward:
		delta = c.Forward().Mul(amount)
	case Backward:
		delta = c.Forward().Mul(-amount)
	case Right:
		delta = c.Right().Mul(amount)
	case Left:
		delta = c.Right().Mul(-amount)
	case Up:
		delta = WorldUp.Mul(amount)
	case Down:
		delta = WorldUp.Mul(-amount)
	}
	c.Position = c.Position.Add(delta)
}

// Look turns the camera by a mouse delta in pixels. Positive dy (cursor
// moving down the screen) looks down.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw = math32.Mod(c.Yaw+dx*Sensitivity, 360)
	c.Pitch = clampPitch(c.Pitch - dy*Sensitivity)
}

// Dolly moves along the look direction; positive steps move in.
func (c *Camera) Dolly(steps float32) {
	c.Position = c.Position.Add(c.Forward().Mul(steps * ZoomSpeed))
}

// Resize updates the aspect ratio for a new framebuffer size. FOV is kept.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target(), WorldUp)
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// clampPitch allows ±MaxPitch itself; at 89° forward is still not parallel
// to WorldUp, so LookAtV stays well defined.
func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -MaxPitch, MaxPitch)
}
