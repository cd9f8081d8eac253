package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"atomviz/internal/atom"
	"atomviz/internal/camera"
)

// app is the per-session state shared by the frame loop and the input
// callbacks. Everything runs on the main thread.
type app struct {
	window *glfw.Window

	cam     *camera.Camera
	atom    *atom.Atom
	nucleus []mgl32.Vec3

	lighting   bool
	showOrbits bool

	// captured hides the cursor and turns all motion into look input.
	captured bool
	// dragging is set while the right button is held without capture.
	dragging bool

	// lastX/lastY are only valid once haveCursor is set.
	haveCursor   bool
	lastX, lastY float64
}

func newApp(window *glfw.Window, a *atom.Atom, showOrbits bool) *app {
	cam := camera.New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{})
	w, h := window.GetFramebufferSize()
	cam.Resize(w, h)

	return &app{
		window:     window,
		cam:        cam,
		atom:       a,
		nucleus:    atom.NucleusPositions(),
		lighting:   true,
		showOrbits: showOrbits,
	}
}

func (s *app) update(dt float32) {
	s.atom.Update(dt)
}
