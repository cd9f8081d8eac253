package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"atomviz/internal/camera"
)

var moveKeys = map[glfw.Key]camera.Direction{
	glfw.KeyW:     camera.Forward,
	glfw.KeyS:     camera.Backward,
	glfw.KeyA:     camera.Left,
	glfw.KeyD:     camera.Right,
	glfw.KeySpace: camera.Up,
	glfw.KeyC:     camera.Down,
}

func (s *app) bindInput() {
	s.window.SetKeyCallback(s.onKey)
	s.window.SetCursorPosCallback(s.onCursor)
	s.window.SetMouseButtonCallback(s.onMouseButton)
	s.window.SetScrollCallback(s.onScroll)
	s.window.SetFramebufferSizeCallback(s.onResize)
}

func (s *app) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if dir, ok := moveKeys[key]; ok {
		s.cam.Move(dir, camera.MoveSpeed)
		return
	}
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyL:
		s.lighting = !s.lighting
	case glfw.KeyO:
		s.showOrbits = !s.showOrbits
	case glfw.KeyM:
		s.setCaptured(!s.captured)
	}
}

func (s *app) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	switch button {
	case glfw.MouseButtonLeft:
		if action == glfw.Press {
			s.setCaptured(!s.captured)
		}
	case glfw.MouseButtonRight:
		s.dragging = action == glfw.Press
	}
}

func (s *app) onCursor(w *glfw.Window, x, y float64) {
	if !s.haveCursor {
		s.lastX, s.lastY = x, y
		s.haveCursor = true
		return
	}
	dx, dy := x-s.lastX, y-s.lastY
	s.lastX, s.lastY = x, y

	if s.captured || s.dragging {
		s.cam.Look(float32(dx), float32(dy))
	}
}

func (s *app) onScroll(w *glfw.Window, xoff, yoff float64) {
	s.cam.Dolly(float32(yoff))
}

func (s *app) onResize(w *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	s.cam.Resize(width, height)
}

func (s *app) setCaptured(on bool) {
	s.captured = on
	mode := glfw.CursorNormal
	if on {
		mode = glfw.CursorDisabled
	}
	s.window.SetInputMode(glfw.CursorMode, mode)
	// Disabled mode reports virtual positions; reseed to avoid a jump.
	s.haveCursor = false
}
