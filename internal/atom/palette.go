package atom

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// shellColors is indexed by (shell-1) % len(shellColors).
var shellColors = [MaxShells]colorful.Color{
	{R: 0.2, G: 0.4, B: 1.0}, // blue
	{R: 0.2, G: 0.8, B: 0.8}, // cyan
	{R: 0.2, G: 0.8, B: 0.2}, // green
	{R: 0.8, G: 0.8, B: 0.2}, // yellow
	{R: 1.0, G: 0.6, B: 0.2}, // orange
	{R: 1.0, G: 0.2, B: 0.2}, // red
	{R: 0.8, G: 0.2, B: 0.8}, // magenta
}

// NucleusColor is the reddish colour shared by all nucleus particles.
var NucleusColor = colorful.Color{R: 0.8, G: 0.3, B: 0.2}

var black = colorful.Color{}

// ShellColor returns the palette colour for shell n (1-based).
func ShellColor(n int) colorful.Color {
	if n < 1 {
		n = 1
	}
	return shellColors[(n-1)%len(shellColors)]
}

// Dim scales c towards black, keeping the fraction f of each channel.
func Dim(c colorful.Color, f float64) colorful.Color {
	return c.BlendRgb(black, 1-f)
}

// Vec converts a colour to the float32 triple the shaders take.
func Vec(c colorful.Color) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}
