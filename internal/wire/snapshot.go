// Package wire renders an atom as a flat wireframe image without a GPU
// context, for quick previews and headless use.
package wire

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"atomviz/internal/atom"
)

// Options control the snapshot view. Yaw and Pitch are in degrees.
type Options struct {
	Width, Height int
	Yaw, Pitch    float64
	Orbits        bool
}

var DefaultOptions = Options{Width: 800, Height: 800, Yaw: 30, Pitch: 20, Orbits: true}

var background = color.RGBA{13, 13, 13, 255}

// Snapshot draws orbit paths, electrons and nucleus particles projected
// through a pinhole camera that fits the outermost orbit in the frame.
func Snapshot(electrons []atom.Electron, nucleus []mgl32.Vec3, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	extent := 0.5
	for _, e := range electrons {
		extent = math.Max(extent, float64(e.Radius))
	}
	dist := 3 * extent
	fov := 0.4 * float64(min(opts.Width, opts.Height)) * dist / extent

	yaw, pitch := opts.Yaw*math.Pi/180, opts.Pitch*math.Pi/180
	project := func(p mgl32.Vec3) (int, int) {
		return FromVec3(p).Rotate(yaw, pitch).Project(opts.Width, opts.Height, fov, dist)
	}

	if opts.Orbits {
		for _, e := range electrons {
			col := rgba(atom.Dim(e.Color, 0.4))
			path := e.OrbitPath(atom.OrbitSegments)
			for i := range path {
				x1, y1 := project(path[i])
				x2, y2 := project(path[(i+1)%len(path)])
				DrawLine(img, x1, y1, x2, y2, col)
			}
		}
	}

	nucleusCol := rgba(atom.NucleusColor)
	for _, p := range nucleus {
		x, y := project(p)
		DrawDot(img, x, y, 2, nucleusCol)
	}

	for _, e := range electrons {
		x, y := project(e.Position())
		DrawDot(img, x, y, 1, rgba(e.Color))
	}
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
