package wire

import (
	"image"
	"image/color"
	"math"
)

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA walk.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		setPixel(img, int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

// DrawDot fills a square of side 2r+1 centred on (cx, cy).
func DrawDot(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			setPixel(img, x, y, col)
		}
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{x, y}).In(img.Bounds()) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}
