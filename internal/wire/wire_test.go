package wire

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"atomviz/internal/atom"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name       string
		in         Vec3
		yaw, pitch float64
		want       Vec3
	}{
		{"identity", Vec3{1, 2, 3}, 0, 0, Vec3{1, 2, 3}},
		{"yaw quarter turn", Vec3{1, 0, 0}, math.Pi / 2, 0, Vec3{0, 0, -1}},
		{"pitch quarter turn", Vec3{0, 1, 0}, 0, math.Pi / 2, Vec3{0, 0, 1}},
		{"yaw then pitch", Vec3{0, 0, 1}, math.Pi / 2, math.Pi / 2, Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate(tt.yaw, tt.pitch)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 || math.Abs(got.Z-tt.want.Z) > 1e-9 {
				t.Errorf("Rotate = %+v, want %+v", got, tt.want)
			}
		})
	}

	// Rotation keeps length.
	v := Vec3{0.3, -1.2, 2.5}
	r := v.Rotate(0.7, -0.4)
	if math.Abs(math.Hypot(math.Hypot(r.X, r.Y), r.Z)-math.Hypot(math.Hypot(v.X, v.Y), v.Z)) > 1e-9 {
		t.Errorf("length changed: %+v -> %+v", v, r)
	}
}

func TestProject(t *testing.T) {
	x, y := Vec3{}.Project(200, 100, 50, 5)
	if x != 100 || y != 50 {
		t.Errorf("origin -> (%d,%d)", x, y)
	}
	x, y = Vec3{1, 1, 0}.Project(200, 100, 50, 5)
	if x != 110 || y != 40 {
		t.Errorf("(1,1,0) -> (%d,%d), want (110,40)", x, y)
	}
}

func TestDrawLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	white := color.RGBA{255, 255, 255, 255}
	DrawLine(img, 0, 0, 9, 9, white)
	for i := 0; i < 10; i++ {
		if img.RGBAAt(i, i) != white {
			t.Fatalf("pixel (%d,%d) not drawn", i, i)
		}
	}
	// Off-image endpoints are clipped, not a panic.
	DrawLine(img, -5, 3, 20, 3, white)
	DrawLine(img, 4, 4, 4, 4, white)
	if img.RGBAAt(9, 3) != white {
		t.Errorf("clipped line missing")
	}
}

func TestSnapshot(t *testing.T) {
	electrons := atom.Allocate(10)
	opts := DefaultOptions
	opts.Width, opts.Height = 200, 150
	img := Snapshot(electrons, atom.NucleusPositions(), opts)

	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 150 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if img.RGBAAt(100, 75) == background {
		t.Errorf("nucleus not drawn at the centre")
	}

	colored := 0
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != background {
				colored++
			}
		}
	}
	if colored < 100 {
		t.Errorf("only %d pixels drawn", colored)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("decoding written PNG: %v", err)
	}
}
