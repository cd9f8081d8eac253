package atom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAdvanceWraps(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		speed float32
		dt    float32
		want  float32
	}{
		{"forward", 10, 45, 1, 55},
		{"past 360", 350, 45, 1, 35},
		{"exact turn", 0, 90, 4, 0},
		{"backward", 10, -45, 1, 325},
		{"zero dt", 123, 45, 0, 123},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Electron{Angle: tt.start, Speed: tt.speed}
			e.Advance(tt.dt)
			if !mgl32.FloatEqualThreshold(e.Angle, tt.want, eps) {
				t.Errorf("angle = %v, want %v", e.Angle, tt.want)
			}
			if e.Angle < 0 || e.Angle >= 360 {
				t.Errorf("angle %v outside [0,360)", e.Angle)
			}
		})
	}
}

func TestPositionPeriodic(t *testing.T) {
	for _, e := range Allocate(36) {
		p0 := e.PositionAt(0)
		e.Angle = 0
		e.Advance(360 / e.Speed)
		if !e.Position().ApproxEqualThreshold(p0, 1e-3) {
			t.Errorf("shell %d: %v after a full turn, want %v", e.Shell, e.Position(), p0)
		}
		if !e.PositionAt(360).ApproxEqualThreshold(p0, 1e-3) {
			t.Errorf("shell %d: PositionAt(360) = %v, want %v", e.Shell, e.PositionAt(360), p0)
		}
	}
}

func TestPositionRotatesAboutNormal(t *testing.T) {
	e := Electron{Radius: 2, Normal: mgl32.Vec3{0, 0, 1}}
	tests := []struct {
		angle float32
		want  mgl32.Vec3
	}{
		{0, mgl32.Vec3{2, 0, 0}},
		{90, mgl32.Vec3{0, 2, 0}},
		{180, mgl32.Vec3{-2, 0, 0}},
		{270, mgl32.Vec3{0, -2, 0}},
	}
	for _, tt := range tests {
		if got := e.PositionAt(tt.angle); !got.ApproxEqualThreshold(tt.want, eps) {
			t.Errorf("PositionAt(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestPositionKeepsRadius(t *testing.T) {
	for _, e := range Allocate(54) {
		for a := float32(0); a < 360; a += 30 {
			if d := e.PositionAt(a).Len(); !mgl32.FloatEqualThreshold(d, e.Radius, 1e-3) {
				t.Fatalf("shell %d angle %v: distance %v, want %v", e.Shell, a, d, e.Radius)
			}
		}
	}
}

func TestOrbitPath(t *testing.T) {
	e := Allocate(3)[2]
	path := e.OrbitPath(0)
	if len(path) != OrbitSegments {
		t.Fatalf("got %d points", len(path))
	}
	if !path[0].ApproxEqualThreshold(e.PositionAt(0), eps) {
		t.Errorf("path does not start at angle 0")
	}
	e.Angle = 360 / float32(OrbitSegments) * 7
	if !path[7].ApproxEqualThreshold(e.Position(), eps) {
		t.Errorf("path[7] = %v, electron at %v", path[7], e.Position())
	}
}

func TestModelTranslates(t *testing.T) {
	e := Electron{Radius: 1.5, Angle: 90, Normal: mgl32.Vec3{0, 0, 1}}
	got := e.Model().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl32.Vec3{0, 1.5, 0}, eps) {
		t.Errorf("model origin = %v", got)
	}
}

func TestAtomReset(t *testing.T) {
	a, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Electrons) != 10 {
		t.Fatalf("got %d electrons", len(a.Electrons))
	}
	perShell := map[int]int{}
	for _, e := range a.Electrons {
		perShell[e.Shell]++
	}
	if len(perShell) != 2 || perShell[1] != 2 || perShell[2] != 8 {
		t.Errorf("neon shells = %v", perShell)
	}

	a.Update(1)
	if a.Electrons[0].Angle == 0 {
		t.Errorf("Update did not move electrons")
	}

	if err := a.Reset(119); err == nil {
		t.Errorf("Reset(119) accepted")
	}
	if a.Number != 10 {
		t.Errorf("failed Reset changed Number to %d", a.Number)
	}

	if err := a.Reset(18); err != nil {
		t.Fatal(err)
	}
	if len(a.Electrons) != 18 || a.Electrons[0].Angle != 0 {
		t.Errorf("Reset did not replace the collection")
	}
}

func BenchmarkUpdate(b *testing.B) {
	a, _ := New(MaxAtomicNumber)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Update(0.016)
	}
}
