package main

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"atomviz/internal/atom"
	"atomviz/internal/sphere"
)

const meshResolution = 16

var lightPos = mgl32.Vec3{2, 5, 2}

// sphereProgram is the lit shader shared by every sphere draw.
type sphereProgram struct {
	id uint32

	model, view, projection int32
	objectColor, lightPos   int32
	viewPos, lighting       int32
}

func newSphereProgram(dir string) (*sphereProgram, error) {
	id, err := loadProgram(dir, "sphere")
	if err != nil {
		return nil, err
	}
	return &sphereProgram{
		id:          id,
		model:       uniform(id, "model"),
		view:        uniform(id, "view"),
		projection:  uniform(id, "projection"),
		objectColor: uniform(id, "objectColor"),
		lightPos:    uniform(id, "lightPos"),
		viewPos:     uniform(id, "viewPos"),
		lighting:    uniform(id, "lighting"),
	}, nil
}

// gpuMesh holds the buffers of one sphere.Mesh. The mesh is uploaded once
// and placed with a model matrix per draw.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

func newGPUMesh(m sphere.Mesh) *gpuMesh {
	g := &gpuMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(sphere.Stride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	return g
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}

// orbitProgram draws unlit orbit paths.
type orbitProgram struct {
	id uint32

	view, projection, colour int32
}

func newOrbitProgram(dir string) (*orbitProgram, error) {
	id, err := loadProgram(dir, "orbit")
	if err != nil {
		return nil, err
	}
	return &orbitProgram{
		id:         id,
		view:       uniform(id, "view"),
		projection: uniform(id, "projection"),
		colour:     uniform(id, "colour"),
	}, nil
}

type orbitRange struct {
	first  int32
	colour mgl32.Vec3
}

// orbitLines packs every electron's path into one buffer, one line loop per
// electron.
type orbitLines struct {
	vao, vbo uint32
	segments int32
	ranges   []orbitRange
}

func newOrbitLines(electrons []atom.Electron) *orbitLines {
	o := &orbitLines{segments: atom.OrbitSegments}

	points := make([]float32, 0, len(electrons)*atom.OrbitSegments*3)
	for i, e := range electrons {
		o.ranges = append(o.ranges, orbitRange{
			first:  int32(i * atom.OrbitSegments),
			colour: atom.Vec(atom.Dim(e.Color, 0.2)),
		})
		for _, p := range e.OrbitPath(atom.OrbitSegments) {
			points = append(points, p[0], p[1], p[2])
		}
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	if len(points) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(points)*4, gl.Ptr(points), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindVertexArray(0)
	return o
}

func (o *orbitLines) delete() {
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
}

// renderer owns every GPU resource. A nil program disables the draws that
// need it.
type renderer struct {
	spheres *sphereProgram
	orbits  *orbitProgram

	nucleusMesh  *gpuMesh
	electronMesh *gpuMesh
	orbitLines   *orbitLines
}

func newRenderer(shaderDir string, a *atom.Atom) (*renderer, error) {
	nucleusMesh, err := sphere.Build(atom.NucleusParticleRadius, meshResolution, meshResolution)
	if err != nil {
		return nil, err
	}
	electronMesh, err := sphere.Build(atom.ElectronRadius, meshResolution, meshResolution)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		nucleusMesh:  newGPUMesh(nucleusMesh),
		electronMesh: newGPUMesh(electronMesh),
		orbitLines:   newOrbitLines(a.Electrons),
	}

	if r.spheres, err = newSphereProgram(shaderDir); err != nil {
		log.Printf("sphere shader disabled: %v", err)
	}
	if r.orbits, err = newOrbitProgram(shaderDir); err != nil {
		log.Printf("orbit shader disabled: %v", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.05, 0.05, 0.05, 1.0)

	return r, nil
}

func (r *renderer) draw(s *app) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := s.cam.ViewMatrix()
	projection := s.cam.Projection()

	if r.spheres != nil {
		p := r.spheres
		gl.UseProgram(p.id)
		gl.UniformMatrix4fv(p.view, 1, false, &view[0])
		gl.UniformMatrix4fv(p.projection, 1, false, &projection[0])
		gl.Uniform3fv(p.lightPos, 1, &lightPos[0])
		gl.Uniform3fv(p.viewPos, 1, &s.cam.Position[0])
		lighting := int32(0)
		if s.lighting {
			lighting = 1
		}
		gl.Uniform1i(p.lighting, lighting)

		colour := atom.Vec(atom.NucleusColor)
		gl.Uniform3fv(p.objectColor, 1, &colour[0])
		gl.BindVertexArray(r.nucleusMesh.vao)
		for _, pos := range s.nucleus {
			model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
			gl.UniformMatrix4fv(p.model, 1, false, &model[0])
			gl.DrawElements(gl.TRIANGLES, r.nucleusMesh.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		}

		gl.BindVertexArray(r.electronMesh.vao)
		for _, e := range s.atom.Electrons {
			model := e.Model()
			colour := atom.Vec(e.Color)
			gl.UniformMatrix4fv(p.model, 1, false, &model[0])
			gl.Uniform3fv(p.objectColor, 1, &colour[0])
			gl.DrawElements(gl.TRIANGLES, r.electronMesh.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		}
	}

	if s.showOrbits && r.orbits != nil {
		p := r.orbits
		gl.UseProgram(p.id)
		gl.UniformMatrix4fv(p.view, 1, false, &view[0])
		gl.UniformMatrix4fv(p.projection, 1, false, &projection[0])

		gl.BindVertexArray(r.orbitLines.vao)
		for _, o := range r.orbitLines.ranges {
			gl.Uniform3fv(p.colour, 1, &o.colour[0])
			gl.DrawArrays(gl.LINE_LOOP, o.first, r.orbitLines.segments)
		}
	}

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		log.Printf("OpenGL error during frame: 0x%x", code)
	}
}

func (r *renderer) delete() {
	r.nucleusMesh.delete()
	r.electronMesh.delete()
	r.orbitLines.delete()
	if r.spheres != nil {
		gl.DeleteProgram(r.spheres.id)
	}
	if r.orbits != nil {
		gl.DeleteProgram(r.orbits.id)
	}
}
