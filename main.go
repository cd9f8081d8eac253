package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"atomviz/internal/atom"
	"atomviz/internal/config"
	"atomviz/internal/wire"
)

const title = "Atomic Structure Visualizer"

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln("invalid arguments:", err)
	}

	z, err := cfg.ResolveAtomicNumber(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalln(err)
	}

	a, err := atom.New(z)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("atomic number %d, shells %v", z, atom.ShellCounts(z))

	if cfg.Snapshot != "" {
		if err := writeSnapshot(cfg.Snapshot, a, cfg.ShowOrbits); err != nil {
			log.Fatalln(err)
		}
		return
	}

	run(cfg, a)
}

func writeSnapshot(path string, a *atom.Atom, orbits bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := wire.DefaultOptions
	opts.Orbits = orbits
	img := wire.Snapshot(a.Electrons, atom.NucleusPositions(), opts)
	if err := wire.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(cfg config.Config, a *atom.Atom) {
	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	s := newApp(window, a, cfg.ShowOrbits)
	s.bindInput()

	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	r, err := newRenderer(cfg.ShaderDir, a)
	if err != nil {
		log.Fatalln(err)
	}
	defer r.delete()

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | Z=%d | FPS: %d", title, a.Number, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		s.update(float32(deltaTime))
		r.draw(s)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
