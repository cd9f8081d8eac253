package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed shaders/*.vert shaders/*.frag
var embeddedShaders embed.FS

// shaderSources returns the vertex and fragment sources for name, from dir
// when set and from the embedded copies otherwise.
func shaderSources(dir, name string) (vert, frag string, err error) {
	var src fs.FS
	if dir != "" {
		src = os.DirFS(dir)
	} else {
		src, err = fs.Sub(embeddedShaders, "shaders")
		if err != nil {
			return "", "", err
		}
	}

	v, err := fs.ReadFile(src, name+".vert")
	if err != nil {
		return "", "", fmt.Errorf("reading %s vertex shader: %w", name, err)
	}
	f, err := fs.ReadFile(src, name+".frag")
	if err != nil {
		return "", "", fmt.Errorf("reading %s fragment shader: %w", name, err)
	}
	return string(v) + "\x00", string(f) + "\x00", nil
}

// loadProgram reads and links the named shader pair.
func loadProgram(dir, name string) (uint32, error) {
	vert, frag, err := shaderSources(dir, name)
	if err != nil {
		return 0, err
	}
	program, err := newProgram(vert, frag)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return program, nil
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %s: %v", shaderKind(shaderType), log)
	}

	return shader, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	}
	return "shader"
}

// uniform looks up a uniform location by its Go name.
func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
