package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/paperboard/polyhedron/internal/shader"
)

// newProgram compiles both stages, binds the fragment output to colour
// attachment 0 and links.
func newProgram(vertexShaderSource, fragmentShaderSource, output string) (uint32, error) {

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

	// only takes effect at link time
	gl.BindFragDataLocation(program, 0, gl.Str(shader.CString(output)))

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))

	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

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

		return 0, fmt.Errorf("failed to compile %v shader: %v", stageName(shaderType), strings.TrimRight(log, "\x00"))

	}

	return shader, nil

}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

func uniformLocation(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(shader.CString(name)))
	if loc < 0 {
		return 0, fmt.Errorf("uniform %q not found", name)
	}
	return loc, nil
}

func attribLocation(program uint32, name string) (uint32, error) {
	loc := gl.GetAttribLocation(program, gl.Str(shader.CString(name)))
	if loc < 0 {
		return 0, fmt.Errorf("attribute %q not found", name)
	}
	return uint32(loc), nil
}
