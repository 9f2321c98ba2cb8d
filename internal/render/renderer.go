// Package render owns the GL objects for the shape and draws it each frame
// as filled triangles followed by a black wireframe.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/paperboard/polyhedron/internal/shader"
	"github.com/paperboard/polyhedron/internal/shape"
	"github.com/paperboard/polyhedron/internal/transform"
)

// Renderer holds the program, vertex array and buffers. All methods must be
// called on the thread that owns the GL context.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	uniformXform     int32
	uniformRotation  int32
	uniformScale     int32
	uniformDrawBlack int32

	indexCount int32
}

// Init loads the GL function pointers. Call it once after making the
// context current.
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

// New compiles the shaders and uploads the shape.
func New() (*Renderer, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}

	program, err := newProgram(shader.Vertex, shader.Fragment, shader.OutputColor)
	if err != nil {
		return nil, err
	}
	r := &Renderer{program: program}

	if err := r.lookupUniforms(); err != nil {
		r.Delete()
		return nil, err
	}
	if err := r.setupBuffers(); err != nil {
		r.Delete()
		return nil, err
	}
	if err := CheckError(); err != nil {
		r.Delete()
		return nil, fmt.Errorf("renderer setup: %w", err)
	}
	return r, nil
}

func (r *Renderer) lookupUniforms() error {
	var err error
	for _, u := range []struct {
		name string
		loc  *int32
	}{
		{shader.UniformXform, &r.uniformXform},
		{shader.UniformRotation, &r.uniformRotation},
		{shader.UniformScale, &r.uniformScale},
		{shader.UniformDrawBlack, &r.uniformDrawBlack},
	} {
		if *u.loc, err = uniformLocation(r.program, u.name); err != nil {
			return err
		}
	}
	return nil
}

// https://www.songho.ca/opengl/gl_vbo.html#create
func (r *Renderer) setupBuffers() error {

	vertices := shape.Vertices()
	indices := shape.Indices()
	r.indexCount = int32(len(indices))

	attribPosition, err := attribLocation(r.program, shader.AttribPosition)
	if err != nil {
		return err
	}
	attribColor, err := attribLocation(r.program, shader.AttribColor)
	if err != nil {
		return err
	}

	// the vertex array records the buffer bindings and attribute layout
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo) // for vertex buffer
	gl.GenBuffers(1, &r.ebo) // for index buffer

	// copy vertex data to VBO
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*shape.BytesFloat32, gl.Ptr(vertices), gl.STATIC_DRAW)

	// copy index data to EBO, stays bound to the vertex array
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*shape.BytesUint32, gl.Ptr(indices), gl.STATIC_DRAW)

	// interleaved x,y,z,r,g,b
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointer(attribPosition, shape.PositionSize, gl.FLOAT, false, shape.Stride, gl.PtrOffset(shape.PositionOffset))
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointer(attribColor, shape.ColorSize, gl.FLOAT, false, shape.Stride, gl.PtrOffset(shape.ColorOffset))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return nil
}

// Setup sets the fixed pipeline state: clear colour and depth testing.
func Setup(clearColor [4]float32) {
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])

	// do not draw pixels hidden behind nearer ones
	gl.Enable(gl.DEPTH_TEST)

	// equal depth passes so the wireframe can share depth with the faces
	gl.DepthFunc(gl.LEQUAL)
}

// Viewport maps NDC onto the framebuffer.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw clears the framebuffer and draws the shape twice: filled in vertex
// colours, then as a black line strip over the same indices.
func (r *Renderer) Draw(state *transform.State) error {

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)

	rot := state.Rotation()
	xform := state.Xform()
	gl.Uniform3f(r.uniformRotation, rot[0], rot[1], rot[2])
	gl.Uniform1f(r.uniformScale, state.Scale())
	gl.UniformMatrix4fv(r.uniformXform, 1, false, &xform[0])

	gl.BindVertexArray(r.vao)

	gl.Uniform1i(r.uniformDrawBlack, 0)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))

	gl.Uniform1i(r.uniformDrawBlack, 1)
	gl.DrawElements(gl.LINE_STRIP, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.Uniform1i(r.uniformDrawBlack, 0)

	gl.BindVertexArray(0)

	// check for accumulated OpenGL errors
	return CheckError()
}

// Delete releases every GL object the renderer created. Safe to call on a
// partially built renderer.
func (r *Renderer) Delete() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
