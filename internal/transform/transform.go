// Package transform holds the model state driven by keyboard input and
// builds the same matrices the vertex shader builds.
package transform

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WireframeInflation is added to the scale for the black overlay pass so the
// lines sit just outside the filled faces.
const WireframeInflation = 0.0001

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// State is the translation, per-axis rotation (degrees) and uniform scale
// of the shape. The zero value is not usable; call New.
type State struct {
	xform    mgl32.Mat4
	rotation mgl32.Vec3
	scale    float32
}

func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset returns the shape to identity translation, no rotation and scale 1.
func (s *State) Reset() {
	s.xform = mgl32.Ident4()
	s.rotation = mgl32.Vec3{}
	s.scale = 1
}

// Translate moves the translation column of xform.
func (s *State) Translate(dx, dy float32) {
	s.xform[12] += dx
	s.xform[13] += dy
}

// Rotate adds deg degrees around axis and returns the new angle.
func (s *State) Rotate(axis Axis, deg float32) float32 {
	s.rotation[axis] += deg
	return s.rotation[axis]
}

func (s *State) Grow(delta float32) {
	s.scale += delta
}

func (s *State) Xform() mgl32.Mat4 { return s.xform }

// Rotation returns rx, ry, rz in degrees.
func (s *State) Rotation() mgl32.Vec3 { return s.rotation }

func (s *State) Scale() float32 { return s.scale }

// Model composes xform * Rx * Ry * Rz * S. inflate is added to the scale,
// as the shader does for the wireframe pass.
func (s *State) Model(inflate float32) mgl32.Mat4 {
	r := s.rotation
	return s.xform.
		Mul4(RotateX(r[0])).
		Mul4(RotateY(r[1])).
		Mul4(RotateZ(r[2])).
		Mul4(Scale(s.scale + inflate))
}

// RotateX is the column-major rotation about x for deg degrees.
func RotateX(deg float32) mgl32.Mat4 {
	sin, cos := sincos(deg)
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, cos, sin, 0,
		0, -sin, cos, 0,
		0, 0, 0, 1,
	}
}

func RotateY(deg float32) mgl32.Mat4 {
	sin, cos := sincos(deg)
	return mgl32.Mat4{
		cos, 0, -sin, 0,
		0, 1, 0, 0,
		sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

func RotateZ(deg float32) mgl32.Mat4 {
	sin, cos := sincos(deg)
	return mgl32.Mat4{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Scale(f float32) mgl32.Mat4 {
	return mgl32.Mat4{
		f, 0, 0, 0,
		0, f, 0, 0,
		0, 0, f, 0,
		0, 0, 0, 1,
	}
}

func sincos(deg float32) (float32, float32) {
	rad := float64(mgl32.DegToRad(deg))
	return float32(math.Sin(rad)), float32(math.Cos(rad))
}
