package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestNewIsIdentity(t *testing.T) {
	s := New()
	assert.Equal(t, mgl32.Ident4(), s.Xform())
	assert.Equal(t, mgl32.Vec3{}, s.Rotation())
	assert.Equal(t, float32(1), s.Scale())
	assert.True(t, s.Model(0).ApproxEqualThreshold(mgl32.Ident4(), eps))
}

func TestTranslateTouchesOnlyTranslationColumn(t *testing.T) {
	s := New()
	s.Translate(0.1, 0)
	s.Translate(0, -0.1)
	s.Translate(0, -0.1)

	want := mgl32.Translate3D(0.1, -0.2, 0)
	assert.True(t, s.Xform().ApproxEqualThreshold(want, eps), "got %v", s.Xform())
}

func TestRotateAccumulatesDegrees(t *testing.T) {
	s := New()
	assert.Equal(t, float32(1), s.Rotate(AxisX, 1))
	assert.Equal(t, float32(2), s.Rotate(AxisX, 1))
	assert.Equal(t, float32(-1), s.Rotate(AxisZ, -1))
	assert.Equal(t, mgl32.Vec3{2, 0, -1}, s.Rotation())
}

func TestPerAxisMatricesMatchMathgl(t *testing.T) {
	for _, deg := range []float32{0, 1, 30, 90, -45, 270} {
		rad := mgl32.DegToRad(deg)
		assert.True(t, RotateX(deg).ApproxEqualThreshold(mgl32.HomogRotate3DX(rad), eps), "x %v", deg)
		assert.True(t, RotateY(deg).ApproxEqualThreshold(mgl32.HomogRotate3DY(rad), eps), "y %v", deg)
		assert.True(t, RotateZ(deg).ApproxEqualThreshold(mgl32.HomogRotate3DZ(rad), eps), "z %v", deg)
	}
	assert.Equal(t, mgl32.Scale3D(2, 2, 2), Scale(2))
}

func TestModelCompositionOrder(t *testing.T) {
	s := New()
	s.Translate(0.3, -0.2)
	s.Rotate(AxisX, 10)
	s.Rotate(AxisY, 20)
	s.Rotate(AxisZ, 30)
	s.Grow(0.5)

	want := mgl32.Translate3D(0.3, -0.2, 0).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(10))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(20))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(30))).
		Mul4(mgl32.Scale3D(1.5, 1.5, 1.5))
	assert.True(t, s.Model(0).ApproxEqualThreshold(want, eps))
}

func TestWireframeInflation(t *testing.T) {
	s := New()
	p := s.Model(WireframeInflation).Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1})
	assert.InDelta(t, 0.5*(1+WireframeInflation), p[0], 1e-7)
	assert.Equal(t, float32(1), p[3])
}

func TestReset(t *testing.T) {
	s := New()
	s.Translate(1, 1)
	s.Rotate(AxisY, 15)
	s.Grow(-0.3)
	s.Reset()
	assert.Equal(t, New(), s)
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "x", AxisX.String())
	assert.Equal(t, "z", AxisZ.String())
	assert.Equal(t, "Axis(7)", Axis(7).String())
}
