package shader

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paperboard/polyhedron/internal/transform"
)

func TestSourcesAreNulTerminated(t *testing.T) {
	for name, src := range map[string]string{"vertex": Vertex, "fragment": Fragment} {
		assert.True(t, strings.HasSuffix(src, "\x00"), name)
		assert.Equal(t, 1, strings.Count(src, "\x00"), name)
		assert.Contains(t, src, "#version 140", name)
	}
}

func TestVertexDeclaresNamedInputs(t *testing.T) {
	for _, decl := range []string{
		"uniform mat4 " + UniformXform + ";",
		"uniform vec3 " + UniformRotation + ";",
		"uniform float " + UniformScale + ";",
		"uniform int " + UniformDrawBlack + ";",
		"in vec3 " + AttribPosition + ";",
		"in vec3 " + AttribColor + ";",
	} {
		assert.Contains(t, Vertex, decl)
	}
}

func TestFragmentDeclaresOutput(t *testing.T) {
	assert.Contains(t, Fragment, "out vec4 "+OutputColor+";")
	assert.Contains(t, Fragment, "uniform int "+UniformDrawBlack+";")
}

func TestWireframeInflationMatchesTransform(t *testing.T) {
	lit := strconv.FormatFloat(transform.WireframeInflation, 'f', -1, 64)
	assert.Contains(t, Vertex, "k += "+lit+";")
}

func TestCString(t *testing.T) {
	assert.Equal(t, "xform\x00", CString(UniformXform))
}
