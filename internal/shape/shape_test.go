package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshIsValid(t *testing.T) {
	require.NoError(t, Validate())
	assert.Equal(t, 9, VertexCount())
	assert.Equal(t, 36, IndexCount())
}

func TestStrideAndOffsets(t *testing.T) {
	assert.Equal(t, 24, Stride)
	assert.Equal(t, 0, PositionOffset)
	assert.Equal(t, 12, ColorOffset)
}

func TestApexIsSharedByEveryPointTriangle(t *testing.T) {
	idx := Indices()
	// faces are the first two and the 7th/8th triangles; the rest meet at v4
	faces := map[int]bool{0: true, 1: true, 6: true, 7: true}
	for tri := 0; tri < len(idx)/3; tri++ {
		if faces[tri] {
			continue
		}
		assert.Equal(t, uint32(4), idx[tri*3+2], "triangle %d", tri)
	}
}

func TestApexAtOrigin(t *testing.T) {
	v := Vertices()
	base := 4 * VertexSize
	assert.Equal(t, []float32{0, 0, 0}, v[base:base+PositionSize])
}

func TestAccessorsReturnCopies(t *testing.T) {
	v := Vertices()
	v[0] = 42
	assert.NotEqual(t, float32(42), Vertices()[0])

	i := Indices()
	i[0] = 99
	assert.Equal(t, uint32(3), Indices()[0])
	require.NoError(t, Validate())
}
