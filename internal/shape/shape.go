// Package shape holds the fixed bipyramid mesh uploaded to the GPU.
package shape

import "fmt"

const (
	PositionSize   = 3 // x,y,z
	ColorSize      = 3 // r,g,b
	VertexSize     = PositionSize + ColorSize
	BytesFloat32   = 4 // a float32 is 4 bytes
	BytesUint32    = 4 // a uint32 is 4 bytes
	Stride         = VertexSize * BytesFloat32
	PositionOffset = 0                           // position begins at the start of a vertex
	ColorOffset    = PositionSize * BytesFloat32 // color begins after position
)

const indicesPerTriangle = 3

// two square pyramids sharing apex v4 at the origin
//
//	front square (z = +0.5)    back square (z = -0.5)
//	v0------v1                 v5------v6
//	|        |                 |        |
//	v2------v3                 v7------v8
var vertices = []float32{
	-0.5, 0.5, 0.5, 0.0, 0.0, 0.0, // v0
	0.5, 0.5, 0.5, 1.0, 1.0, 1.0, // v1
	-0.5, -0.5, 0.5, 1.0, 0.0, 0.0, // v2
	0.5, -0.5, 0.5, 0.0, 1.0, 0.0, // v3

	0.0, 0.0, 0.0, 0.0, 0.0, 1.0, // v4

	-0.5, 0.5, -0.5, 1.0, 1.0, 0.0, // v5
	0.5, 0.5, -0.5, 1.0, 0.0, 1.0, // v6
	-0.5, -0.5, -0.5, 0.0, 1.0, 1.0, // v7
	0.5, -0.5, -0.5, 0.5, 0.75, 0.3, // v8
}

var indices = []uint32{
	// top face
	3, 2, 1,
	1, 2, 0,

	// top point
	1, 0, 4,
	3, 1, 4,
	2, 3, 4,
	0, 2, 4,

	// bottom face
	7, 8, 6,
	7, 6, 5,

	// bottom point
	5, 6, 4,
	6, 8, 4,
	8, 7, 4,
	7, 5, 4,
}

// Vertices returns a copy of the interleaved vertex data.
func Vertices() []float32 {
	return append([]float32(nil), vertices...)
}

// Indices returns a copy of the triangle index list.
func Indices() []uint32 {
	return append([]uint32(nil), indices...)
}

func VertexCount() int {
	return len(vertices) / VertexSize
}

func IndexCount() int {
	return len(indices)
}

// Validate checks that the mesh is well formed: whole vertices, whole
// triangles, indices in range and colours in [0,1].
func Validate() error {
	if len(vertices)%VertexSize != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of %d", len(vertices), VertexSize)
	}
	if len(indices)%indicesPerTriangle != 0 {
		return fmt.Errorf("index count %d is not a multiple of %d", len(indices), indicesPerTriangle)
	}
	n := uint32(VertexCount())
	for i, idx := range indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d addresses missing vertex (have %d)", idx, i, n)
		}
	}
	for v := 0; v < int(n); v++ {
		base := v*VertexSize + PositionSize
		for c := 0; c < ColorSize; c++ {
			if ch := vertices[base+c]; ch < 0 || ch > 1 {
				return fmt.Errorf("vertex %d colour channel %d out of range: %v", v, c, ch)
			}
		}
	}
	return nil
}
