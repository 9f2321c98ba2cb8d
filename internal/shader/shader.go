// Package shader holds the GLSL sources for the viewer and the names of the
// uniforms, attributes and outputs they declare.
package shader

// uniforms
const (
	UniformXform     = "xform"
	UniformRotation  = "rot"
	UniformScale     = "scale"
	UniformDrawBlack = "draw_black"
)

// attributes and outputs
const (
	AttribPosition = "position"
	AttribColor    = "color"
	OutputColor    = "out_color"
)

// Vertex builds the per-axis rotations from rot (degrees) and applies
// xform * Rx * Ry * Rz * S. The wireframe pass grows the scale slightly so
// lines are not hidden by the faces.
var Vertex = `
#version 140

uniform mat4 xform;
uniform vec3 rot;
uniform float scale;
uniform int draw_black;

in vec3 position;
in vec3 color;

out vec3 fragmentColor;

void main() {
	vec3 r = radians(rot);
	vec3 s = sin(r);
	vec3 c = cos(r);

	mat4 rx = mat4(1, 0, 0, 0,
	               0, c.x, s.x, 0,
	               0, -s.x, c.x, 0,
	               0, 0, 0, 1);

	mat4 ry = mat4(c.y, 0, -s.y, 0,
	               0, 1, 0, 0,
	               s.y, 0, c.y, 0,
	               0, 0, 0, 1);

	mat4 rz = mat4(c.z, s.z, 0, 0,
	               -s.z, c.z, 0, 0,
	               0, 0, 1, 0,
	               0, 0, 0, 1);

	float k = scale;
	if (draw_black == 1) {
		k += 0.0001;
	}
	mat4 sm = mat4(k, 0, 0, 0,
	               0, k, 0, 0,
	               0, 0, k, 0,
	               0, 0, 0, 1);

	gl_Position = xform * rx * ry * rz * sm * vec4(position, 1);
	fragmentColor = color;
}
` + "\x00"

var Fragment = `
#version 140

uniform int draw_black;

in vec3 fragmentColor;
out vec4 out_color;

void main() {
	if (draw_black == 1) {
		out_color = vec4(0, 0, 0, 1);
	} else {
		out_color = vec4(fragmentColor, 1);
	}
}
` + "\x00"

// CString returns name NUL terminated for the GL entry points.
func CString(name string) string {
	return name + "\x00"
}
