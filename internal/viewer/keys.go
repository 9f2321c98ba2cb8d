package viewer

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/polyhedron/internal/input"
)

var glfwToKey = func() map[glfw.Key]input.Key {
	m := map[glfw.Key]input.Key{
		glfw.KeySpace:      input.KeySpace,
		glfw.KeyEscape:     input.KeyEscape,
		glfw.KeyRight:      input.KeyRight,
		glfw.KeyLeft:       input.KeyLeft,
		glfw.KeyDown:       input.KeyDown,
		glfw.KeyUp:         input.KeyUp,
		glfw.KeyMinus:      input.KeyMinus,
		glfw.KeyEqual:      input.KeyEqual,
		glfw.KeyKPAdd:      input.KeyKPPlus,
		glfw.KeyKPSubtract: input.KeyKPMinus,
	}
	// glfw letter and digit codes are contiguous ASCII
	for i := 0; i < 26; i++ {
		m[glfw.KeyA+glfw.Key(i)] = input.KeyA + input.Key(i)
	}
	for i := 0; i < 10; i++ {
		m[glfw.Key0+glfw.Key(i)] = input.Key0 + input.Key(i)
	}
	return m
}()

func translateKey(k glfw.Key) input.Key {
	if key, ok := glfwToKey[k]; ok {
		return key
	}
	return input.KeyUnknown
}

func translateAction(a glfw.Action) input.EventKind {
	switch a {
	case glfw.Press:
		return input.Press
	case glfw.Repeat:
		return input.Repeat
	}
	return input.Release
}
