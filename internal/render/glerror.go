package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
)

var glErrorLookup = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// Error is one or more accumulated OpenGL error codes.
type Error struct {
	Codes []uint32
}

func (e *Error) Error() string {
	names := make([]string, len(e.Codes))
	for i, code := range e.Codes {
		if name, ok := glErrorLookup[code]; ok {
			names[i] = name
		} else {
			names[i] = fmt.Sprintf("GL_ERROR_UNKNOWN(0x%x)", code)
		}
	}
	return "gl error: " + strings.Join(names, ", ")
}

// maxErrorDrain bounds the drain loop; a lost context can report errors
// forever.
const maxErrorDrain = 16

// CheckError drains the GL error queue and returns the errors found, if any.
func CheckError() error {
	var codes []uint32
	for i := 0; i < maxErrorDrain; i++ {
		glerr := gl.GetError()
		if glerr == gl.NO_ERROR {
			break
		}
		codes = append(codes, glerr)
	}
	if len(codes) == 0 {
		return nil
	}
	return &Error{Codes: codes}
}
