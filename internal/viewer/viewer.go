// Package viewer opens the window and runs the read-input, update, redraw
// loop.
package viewer

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/paperboard/polyhedron/internal/config"
	"github.com/paperboard/polyhedron/internal/input"
	"github.com/paperboard/polyhedron/internal/render"
	"github.com/paperboard/polyhedron/internal/transform"
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

// Viewer is the window, renderer and input state for one session.
type Viewer struct {
	cfg        *config.Config
	log        *zap.Logger
	window     *glfw.Window
	renderer   *render.Renderer
	state      *transform.State
	controller *input.Controller
	reloads    <-chan *config.Config
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithReloads applies configurations received on ch between frames.
func WithReloads(ch <-chan *config.Config) Option {
	return func(v *Viewer) { v.reloads = ch }
}

// New initializes glfw, opens the window with a 3.2 core context and
// uploads the shape. The caller must be on the main goroutine and must call
// Close.
func New(cfg *config.Config, log *zap.Logger, opts ...Option) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	bindings, err := cfg.InputBindings()
	if err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Window.Resizable))
	glfw.WindowHint(glfw.Samples, cfg.Window.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	version, err := render.Init()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}
	log.Info("OpenGL initialized", zap.String("version", version))

	v := &Viewer{
		cfg:    cfg,
		log:    log,
		window: window,
		state:  transform.New(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.controller = input.NewController(v.state, bindings, cfg.InputSteps(), log)

	render.Setup(cfg.ClearColor)
	// framebuffer can differ from the window size on high-DPI displays
	render.Viewport(window.GetFramebufferSize())

	v.renderer, err = render.New()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	window.SetKeyCallback(v.onKey)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		render.Viewport(width, height)
	})

	return v, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (v *Viewer) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := translateKey(key)
	if k == input.KeyUnknown {
		return
	}
	if a := v.controller.HandleKey(k, translateAction(action)); a != input.ActionNone {
		v.log.Debug("key", zap.Stringer("key", k), zap.Stringer("action", a))
	}
	if v.controller.QuitRequested() {
		v.window.SetShouldClose(true)
	}
}

// Run polls events and redraws until the window is closed or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	for !v.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cfg := <-v.reloads:
			v.applyConfig(cfg)
		default:
		}

		// key callbacks fire in here, on this thread
		glfw.PollEvents()

		if err := v.renderer.Draw(v.state); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		v.window.SwapBuffers()
	}
	return nil
}

// applyConfig takes the parts of a reloaded config that can change without
// recreating the window.
func (v *Viewer) applyConfig(cfg *config.Config) {
	bindings, err := cfg.InputBindings()
	if err != nil {
		v.log.Warn("ignoring reloaded bindings", zap.Error(err))
		return
	}
	v.controller.Rebind(bindings, cfg.InputSteps())
	render.Setup(cfg.ClearColor)
	if cfg.Window.Title != v.cfg.Window.Title {
		v.window.SetTitle(cfg.Window.Title)
	}
	v.cfg = cfg
}

// State exposes the transform, mostly for logging on exit.
func (v *Viewer) State() *transform.State {
	return v.state
}

// Close releases GL objects, destroys the window and terminates glfw.
func (v *Viewer) Close() {
	if v.renderer != nil {
		v.renderer.Delete()
	}
	v.window.Destroy()
	glfw.Terminate()
}
