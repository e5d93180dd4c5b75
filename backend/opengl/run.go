package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/backend/gpu"
	"github.com/grindlemire/go-ui/internal/debug"
)

// Application is a model driven by messages from its widget tree.
type Application[M any] interface {
	// View builds the widget tree for the current state.
	View() ui.Widget[M, *gpu.Canvas]
	// Update applies a message emitted by the tree.
	Update(msg M)
}

// host ties one window to a runtime.
type host[M any] struct {
	app     Application[M]
	cfg     config
	win     *glfw.Window
	device  *Device
	dl      *gpu.DrawList
	canvas  *gpu.Canvas
	runtime *ui.Runtime[M, *gpu.Canvas]
	queue   eventQueue
	cursors map[glfw.StandardCursor]*glfw.Cursor
	shape   ui.MouseCursor
}

// Run opens a window and hosts app until the window is closed. It locks the
// calling goroutine to its OS thread for the lifetime of the window.
func Run[M any](app Application[M], opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.width, cfg.height, cfg.title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}

	h, err := newHost(app, cfg, win)
	if err != nil {
		return err
	}
	defer h.close()

	return h.loop()
}

func newHost[M any](app Application[M], cfg config, win *glfw.Window) (*host[M], error) {
	atlas := gpu.DefaultAtlas()
	device, err := NewDevice(atlas)
	if err != nil {
		return nil, err
	}

	dl := gpu.NewDrawList()
	canvas := gpu.NewCanvas(dl, atlas, device.FontTexture(), cfg.theme)
	w, hgt := win.GetSize()
	rt, err := ui.NewRuntime(app.View(), canvas, ui.WithViewport(float32(w), float32(hgt)))
	if err != nil {
		device.Delete()
		return nil, fmt.Errorf("build initial layout: %w", err)
	}

	h := &host[M]{
		app:     app,
		cfg:     cfg,
		win:     win,
		device:  device,
		dl:      dl,
		canvas:  canvas,
		runtime: rt,
		cursors: make(map[glfw.StandardCursor]*glfw.Cursor),
		shape:   ui.CursorIdle,
	}
	h.queue.attach(win)
	return h, nil
}

func (h *host[M]) loop() error {
	h.frame()
	for !h.win.ShouldClose() {
		glfw.WaitEvents()

		if h.queue.resized {
			h.queue.resized = false
			w, hgt := h.win.GetSize()
			if err := h.runtime.Resize(ui.Available(float32(w), float32(hgt))); err != nil {
				return err
			}
		}
		if err := h.dispatch(h.queue.drain()); err != nil {
			return err
		}
		h.frame()
	}
	return nil
}

func (h *host[M]) dispatch(events []ui.Event) error {
	for _, event := range events {
		messages := h.runtime.Dispatch(event)
		if len(messages) == 0 {
			continue
		}
		for _, msg := range messages {
			h.app.Update(msg)
		}
		if err := h.runtime.Update(h.app.View(), h.canvas); err != nil {
			debug.Log("opengl: %v", err)
			return err
		}
	}
	return nil
}

func (h *host[M]) frame() {
	w, hgt := h.win.GetSize()
	fbw, _ := h.win.GetFramebufferSize()
	scale := float32(1)
	if w > 0 {
		scale = float32(fbw) / float32(w)
	}

	c := h.cfg.clear
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	h.dl.Clear()
	h.setCursor(h.runtime.Draw(h.canvas))
	h.device.Render(h.dl, w, hgt, scale)
	h.win.SwapBuffers()
}

func (h *host[M]) setCursor(c ui.MouseCursor) {
	if c == h.shape {
		return
	}
	h.shape = c

	shape, ok := standardCursor(c)
	if !ok {
		h.win.SetCursor(nil)
		return
	}
	cursor, cached := h.cursors[shape]
	if !cached {
		cursor = glfw.CreateStandardCursor(shape)
		h.cursors[shape] = cursor
	}
	h.win.SetCursor(cursor)
}

func (h *host[M]) close() {
	for _, c := range h.cursors {
		c.Destroy()
	}
	h.device.Delete()
}
