package glfwcontext

import (
	"fmt"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sohne/vultra/graphics"
	"github.com/sohne/vultra/input"
	options "github.com/sohne/vultra/options"
	"github.com/sohne/vultra/tracelog"
)

// Context is a GLFW window created without a client API, ready for a
// Vulkan surface. It forwards GLFW callbacks to the registered handlers.
type Context struct {
	window    *glfw.Window
	callbacks graphics.Callbacks
}

var _ graphics.Context = (*Context)(nil)

// New creates a GLFW window from the options. InitGraphics must have been
// called on the main thread first.
func New(opts *options.WindowOptions) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if *opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	glfw.WindowHint(glfw.AutoIconify, glfw.False)
	// MSAA and vsync are not applied here: with NoAPI there is no GL
	// framebuffer, so both stay as config flags for the Vulkan swapchain.

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		tracelog.Errorf("GLFW: Failed to create GLFW window")
		return nil, fmt.Errorf("create window: %w: %w", graphics.ErrPlatformUnavailable, err)
	}

	if !glfw.VulkanSupported() {
		tracelog.Errorf("GLFW: Vulkan is not supported on this system")
		win.Destroy()
		return nil, fmt.Errorf("vulkan not supported: %w", graphics.ErrPlatformUnavailable)
	}

	c := &Context{window: win}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetPosCallback(c.glfwPosCallback)

	tracelog.Infof("GLFW: %s", glfw.GetVersionString())
	return c, nil
}

func (c *Context) SetCallbacks(cb graphics.Callbacks) {
	c.callbacks = cb
}

// glfwKeyCallback forwards key events. GLFW key codes, actions and
// modifier bits have the same values as the input package.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if c.callbacks.Key != nil {
		c.callbacks.Key(input.Key(key), input.Action(action), input.ModifierKey(mods))
	}
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.callbacks.Resize != nil {
		c.callbacks.Resize(width, height)
	}
}

func (c *Context) glfwPosCallback(w *glfw.Window, x, y int) {
	if c.callbacks.Move != nil {
		c.callbacks.Move(x, y)
	}
}

// PollEvents processes pending GLFW events on the calling (main) thread.
func (c *Context) PollEvents() error {
	if c.window == nil {
		return fmt.Errorf("glfw: window destroyed: %w", graphics.ErrPlatformUnavailable)
	}
	glfw.PollEvents()
	return nil
}

func (c *Context) ShouldClose() bool {
	return c.window != nil && c.window.ShouldClose()
}

func (c *Context) SetShouldClose(value bool) {
	if c.window != nil {
		c.window.SetShouldClose(value)
	}
}

func (c *Context) GetFramebufferSize() (int, int) {
	if c.window == nil {
		return 0, 0
	}
	return c.window.GetFramebufferSize()
}

func (c *Context) SetTitle(title string) {
	if c.window != nil {
		c.window.SetTitle(title)
	}
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// RequiredInstanceExtensions lists the Vulkan instance extensions the
// window surface needs.
func (c *Context) RequiredInstanceExtensions() []string {
	if c.window == nil {
		return nil
	}
	return c.window.GetRequiredInstanceExtensions()
}

// Window returns the underlying *glfw.Window.
func (c *Context) Window() *glfw.Window {
	return c.window
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if runtime.GOOS == "darwin" {
		// keep the working directory on macOS
		glfw.InitHint(glfw.CocoaChdirResources, glfw.False)
	}
	if err := glfw.Init(); err != nil {
		tracelog.Errorf("GLFW: Failed to initialize")
		return fmt.Errorf("glfw init: %w: %w", graphics.ErrPlatformUnavailable, err)
	}
	tracelog.Infof("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	tracelog.Infof("GLFW Terminated")
}
