package graphics

// Color is an RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Renderer draws frames. Only the seam exists for now; the Vulkan backend
// plugs in here.
type Renderer interface {
	BeginDrawing()
	EndDrawing()
	ClearBackground(c Color)
}

// NullRenderer draws nothing. It remembers the last clear colour and how
// many frames were completed.
type NullRenderer struct {
	Background Color
	Frames     uint64
	drawing    bool
}

func NewNullRenderer() *NullRenderer {
	return &NullRenderer{}
}

func (r *NullRenderer) BeginDrawing() { r.drawing = true }

func (r *NullRenderer) EndDrawing() {
	if r.drawing {
		r.Frames++
	}
	r.drawing = false
}

func (r *NullRenderer) ClearBackground(c Color) { r.Background = c }
