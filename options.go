package pixelcanvas

// DefaultPixelSize is the side of one cell in surface pixels when neither a
// renderer nor WithPixelSize says otherwise.
const DefaultPixelSize = 20

// ControllerOption configures a Controller during creation.
// Use functional options to customize Controller behavior.
//
// Example:
//
//	// Headless controller, unbounded history
//	ctl := pixelcanvas.NewController(32, 32)
//
//	// Painting onto a pixmap, keeping at most 100 undo steps
//	pm := pixelcanvas.NewPixmap(640, 640)
//	r := pixelcanvas.NewRenderer(pm, 20, pixelcanvas.LineStyle{Color: pixelcanvas.Hex("#ddd"), Width: 0.5})
//	ctl := pixelcanvas.NewController(32, 32,
//	    pixelcanvas.WithRenderer(r),
//	    pixelcanvas.WithHistoryLimit(100))
type ControllerOption func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	renderer     *Renderer
	pixelSize    int
	historyLimit int
	tool         Tool
	color        RGBA
}

// defaultControllerOptions returns the default controller options.
func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		renderer:     nil, // headless: edits are not painted anywhere
		pixelSize:    0,   // taken from the renderer, else DefaultPixelSize
		historyLimit: 0,   // unbounded
		tool:         Pencil,
		color:        Black,
	}
}

// WithRenderer sets the renderer that repaints after every visible change.
// The renderer's pixel size is also used to map pointer positions to cells
// unless WithPixelSize overrides it.
func WithRenderer(r *Renderer) ControllerOption {
	return func(o *controllerOptions) {
		o.renderer = r
	}
}

// WithPixelSize sets the side of one cell in surface pixels.
func WithPixelSize(size int) ControllerOption {
	return func(o *controllerOptions) {
		o.pixelSize = size
	}
}

// WithHistoryLimit caps the number of retained undo snapshots.
// Zero or negative means unbounded.
func WithHistoryLimit(n int) ControllerOption {
	return func(o *controllerOptions) {
		o.historyLimit = n
	}
}

// WithTool sets the initially active tool.
func WithTool(t Tool) ControllerOption {
	return func(o *controllerOptions) {
		o.tool = t
	}
}

// WithColor sets the initial pencil color.
func WithColor(c RGBA) ControllerOption {
	return func(o *controllerOptions) {
		o.color = c
	}
}
