package pixelcanvas

import (
	"log/slog"
	"strings"
	"sync"
)

// Controller is an editing session: it owns the grid, its undo history, the
// active tool and color, and translates host input into edits.
//
// Hosts forward their native pointer and keyboard events to the exported
// methods. A press records one history snapshot before painting, so a whole
// drag is a single undo step.
//
// Controller is safe for concurrent use; every entry point is serialized.
type Controller struct {
	mu sync.Mutex

	grid      *Grid
	history   *History
	renderer  *Renderer
	pixelSize int

	tool    Tool
	color   RGBA
	drawing bool
}

// NewController creates a session over an empty width×height grid, records
// the empty grid as the first history entry and renders it once.
func NewController(width, height int, opts ...ControllerOption) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ps := o.pixelSize
	if ps <= 0 && o.renderer != nil {
		ps = o.renderer.PixelSize()
	}
	if ps <= 0 {
		ps = DefaultPixelSize
	}

	c := &Controller{
		grid:      NewGrid(width, height),
		history:   NewHistory(o.historyLimit),
		renderer:  o.renderer,
		pixelSize: ps,
		tool:      o.tool,
		color:     o.color,
	}
	c.history.Save(c.grid)
	c.render()

	Logger().Info("controller created",
		slog.Int("width", c.grid.Width()),
		slog.Int("height", c.grid.Height()),
		slog.Int("pixelSize", ps),
		slog.Int("historyLimit", c.history.Limit()))
	return c
}

// PointerDown starts a stroke: it records a history snapshot, then applies
// the active tool at p.
func (c *Controller) PointerDown(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.drawing = true
	c.history.Save(c.grid)
	c.apply(p)
}

// PointerMove continues the current stroke, if any. No snapshot is taken.
func (c *Controller) PointerMove(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.drawing {
		c.apply(p)
	}
}

// PointerUp ends the current stroke.
func (c *Controller) PointerUp() {
	c.mu.Lock()
	c.drawing = false
	c.mu.Unlock()
}

// PointerLeave ends the current stroke when the pointer leaves the surface.
func (c *Controller) PointerLeave() {
	c.PointerUp()
}

// Undo reverts the most recent stroke and repaints. It reports whether the
// grid changed; with nothing to revert it is a no-op.
func (c *Controller) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history.Commit(c.grid)
	if !c.history.Undo(c.grid) {
		return false
	}
	c.render()
	return true
}

// Redo steps forward one history entry and repaints. It reports whether the
// grid changed; at the newest entry it is a no-op.
func (c *Controller) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history.Commit(c.grid)
	if !c.history.Redo(c.grid) {
		return false
	}
	c.render()
	return true
}

// HandleKey dispatches the conventional shortcuts: Ctrl+Z undoes and
// Ctrl+Y redoes. It reports whether the key was consumed, so hosts can
// suppress their own default handling.
func (c *Controller) HandleKey(ctrl bool, key string) bool {
	if !ctrl {
		return false
	}
	switch strings.ToLower(key) {
	case "z":
		c.Undo()
		return true
	case "y":
		c.Redo()
		return true
	}
	return false
}

// SetTool changes the tool used by subsequent pointer input.
func (c *Controller) SetTool(t Tool) {
	c.mu.Lock()
	c.tool = t
	c.mu.Unlock()
}

// Tool returns the active tool.
func (c *Controller) Tool() Tool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tool
}

// SetCurrentColor changes the color the Pencil applies.
func (c *Controller) SetCurrentColor(col RGBA) {
	c.mu.Lock()
	c.color = col
	c.mu.Unlock()
}

// CurrentColor returns the color the Pencil applies.
func (c *Controller) CurrentColor() RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

// Drawing reports whether a stroke is in progress.
func (c *Controller) Drawing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawing
}

// GridCoord maps a surface-local position to a grid coordinate. The result
// may lie outside the grid.
func (c *Controller) GridCoord(p Point) (x, y int) {
	return p.Cell(c.pixelSize)
}

// Size returns the grid dimensions.
func (c *Controller) Size() (width, height int) {
	return c.grid.Width(), c.grid.Height()
}

// PixelSize returns the side of one cell in surface pixels.
func (c *Controller) PixelSize() int {
	return c.pixelSize
}

// Get returns the cell at (x, y), or Unset when out of range.
func (c *Controller) Get(x, y int) Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Get(x, y)
}

// Snapshot returns an independent copy of the grid.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Snapshot()
}

// CanUndo reports whether Undo would change the grid.
func (c *Controller) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := c.history
	if h.Cursor() < 0 || c.grid.matches(h.entries[h.Cursor()]) {
		return h.CanUndo()
	}
	// Undo commits the live grid first; a single-entry history evicts the
	// state it would step back to.
	return h.Limit() != 1
}

// CanRedo reports whether Redo would change the grid. Edits made since the
// last history step discard the redoable future, so it is false then.
func (c *Controller) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.CanRedo() && c.grid.matches(c.history.entries[c.history.Cursor()])
}

// Render repaints the surface, e.g. after the host exposes its window.
func (c *Controller) Render() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render()
}

// apply runs the active tool at p and repaints. Positions outside the grid
// skip both.
func (c *Controller) apply(p Point) {
	x, y := p.Cell(c.pixelSize)
	if !Apply(c.tool, c.grid, x, y, c.color) {
		Logger().Debug("tool skipped", slog.String("tool", c.tool.String()), slog.Int("x", x), slog.Int("y", y))
		return
	}
	c.render()
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.grid)
	}
}
