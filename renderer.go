package pixelcanvas

// Surface is a 2D drawing target the Renderer paints onto.
// Pixmap is the built-in implementation; hosts may supply their own.
type Surface interface {
	// Width and Height report the surface size in pixels.
	Width() int
	Height() int

	// Clear fills the whole surface with c.
	Clear(c RGBA)

	// FillRect replaces the pixels of the rectangle with c.
	FillRect(x, y, w, h int, c RGBA)

	// HLine and VLine stroke axis-aligned lines centered on the given row
	// or column.
	HLine(x0, x1, y int, style LineStyle)
	VLine(x, y0, y1 int, style LineStyle)
}

// Renderer paints a Grid onto a Surface: painted cells as filled squares of
// side pixelSize, then grid lines on every cell boundary.
//
// Every call is a full repaint. Unset cells are not painted and show the
// background.
type Renderer struct {
	surface    Surface
	pixelSize  int
	lines      LineStyle
	background RGBA
}

// NewRenderer creates a renderer targeting s. Non-positive pixel sizes are
// treated as 1.
func NewRenderer(s Surface, pixelSize int, lines LineStyle) *Renderer {
	return &Renderer{
		surface:    s,
		pixelSize:  max(pixelSize, 1),
		lines:      lines,
		background: Transparent,
	}
}

// SetBackground sets the color the surface is cleared to before painting.
func (r *Renderer) SetBackground(c RGBA) {
	r.background = c
}

// Surface returns the render target.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// PixelSize returns the side of one cell in surface pixels.
func (r *Renderer) PixelSize() int {
	return r.pixelSize
}

// Render repaints the whole surface from g.
func (r *Renderer) Render(g *Grid) {
	s, ps := r.surface, r.pixelSize
	s.Clear(r.background)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c := g.Get(x, y); c.Valid {
				s.FillRect(x*ps, y*ps, ps, ps, c.Color)
			}
		}
	}

	if r.lines.Width <= 0 {
		return
	}
	w, h := s.Width(), s.Height()
	for x := 0; x <= g.Width(); x++ {
		s.VLine(x*ps, 0, h, r.lines)
	}
	for y := 0; y <= g.Height(); y++ {
		s.HLine(0, w, y*ps, r.lines)
	}
}
