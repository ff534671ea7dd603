package pixelcanvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
)

// Verify at compile time that Pixmap satisfies the surface and image contracts.
var (
	_ Surface           = (*Pixmap)(nil)
	_ draw.Image        = (*Pixmap)(nil)
	_ image.RGBA64Image = (*Pixmap)(nil)
)

// Pixmap is a rectangular CPU pixel buffer and the default render Surface.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // straight-alpha RGBA, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	n := c.Color()
	i := (y*p.width + x) * 4
	p.data[i+0] = n.R
	p.data[i+1] = n.G
	p.data[i+2] = n.B
	p.data[i+3] = n.A
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return fromNRGBA(color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	n := c.Color()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = n.R
		p.data[i+1] = n.G
		p.data[i+2] = n.B
		p.data[i+3] = n.A
	}
}

// FillRect replaces the pixels of the rectangle with c, clipped to the pixmap.
func (p *Pixmap) FillRect(x, y, w, h int, c RGBA) {
	r := p.clip(x, y, w, h)
	if r.Empty() {
		return
	}
	n := c.Color()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		i := (py*p.width + r.Min.X) * 4
		for px := r.Min.X; px < r.Max.X; px++ {
			p.data[i+0] = n.R
			p.data[i+1] = n.G
			p.data[i+2] = n.B
			p.data[i+3] = n.A
			i += 4
		}
	}
}

// BlendRect composites c over the pixels of the rectangle, clipped to the
// pixmap.
func (p *Pixmap) BlendRect(x, y, w, h int, c RGBA) {
	if c.A >= 1 {
		p.FillRect(x, y, w, h, c)
		return
	}
	r := p.clip(x, y, w, h)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			p.SetPixel(px, py, c.Over(p.GetPixel(px, py)))
		}
	}
}

// HLine draws a horizontal line centered on row y from x0 to x1 (exclusive).
func (p *Pixmap) HLine(x0, x1, y int, style LineStyle) {
	t, c := style.raster()
	p.BlendRect(x0, p.lineStart(y, t, p.height), x1-x0, t, c)
}

// VLine draws a vertical line centered on column x from y0 to y1 (exclusive).
func (p *Pixmap) VLine(x, y0, y1 int, style LineStyle) {
	t, c := style.raster()
	p.BlendRect(p.lineStart(x, t, p.width), y0, t, y1-y0, c)
}

// lineStart returns the first pixel of a line of thickness t centered on
// pos. Lines on the far edge are pulled inside so borders stay visible.
func (p *Pixmap) lineStart(pos, t, extent int) int {
	start := pos - t/2
	if start+t > extent {
		start = extent - t
	}
	return max(start, 0)
}

func (p *Pixmap) clip(x, y, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+w, y+h).Intersect(p.Bounds())
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// RGBA64At implements the image.RGBA64Image interface. Scalers in
// golang.org/x/image/draw read sources through it.
func (p *Pixmap) RGBA64At(x, y int) color.RGBA64 {
	r, g, b, a := p.GetPixel(x, y).Color().RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// LineStyle describes how grid lines are stroked.
type LineStyle struct {
	Color RGBA
	Width float64
}

// raster returns the pixel thickness and effective color of the style.
// Fractional widths round up to whole pixels with proportionally reduced
// alpha, so a 0.5 wide line is one pixel at half opacity.
func (s LineStyle) raster() (int, RGBA) {
	if s.Width <= 0 {
		return 0, s.Color
	}
	t := int(math.Ceil(s.Width))
	c := s.Color
	c.A *= s.Width / float64(t)
	return t, c
}
