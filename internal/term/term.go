// Package term prints a pixelcanvas session to a character terminal.
package term

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"

	xdraw "golang.org/x/image/draw"

	pixelcanvas "github.com/PomegranateBlue/pixel-canvas"
)

const (
	csi   = "\x1b["
	reset = csi + "0m"
)

// Sample scales src down to cols x rows texels, taking the pixel nearest to
// each texel center. For a rendered surface sampled at grid resolution that
// is the middle of every cell, clear of the grid lines.
func Sample(src image.Image, cols, rows int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, max(cols, 0), max(rows, 0)))
	if cols <= 0 || rows <= 0 || src.Bounds().Empty() {
		return dst
	}
	// The scalers only read sources that implement image.RGBA64Image.
	if _, ok := src.(image.RGBA64Image); !ok {
		tmp := image.NewNRGBA(src.Bounds())
		xdraw.Draw(tmp, tmp.Bounds(), src, src.Bounds().Min, xdraw.Src)
		src = tmp
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// WriteANSI writes img as 24-bit background colored blocks, two columns per
// texel so that cells come out roughly square. Fully transparent texels are
// written as plain spaces.
func WriteANSI(w io.Writer, img *image.NRGBA) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A == 0 {
				bw.WriteString(reset + "  ")
				continue
			}
			bw.WriteString(csi + "48;2;" +
				strconv.Itoa(int(c.R)) + ";" +
				strconv.Itoa(int(c.G)) + ";" +
				strconv.Itoa(int(c.B)) + "m  ")
		}
		bw.WriteString(reset + "\n")
	}
	return bw.Flush()
}

// legendRunes label distinct colors in WritePlain output.
const legendRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// WritePlain writes s as text: '.' for unset cells and one letter per
// distinct color, followed by a legend mapping letters to hex colors.
// Colors beyond the available letters share '?'.
func WritePlain(w io.Writer, s pixelcanvas.Snapshot) error {
	bw := bufio.NewWriter(w)
	labels := make(map[pixelcanvas.RGBA]byte)
	var order []pixelcanvas.RGBA

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.At(x, y)
			if !cell.Valid {
				bw.WriteByte('.')
				continue
			}
			label, ok := labels[cell.Color]
			if !ok {
				label = '?'
				if len(order) < len(legendRunes) {
					label = legendRunes[len(order)]
				}
				labels[cell.Color] = label
				order = append(order, cell.Color)
			}
			bw.WriteByte(label)
		}
		bw.WriteByte('\n')
	}
	for _, c := range order {
		fmt.Fprintf(bw, "%c %s\n", labels[c], c.Hex())
	}
	return bw.Flush()
}
