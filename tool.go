package pixelcanvas

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTool is returned by ParseTool for unrecognized names.
var ErrUnknownTool = errors.New("pixelcanvas: unknown tool")

// Tool selects how a cell is mutated when the pointer touches it.
type Tool int

const (
	// Pencil paints the cell with the current color.
	Pencil Tool = iota

	// Eraser unsets the cell.
	Eraser
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case Pencil:
		return "pencil"
	case Eraser:
		return "eraser"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool returns the tool with the given name, ignoring case.
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pencil", "pen":
		return Pencil, nil
	case "eraser":
		return Eraser, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Apply runs tool t on cell (x, y) of g using color c.
// It reports whether the tool ran; coordinates outside the grid and unknown
// tools leave g untouched.
func Apply(t Tool, g *Grid, x, y int, c RGBA) bool {
	if !g.InBounds(x, y) {
		return false
	}
	switch t {
	case Pencil:
		g.Set(x, y, Paint(c))
	case Eraser:
		g.Set(x, y, Unset)
	default:
		return false
	}
	return true
}
