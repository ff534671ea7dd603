package pixelcanvas

// Cell is one addressable unit of a Grid. The zero Cell is unset and renders
// as background.
type Cell struct {
	Color RGBA
	Valid bool
}

// Unset is the sentinel for a cell holding no color.
var Unset = Cell{}

// Paint returns a cell painted with c.
func Paint(c RGBA) Cell {
	return Cell{Color: c, Valid: true}
}

// Grid is a fixed-size matrix of optionally colored cells.
//
// Every accessor is bounds-checked: writes outside [0,width)×[0,height) are
// ignored and reads there return Unset. Grid is not safe for concurrent use;
// Controller serializes access for hosts that need it.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major, len == width*height
}

// NewGrid creates a grid with every cell unset.
// Non-positive dimensions produce an empty grid in which every coordinate
// is out of range.
func NewGrid(width, height int) *Grid {
	width, height = max(width, 0), max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of g.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set stores c at (x, y). Out-of-range coordinates are a no-op.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Get returns the cell at (x, y), or Unset when out of range.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Unset
	}
	return g.cells[y*g.width+x]
}

// Clear unsets every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Painted returns the number of cells holding a color.
func (g *Grid) Painted() int {
	n := 0
	for _, c := range g.cells {
		if c.Valid {
			n++
		}
	}
	return n
}

// Snapshot returns an independent copy of every cell.
func (g *Grid) Snapshot() Snapshot {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{width: g.width, height: g.height, cells: cells}
}

// Restore overwrites every cell from s.
//
// Snapshots normally come from this grid's own history and match its
// dimensions. When they don't, the overlapping region is copied and the
// remaining cells are unset.
func (g *Grid) Restore(s Snapshot) {
	if s.width == g.width && s.height == g.height {
		copy(g.cells, s.cells)
		return
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y*g.width+x] = s.At(x, y)
		}
	}
}

// matches reports whether g currently holds exactly the cells of s.
func (g *Grid) matches(s Snapshot) bool {
	if s.width != g.width || s.height != g.height {
		return false
	}
	for i, c := range g.cells {
		if c != s.cells[i] {
			return false
		}
	}
	return true
}

// Snapshot is an immutable copy of a Grid's cells at one instant.
// It never aliases the grid it was taken from.
type Snapshot struct {
	width  int
	height int
	cells  []Cell
}

// Width returns the number of columns captured.
func (s Snapshot) Width() int {
	return s.width
}

// Height returns the number of rows captured.
func (s Snapshot) Height() int {
	return s.height
}

// At returns the captured cell at (x, y), or Unset when out of range.
func (s Snapshot) At(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Unset
	}
	return s.cells[y*s.width+x]
}
