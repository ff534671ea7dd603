package pixelcanvas

import "math"

// Point is a surface-local pointer position in pixels.
// Hosts subtract the surface origin from their native event coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cell returns the grid coordinate containing p for cells of side
// pixelSize, flooring toward negative infinity. The result is not clamped
// and may lie outside the grid. Non-finite positions and cells beyond the
// int32 range map to (-1, -1).
func (p Point) Cell(pixelSize int) (x, y int) {
	ps := float64(max(pixelSize, 1))
	fx, fy := math.Floor(p.X/ps), math.Floor(p.Y/ps)
	if !inCellRange(fx) || !inCellRange(fy) {
		return -1, -1
	}
	return int(fx), int(fy)
}

// inCellRange is false for NaN.
func inCellRange(f float64) bool {
	return f >= math.MinInt32 && f <= math.MaxInt32
}
