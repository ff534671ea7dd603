// Package pixelcanvas provides a grid-based raster drawing surface with
// linear undo/redo history and a color palette.
//
// # Overview
//
// A fixed-size Grid holds one optional color per cell. A Renderer paints the
// painted cells and the grid lines onto a Surface (Pixmap is the built-in
// CPU implementation). A History keeps an ordered log of grid snapshots
// with a cursor; saving after an undo prunes the redoable future, so the
// history is strictly linear.
//
// Controller ties these together as one editing session. Hosts (a terminal
// UI, a native window, a test) forward pointer and keyboard events to it:
//
//	pm := pixelcanvas.NewPixmap(640, 640)
//	r := pixelcanvas.NewRenderer(pm, 20, pixelcanvas.LineStyle{Color: pixelcanvas.Hex("#ddd"), Width: 0.5})
//	ctl := pixelcanvas.NewController(32, 32, pixelcanvas.WithRenderer(r))
//
//	ctl.SetCurrentColor(pixelcanvas.Red)
//	ctl.PointerDown(pixelcanvas.Pt(105, 115)) // paints cell (5, 5)
//	ctl.PointerMove(pixelcanvas.Pt(125, 115)) // same stroke, cell (6, 5)
//	ctl.PointerUp()
//	ctl.HandleKey(true, "z")                  // Ctrl+Z
//
// # Permissive Coordinates
//
// Out-of-range coordinates are never an error: writes are ignored, reads
// return Unset, and undo or redo at either end of the history is a no-op.
// Hosts do not need to clamp pointer positions.
//
// # Configuration
//
// Config carries the static startup settings (grid size, pixel size, grid
// line style, default palette, recent-colors bound, history limit) and can
// be loaded from TOML with LoadConfig.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package pixelcanvas
