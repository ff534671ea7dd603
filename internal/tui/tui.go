// Package tui hosts a pixelcanvas session in a terminal using tcell.
//
// Each grid cell is drawn two columns wide so cells look roughly square.
// The left mouse button draws; hotkeys:
//
//	Ctrl+Z / Ctrl+Y   undo / redo
//	p / e             pencil / eraser
//	1-9, 0            select default palette colors 1 through 10
//	a                 add the current color to the custom colors
//	q, Esc, Ctrl+C    quit
package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/gdamore/tcell/v2"

	pixelcanvas "github.com/PomegranateBlue/pixel-canvas"
	"github.com/PomegranateBlue/pixel-canvas/internal/term"
)

// App drives a controller and palette from tcell events and draws the
// rendered surface back to the screen.
type App struct {
	screen  tcell.Screen
	ctl     *pixelcanvas.Controller
	palette *pixelcanvas.Palette
	surface image.Image

	pressed bool // left button held
	inside  bool // pointer over the grid
	status  string
	failed  bool // status reports an error

	styleStatus tcell.Style
	styleError  tcell.Style
}

// New creates an App. The screen must already be initialized; surface is
// the image the controller renders onto.
func New(screen tcell.Screen, ctl *pixelcanvas.Controller, palette *pixelcanvas.Palette, surface image.Image) *App {
	return &App{
		screen:      screen,
		ctl:         ctl,
		palette:     palette,
		surface:     surface,
		styleStatus: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
		styleError:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon),
	}
}

// Run draws the session and processes events until the user quits or the
// screen is finalized.
func (a *App) Run() error {
	a.screen.EnableMouse()
	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.HandleEvent(ev) {
			return nil
		}
		a.Draw()
	}
}

// HandleEvent applies one event and reports whether the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	sx, sy := ev.Position()
	gw, gh := a.ctl.Size()
	inside := sx >= 0 && sx < gw*2 && sy >= 0 && sy < gh
	p := a.point(sx, sy)

	if a.inside && !inside {
		a.ctl.PointerLeave()
	}
	a.inside = inside

	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !a.pressed:
		a.pressed = true
		if inside {
			a.ctl.PointerDown(p)
		}
	case down:
		if inside {
			a.ctl.PointerMove(p)
		}
	case a.pressed:
		a.pressed = false
		a.ctl.PointerUp()
	}
}

// point maps a screen cell to the surface pixel at the center of the grid
// cell it shows.
func (a *App) point(sx, sy int) pixelcanvas.Point {
	ps := float64(a.ctl.PixelSize())
	return pixelcanvas.Pt((float64(sx)+0.5)*ps/2, (float64(sy)+0.5)*ps)
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlZ:
		a.ctl.HandleKey(true, "z")
	case tcell.KeyCtrlY:
		a.ctl.HandleKey(true, "y")
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return false
}

func (a *App) handleRune(r rune) bool {
	a.status, a.failed = "", false
	switch {
	case r == 'q':
		return true
	case r == 'p':
		a.ctl.SetTool(pixelcanvas.Pencil)
	case r == 'e':
		a.ctl.SetTool(pixelcanvas.Eraser)
	case r == 'a':
		if err := a.palette.AddCurrent(); err != nil {
			a.status, a.failed = err.Error(), true
		} else {
			a.status = "added " + a.palette.Current()
		}
	case r >= '0' && r <= '9':
		i := int(r - '1')
		if r == '0' {
			i = 9
		}
		defaults := a.palette.Defaults()
		if i < len(defaults) {
			if err := a.palette.Select(defaults[i]); err != nil {
				a.status, a.failed = err.Error(), true
			}
		}
	}
	return false
}

// Draw paints the grid and the status line and shows the screen.
func (a *App) Draw() {
	a.screen.Clear()
	gw, gh := a.ctl.Size()
	img := term.Sample(a.surface, gw, gh)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			a.screen.SetContent(2*x, y, ' ', nil, st)
			a.screen.SetContent(2*x+1, y, ' ', nil, st)
		}
	}

	undo, redo := "-", "-"
	if a.ctl.CanUndo() {
		undo = "undo"
	}
	if a.ctl.CanRedo() {
		redo = "redo"
	}
	line := fmt.Sprintf(" %s  %s  %s %s  recent: %s ",
		a.ctl.Tool(), a.palette.Current(), undo, redo, strings.Join(a.palette.Recent(), " "))
	a.puts(0, gh, line, a.styleStatus)
	if a.status != "" {
		st := a.styleStatus
		if a.failed {
			st = a.styleError
		}
		a.puts(0, gh+1, " "+a.status+" ", st)
	}
	a.screen.Show()
}

func (a *App) puts(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
