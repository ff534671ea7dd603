// Package script parses and replays line-oriented input scripts, a host
// that drives a pixelcanvas session without a window.
//
// Each non-empty line is one event; '#' starts a comment:
//
//	down 105 115      # pointer pressed at surface pixel (105, 115)
//	move 125 115
//	up
//	leave
//	undo              # same as "key ctrl+z"
//	redo
//	key ctrl+y
//	tool eraser
//	select #FF0000    # palette selection (recorded as recent)
//	pick navy         # color picker (not recorded)
//	custom #123456    # add a custom color; without argument adds the current one
//	uncustom 0        # remove custom color by index
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	pixelcanvas "github.com/PomegranateBlue/pixel-canvas"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("script: syntax error")

// Kind identifies an event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Leave
	Undo
	Redo
	Key
	SetTool
	Select
	Pick
	Custom
	Uncustom
)

var kindNames = map[string]Kind{
	"down":     Down,
	"move":     Move,
	"up":       Up,
	"leave":    Leave,
	"undo":     Undo,
	"redo":     Redo,
	"key":      Key,
	"tool":     SetTool,
	"select":   Select,
	"pick":     Pick,
	"custom":   Custom,
	"uncustom": Uncustom,
}

// String returns the script keyword for k.
func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one parsed script line.
type Event struct {
	Line  int
	Kind  Kind
	Pos   pixelcanvas.Point // Down, Move
	Ctrl  bool              // Key
	Key   string            // Key
	Tool  pixelcanvas.Tool  // SetTool
	Color string            // Select, Pick, Custom (empty: current color)
	Index int               // Uncustom
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("script: line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}

// Parse reads every event from r. It stops at the first malformed line.
func Parse(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		fields := fields(text)
		if len(fields) == 0 {
			continue
		}
		ev, err := parseFields(fields)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		ev.Line = line
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return events, nil
}

// fields splits a line and drops a trailing comment. A '#' that starts a
// color argument is not a comment.
func fields(text string) []string {
	var out []string
	for _, f := range strings.Fields(text) {
		if strings.HasPrefix(f, "#") && !(len(out) == 1 && len(f) > 1 && takesColor(out[0])) {
			break
		}
		out = append(out, f)
	}
	return out
}

func takesColor(keyword string) bool {
	switch strings.ToLower(keyword) {
	case "select", "pick", "custom":
		return true
	}
	return false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func parseFields(f []string) (Event, error) {
	kind, ok := kindNames[strings.ToLower(f[0])]
	if !ok {
		return Event{}, fmt.Errorf("unknown command %q", f[0])
	}
	ev := Event{Kind: kind}
	args := f[1:]

	switch kind {
	case Down, Move:
		if len(args) != 2 {
			return Event{}, fmt.Errorf("%s needs X Y", kind)
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Event{}, fmt.Errorf("bad X: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Event{}, fmt.Errorf("bad Y: %w", err)
		}
		if !finite(x) || !finite(y) {
			return Event{}, fmt.Errorf("%s needs finite X Y", kind)
		}
		ev.Pos = pixelcanvas.Pt(x, y)
	case Up, Leave, Undo, Redo:
		if len(args) != 0 {
			return Event{}, fmt.Errorf("%s takes no arguments", kind)
		}
	case Key:
		if len(args) != 1 {
			return Event{}, errors.New("key needs one chord, e.g. ctrl+z")
		}
		chord := strings.ToLower(args[0])
		if rest, found := strings.CutPrefix(chord, "ctrl+"); found {
			ev.Ctrl, chord = true, rest
		}
		if chord == "" {
			return Event{}, errors.New("empty key")
		}
		ev.Key = chord
	case SetTool:
		if len(args) != 1 {
			return Event{}, errors.New("tool needs a name")
		}
		t, err := pixelcanvas.ParseTool(args[0])
		if err != nil {
			return Event{}, err
		}
		ev.Tool = t
	case Select, Pick:
		if len(args) != 1 {
			return Event{}, fmt.Errorf("%s needs a color", kind)
		}
		ev.Color = args[0]
	case Custom:
		if len(args) > 1 {
			return Event{}, errors.New("custom takes at most one color")
		}
		if len(args) == 1 {
			ev.Color = args[0]
		}
	case Uncustom:
		if len(args) != 1 {
			return Event{}, errors.New("uncustom needs an index")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return Event{}, fmt.Errorf("bad index: %w", err)
		}
		ev.Index = i
	}
	return ev, nil
}

// Player replays events against a session.
type Player struct {
	Controller *pixelcanvas.Controller
	Palette    *pixelcanvas.Palette

	// Notify receives user-facing rejections (invalid or duplicate colors).
	// They never stop the replay. Nil discards them.
	Notify func(Event, error)
}

// PlayAll replays events in order.
func (p *Player) PlayAll(events []Event) {
	for _, ev := range events {
		p.Play(ev)
	}
}

// Play applies one event.
func (p *Player) Play(ev Event) {
	c := p.Controller
	var err error
	switch ev.Kind {
	case Down:
		c.PointerDown(ev.Pos)
	case Move:
		c.PointerMove(ev.Pos)
	case Up:
		c.PointerUp()
	case Leave:
		c.PointerLeave()
	case Undo:
		c.Undo()
	case Redo:
		c.Redo()
	case Key:
		c.HandleKey(ev.Ctrl, ev.Key)
	case SetTool:
		c.SetTool(ev.Tool)
	case Select:
		err = p.Palette.Select(ev.Color)
	case Pick:
		err = p.Palette.Pick(ev.Color)
	case Custom:
		if ev.Color == "" {
			err = p.Palette.AddCurrent()
		} else {
			err = p.Palette.AddCustom(ev.Color)
		}
	case Uncustom:
		p.Palette.RemoveCustom(ev.Index)
	}
	if err == nil {
		return
	}
	pixelcanvas.Logger().Warn("script event rejected",
		slog.Int("line", ev.Line), slog.String("event", ev.Kind.String()), slog.String("err", err.Error()))
	if p.Notify != nil {
		p.Notify(ev, err)
	}
}
