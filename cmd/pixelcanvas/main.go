// Command pixelcanvas runs a pixel drawing session in the terminal.
//
// By default it replays an input script from -script (or stdin) and prints
// the resulting grid. With -interactive it opens a full-screen session that
// draws with the mouse.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	pixelcanvas "github.com/PomegranateBlue/pixel-canvas"
	"github.com/PomegranateBlue/pixel-canvas/internal/script"
	termout "github.com/PomegranateBlue/pixel-canvas/internal/term"
	"github.com/PomegranateBlue/pixel-canvas/internal/tui"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pixelcanvas:", err)
		os.Exit(1)
	}
}

type options struct {
	config      string
	script      string
	output      string
	plain       bool
	verbose     bool
	interactive bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("pixelcanvas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.config, "config", "", "TOML config file")
	fs.StringVar(&o.script, "script", "-", "input script to replay, - for stdin")
	fs.StringVar(&o.output, "output", "", "save the rendered surface as a PNG file")
	fs.BoolVar(&o.plain, "plain", false, "print letters instead of ANSI colors")
	fs.BoolVar(&o.verbose, "v", false, "log debug output to stderr")
	fs.BoolVar(&o.interactive, "interactive", false, "draw in the terminal with the mouse")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	pixelcanvas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg := pixelcanvas.DefaultConfig()
	if o.config != "" {
		if cfg, err = pixelcanvas.LoadConfig(o.config); err != nil {
			return err
		}
	}

	pm := pixelcanvas.NewPixmap(cfg.SurfaceSize())
	ctl := cfg.NewController(pm)
	pal := cfg.NewPalette(ctl)

	if o.interactive {
		err = runInteractive(ctl, pal, pm)
	} else {
		err = runScript(o, stdin, stdout, stderr, ctl, pal, pm)
	}
	if err != nil {
		return err
	}

	if o.output != "" {
		if err := pm.SavePNG(o.output); err != nil {
			return fmt.Errorf("save %s: %w", o.output, err)
		}
	}
	return nil
}

func runScript(o options, stdin io.Reader, stdout, stderr io.Writer,
	ctl *pixelcanvas.Controller, pal *pixelcanvas.Palette, pm *pixelcanvas.Pixmap) error {
	in := stdin
	if o.script != "-" {
		f, err := os.Open(o.script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	events, err := script.Parse(in)
	if err != nil {
		return err
	}
	player := &script.Player{
		Controller: ctl,
		Palette:    pal,
		Notify: func(ev script.Event, err error) {
			fmt.Fprintf(stderr, "line %d: %v\n", ev.Line, err)
		},
	}
	player.PlayAll(events)

	if !o.plain && isTerminal(stdout) {
		w, h := ctl.Size()
		return termout.WriteANSI(stdout, termout.Sample(pm, w, h))
	}
	return termout.WritePlain(stdout, ctl.Snapshot())
}

func runInteractive(ctl *pixelcanvas.Controller, pal *pixelcanvas.Palette, pm *pixelcanvas.Pixmap) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return tui.New(screen, ctl, pal, pm).Run()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
