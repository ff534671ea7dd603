package pixelcanvas

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("pixelcanvas: invalid config")

// Config is the static startup configuration of an editing session.
// It is read once; nothing in the core changes it at runtime.
type Config struct {
	GridWidth       int      `toml:"grid_width"`
	GridHeight      int      `toml:"grid_height"`
	PixelSize       int      `toml:"pixel_size"`
	GridLineColor   string   `toml:"grid_line_color"`
	GridLineWidth   float64  `toml:"grid_line_width"`
	Background      string   `toml:"background"`
	DefaultPalette  []string `toml:"default_palette"`
	DefaultColor    string   `toml:"default_color"`
	MaxRecentColors int      `toml:"max_recent_colors"`
	HistoryLimit    int      `toml:"history_limit"`
}

// DefaultConfig returns a 32×32 grid of 20 pixel cells with light half-pixel
// grid lines and the classic 16-color palette.
func DefaultConfig() Config {
	return Config{
		GridWidth:     32,
		GridHeight:    32,
		PixelSize:     DefaultPixelSize,
		GridLineColor: "#ddd",
		GridLineWidth: 0.5,
		Background:    "#FFFFFF",
		DefaultPalette: []string{
			"#000000", "#FFFFFF", "#FF0000", "#00FF00",
			"#0000FF", "#FFFF00", "#FF00FF", "#00FFFF",
			"#C0C0C0", "#808080", "#800000", "#808000",
			"#008000", "#800080", "#008080", "#000080",
		},
		DefaultColor:    "#000000",
		MaxRecentColors: DefaultMaxRecent,
		HistoryLimit:    0,
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("pixelcanvas: load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("pixelcanvas: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	Logger().Info("config loaded", slog.String("path", path))
	return cfg, nil
}

// DecodeConfig reads TOML from r over DefaultConfig and validates the result.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("pixelcanvas: decode config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("pixelcanvas: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(names, ", "))
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.GridWidth <= 0 || c.GridHeight <= 0:
		return fmt.Errorf("%w: grid size %dx%d (both must be > 0)", ErrInvalidConfig, c.GridWidth, c.GridHeight)
	case c.PixelSize <= 0:
		return fmt.Errorf("%w: pixel_size %d (must be > 0)", ErrInvalidConfig, c.PixelSize)
	case c.GridLineWidth < 0:
		return fmt.Errorf("%w: grid_line_width %g (must be >= 0)", ErrInvalidConfig, c.GridLineWidth)
	case c.MaxRecentColors <= 0:
		return fmt.Errorf("%w: max_recent_colors %d (must be > 0)", ErrInvalidConfig, c.MaxRecentColors)
	case c.HistoryLimit < 0:
		return fmt.Errorf("%w: history_limit %d (must be >= 0)", ErrInvalidConfig, c.HistoryLimit)
	}
	for _, field := range []struct{ name, value string }{
		{"grid_line_color", c.GridLineColor},
		{"background", c.Background},
		{"default_color", c.DefaultColor},
	} {
		if _, err := ParseColor(field.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field.name, err)
		}
	}
	for i, s := range c.DefaultPalette {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%w: default_palette[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// SurfaceSize returns the pixel size of a surface that fits the grid.
func (c Config) SurfaceSize() (width, height int) {
	return c.GridWidth * c.PixelSize, c.GridHeight * c.PixelSize
}

// NewRenderer creates a renderer for s styled by c.
func (c Config) NewRenderer(s Surface) *Renderer {
	r := NewRenderer(s, c.PixelSize, LineStyle{Color: colorOr(c.GridLineColor, Black), Width: c.GridLineWidth})
	r.SetBackground(colorOr(c.Background, White))
	return r
}

// NewController creates a session sized and styled by c that renders onto
// s, which may be nil for a headless session. Extra options apply last.
func (c Config) NewController(s Surface, opts ...ControllerOption) *Controller {
	base := []ControllerOption{
		WithPixelSize(c.PixelSize),
		WithHistoryLimit(c.HistoryLimit),
		WithColor(colorOr(c.DefaultColor, Black)),
	}
	if s != nil {
		base = append(base, WithRenderer(c.NewRenderer(s)))
	}
	return NewController(c.GridWidth, c.GridHeight, slices.Concat(base, opts)...)
}

// NewPalette creates a palette from c that forwards selections to setter.
func (c Config) NewPalette(setter ColorSetter) *Palette {
	return NewPalette(c.DefaultPalette, c.DefaultColor, c.MaxRecentColors, setter)
}

// colorOr parses s, falling back to def for values Validate would reject.
func colorOr(s string, def RGBA) RGBA {
	if c, err := ParseColor(s); err == nil {
		return c
	}
	return def
}
