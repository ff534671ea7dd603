package pixelcanvas

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if w, h := cfg.SurfaceSize(); w != 640 || h != 640 {
		t.Errorf("SurfaceSize() = %dx%d, want 640x640", w, h)
	}
}

func TestDecodeConfig_Overlay(t *testing.T) {
	const src = `
grid_width = 16
pixel_size = 10
grid_line_color = "#333"
default_palette = ["#000000", "#FFFFFF"]
history_limit = 50
`
	cfg, err := DecodeConfig(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.GridWidth != 16 || cfg.PixelSize != 10 || cfg.HistoryLimit != 50 {
		t.Errorf("decoded = %+v", cfg)
	}
	if cfg.GridHeight != 32 {
		t.Errorf("GridHeight = %d, want default 32", cfg.GridHeight)
	}
	if len(cfg.DefaultPalette) != 2 {
		t.Errorf("DefaultPalette = %v, want 2 colors", cfg.DefaultPalette)
	}
	if cfg.MaxRecentColors != DefaultMaxRecent {
		t.Errorf("MaxRecentColors = %d, want default", cfg.MaxRecentColors)
	}
}

func TestDecodeConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", `grid_depth = 3`},
		{"zero width", `grid_width = 0`},
		{"negative pixel size", `pixel_size = -1`},
		{"negative line width", `grid_line_width = -0.5`},
		{"bad line color", `grid_line_color = "#zz"`},
		{"bad palette entry", `default_palette = ["#000", "blurple"]`},
		{"zero recent", `max_recent_colors = 0`},
		{"negative history", `history_limit = -1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeConfig(strings.NewReader(tt.src)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("DecodeConfig(%q) error = %v, want ErrInvalidConfig", tt.src, err)
			}
		})
	}

	if _, err := DecodeConfig(strings.NewReader(`grid_width = "wide"`)); err == nil {
		t.Error("DecodeConfig with a type mismatch succeeded")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.toml")
	if err := os.WriteFile(path, []byte("grid_height = 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.GridHeight != 8 {
		t.Errorf("GridHeight = %d, want 8", cfg.GridHeight)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig(missing) succeeded")
	}
}

func TestConfig_NewController(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridWidth, cfg.GridHeight, cfg.PixelSize = 4, 2, 5
	cfg.DefaultColor = "#00FF00"

	pm := NewPixmap(cfg.SurfaceSize())
	c := cfg.NewController(pm)

	if w, h := c.Size(); w != 4 || h != 2 {
		t.Errorf("Size() = %dx%d, want 4x2", w, h)
	}
	c.PointerDown(Pt(7, 7))
	c.PointerUp()
	if got := c.Get(1, 1); got != Paint(Green) {
		t.Errorf("Get(1, 1) = %v, want green", got)
	}
	if got := pm.GetPixel(7, 7); got != Green {
		t.Errorf("surface pixel = %v, want green", got)
	}
	// Unpainted cells show the configured background.
	if got := pm.GetPixel(2, 2); got != White {
		t.Errorf("background pixel = %v, want white", got)
	}

	if headless := cfg.NewController(nil); headless.PixelSize() != 5 {
		t.Errorf("headless PixelSize() = %d, want 5", headless.PixelSize())
	}
}

func TestConfig_NamedColors(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(`
grid_width = 2
grid_height = 1
pixel_size = 4
grid_line_width = 0
background = "ivory"
default_color = "navy"
`))
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	pm := NewPixmap(cfg.SurfaceSize())
	c := cfg.NewController(pm)

	if got, want := pm.GetPixel(1, 1), Hex("#FFFFF0"); got != want {
		t.Errorf("background = %v, want ivory %v", got, want)
	}
	if got, want := c.CurrentColor(), Hex("#000080"); got != want {
		t.Errorf("CurrentColor() = %v, want navy %v", got, want)
	}
}
