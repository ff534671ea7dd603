package pixelcanvas

import (
	"errors"
	"slices"
	"testing"
)

// colorSink records colors forwarded by a Palette.
type colorSink struct {
	got []RGBA
}

func (s *colorSink) SetCurrentColor(c RGBA) { s.got = append(s.got, c) }

func newTestPalette(sink ColorSetter) *Palette {
	cfg := DefaultConfig()
	return NewPalette(cfg.DefaultPalette, cfg.DefaultColor, 3, sink)
}

func TestNewPalette_ForwardsInitialColor(t *testing.T) {
	sink := &colorSink{}
	p := newTestPalette(sink)
	if p.Current() != "#000000" {
		t.Errorf("Current() = %q, want #000000", p.Current())
	}
	if len(sink.got) != 1 || sink.got[0] != Black {
		t.Errorf("forwarded %v, want [black]", sink.got)
	}
	if len(p.Defaults()) != 16 {
		t.Errorf("Defaults() has %d colors, want 16", len(p.Defaults()))
	}
}

func TestPalette_SelectUpdatesRecent(t *testing.T) {
	sink := &colorSink{}
	p := newTestPalette(sink)

	for _, c := range []string{"#FF0000", "#00FF00", "#ff0000", "#0000FF", "#FFFF00"} {
		if err := p.Select(c); err != nil {
			t.Fatalf("Select(%q) error = %v", c, err)
		}
	}

	// Most recent first, case-insensitive dedupe, bounded at 3.
	want := []string{"#FFFF00", "#0000FF", "#ff0000"}
	if got := p.Recent(); !slices.Equal(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
	if p.Current() != "#FFFF00" {
		t.Errorf("Current() = %q, want #FFFF00", p.Current())
	}
	if last := sink.got[len(sink.got)-1]; last != Hex("#FFFF00") {
		t.Errorf("last forwarded = %v, want yellow", last)
	}
}

func TestPalette_PickSkipsRecent(t *testing.T) {
	sink := &colorSink{}
	p := newTestPalette(sink)

	if err := p.Pick("#123456"); err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if len(p.Recent()) != 0 {
		t.Errorf("Recent() = %v, want empty after Pick", p.Recent())
	}
	if p.Current() != "#123456" || sink.got[len(sink.got)-1] != Hex("#123456") {
		t.Errorf("Pick did not set and forward the color")
	}
}

func TestPalette_InvalidColorLeavesStateUnchanged(t *testing.T) {
	sink := &colorSink{}
	p := newTestPalette(sink)

	if err := p.Select("nope"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Select(nope) error = %v, want ErrInvalidColor", err)
	}
	if err := p.AddCustom("#12"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("AddCustom(#12) error = %v, want ErrInvalidColor", err)
	}
	if p.Current() != "#000000" || len(p.Recent()) != 0 || len(p.Custom()) != 0 || len(sink.got) != 1 {
		t.Error("invalid input mutated the palette")
	}
}

func TestPalette_AddCustomRejectsDefault(t *testing.T) {
	p := newTestPalette(nil)

	for _, c := range []string{"#FF0000", "#ff0000", "#c0c0c0"} {
		if err := p.AddCustom(c); !errors.Is(err, ErrDefaultColor) {
			t.Errorf("AddCustom(%q) error = %v, want ErrDefaultColor", c, err)
		}
	}
	if len(p.Custom()) != 0 {
		t.Errorf("Custom() = %v, want empty", p.Custom())
	}
	if len(p.Recent()) != 0 {
		t.Errorf("Recent() = %v, want empty after rejection", p.Recent())
	}
}

func TestPalette_AddCustomRejectsDuplicate(t *testing.T) {
	p := newTestPalette(nil)

	if err := p.AddCustom("#ABCDEF"); err != nil {
		t.Fatalf("AddCustom() error = %v", err)
	}
	if err := p.AddCustom("#abcdef"); !errors.Is(err, ErrDuplicateColor) {
		t.Errorf("AddCustom(dup) error = %v, want ErrDuplicateColor", err)
	}
	if got := p.Custom(); !slices.Equal(got, []string{"#ABCDEF"}) {
		t.Errorf("Custom() = %v, want [#ABCDEF]", got)
	}
	if got := p.Recent(); !slices.Equal(got, []string{"#ABCDEF"}) {
		t.Errorf("Recent() = %v, want [#ABCDEF]", got)
	}
}

func TestPalette_AddCurrent(t *testing.T) {
	p := newTestPalette(nil)
	if err := p.AddCurrent(); !errors.Is(err, ErrDefaultColor) {
		t.Errorf("AddCurrent() with default black error = %v, want ErrDefaultColor", err)
	}
	_ = p.Pick("#123456")
	if err := p.AddCurrent(); err != nil {
		t.Errorf("AddCurrent() error = %v", err)
	}
	if got := p.Custom(); !slices.Equal(got, []string{"#123456"}) {
		t.Errorf("Custom() = %v", got)
	}
}

func TestPalette_RemoveCustom(t *testing.T) {
	p := newTestPalette(nil)
	_ = p.AddCustom("#111111")
	_ = p.AddCustom("#222222")
	_ = p.AddCustom("#333333")

	if p.RemoveCustom(-1) || p.RemoveCustom(3) {
		t.Error("RemoveCustom out of range = true")
	}
	if !p.RemoveCustom(1) {
		t.Fatal("RemoveCustom(1) = false")
	}
	if got := p.Custom(); !slices.Equal(got, []string{"#111111", "#333333"}) {
		t.Errorf("Custom() = %v", got)
	}
	// Removed colors can be added again.
	if err := p.AddCustom("#222222"); err != nil {
		t.Errorf("re-adding removed color error = %v", err)
	}
}

func TestPalette_DrivesController(t *testing.T) {
	c := NewController(4, 4, WithPixelSize(1))
	p := DefaultConfig().NewPalette(c)

	if err := p.Select("red"); err != nil {
		t.Fatal(err)
	}
	c.PointerDown(Pt(0, 0))
	c.PointerUp()
	if got := c.Get(0, 0); got != Paint(Red) {
		t.Errorf("Get(0, 0) = %v, want red", got)
	}
}
