package pixelcanvas

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrDefaultColor is returned when adding a custom color that is already
	// part of the fixed default palette.
	ErrDefaultColor = errors.New("pixelcanvas: color is in the default palette")

	// ErrDuplicateColor is returned when adding a custom color twice.
	ErrDuplicateColor = errors.New("pixelcanvas: color is already a custom color")
)

// DefaultMaxRecent is the recent-colors bound used when none is configured.
const DefaultMaxRecent = 8

// ColorSetter receives the color the pencil should apply.
// Controller implements it.
type ColorSetter interface {
	SetCurrentColor(RGBA)
}

// Palette tracks the current color, a bounded most-recent-first list of
// used colors and the user's custom colors. Colors are kept in the textual
// form they were given; comparisons are case-insensitive.
//
// Palette is not safe for concurrent use.
type Palette struct {
	defaults  []string
	custom    []string
	recent    []string
	current   string
	maxRecent int
	setter    ColorSetter
	fold      cases.Caser
}

// NewPalette creates a palette over the fixed default colors. The initial
// current color is forwarded to setter, which may be nil.
func NewPalette(defaults []string, current string, maxRecent int, setter ColorSetter) *Palette {
	if maxRecent <= 0 {
		maxRecent = DefaultMaxRecent
	}
	p := &Palette{
		defaults:  slices.Clone(defaults),
		current:   current,
		maxRecent: maxRecent,
		setter:    setter,
		fold:      cases.Fold(),
	}
	if c, err := ParseColor(current); err == nil && setter != nil {
		setter.SetCurrentColor(c)
	}
	return p
}

// Defaults returns the fixed default palette.
func (p *Palette) Defaults() []string {
	return slices.Clone(p.defaults)
}

// Custom returns the user-added colors in insertion order.
func (p *Palette) Custom() []string {
	return slices.Clone(p.custom)
}

// Recent returns recently used colors, most recent first.
func (p *Palette) Recent() []string {
	return slices.Clone(p.recent)
}

// Current returns the current color.
func (p *Palette) Current() string {
	return p.current
}

// Select makes color current, records it as recently used and forwards it
// to the setter.
func (p *Palette) Select(color string) error {
	if err := p.setCurrent(color); err != nil {
		return err
	}
	p.pushRecent(p.current)
	return nil
}

// Pick makes color current without recording it as recently used, the
// behavior of a continuous color picker.
func (p *Palette) Pick(color string) error {
	return p.setCurrent(color)
}

// AddCustom adds color to the custom colors and records it as recently
// used. Colors already in the default palette or already added are
// rejected and leave the palette unchanged.
func (p *Palette) AddCustom(color string) error {
	color = strings.TrimSpace(color)
	if _, err := ParseColor(color); err != nil {
		return err
	}
	if p.contains(p.defaults, color) {
		Logger().Warn("custom color rejected", slog.String("color", color), slog.String("reason", "default"))
		return fmt.Errorf("%w: %s", ErrDefaultColor, color)
	}
	if p.contains(p.custom, color) {
		Logger().Warn("custom color rejected", slog.String("color", color), slog.String("reason", "duplicate"))
		return fmt.Errorf("%w: %s", ErrDuplicateColor, color)
	}
	p.custom = append(p.custom, color)
	p.pushRecent(color)
	return nil
}

// AddCurrent adds the current color to the custom colors.
func (p *Palette) AddCurrent() error {
	return p.AddCustom(p.current)
}

// RemoveCustom removes the custom color at index i and reports whether one
// was removed. Out-of-range indices are a no-op.
func (p *Palette) RemoveCustom(i int) bool {
	if i < 0 || i >= len(p.custom) {
		return false
	}
	p.custom = slices.Delete(p.custom, i, i+1)
	return true
}

func (p *Palette) setCurrent(color string) error {
	color = strings.TrimSpace(color)
	c, err := ParseColor(color)
	if err != nil {
		return err
	}
	p.current = color
	if p.setter != nil {
		p.setter.SetCurrentColor(c)
	}
	return nil
}

func (p *Palette) pushRecent(color string) {
	if i := p.index(p.recent, color); i >= 0 {
		p.recent = slices.Delete(p.recent, i, i+1)
	}
	p.recent = slices.Insert(p.recent, 0, color)
	if len(p.recent) > p.maxRecent {
		p.recent = p.recent[:p.maxRecent]
	}
}

func (p *Palette) contains(list []string, color string) bool {
	return p.index(list, color) >= 0
}

func (p *Palette) index(list []string, color string) int {
	key := p.fold.String(color)
	return slices.IndexFunc(list, func(s string) bool {
		return p.fold.String(s) == key
	})
}
