package pixelcanvas

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	g := NewGrid(4, 4)

	if !Apply(Pencil, g, 1, 2, Red) {
		t.Fatal("Apply(Pencil) in bounds = false")
	}
	if got := g.Get(1, 2); got != Paint(Red) {
		t.Errorf("after pencil Get(1, 2) = %v, want red", got)
	}

	if !Apply(Eraser, g, 1, 2, Blue) {
		t.Fatal("Apply(Eraser) in bounds = false")
	}
	if got := g.Get(1, 2); got != Unset {
		t.Errorf("after eraser Get(1, 2) = %v, want Unset", got)
	}
}

func TestApply_Skips(t *testing.T) {
	tests := []struct {
		name string
		tool Tool
		x, y int
	}{
		{"left", Pencil, -1, 0},
		{"right", Pencil, 4, 0},
		{"below", Eraser, 0, 4},
		{"unknown tool", Tool(99), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(4, 4)
			g.Set(0, 0, Paint(Green))
			if Apply(tt.tool, g, tt.x, tt.y, Red) {
				t.Errorf("Apply(%v, %d, %d) = true, want false", tt.tool, tt.x, tt.y)
			}
			if got := g.Get(0, 0); got != Paint(Green) {
				t.Errorf("grid mutated: Get(0, 0) = %v", got)
			}
		})
	}
}

func TestParseTool(t *testing.T) {
	tests := []struct {
		in   string
		want Tool
	}{
		{"pencil", Pencil},
		{"Pen", Pencil},
		{" ERASER ", Eraser},
	}
	for _, tt := range tests {
		got, err := ParseTool(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseTool(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseTool("bucket"); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("ParseTool(bucket) error = %v, want ErrUnknownTool", err)
	}
}

func TestTool_String(t *testing.T) {
	if Pencil.String() != "pencil" || Eraser.String() != "eraser" {
		t.Errorf("String() = %q, %q", Pencil.String(), Eraser.String())
	}
	if got := Tool(7).String(); got != "Tool(7)" {
		t.Errorf("Tool(7).String() = %q", got)
	}
}
