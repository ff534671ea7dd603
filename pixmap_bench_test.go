package pixelcanvas

import (
	"strconv"
	"testing"
)

// BenchmarkFillRectVsSetPixel compares FillRect against repeated SetPixel calls
// for one cell at common pixel sizes.
func BenchmarkFillRectVsSetPixel(b *testing.B) {
	pm := NewPixmap(1000, 1000)
	color := Red

	benchmarks := []struct {
		name string
		size int
	}{
		{"10px", 10},
		{"20px", 20},
		{"50px", 50},
	}

	for _, bm := range benchmarks {
		// Benchmark SetPixel (scalar)
		b.Run("SetPixel_"+bm.name, func(b *testing.B) {
			for b.Loop() {
				for y := 0; y < bm.size; y++ {
					for x := 0; x < bm.size; x++ {
						pm.SetPixel(x, y, color)
					}
				}
			}
		})

		// Benchmark FillRect (row copies)
		b.Run("FillRect_"+bm.name, func(b *testing.B) {
			for b.Loop() {
				pm.FillRect(0, 0, bm.size, bm.size, color)
			}
		})
	}
}

// BenchmarkBlendRect measures translucent fills used by fractional grid lines.
func BenchmarkBlendRect(b *testing.B) {
	pm := NewPixmap(1000, 1000)
	pm.Clear(White)
	color := RGBA{R: 0.8, G: 0.8, B: 0.8, A: 0.5}

	for _, n := range []int{20, 640} {
		b.Run("HLine_"+strconv.Itoa(n)+"px", func(b *testing.B) {
			for b.Loop() {
				pm.BlendRect(0, 500, n, 1, color)
			}
		})
	}
}
