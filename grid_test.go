package terrainver

import (
	"image"
	"image/color"
	"testing"
)

func TestGridChannelAt(t *testing.T) {
	g := NewGrid(3, 2, []uint8{
		10, 20, 30,
		40, 50, 60,
	})

	if got := g.ChannelAt(1, 1); got != 50 {
		t.Errorf("ChannelAt(1, 1) = %d, expected 50", got)
	}
	if got := g.ChannelAt(2, 0); got != 30 {
		t.Errorf("ChannelAt(2, 0) = %d, expected 30", got)
	}
}

func TestGridChannelAtOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2, []uint8{255, 255, 255, 255})

	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1, -1}} {
		if got := g.ChannelAt(p.X, p.Y); got != 0 {
			t.Errorf("ChannelAt(%d, %d) = %d, expected 0 outside the grid", p.X, p.Y, got)
		}
	}
}

func TestGridFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 150, B: 100, A: 255})

	for channel, expected := range []uint8{200, 150, 100, 255} {
		g := GridFromImage(img, channel)
		if got := g.ChannelAt(1, 1); got != expected {
			t.Errorf("channel %d at (1,1) = %d, expected %d", channel, got, expected)
		}
	}

	if got := GridFromImage(img, 1).ChannelAt(0, 0); got != 2 {
		t.Errorf("channel 1 at (0,0) = %d, expected 2", got)
	}
}

func TestGridFromImageGenericPath(t *testing.T) {
	// Non-NRGBA images go through the color model fallback.
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(1, 0, color.Gray{Y: 120})

	g := GridFromImage(img, 0)
	if got := g.ChannelAt(1, 0); got != 120 {
		t.Errorf("gray image channel 0 at (1,0) = %d, expected 120", got)
	}
	if g.Width() != 2 || g.Height() != 1 {
		t.Errorf("grid size %dx%d, expected 2x1", g.Width(), g.Height())
	}
}
