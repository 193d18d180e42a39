package terrainver

import (
	"image"
	"image/color"
)

// Grid is a read-only single-channel pixel plane. The position algorithms
// never touch raw buffer strides; they read the terrain exclusively through
// ChannelAt.
type Grid struct {
	width  int
	height int
	values []uint8
}

// NewGrid wraps a width*height channel buffer into a Grid.
// The values slice is retained, not copied.
func NewGrid(width, height int, values []uint8) *Grid {
	return &Grid{width: width, height: height, values: values}
}

// GridFromImage extracts one RGBA channel plane from any image type.
// The channel index is 0 for red through 3 for alpha; out-of-range indices
// are clamped.
func GridFromImage(img image.Image, channel int) *Grid {
	channel = Min(Max(channel, 0), 3)
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	values := make([]uint8, width*height)

	if src, ok := img.(*image.NRGBA); ok && bounds.Min.X == 0 && bounds.Min.Y == 0 {
		for i := 0; i < len(values); i++ {
			values[i] = src.Pix[i<<2+channel]
		}
		return NewGrid(width, height, values)
	}

	for y := 0; y < height; y++ {
		step := y * width
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			switch channel {
			case 0:
				values[x+step] = c.R
			case 1:
				values[x+step] = c.G
			case 2:
				values[x+step] = c.B
			default:
				values[x+step] = c.A
			}
		}
	}
	return NewGrid(width, height, values)
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in pixels.
func (g *Grid) Height() int {
	return g.height
}

// ChannelAt returns the channel value at (x, y).
// Reads outside the grid return 0.
func (g *Grid) ChannelAt(x, y int) uint8 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.values[x+y*g.width]
}

// TerrainShape bundles the two terrain planes the generator consumes:
// the inside/outside mask and the vertical edge map produced by the
// image-processing stage.
type TerrainShape struct {
	// Mask marks terrain pixels: a channel value of 255 means inside,
	// anything else means outside.
	Mask *Grid
	// EdgesY holds edge intensities with hysteresis semantics: values
	// above edgeHighThreshold are edges, below edgeLowThreshold are not.
	EdgesY *Grid
}

// Width returns the terrain width in pixels.
func (s *TerrainShape) Width() int {
	return s.Mask.Width()
}

// Height returns the terrain height in pixels.
func (s *TerrainShape) Height() int {
	return s.Mask.Height()
}
