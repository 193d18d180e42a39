package terrainver

import (
	"errors"
	"fmt"
	"math"
)

// Halton bases for the two independent sampling axes.
const (
	haltonBaseX = 2
	haltonBaseY = 3
)

const (
	// maskInside is the mask channel value marking a walkable terrain pixel.
	maskInside = 255
	// minInsideProbes is how many of the 8 cardinal probe points must land
	// inside the terrain for a sprite placement to be accepted.
	minInsideProbes = 7
)

// ErrNoSurfacePoints is returned by GetSurfacePoint when narrow-point
// filtering left no standable surface, typically because the terrain is too
// small or the margins exclude all of it.
var ErrNoSurfacePoints = errors.New("terrainver: no standable surface points after filtering")

// Options holds the position generator configuration.
type Options struct {
	// Margins exclude border regions (sky, water) from scanning and sampling.
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
	// SurfacePointMinWidth is the minimum neighborhood width, in walk steps,
	// a surface point needs to count as standable.
	SurfacePointMinWidth int
	// TerrainPointMaxTry bounds the rejection sampling in GetTerrainPointForSprite.
	TerrainPointMaxTry int
	// Seed in [0,1) offsets every sampled value, wrapping modulo 1.
	Seed float64
}

// DefaultOptions returns the standard configuration with a random seed.
func DefaultOptions() Options {
	return Options{
		MarginTop:            40,
		MarginRight:          1,
		MarginBottom:         60,
		MarginLeft:           1,
		SurfacePointMinWidth: 4,
		TerrainPointMaxTry:   80,
		Seed:                 newPrng().randomSeed(),
	}
}

// PositionGenerator answers deterministic position queries over one terrain.
// Construction extracts, orders and filters the surface points once; queries
// afterwards are cheap index-advancing reads.
//
// A generator is not safe for concurrent use: the two Halton counters advance
// on every query, so concurrent callers must serialize access to an instance.
type PositionGenerator struct {
	shape *TerrainShape
	opts  Options

	surfacePoints []Point
	okPoints      []Point

	haltonIndexX int
	haltonIndexY int
}

// NewPositionGenerator builds a generator for the given terrain shape.
// It runs the full surface pipeline (extraction, chain ordering, narrow-point
// filtering) before returning.
func NewPositionGenerator(shape *TerrainShape, opts Options) (*PositionGenerator, error) {
	if opts.Seed < 0 || opts.Seed >= 1 {
		return nil, fmt.Errorf("terrainver: seed %v outside [0,1)", opts.Seed)
	}
	if shape.EdgesY.Width() != shape.Mask.Width() || shape.EdgesY.Height() != shape.Mask.Height() {
		return nil, fmt.Errorf("terrainver: mask %dx%d and edges %dx%d differ in size",
			shape.Mask.Width(), shape.Mask.Height(), shape.EdgesY.Width(), shape.EdgesY.Height())
	}
	if shape.Width()-opts.MarginLeft-opts.MarginRight <= 0 ||
		shape.Height()-opts.MarginTop-opts.MarginBottom <= 0 {
		return nil, fmt.Errorf("terrainver: margins leave no interior on a %dx%d terrain",
			shape.Width(), shape.Height())
	}

	g := &PositionGenerator{
		shape: shape,
		opts:  opts,
	}
	g.surfacePoints = orderSurfacePoints(extractSurfacePoints(shape.EdgesY, opts))
	g.okPoints = filterNarrowPoints(g.surfacePoints, opts.SurfacePointMinWidth)

	return g, nil
}

// SurfacePoints returns the ordered surface walk. The slice is owned by the
// generator and must not be modified.
func (g *PositionGenerator) SurfacePoints() []Point {
	return g.surfacePoints
}

// OkPoints returns the standable subsequence of the surface walk. The slice
// is owned by the generator and must not be modified.
func (g *PositionGenerator) OkPoints() []Point {
	return g.okPoints
}

// nextHalton draws the next value on one sampling axis, folding in the seed.
func (g *PositionGenerator) nextHalton(index *int, base int) float64 {
	h := math.Mod(Halton(*index, base)+g.opts.Seed, 1)
	*index++
	return h
}

// GetSurfacePoint returns the next sampled standable surface point.
// It fails with ErrNoSurfacePoints when filtering left nothing to stand on.
func (g *PositionGenerator) GetSurfacePoint() (Point, error) {
	if len(g.okPoints) == 0 {
		return Point{}, ErrNoSurfacePoints
	}
	h := g.nextHalton(&g.haltonIndexX, haltonBaseX)
	return g.okPoints[int(h*float64(len(g.okPoints)))], nil
}

// Get2DPoint returns the next sampled point of the terrain interior
// rectangle, margins excluded. The two axes advance independent Halton
// sequences, so successive calls cover the interior uniformly.
func (g *PositionGenerator) Get2DPoint() Point {
	innerWidth := g.shape.Width() - g.opts.MarginLeft - g.opts.MarginRight
	innerHeight := g.shape.Height() - g.opts.MarginTop - g.opts.MarginBottom

	hx := g.nextHalton(&g.haltonIndexX, haltonBaseX)
	hy := g.nextHalton(&g.haltonIndexY, haltonBaseY)

	return Point{
		X: g.opts.MarginLeft + int(hx*float64(innerWidth)),
		Y: g.opts.MarginTop + int(hy*float64(innerHeight)),
	}
}

// GetTerrainPointForSprite searches for a top-left anchor so that a
// width x height sprite rests on terrain. It draws up to TerrainPointMaxTry
// candidates via Get2DPoint and accepts the first whose perimeter probes hit
// the terrain mask at least minInsideProbes times. The second return value is
// false when the try budget runs out without a fit, a perfectly ordinary
// outcome for sprites larger than any open area.
func (g *PositionGenerator) GetTerrainPointForSprite(width, height int) (Point, bool) {
	for try := 0; try < g.opts.TerrainPointMaxTry; try++ {
		topLeft := g.Get2DPoint()
		if g.insideProbeCount(topLeft, width, height) >= minInsideProbes {
			return topLeft, true
		}
	}
	return Point{}, false
}

// insideProbeCount counts how many of the 8 cardinal perimeter points of the
// sprite rectangle anchored at topLeft land on an inside mask pixel.
func (g *PositionGenerator) insideProbeCount(topLeft Point, width, height int) int {
	probes := [8]Point{
		{topLeft.X, topLeft.Y},
		{topLeft.X + width/2, topLeft.Y},
		{topLeft.X + width, topLeft.Y},
		{topLeft.X + width, topLeft.Y + height/2},
		{topLeft.X + width, topLeft.Y + height},
		{topLeft.X + width/2, topLeft.Y + height},
		{topLeft.X, topLeft.Y + height},
		{topLeft.X, topLeft.Y + height/2},
	}

	inside := 0
	for _, p := range probes {
		if g.shape.Mask.ChannelAt(p.X, p.Y) == maskInside {
			inside++
		}
	}
	return inside
}
