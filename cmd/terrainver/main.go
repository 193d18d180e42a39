package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"

	terrainver "github.com/ANR2ME/TerrainVer"
	"github.com/ANR2ME/TerrainVer/utils"
)

var (
	// Flags
	mask         = flag.String("mask", "", "Terrain mask image (channel value 255 = inside)")
	edges        = flag.String("edges", "", "Edge-detected surface map image")
	destination  = flag.String("out", "positions.png", "Destination of the debug overlay image")
	maskChannel  = flag.Int("maskchannel", 3, "Mask image channel (0=R 1=G 2=B 3=A)")
	edgesChannel = flag.Int("edgeschannel", 0, "Edges image channel (0=R 1=G 2=B 3=A)")
	points       = flag.Int("points", 50, "Number of surface points to sample")
	sprites      = flag.Int("sprites", 0, "Number of sprite placements to attempt")
	spriteWidth  = flag.Int("spritew", 32, "Sprite width in pixels")
	spriteHeight = flag.Int("spriteh", 24, "Sprite height in pixels")
	seed         = flag.Float64("seed", -1, "Sampling seed in [0,1), negative for a random seed")
	marginTop    = flag.Int("margintop", 40, "Pixels excluded from the top")
	marginRight  = flag.Int("marginright", 1, "Pixels excluded from the right")
	marginBottom = flag.Int("marginbottom", 60, "Pixels excluded from the bottom")
	marginLeft   = flag.Int("marginleft", 1, "Pixels excluded from the left")
	minWidth     = flag.Int("minwidth", 4, "Minimum standable surface width")
	maxTry       = flag.Int("maxtry", 80, "Maximum tries per sprite placement")
)

func main() {
	flag.Parse()

	if len(*mask) == 0 || len(*edges) == 0 {
		log.Fatal("Usage: terrainver -mask mask.png -edges edges.png -out positions.png")
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	opts := terrainver.DefaultOptions()
	opts.MarginTop = *marginTop
	opts.MarginRight = *marginRight
	opts.MarginBottom = *marginBottom
	opts.MarginLeft = *marginLeft
	opts.SurfacePointMinWidth = *minWidth
	opts.TerrainPointMaxTry = *maxTry
	if *seed >= 0 {
		opts.Seed = *seed
	}

	maskImg := decodeImage(*mask)
	edgesImg := decodeImage(*edges)

	shape := &terrainver.TerrainShape{
		Mask:   terrainver.GridFromImage(maskImg, *maskChannel),
		EdgesY: terrainver.GridFromImage(edgesImg, *edgesChannel),
	}

	var s *utils.Spinner
	if isTerminal {
		s = utils.NewSpinner()
		s.Start("Generating terrain positions...")
	}
	start := time.Now()

	gen, err := terrainver.NewPositionGenerator(shape, opts)
	if err != nil {
		if s != nil {
			s.Stop()
		}
		log.Fatalf("Unable to build the position generator: %v", err)
	}

	spawns := make([]terrainver.Point, 0, *points)
	for i := 0; i < *points; i++ {
		p, err := gen.GetSurfacePoint()
		if err != nil {
			break
		}
		spawns = append(spawns, p)
	}

	placed := make([]terrainver.Point, 0, *sprites)
	missed := 0
	for i := 0; i < *sprites; i++ {
		if topLeft, ok := gen.GetTerrainPointForSprite(*spriteWidth, *spriteHeight); ok {
			placed = append(placed, topLeft)
		} else {
			missed++
		}
	}

	if err := drawOverlay(maskImg, gen, spawns, placed); err != nil {
		if s != nil {
			s.Stop()
		}
		log.Fatalf("Unable to save the overlay image: %v", err)
	}
	if s != nil {
		s.Stop()
	}

	green, reset := "", ""
	if isTerminal {
		green, reset = utils.SuccessColor, utils.DefaultColor
	}
	fmt.Printf("\nGenerated in: %s%s%s\n", green, utils.FormatTime(time.Since(start)), reset)
	fmt.Printf("Surface walk of %s%d%s points, %s%d%s standable after filtering\n",
		green, len(gen.SurfacePoints()), reset, green, len(gen.OkPoints()), reset)
	fmt.Printf("Sampled %s%d%s spawn positions", green, len(spawns), reset)
	if *sprites > 0 {
		fmt.Printf(", placed %s%d%s of %d sprites", green, len(placed), reset, *sprites)
	}
	fmt.Printf("\nSaved as: %s %s✓%s\n\n", *destination, green, reset)
}

// decodeImage opens a local or remote image source and decodes it.
func decodeImage(source string) image.Image {
	var file *os.File
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		file, err = utils.DownloadImage(source)
		if file != nil {
			defer os.Remove(file.Name())
		}
	} else {
		file, err = os.Open(source)
	}
	if err != nil {
		log.Fatalf("Unable to open source %s: %v", source, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		log.Fatalf("Unable to decode source %s: %v", source, err)
	}
	return img
}

// drawOverlay renders the mask with the generated positions on top: the
// ordered surface walk in gray, the standable points in green, the sampled
// spawns as yellow dots and the accepted sprite rectangles in red.
func drawOverlay(maskImg image.Image, gen *terrainver.PositionGenerator, spawns, placed []terrainver.Point) error {
	width := maskImg.Bounds().Dx()
	height := maskImg.Bounds().Dy()

	ctx := gg.NewContext(width, height)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()
	ctx.DrawImage(maskImg, 0, 0)

	ctx.SetRGBA(0.5, 0.5, 0.5, 0.8)
	for _, p := range gen.SurfacePoints() {
		ctx.DrawRectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	ctx.Fill()

	ctx.SetRGBA(0.1, 0.8, 0.1, 1)
	for _, p := range gen.OkPoints() {
		ctx.DrawRectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	ctx.Fill()

	ctx.SetRGBA(0.9, 0.8, 0.1, 1)
	for _, p := range spawns {
		ctx.DrawCircle(float64(p.X), float64(p.Y), 2.5)
	}
	ctx.Fill()

	ctx.SetRGBA(0.9, 0.2, 0.2, 1)
	ctx.SetLineWidth(1)
	for _, p := range placed {
		ctx.DrawRectangle(float64(p.X), float64(p.Y), float64(*spriteWidth), float64(*spriteHeight))
	}
	ctx.Stroke()

	return ctx.SavePNG(*destination)
}
