package terrainver

// Edge hysteresis thresholds, tuned against the sobel-style edge maps the
// terrain pipeline produces. A pixel is a surface point when its own edge
// intensity is above the high threshold while the pixel right above it is
// below the low one.
const (
	edgeHighThreshold = 100
	edgeLowThreshold  = 50
)

// extractSurfacePoints scans the edge plane row-major inside the configured
// margins and collects the topmost edge pixel of each vertical run. The
// returned points are in scan order, not yet a connected walk.
func extractSurfacePoints(edges *Grid, opts Options) []Point {
	var (
		x, y   int
		points []Point
	)

	width, height := edges.Width(), edges.Height()

	for y = opts.MarginTop; y < height-opts.MarginBottom; y++ {
		for x = opts.MarginLeft; x < width-opts.MarginRight; x++ {
			if edges.ChannelAt(x, y) > edgeHighThreshold &&
				edges.ChannelAt(x, y-1) < edgeLowThreshold {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}
