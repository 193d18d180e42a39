package terrainver

import (
	"math"
	"sort"
)

// breakingDistance is the longest step, in pixels, two surface points may be
// apart and still count as traversable without a jump.
const breakingDistance = 5.0

// breakingStep reports whether walking from a to b crosses a surface break:
// either the slope is too steep or the points are simply too far apart.
func breakingStep(a, b Point) bool {
	diffX := Abs(a.X - b.X)
	diffY := Abs(a.Y - b.Y)

	if diffX < diffY-1 {
		return true
	}
	return math.Sqrt(float64(diffX*diffX+diffY*diffY)) > breakingDistance
}

func distSq(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// orderSurfacePoints converts the unordered surface point set into a single
// connected walk approximating a left-to-right traversal of the terrain
// silhouette. It marches greedily from (0,0): each step re-sorts the
// remaining points by descending distance to the current point so the
// nearest candidate sits last, then pops it. When the nearest candidate is
// across a break, the walk jumps to the leftmost remaining point instead,
// starting the next silhouette segment.
//
// The output has the same length and the same multiset of points as the
// input. Sorting is stable so ties keep scan order, which pins a single
// deterministic walk per input.
func orderSurfacePoints(points []Point) []Point {
	remaining := make([]Point, len(points))
	copy(remaining, points)

	visited := make([]Point, 0, len(points))
	current := Point{}

	for len(remaining) > 0 {
		sort.SliceStable(remaining, func(i, j int) bool {
			return distSq(remaining[i], current) > distSq(remaining[j], current)
		})

		if breakingStep(current, remaining[len(remaining)-1]) {
			sort.SliceStable(remaining, func(i, j int) bool {
				return remaining[i].X > remaining[j].X
			})
		}

		current = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		visited = append(visited, current)
	}
	return visited
}
