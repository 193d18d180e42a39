package terrainver

// filterNarrowPoints drops every point of the ordered walk whose local
// neighborhood is discontinuous. A point survives only when the minWidth-wide
// window centered on it consists entirely of consecutive non-breaking steps;
// points near the walk boundary lack enough neighbors and are rejected.
// The result is an order-preserving subsequence of visited.
func filterNarrowPoints(visited []Point, minWidth int) []Point {
	// halfWidth = ceil((minWidth-1)/2)
	halfWidth := minWidth / 2
	okPoints := make([]Point, 0, len(visited))

	for i := range visited {
		wide := true
		for d := i - halfWidth; d < i+halfWidth; d++ {
			if d < 0 || d+1 >= len(visited) || breakingStep(visited[d], visited[d+1]) {
				wide = false
				break
			}
		}
		if wide {
			okPoints = append(okPoints, visited[i])
		}
	}
	return okPoints
}
