package terrainver

// Point is a pixel coordinate on the terrain grid.
type Point struct {
	X, Y int
}
