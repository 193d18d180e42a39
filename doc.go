/*
Package terrainver derives deterministic spawn and placement positions on an
irregular 2D terrain surface.

Given a terrain's binary inside/outside mask and an edge-detected surface map,
the package extracts the ordered chain of surface points, filters out points
too narrow to stand on, and exposes low-discrepancy Halton sampling over that
surface and over the full terrain interior, including validated placement of
rectangular sprites.

The package provides a command line utility for inspecting the generated
positions. Check the supported commands by typing:

	$ terrainver --help

Example to sample spawn positions from a terrain:

	package main

	import (
		"fmt"

		terrainver "github.com/ANR2ME/TerrainVer"
	)

	func main() {
		shape := &terrainver.TerrainShape{
			Mask:   maskGrid,
			EdgesY: edgesGrid,
		}
		gen, err := terrainver.NewPositionGenerator(shape, terrainver.DefaultOptions())
		if err != nil {
			fmt.Printf("Error building the position generator: %s", err.Error())
			return
		}

		spawn, err := gen.GetSurfacePoint()
		if err != nil {
			fmt.Printf("No standable surface on this terrain: %s", err.Error())
			return
		}
		fmt.Println(spawn)

		if topLeft, ok := gen.GetTerrainPointForSprite(32, 24); ok {
			fmt.Println(topLeft)
		}
	}

Sampling is reproducible: the same terrain, seed and call sequence always
yields the same sequence of positions.
*/
package terrainver
