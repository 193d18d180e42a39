package terrainver

import (
	"reflect"
	"sort"
	"testing"
)

func TestOrderSurfacePointsWalk(t *testing.T) {
	input := []Point{{2, 5}, {3, 5}, {4, 5}, {5, 5}, {6, 5}, {7, 5}}

	visited := orderSurfacePoints(input)

	// Left-to-right connected walk: the march from (0,0) breaks on the first
	// step and jumps to the leftmost point, then follows nearest neighbors.
	if !reflect.DeepEqual(visited, input) {
		t.Errorf("walk %v, expected %v", visited, input)
	}
}

func TestOrderSurfacePointsPreservesMultiset(t *testing.T) {
	input := []Point{{7, 5}, {2, 5}, {9, 1}, {4, 6}, {2, 5}, {0, 9}, {5, 5}}

	visited := orderSurfacePoints(input)

	if len(visited) != len(input) {
		t.Fatalf("walk length %d, expected %d", len(visited), len(input))
	}

	sortPoints := func(points []Point) []Point {
		sorted := make([]Point, len(points))
		copy(sorted, points)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].X != sorted[j].X {
				return sorted[i].X < sorted[j].X
			}
			return sorted[i].Y < sorted[j].Y
		})
		return sorted
	}
	if !reflect.DeepEqual(sortPoints(visited), sortPoints(input)) {
		t.Errorf("walk %v is not a permutation of %v", visited, input)
	}
}

func TestOrderSurfacePointsBreakJumpsLeftmost(t *testing.T) {
	// Two silhouette segments split by a gap longer than the breaking
	// distance: the walk finishes the left segment, then jumps to the
	// leftmost point of the right one.
	input := []Point{{8, 5}, {0, 5}, {9, 5}, {1, 5}, {2, 5}}

	visited := orderSurfacePoints(input)

	expected := []Point{{0, 5}, {1, 5}, {2, 5}, {8, 5}, {9, 5}}
	if !reflect.DeepEqual(visited, expected) {
		t.Errorf("walk %v, expected %v", visited, expected)
	}
}

func TestOrderSurfacePointsEmpty(t *testing.T) {
	if visited := orderSurfacePoints(nil); len(visited) != 0 {
		t.Errorf("walk over no points yielded %v", visited)
	}
}

func TestBreakingStep(t *testing.T) {
	// Distance 5 sits exactly at the limit; (0,0)-(0,5) breaks on slope,
	// (0,0)-(6,0) on distance, (2,2)-(4,5) is steep but still traversable.
	tests := []struct {
		a, b     Point
		breaking bool
	}{
		{Point{0, 0}, Point{1, 0}, false},
		{Point{0, 0}, Point{3, 4}, false},
		{Point{0, 0}, Point{6, 0}, true},
		{Point{0, 0}, Point{0, 5}, true},
		{Point{2, 2}, Point{3, 5}, true},
		{Point{2, 2}, Point{4, 5}, false},
		{Point{5, 5}, Point{5, 5}, false},
	}

	for _, tc := range tests {
		if got := breakingStep(tc.a, tc.b); got != tc.breaking {
			t.Errorf("breakingStep(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.breaking)
		}
	}
}
