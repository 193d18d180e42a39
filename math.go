package terrainver

import "golang.org/x/exp/constraints"

// Min returns the smallest value between the provided numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between the provided numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// Abs returns the absolute value of a signed number.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
