package terrainver

// Halton returns element index of the Halton low-discrepancy sequence in the
// given base. The result is always in [0,1) and index 0 yields 0. The function
// is pure: identical (index, base) pairs always produce the identical value.
func Halton(index, base int) float64 {
	var result float64

	f := 1.0 / float64(base)
	i := index

	for i > 0 {
		result += f * float64(i%base)
		i /= base
		f /= float64(base)
	}
	return result
}
