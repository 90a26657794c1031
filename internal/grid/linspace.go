// Package grid builds sample axes for field evaluation.
package grid

// Linspace returns n evenly spaced samples from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	x := make([]float64, n)
	if n == 1 {
		x[0] = start
		return x
	}
	step := (stop - start) / float64(n-1)
	for i := range x {
		x[i] = start + float64(i)*step
	}
	x[n-1] = stop
	return x
}
