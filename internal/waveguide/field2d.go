package waveguide

import "github.com/san-kum/eimlab/internal/parallel"

// Outer forms the outer product grid u ⊗ v, indexed [row][col]. Rows are
// filled in parallel chunks; each row is written exactly once.
func Outer(u, v []complex128, workers int) [][]complex128 {
	field := make([][]complex128, len(u))
	_ = parallel.ForEach(len(u), workers, func(i int) error {
		row := make([]complex128, len(v))
		for j := range v {
			row[j] = u[i] * v[j]
		}
		field[i] = row
		return nil
	})
	return field
}
