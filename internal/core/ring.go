package core

// Ring addresses a one-dimensional strip whose ends are neighbors.
type Ring struct {
	N int
}

// Wrap maps any index onto [0, N). A ring of size zero maps everything to 0.
func (r Ring) Wrap(i int) int {
	if r.N <= 0 {
		return 0
	}
	return (i%r.N + r.N) % r.N
}
