package domain

// scriptedRand replays fixed values, then falls back to zero.
type scriptedRand struct {
	values []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func (r *scriptedRand) push(values ...int) {
	r.values = append(r.values, values...)
}
