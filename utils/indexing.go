package utils

// Index is a list of zero-based array positions. It is the currency used
// to pass resolved node positions between the tag resolver, the
// tessellator and downstream consumers.
type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

// Count returns the number of positions holding val. Used to count
// unknown-sentinel entries after resolution.
func (I Index) Count(val int) (n int) {
	for _, ival := range I {
		if ival == val {
			n++
		}
	}
	return
}
