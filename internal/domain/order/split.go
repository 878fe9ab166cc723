package order

// SplitQuantity divides a total purchased quantity across n target items.
// Each item gets floor(total/n); the integer remainder goes to the first
// (total mod n) items in declaration order, so the split is deterministic
// and always sums to total.
func SplitQuantity(total, n int) []int {
	if n <= 0 {
		return nil
	}
	per := total / n
	rem := total % n

	out := make([]int, n)
	for i := range out {
		out[i] = per
		if i < rem {
			out[i]++
		}
	}
	return out
}
