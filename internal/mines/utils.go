package mines

func absDiff(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
