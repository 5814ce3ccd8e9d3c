package repo

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// paginate returns the [offset, offset+limit) window of n items.
func paginate(n int, offset, limit *int) (start, end int) {
	if offset != nil {
		start = clamp(*offset, 0, n)
	}
	end = n
	if limit != nil && *limit > 0 {
		end = clamp(start+*limit, start, n)
	}
	return start, end
}
