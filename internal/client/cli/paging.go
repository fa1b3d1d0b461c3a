package cli

// pageBounds computes the slice bounds for a 1-based page over n items.
// Pagination is purely client-side: the mirror already holds the full
// collection. An out-of-range page clamps to the last one.
func pageBounds(n, page, size int) (lo, hi, clamped, totalPages int) {
	if size < 1 {
		size = 1
	}
	totalPages = (n + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	lo = (page - 1) * size
	hi = lo + size
	if hi > n {
		hi = n
	}
	return lo, hi, page, totalPages
}
