package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// PageBounds clamps offset/limit to a slice of n items and returns [start, end).
func PageBounds(n, offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		return n, n
	}
	end := offset + limit
	if limit < 0 || end > n {
		end = n
	}
	return offset, end
}
