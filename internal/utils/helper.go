package utils

import "strconv"

// ParseID parses a path id. Anything that is not a positive integer is
// reported as not ok, which callers treat the same as a missing row.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
