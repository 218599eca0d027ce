package database

// boolToInt stores booleans in INTEGER columns.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
