package util

// Wrap moves value by delta inside [min, max], wrapping at both ends.
func Wrap(value, delta, min, max int) int {
	span := max - min + 1
	if span <= 0 {
		return min
	}
	off := (value - min + delta) % span
	if off < 0 {
		off += span
	}
	return min + off
}
