package booking

import "time"

// Overlaps reports whether [a, a+d) and [b, b+d) share an instant.
// Intervals that only touch (a+d == b) do not overlap.
func Overlaps(a, b time.Time, d time.Duration) bool {
	return a.Before(b.Add(d)) && b.Before(a.Add(d))
}

// OverlapWindow returns the open range (start-d, start+d). A reservation of
// length d overlaps [start, start+d) iff its own start lies strictly inside.
func OverlapWindow(start time.Time, d time.Duration) (from, to time.Time) {
	return start.Add(-d), start.Add(d)
}
