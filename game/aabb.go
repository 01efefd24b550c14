package game

// overlaps reports whether two axis-aligned boxes intersect. Touching edges
// do not count as an overlap.
func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// overlapsPadded grows the second box by pad on every side before testing.
func overlapsPadded(ax, ay, aw, ah, bx, by, bw, bh, pad float64) bool {
	return overlaps(ax, ay, aw, ah, bx-pad, by-pad, bw+2*pad, bh+2*pad)
}
