package tui

// Center returns a centered region of the given size within outer.
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}

// SplitHFixed splits with a fixed left width, rest to the right.
func SplitHFixed(r Region, leftW int) (left, right Region) {
	if leftW > r.W {
		leftW = r.W
	}
	if leftW < 0 {
		leftW = 0
	}
	left = r.Sub(0, 0, leftW, r.H)
	right = r.Sub(leftW, 0, r.W-leftW, r.H)
	return
}

// SplitVFixed splits with a fixed top height, rest to the bottom.
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = r.Sub(0, 0, r.W, topH)
	bottom = r.Sub(0, topH, r.W, r.H-topH)
	return
}

// Tracks partitions a width into count equal tracks; the last track takes
// the rounding remainder. Returns the x offset and width of track i.
func Tracks(totalW, count, i int) (x, w int) {
	if count <= 0 || totalW <= 0 || i < 0 || i >= count {
		return 0, 0
	}
	base := totalW / count
	x = base * i
	if i == count-1 {
		w = totalW - x
	} else {
		w = base
	}
	return x, w
}
