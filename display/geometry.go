package display

// Rect is a filled rectangle in panel pixels.
type Rect struct {
	X, Y, W, H int16
}

// Graph is the panel region a bar graph occupies.
type Graph struct {
	X, Y          int16
	Width, Height int16
}

// Window is a recency-ordered sample window: index 0 is the newest sample.
type Window interface {
	Len() int
	Value(i int) uint8
}

// Bars maps w onto g as one bottom-aligned bar per sample, appended to dst[:0].
// The result is in window order: bar i shows w.Value(i).
//
// Samples are percentages; values above 100 fill the full height. Bars run
// oldest on the left to newest on the right, each Width/N pixels wide. The
// Width%N columns left over stay empty at the right edge. If the region is
// narrower than N pixels no bars fit and the result is empty.
func Bars(dst []Rect, w Window, g Graph) []Rect {
	dst = dst[:0]
	n := w.Len()
	if n <= 0 || g.Width <= 0 || g.Height <= 0 {
		return dst
	}
	barW := int(g.Width) / n
	if barW == 0 {
		return dst
	}
	for i := 0; i < n; i++ {
		v := int(w.Value(i))
		if v > 100 {
			v = 100
		}
		h := v * int(g.Height) / 100
		dst = append(dst, Rect{
			X: g.X + int16((n-1-i)*barW),
			Y: g.Y + g.Height - int16(h),
			W: int16(barW),
			H: int16(h),
		})
	}
	return dst
}
