package display

import "testing"

type window []uint8

func (w window) Len() int { return len(w) }

func (w window) Value(i int) uint8 {
	if i < 0 || i >= len(w) {
		return 0
	}
	return w[i]
}

func TestBarsWidthAndHeight(t *testing.T) {
	w := make(window, 40)
	w[0], w[1], w[2] = 80, 60, 40

	g := Graph{X: 48, Y: 0, Width: 80, Height: 32}
	bars := Bars(nil, w, g)
	if len(bars) != 40 {
		t.Fatalf("len(Bars) = %d, want 40", len(bars))
	}

	tests := []struct {
		i    int
		want Rect
	}{
		// Newest sample sits at the right end of the graph.
		{i: 0, want: Rect{X: 48 + 39*2, Y: 32 - 25, W: 2, H: 25}},
		{i: 1, want: Rect{X: 48 + 38*2, Y: 32 - 19, W: 2, H: 19}},
		{i: 2, want: Rect{X: 48 + 37*2, Y: 32 - 12, W: 2, H: 12}},
		{i: 39, want: Rect{X: 48, Y: 32, W: 2, H: 0}},
	}
	for _, tt := range tests {
		if bars[tt.i] != tt.want {
			t.Fatalf("bar %d = %+v, want %+v", tt.i, bars[tt.i], tt.want)
		}
	}
}

func TestBarsRemainderUnused(t *testing.T) {
	w := window{100, 100, 100}
	g := Graph{X: 10, Y: 0, Width: 11, Height: 8}
	bars := Bars(nil, w, g)

	right := g.X
	for _, b := range bars {
		if b.W != 3 {
			t.Fatalf("bar width = %d, want 3", b.W)
		}
		if end := b.X + b.W; end > right {
			right = end
		}
	}
	if right != g.X+9 {
		t.Fatalf("bars end at %d, want %d (2 columns unused)", right, g.X+9)
	}
}

func TestBarsClampAndDegenerate(t *testing.T) {
	g := Graph{X: 0, Y: 4, Width: 4, Height: 10}

	bars := Bars(nil, window{255}, g)
	if len(bars) != 1 || bars[0] != (Rect{X: 0, Y: 4, W: 4, H: 10}) {
		t.Fatalf("Bars(255) = %+v", bars)
	}

	if bars := Bars(nil, make(window, 5), g); len(bars) != 0 {
		t.Fatalf("Bars with more samples than columns = %d bars, want 0", len(bars))
	}
	if bars := Bars(nil, window{}, g); len(bars) != 0 {
		t.Fatalf("Bars(empty) = %d bars, want 0", len(bars))
	}
}

func TestBarsReusesDst(t *testing.T) {
	dst := make([]Rect, 0, 8)
	g := Graph{Width: 8, Height: 8}
	out := Bars(dst, window{50, 50}, g)
	out2 := Bars(out, window{10, 20}, g)
	if &out2[0] != &dst[:1][0] {
		t.Fatal("Bars allocated instead of reusing dst")
	}
	if out2[0].H != 0 || out2[1].H != 1 {
		t.Fatalf("heights = %d,%d, want 0,1", out2[0].H, out2[1].H)
	}
}
