package display

import (
	"fmt"
	"image/color"

	"picoled/hal"
	"picoled/telemetry"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	// graphX is where the bar graph starts; the label and value sit to its left.
	graphX = 48

	labelMax      = 6
	largeTextMax  = 8
	smallLineMax  = 10
	smallLineRows = 2

	labelBaseline   = 8
	valueBaseline   = 30
	lineOneBaseline = 13
	lineTwoBaseline = 29
	largeBaseline   = 24
)

var (
	fontSmall  tinyfont.Fonter = &proggy.TinySZ8pt7b
	fontMedium tinyfont.Fonter = &freemono.Regular9pt7b
	fontLarge  tinyfont.Fonter = &freemono.Bold12pt7b
)

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Renderer draws screens into a panel's buffer. Nothing reaches the glass
// until Flush.
type Renderer struct {
	panel  hal.Panel
	filler rectFiller
	width  int16
	height int16
	bars   []Rect
}

// NewRenderer returns a renderer for p.
func NewRenderer(p hal.Panel) *Renderer {
	w, h := p.Size()
	r := &Renderer{panel: p, width: w, height: h}
	if f, ok := p.(rectFiller); ok {
		r.filler = f
	}
	return r
}

// Clear blanks the buffer.
func (r *Renderer) Clear() { r.panel.ClearBuffer() }

// Flush sends the buffer to the panel.
func (r *Renderer) Flush() error { return r.panel.Display() }

// Draw clears the buffer and renders screen s from d.
func (r *Renderer) Draw(s Screen, d *telemetry.Device) {
	r.Clear()
	switch s {
	case ScreenCPU:
		r.graph("CPU:", d.CPU)
	case ScreenMem:
		r.graph("MEM:", d.Mem)
	case ScreenTemps:
		r.lines(TempsLines(d))
	}
}

// Text clears the buffer and renders a free-form message: up to 8 large
// characters, or two lines of 10 medium characters.
func (r *Renderer) Text(text string, large bool) {
	r.Clear()
	if large {
		r.write(fontLarge, 0, largeBaseline, truncate(text, largeTextMax))
		return
	}
	var rows [smallLineRows]string
	for i := range rows {
		if len(text) == 0 {
			break
		}
		rows[i] = truncate(text, smallLineMax)
		text = text[len(rows[i]):]
	}
	r.lines(rows[:])
}

// GraphRegion is the panel area covered by bars.
func (r *Renderer) GraphRegion() Graph {
	return Graph{X: graphX, Y: 0, Width: r.width - graphX, Height: r.height}
}

func (r *Renderer) graph(label string, w Window) {
	r.write(fontSmall, 0, labelBaseline, truncate(label, labelMax))
	r.write(fontLarge, 0, valueBaseline, PercentText(w.Value(0)))

	r.bars = Bars(r.bars, w, r.GraphRegion())
	for _, b := range r.bars {
		r.fill(b)
	}
}

func (r *Renderer) lines(rows []string) {
	baselines := [smallLineRows]int16{lineOneBaseline, lineTwoBaseline}
	for i, s := range rows {
		if i >= len(baselines) || s == "" {
			continue
		}
		r.write(fontMedium, 0, baselines[i], s)
	}
}

func (r *Renderer) write(f tinyfont.Fonter, x, y int16, s string) {
	if s == "" {
		return
	}
	tinyfont.WriteLine(r.panel, f, x, y, s, hal.On)
}

func (r *Renderer) fill(b Rect) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	if r.filler != nil {
		if err := r.filler.FillRectangle(b.X, b.Y, b.W, b.H, hal.On); err == nil {
			return
		}
	}
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			r.panel.SetPixel(x, y, hal.On)
		}
	}
}

// PercentText formats the newest sample the way the graph screens show it:
// two digits and a percent sign, or the bare number from 100 up.
func PercentText(v uint8) string {
	return truncate(fmt.Sprintf("%2d%%", v), 3)
}

// TempsLines returns the text of the temperatures screen. The GPU line is
// left out entirely when no GPU reported a temperature.
func TempsLines(d *telemetry.Device) []string {
	rows := []string{fmt.Sprintf("CPU: %dC", d.CPUTemp)}
	if d.GPUPresent {
		rows = append(rows, fmt.Sprintf("GPU: %dC", d.GPUTemp))
	}
	return rows
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
