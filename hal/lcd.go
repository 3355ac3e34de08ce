package hal

import (
	"math"
	"sync"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	lcdWidth  = 320
	lcdHeight = 240
)

// termLCD implements LCD on any terminal-capable display: characters go
// through a tinyterm terminal, lines through tinydraw.
type termLCD struct {
	mu   sync.Mutex
	disp tinyterm.Displayer
	term *tinyterm.Terminal
}

func newTermLCD(disp tinyterm.Displayer) *termLCD {
	term := tinyterm.NewTerminal(disp)
	term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
	return &termLCD{disp: disp, term: term}
}

func (l *termLCD) PrintByte(b byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.term.WriteByte(b)
}

// DrawLine clips the line to the panel before narrowing to the int16
// coordinates the display drivers take, so off-panel lines never wrap back
// onto it.
func (l *termLCD) DrawLine(x0, y0, x1, y1 int32, color uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	w, h := l.disp.Size()
	cx0, cy0, cx1, cy1, ok := clipLine(x0, y0, x1, y1, int32(w), int32(h))
	if !ok {
		return
	}
	tinydraw.Line(l.disp, int16(cx0), int16(cy0), int16(cx1), int16(cy1), lcdColor(color))
}

// clipLine clips a segment to [0,w)x[0,h) (Liang-Barsky). ok is false when
// no part of the segment is on the panel.
func clipLine(x0, y0, x1, y1, w, h int32) (cx0, cy0, cx1, cy1 int32, ok bool) {
	inside := func(x, y int32) bool { return x >= 0 && x < w && y >= 0 && y < h }
	if inside(x0, y0) && inside(x1, y1) {
		return x0, y0, x1, y1, true
	}
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0},               // left
		{dx, float64(w-1) - fx0}, // right
		{-dy, fy0},               // top
		{dy, float64(h-1) - fy0}, // bottom
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	cx0, cy0 = clampRound(fx0+t0*dx, w), clampRound(fy0+t0*dy, h)
	cx1, cy1 = clampRound(fx0+t1*dx, w), clampRound(fy0+t1*dy, h)
	return cx0, cy0, cx1, cy1, true
}

func clampRound(v float64, n int32) int32 {
	r := int32(math.Round(v))
	if r < 0 {
		return 0
	}
	if r >= n {
		return n - 1
	}
	return r
}
