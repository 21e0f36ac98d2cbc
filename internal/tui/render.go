package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mapflinger/internal/flinger"
)

var hoverMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")

func (m Model) renderAsciiMap(w, h int) string {
	br := newBrailleBuf(w, h)
	if f, ok := m.viewport(w, h); ok {
		if m.showPolys {
			m.drawPolygons(br, f)
		}
		// points only when there is nothing else to show
		if m.showPoints && len(m.data.Lines) == 0 && len(m.data.Polygons) == 0 {
			for _, p := range m.data.Points {
				if mx, my, ok := m.toMicro(f, p.X, p.Y); ok {
					br.setPixel(mx, my)
				}
			}
		}
		if m.showLines {
			for _, ls := range m.data.Lines {
				var prev *[2]int
				for _, p := range ls {
					mx, my, ok := m.toMicro(f, p.X, p.Y)
					if !ok {
						continue
					}
					if prev != nil {
						br.drawLineMicro(prev[0], prev[1], mx, my)
					}
					prev = &[2]int{mx, my}
				}
			}
		}
	}
	lines := br.toLines()

	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverMark + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// drawPolygons fills outer rings with the even-odd rule per micro scanline,
// then strokes every ring. Holes are outlined but not cut out of the fill.
func (m Model) drawPolygons(br *brailleBuf, f *flinger.Flinger) {
	hMic := br.h * 4
	for _, poly := range m.data.Polygons {
		var rings [][][2]int
		for _, ring := range poly {
			var sm [][2]int
			for _, p := range ring {
				if mx, my, ok := m.toMicro(f, p.X, p.Y); ok {
					sm = append(sm, [2]int{mx, my})
				}
			}
			if len(sm) >= 3 {
				rings = append(rings, sm)
			}
		}
		if len(rings) == 0 {
			continue
		}
		outer := rings[0]
		for yMic := 0; yMic < hMic; yMic++ {
			var xs []int
			for i := range outer {
				a := outer[i]
				b := outer[(i+1)%len(outer)]
				if a[1] == b[1] {
					continue
				}
				if (yMic >= a[1] && yMic < b[1]) || (yMic >= b[1] && yMic < a[1]) {
					t := float64(yMic-a[1]) / float64(b[1]-a[1])
					xs = append(xs, int(float64(a[0])+t*float64(b[0]-a[0])))
				}
			}
			sort.Ints(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				for xMic := max(0, xs[i]); xMic <= min(xs[i+1], br.w*2-1); xMic++ {
					br.setPixel(xMic, yMic)
				}
			}
		}
		for _, r := range rings {
			for i := range r {
				a := r[i]
				b := r[(i+1)%len(r)]
				br.drawLineMicro(a[0], a[1], b[0], b[1])
			}
		}
	}
}
