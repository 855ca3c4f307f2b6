package listview

import (
	"math"
	"strings"
)

const (
	trackGlyph = "│"
	thumbGlyph = "┃"
)

// thumb returns the first row and length of the scrollbar thumb on a track
// of trackLen rows. The thumb is proportional to viewport/content and at
// least one row long; progress in [0, 1] positions it along the track.
func thumb(trackLen int, content, viewport, progress float32) (start, length int) {
	if trackLen <= 0 {
		return 0, 0
	}
	if content <= viewport || content <= 0 {
		return 0, trackLen
	}

	length = int(float32(trackLen) * viewport / content)
	length = min(max(length, 1), trackLen)

	travel := trackLen - length
	progress = min(max(progress, 0), 1)
	start = int(math.Round(float64(float32(travel) * progress)))
	return start, length
}

// scrollbar renders one glyph per row.
func (m *Model) scrollbar(rows int) []string {
	start, length := thumb(rows, m.list.ContentHeight(), m.list.Viewport(), m.list.ScrollProgress())

	col := make([]string, rows)
	track := m.styles.Track.Render(trackGlyph)
	bar := m.styles.Thumb.Render(thumbGlyph)
	for i := range col {
		if i >= start && i < start+length {
			col[i] = bar
		} else {
			col[i] = track
		}
	}
	return col
}

// hline returns a horizontal rule of width cells.
func hline(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}
