package virtuallist

import (
	"math"
	"sort"
)

// recalculateLayout rebuilds the position cache and content height, then
// reclamps the scroll offset and recomputes the visible range.
//
// Fixed mode fills the cache from the closed form; variable mode walks a
// prefix sum over measured/estimated heights. Both are O(n).
func (l *VirtualList) recalculateLayout() {
	n := l.state.TotalItems
	pad := l.config.Padding
	sep := l.config.Separator.Height()

	positions := l.state.ItemPositions[:0]
	if cap(positions) < n {
		positions = make([]float32, 0, n)
	}

	var content float32
	switch {
	case n == 0:
		content = 2 * pad

	case l.config.ItemHeight.IsVariable():
		offset := pad
		for i := range n {
			positions = append(positions, offset)
			offset += l.config.ItemHeight.heightOf(i, l.state.MeasuredHeights) + sep
		}
		// No separator after the last item.
		content = offset - sep + pad

	default:
		itemTotal := maxf(l.config.ItemHeight.Value, 0) + sep
		for i := range n {
			positions = append(positions, pad+float32(i)*itemTotal)
		}
		content = 2*pad + float32(n)*itemTotal - sep
	}

	if n > 0 && l.sections != nil {
		content += l.sections.TotalHeaderHeight()
	}

	l.state.ItemPositions = positions
	l.state.ContentHeight = content

	l.logger.Trace().
		Int("total_items", n).
		Str("item_height", l.config.ItemHeight.String()).
		Float32("content_height", content).
		Msg("layout recalculated")

	l.reclampScroll()
	l.updateVisibleRange()
}

// positionsValid reports whether the position cache matches the item count.
func (l *VirtualList) positionsValid() bool {
	return l.state.TotalItems > 0 && len(l.state.ItemPositions) == l.state.TotalItems
}

// ItemHeightAt returns the height of an item: the fixed height, or for
// variable lists the measured height if known and the estimate otherwise.
func (l *VirtualList) ItemHeightAt(index int) float32 {
	return l.config.ItemHeight.heightOf(index, l.state.MeasuredHeights)
}

// SetItemHeight records the measured height of an item and recalculates
// layout. It is a no-op for fixed-height lists.
//
// Each call rebuilds the whole position cache, so it suits sparse measurement
// passes that converge, not every item changing every frame.
func (l *VirtualList) SetItemHeight(index int, height float32) {
	if !l.config.ItemHeight.IsVariable() || index < 0 {
		return
	}
	l.state.MeasuredHeights[index] = height
	l.recalculateLayout()
}

// ResetMeasuredHeights drops every measurement and recalculates layout.
func (l *VirtualList) ResetMeasuredHeights() {
	if len(l.state.MeasuredHeights) == 0 {
		return
	}
	clear(l.state.MeasuredHeights)
	l.recalculateLayout()
}

// OffsetForIndex returns the top Y of an item relative to the content origin,
// before the scroll offset is subtracted.
func (l *VirtualList) OffsetForIndex(index int) float32 {
	pad := l.config.Padding
	if index <= 0 {
		return pad
	}
	if index < len(l.state.ItemPositions) {
		return l.state.ItemPositions[index]
	}

	sep := l.config.Separator.Height()
	if !l.config.ItemHeight.IsVariable() {
		return pad + float32(index)*(maxf(l.config.ItemHeight.Value, 0)+sep)
	}

	// Past the cache: walk from the last cached position.
	offset := pad
	start := 0
	if k := len(l.state.ItemPositions); k > 0 {
		offset = l.state.ItemPositions[k-1]
		start = k - 1
	}
	for i := start; i < index; i++ {
		offset += l.config.ItemHeight.heightOf(i, l.state.MeasuredHeights) + sep
	}
	return offset
}

// IndexAtOffset returns the index of the item containing the Y offset
// (content coordinates), clamped to [0, total-1]. It returns 0 for an empty list.
func (l *VirtualList) IndexAtOffset(offset float32) int {
	n := l.state.TotalItems
	if n == 0 {
		return 0
	}

	adjusted := offset - l.config.Padding
	if adjusted <= 0 || math.IsNaN(float64(adjusted)) {
		return 0
	}

	if l.config.ItemHeight.IsVariable() && l.positionsValid() {
		return l.searchPositions(offset)
	}

	// Fixed mode, or a variable list without a usable cache: divide by the
	// fixed (or estimated) item stride.
	itemTotal := maxf(l.config.ItemHeight.Value, 0) + l.config.Separator.Height()
	if itemTotal <= 0 {
		return 0
	}

	quotient := math.Floor(float64(adjusted) / float64(itemTotal))
	if quotient >= float64(n-1) {
		return n - 1
	}
	return l.nudge(int(quotient), offset)
}

// searchPositions binary searches the position cache. An exact match returns
// that index; a miss returns the item whose top precedes the offset.
func (l *VirtualList) searchPositions(offset float32) int {
	positions := l.state.ItemPositions
	// First item whose top lies strictly below the offset.
	i := sort.Search(len(positions), func(i int) bool {
		return positions[i] > offset
	})
	return min(max(i-1, 0), len(positions)-1)
}

// nudge corrects a closed-form index by one step when float rounding put it on
// the wrong side of a cached item boundary.
func (l *VirtualList) nudge(index int, offset float32) int {
	if !l.positionsValid() {
		return index
	}
	positions := l.state.ItemPositions
	if index+1 < len(positions) && positions[index+1] <= offset {
		return index + 1
	}
	if index > 0 && positions[index] > offset {
		return index - 1
	}
	return index
}
