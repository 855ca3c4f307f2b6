package virtuallist

import "math"

// VisibleRangeFor computes the visible range, including overscan, for an
// arbitrary scroll offset and viewport height. It is empty when the list has
// no items or the viewport has no height.
func (l *VirtualList) VisibleRangeFor(scrollOffset, viewportHeight float32) VisibleRange {
	n := l.state.TotalItems
	if n == 0 || !(viewportHeight > 0) {
		return EmptyRange()
	}

	start := l.IndexAtOffset(scrollOffset)
	end := min(l.IndexAtOffset(scrollOffset+viewportHeight)+1, n)

	return NewVisibleRange(start, end).WithOverscan(l.config.Overscan, n)
}

// updateVisibleRange recomputes the visible range for the current offset.
func (l *VirtualList) updateVisibleRange() {
	l.state.VisibleRange = l.VisibleRangeFor(l.state.ScrollOffset, l.state.ViewportHeight)
}

// reclampScroll pulls the offset back into range after the content or
// viewport changed. It does not touch the scroll direction.
func (l *VirtualList) reclampScroll() {
	l.state.ScrollOffset = clampf(l.state.ScrollOffset, 0, l.MaxScrollOffset())
}

// MaxScrollOffset returns max(0, content height - viewport height).
func (l *VirtualList) MaxScrollOffset() float32 {
	return maxf(0, l.state.ContentHeight-l.state.ViewportHeight)
}

// ScrollOffset returns the current scroll offset.
func (l *VirtualList) ScrollOffset() float32 {
	return l.state.ScrollOffset
}

// ScrollDirection returns the direction of the last offset change.
func (l *VirtualList) ScrollDirection() ScrollDirection {
	return l.state.ScrollDirection
}

// SetScrollOffset clamps offset to [0, MaxScrollOffset], updates the scroll
// direction and recomputes the visible range. NaN is treated as 0.
func (l *VirtualList) SetScrollOffset(offset float32) {
	if math.IsNaN(float64(offset)) {
		offset = 0
	}

	prev := l.state.ScrollOffset
	l.state.ScrollOffset = clampf(offset, 0, l.MaxScrollOffset())

	switch {
	case l.state.ScrollOffset > prev:
		l.state.ScrollDirection = ScrollDown
	case l.state.ScrollOffset < prev:
		l.state.ScrollDirection = ScrollUp
	}

	l.updateVisibleRange()
}

// ScrollBy moves the scroll offset by delta.
func (l *VirtualList) ScrollBy(delta float32) {
	l.SetScrollOffset(l.state.ScrollOffset + delta)
}

// ScrollToIndex scrolls so the item's top is at the top of the viewport, or as
// close as the clamped range allows. It returns an *InvalidIndexError for
// indices outside [0, total).
func (l *VirtualList) ScrollToIndex(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.SetScrollOffset(l.OffsetForIndex(index))
	return nil
}

// EnsureVisible scrolls the minimum distance needed to show the whole item.
// If the item is already fully visible the offset is left unchanged.
func (l *VirtualList) EnsureVisible(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}

	top := l.OffsetForIndex(index)
	bottom := top + l.ItemHeightAt(index)
	viewTop := l.state.ScrollOffset
	viewBottom := viewTop + l.state.ViewportHeight

	switch {
	case top < viewTop:
		l.SetScrollOffset(top)
	case bottom > viewBottom:
		l.SetScrollOffset(bottom - l.state.ViewportHeight)
	}
	return nil
}

func (l *VirtualList) checkIndex(index int) error {
	if index < 0 || index >= l.state.TotalItems {
		l.logger.Debug().
			Int("index", index).
			Int("total_items", l.state.TotalItems).
			Msg("rejected out-of-range index")
		return &InvalidIndexError{Index: index, Total: l.state.TotalItems}
	}
	return nil
}

// ScrollToTop scrolls to offset 0.
func (l *VirtualList) ScrollToTop() {
	l.SetScrollOffset(0)
}

// ScrollToBottom scrolls to MaxScrollOffset.
func (l *VirtualList) ScrollToBottom() {
	l.SetScrollOffset(l.MaxScrollOffset())
}

// ScrollProgress returns the offset normalized to [0, 1], or 0 when the
// content fits in the viewport.
func (l *VirtualList) ScrollProgress() float32 {
	maxOffset := l.MaxScrollOffset()
	if maxOffset <= 0 {
		return 0
	}
	return l.state.ScrollOffset / maxOffset
}

// IsAtTop reports whether the list is scrolled to the top.
func (l *VirtualList) IsAtTop() bool {
	return l.state.ScrollOffset <= 0
}

// IsAtBottom reports whether the list is scrolled to the bottom.
func (l *VirtualList) IsAtBottom() bool {
	return l.state.ScrollOffset >= l.MaxScrollOffset()
}

// IsScrollable reports whether the content is taller than the viewport.
func (l *VirtualList) IsScrollable() bool {
	return l.MaxScrollOffset() > 0
}

// SetScrolling records whether the host is currently animating or dragging.
func (l *VirtualList) SetScrolling(scrolling bool) {
	l.state.IsScrolling = scrolling
}

// IsScrolling returns the host-provided scrolling flag.
func (l *VirtualList) IsScrolling() bool {
	return l.state.IsScrolling
}
