package virtuallist

import (
	"iter"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// defaultOverscan is the number of extra items kept above and below the viewport.
const defaultOverscan = 3

// Config is the layout configuration of a VirtualList. It is treated as
// immutable between recalculations; change it through the builder methods.
type Config struct {
	// ItemHeight selects fixed or variable item heights.
	ItemHeight ItemHeight
	// Overscan is the number of extra items rendered above/below the viewport.
	Overscan int
	// Separator is the gap drawn between adjacent items.
	Separator Separator
	// SmoothScroll is a hint for the host's scroll animation; the engine ignores it.
	SmoothScroll bool
	// Padding is applied above the first item, below the last, and on both sides.
	Padding float32
	// PullToRefresh enables the pull-to-refresh gesture state machine.
	PullToRefresh bool
}

// DefaultConfig returns fixed 48-unit items, overscan 3, no separator,
// smooth scrolling enabled, no padding and pull-to-refresh disabled.
func DefaultConfig() Config {
	return Config{
		ItemHeight:   FixedHeight(defaultItemHeight),
		Overscan:     defaultOverscan,
		Separator:    NoSeparator(),
		SmoothScroll: true,
	}
}

// Validate reports values the engine would silently clamp.
func (c Config) Validate() error {
	switch {
	case c.ItemHeight.Mode != HeightFixed && c.ItemHeight.Mode != HeightVariable:
		return &ConfigError{Field: "item_height.mode", Reason: "must be fixed or variable"}
	case c.ItemHeight.Value <= 0:
		return &ConfigError{Field: "item_height.value", Reason: "must be positive"}
	case c.Overscan < 0:
		return &ConfigError{Field: "overscan", Reason: "must be non-negative"}
	case c.Padding < 0:
		return &ConfigError{Field: "padding", Reason: "must be non-negative"}
	case c.Separator.Style != SeparatorNone && c.Separator.Thickness < 0:
		return &ConfigError{Field: "separator.thickness", Reason: "must be non-negative"}
	}
	return nil
}

// ScrollDirection is the sign of the most recent scroll offset change.
type ScrollDirection int8

const (
	// ScrollUp means the offset last decreased.
	ScrollUp ScrollDirection = -1
	// ScrollNone means the offset has not changed yet.
	ScrollNone ScrollDirection = 0
	// ScrollDown means the offset last increased.
	ScrollDown ScrollDirection = 1
)

// State is the mutable state of a VirtualList. ContentHeight, VisibleRange and
// ItemPositions are derived and recomputed eagerly.
type State struct {
	TotalItems      int
	ContentHeight   float32
	ScrollOffset    float32
	ViewportHeight  float32
	VisibleRange    VisibleRange
	MeasuredHeights map[int]float32
	// ItemPositions holds the top Y of every item relative to the content
	// origin. len(ItemPositions) == TotalItems when the cache is valid.
	ItemPositions   []float32
	IsScrolling     bool
	ScrollDirection ScrollDirection
	// PullProgress is in [0, 1].
	PullProgress float32
	IsRefreshing bool
}

// ListItem is the per-frame projection of one item: its index and its bounds
// relative to the viewport. It is not meant to be stored across frames.
type ListItem struct {
	Index   int
	Bounds  Rect
	Visible bool
}

// VirtualList lays out and scrolls a virtualized list.
//
// Usage:
//
//	list := virtuallist.New().
//	    Items(100_000).
//	    FixedHeight(48).
//	    Overscan(5).
//	    ViewportHeight(600)
//
//	for item := range list.VisibleItems(400) {
//	    // draw item.Index at item.Bounds
//	}
type VirtualList struct {
	config   Config
	state    State
	sections *SectionConfig
	logger   zerolog.Logger
}

// New creates an empty list with DefaultConfig.
func New() *VirtualList {
	l := &VirtualList{
		config: DefaultConfig(),
		state: State{
			MeasuredHeights: make(map[int]float32),
		},
		logger: zerolog.Nop(),
	}
	l.recalculateLayout()
	return l
}

// WithLogger sets the logger used for layout tracing.
func (l *VirtualList) WithLogger(logger zerolog.Logger) *VirtualList {
	l.logger = logger
	return l
}

// Items sets the total number of items and recalculates layout.
func (l *VirtualList) Items(count int) *VirtualList {
	l.SetItemCount(count)
	return l
}

// SetItemCount updates the total number of items and recalculates layout.
// Negative counts are treated as 0.
func (l *VirtualList) SetItemCount(count int) {
	l.state.TotalItems = max(count, 0)
	l.recalculateLayout()
}

// ItemHeight sets the item height model and recalculates layout.
func (l *VirtualList) ItemHeight(height ItemHeight) *VirtualList {
	l.config.ItemHeight = height
	l.recalculateLayout()
	return l
}

// FixedHeight gives every item the same height.
func (l *VirtualList) FixedHeight(height float32) *VirtualList {
	return l.ItemHeight(FixedHeight(height))
}

// VariableHeight switches to measured heights with the given estimate.
func (l *VirtualList) VariableHeight(estimated float32) *VirtualList {
	return l.ItemHeight(VariableHeight(estimated))
}

// Overscan sets the number of extra items kept outside the viewport.
func (l *VirtualList) Overscan(count int) *VirtualList {
	l.config.Overscan = max(count, 0)
	l.updateVisibleRange()
	return l
}

// Separator sets the separator and recalculates layout.
func (l *VirtualList) Separator(separator Separator) *VirtualList {
	l.config.Separator = separator
	l.recalculateLayout()
	return l
}

// SmoothScroll records the smooth scrolling hint for the host.
func (l *VirtualList) SmoothScroll(enabled bool) *VirtualList {
	l.config.SmoothScroll = enabled
	return l
}

// Padding sets the padding around the list and recalculates layout.
// Negative padding is treated as 0.
func (l *VirtualList) Padding(padding float32) *VirtualList {
	l.config.Padding = maxf(padding, 0)
	l.recalculateLayout()
	return l
}

// PullToRefresh enables or disables the pull-to-refresh gesture.
func (l *VirtualList) PullToRefresh(enabled bool) *VirtualList {
	l.config.PullToRefresh = enabled
	return l
}

// Sections replaces the section headers and recalculates layout. The list
// keeps its own copy of the headers.
func (l *VirtualList) Sections(sections SectionConfig) *VirtualList {
	cp := SectionConfig{Sections: slices.Clone(sections.Sections)}
	l.sections = &cp
	l.recalculateLayout()
	return l
}

// ClearSections removes all section headers and recalculates layout.
func (l *VirtualList) ClearSections() *VirtualList {
	l.sections = nil
	l.recalculateLayout()
	return l
}

// ViewportHeight sets the viewport height and recomputes the visible range.
func (l *VirtualList) ViewportHeight(height float32) *VirtualList {
	l.state.ViewportHeight = height
	l.reclampScroll()
	l.updateVisibleRange()
	return l
}

// Config returns the current configuration.
func (l *VirtualList) Config() Config {
	return l.config
}

// State returns a snapshot of the current state. The measured heights and the
// position cache are copied, which is O(n); per-frame code should use the
// narrower accessors instead.
func (l *VirtualList) State() State {
	s := l.state
	s.MeasuredHeights = maps.Clone(l.state.MeasuredHeights)
	s.ItemPositions = slices.Clone(l.state.ItemPositions)
	return s
}

// SectionConfig returns a copy of the attached section headers, if any.
func (l *VirtualList) SectionConfig() (SectionConfig, bool) {
	if l.sections == nil {
		return SectionConfig{}, false
	}
	return SectionConfig{Sections: slices.Clone(l.sections.Sections)}, true
}

// ItemCount returns the total number of items.
func (l *VirtualList) ItemCount() int {
	return l.state.TotalItems
}

// ContentHeight returns the total scrollable content height.
func (l *VirtualList) ContentHeight() float32 {
	return l.state.ContentHeight
}

// VisibleRange returns the current visible range, including overscan.
func (l *VirtualList) VisibleRange() VisibleRange {
	return l.state.VisibleRange
}

// Viewport returns the current viewport height.
func (l *VirtualList) Viewport() float32 {
	return l.state.ViewportHeight
}

// MeasuredCount returns how many items have a measured height.
func (l *VirtualList) MeasuredCount() int {
	return len(l.state.MeasuredHeights)
}

// ItemBounds returns the bounds of an item relative to the viewport.
func (l *VirtualList) ItemBounds(index int, viewportWidth float32) Rect {
	pad := l.config.Padding
	return Rect{
		X: pad,
		Y: l.OffsetForIndex(index) - l.state.ScrollOffset,
		W: viewportWidth - 2*pad,
		H: l.ItemHeightAt(index),
	}
}

// VisibleItems returns the items of the current visible range with their
// bounds. The sequence is computed lazily and can be iterated repeatedly; it
// reflects the list state at iteration time.
func (l *VirtualList) VisibleItems(viewportWidth float32) iter.Seq[ListItem] {
	return func(yield func(ListItem) bool) {
		for index := range l.state.VisibleRange.All() {
			item := ListItem{
				Index:   index,
				Bounds:  l.ItemBounds(index, viewportWidth),
				Visible: true,
			}
			if !yield(item) {
				return
			}
		}
	}
}

// IsItemVisible reports whether the item is in the visible range.
func (l *VirtualList) IsItemVisible(index int) bool {
	return l.state.VisibleRange.Contains(index)
}

// CurrentStickyHeader returns the header the host should pin at the top of
// the viewport: the last sticky section starting at or before the first
// visible item.
func (l *VirtualList) CurrentStickyHeader() (SectionHeader, bool) {
	if l.sections == nil {
		return SectionHeader{}, false
	}

	first := l.state.VisibleRange.Start
	var (
		current SectionHeader
		found   bool
	)
	for _, s := range l.sections.Sections {
		if s.Sticky && s.StartIndex <= first {
			current = s
			found = true
		}
	}
	return current, found
}
