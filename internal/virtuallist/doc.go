// Package virtuallist implements the layout and scrolling engine behind vlist's
// virtualized lists.
//
// Given an item count that may run into the millions, a VirtualList computes
// which items intersect the viewport, their pixel bounds, and the total
// scrollable content height. Per-frame queries are O(1) or O(log n):
//   - Fixed-height lists use closed-form offset/index conversion
//   - Variable-height lists keep a prefix-sum position cache and binary search it
//   - Section headers resolve the sticky header for the current scroll position
//   - Scroll state tracks clamping, direction and a pull-to-refresh gesture
//
// Section headers are an overlay layer: their heights are added to the content
// height so the list can scroll far enough, but they do not displace item
// positions. Hosts that draw inline headers can use
// SectionConfig.HeaderHeightBefore to offset them.
//
// A VirtualList is not safe for concurrent use. Hosts drive it from a single
// render/update loop and serialize any cross-goroutine events themselves.
package virtuallist
