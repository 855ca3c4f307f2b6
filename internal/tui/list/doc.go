// Package listview hosts a virtuallist.VirtualList inside a Bubble Tea program.
//
// One layout unit is one terminal row; widths are terminal columns. The model
// owns the list and only mutates it from Update, so the engine's
// single-goroutine contract holds. Key features:
//   - Keyboard navigation (up/down, j/k, pgup/pgdn, home/end) with a cursor kept in view
//   - Mouse wheel scrolling
//   - Pull-to-refresh by scrolling past the top, with a spinner while refreshing
//   - Sticky section headers, separators and a proportional scrollbar
//   - Variable-height rows measured on demand through a MeasureFunc
package listview
