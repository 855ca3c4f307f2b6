package virtuallist

import "iter"

// VisibleRange is a half-open interval [Start, End) of item indices.
//
// Ranges are replaced wholesale on every layout or scroll mutation; they are
// never updated in place.
type VisibleRange struct {
	// Start is the first index in the range (inclusive).
	Start int
	// End is the last index in the range (exclusive).
	End int
}

// NewVisibleRange returns the range [start, end). Callers must ensure
// start <= end.
func NewVisibleRange(start, end int) VisibleRange {
	return VisibleRange{Start: start, End: end}
}

// EmptyRange returns a zero-length range.
func EmptyRange() VisibleRange {
	return VisibleRange{}
}

// IsEmpty returns true if the range holds no indices.
func (r VisibleRange) IsEmpty() bool {
	return r.Start >= r.End
}

// Len returns the number of indices in the range.
func (r VisibleRange) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether index lies in [Start, End).
func (r VisibleRange) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// All returns an iterator over the indices in the range. The sequence is
// finite and can be ranged over any number of times.
func (r VisibleRange) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := r.Start; i < r.End; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// WithOverscan widens both ends by overscan, clamped to [0, total].
func (r VisibleRange) WithOverscan(overscan, total int) VisibleRange {
	if overscan < 0 {
		overscan = 0
	}
	start := max(r.Start-overscan, 0)
	end := min(r.End+overscan, total)
	if start > end {
		start = end
	}
	return VisibleRange{Start: start, End: end}
}
