package virtuallist

import "fmt"

// SectionHeader is a header that owns the contiguous item run
// [StartIndex, StartIndex+ItemCount).
type SectionHeader struct {
	ID         string
	Title      string
	Height     float32
	Sticky     bool
	StartIndex int
	ItemCount  int
}

// NewSectionHeader returns a sticky header with no items assigned.
func NewSectionHeader(id, title string, height float32) SectionHeader {
	return SectionHeader{
		ID:     id,
		Title:  title,
		Height: height,
		Sticky: true,
	}
}

// WithSticky returns a copy of the header with Sticky set.
func (h SectionHeader) WithSticky(sticky bool) SectionHeader {
	h.Sticky = sticky
	return h
}

// WithItems returns a copy of the header owning [start, start+count).
func (h SectionHeader) WithItems(start, count int) SectionHeader {
	h.StartIndex = start
	h.ItemCount = count
	return h
}

// EndIndex returns the first index after the section (exclusive).
func (h SectionHeader) EndIndex() int {
	return h.StartIndex + h.ItemCount
}

// Contains reports whether the item index belongs to this section.
func (h SectionHeader) Contains(index int) bool {
	return index >= h.StartIndex && index < h.EndIndex()
}

// SectionConfig is an ordered list of non-overlapping sections sorted by
// StartIndex. A VirtualList keeps its own copy; to change sections, build a
// new config and pass it to VirtualList.Sections.
type SectionConfig struct {
	Sections []SectionHeader
}

// NewSectionConfig returns a config holding the given headers in order.
func NewSectionConfig(headers ...SectionHeader) SectionConfig {
	return SectionConfig{Sections: append([]SectionHeader(nil), headers...)}
}

// Add returns a copy of the config with header appended.
func (c SectionConfig) Add(header SectionHeader) SectionConfig {
	sections := make([]SectionHeader, 0, len(c.Sections)+1)
	sections = append(sections, c.Sections...)
	return SectionConfig{Sections: append(sections, header)}
}

// Len returns the number of sections.
func (c SectionConfig) Len() int {
	return len(c.Sections)
}

// SectionFor returns the section containing the item index. Section counts are
// small relative to item counts, so a linear scan is used.
func (c SectionConfig) SectionFor(index int) (SectionHeader, bool) {
	for _, s := range c.Sections {
		if s.Contains(index) {
			return s, true
		}
	}
	return SectionHeader{}, false
}

// HeaderHeightBefore sums the heights of all sections starting at or before
// the item index.
func (c SectionConfig) HeaderHeightBefore(index int) float32 {
	var total float32
	for _, s := range c.Sections {
		if s.StartIndex <= index {
			total += s.Height
		}
	}
	return total
}

// TotalHeaderHeight sums the heights of all sections.
func (c SectionConfig) TotalHeaderHeight() float32 {
	var total float32
	for _, s := range c.Sections {
		total += s.Height
	}
	return total
}

// Validate checks ordering and overlap. The engine tolerates invalid configs;
// this is for configuration loaders.
func (c SectionConfig) Validate() error {
	prevEnd := 0
	for i, s := range c.Sections {
		switch {
		case s.StartIndex < 0 || s.ItemCount < 0:
			return &ConfigError{Field: sectionField(i, s), Reason: "start_index and item_count must be non-negative"}
		case s.Height < 0:
			return &ConfigError{Field: sectionField(i, s), Reason: "height must be non-negative"}
		case i > 0 && s.StartIndex < prevEnd:
			return &ConfigError{Field: sectionField(i, s), Reason: "sections must be sorted and must not overlap"}
		}
		prevEnd = s.EndIndex()
	}
	return nil
}

func sectionField(i int, s SectionHeader) string {
	if s.ID != "" {
		return fmt.Sprintf("sections[%s]", s.ID)
	}
	return fmt.Sprintf("sections[%d]", i)
}
