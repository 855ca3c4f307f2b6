package virtuallist

// SeparatorStyle is the kind of line drawn between adjacent items.
type SeparatorStyle int

const (
	// SeparatorNone draws nothing and takes no space.
	SeparatorNone SeparatorStyle = iota
	// SeparatorFull spans the full item width.
	SeparatorFull
	// SeparatorInset is indented by LeftInset/RightInset.
	SeparatorInset
)

// String returns the configuration name of the style.
func (s SeparatorStyle) String() string {
	switch s {
	case SeparatorFull:
		return "full"
	case SeparatorInset:
		return "inset"
	default:
		return "none"
	}
}

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Separator describes the gap between items. Only Thickness affects layout;
// Color and the insets are for the host's renderer.
type Separator struct {
	Style      SeparatorStyle
	Thickness  float32
	Color      Color
	LeftInset  float32
	RightInset float32
}

// NoSeparator returns a separator that takes no space.
func NoSeparator() Separator {
	return Separator{Style: SeparatorNone}
}

// FullSeparator returns a full-width line of the given thickness.
func FullSeparator(thickness float32, color Color) Separator {
	return Separator{Style: SeparatorFull, Thickness: thickness, Color: color}
}

// InsetSeparator returns a line indented from both edges.
func InsetSeparator(thickness float32, color Color, left, right float32) Separator {
	return Separator{
		Style:      SeparatorInset,
		Thickness:  thickness,
		Color:      color,
		LeftInset:  left,
		RightInset: right,
	}
}

// Height returns the vertical space the separator adds after an item.
func (s Separator) Height() float32 {
	if s.Style == SeparatorNone {
		return 0
	}
	return maxf(s.Thickness, 0)
}

// Bounds returns where the separator following an item with the given bounds
// should be drawn. ok is false when there is nothing to draw.
func (s Separator) Bounds(item Rect) (Rect, bool) {
	h := s.Height()
	if h == 0 {
		return Rect{}, false
	}
	r := Rect{X: item.X, Y: item.Bottom(), W: item.W, H: h}
	if s.Style == SeparatorInset {
		r.X += s.LeftInset
		r.W = maxf(0, r.W-s.LeftInset-s.RightInset)
	}
	return r, true
}
