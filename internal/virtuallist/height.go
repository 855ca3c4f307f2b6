package virtuallist

import "fmt"

// HeightMode selects how item heights are determined.
type HeightMode int

const (
	// HeightFixed gives every item the same height.
	HeightFixed HeightMode = iota
	// HeightVariable uses measured heights, falling back to an estimate.
	HeightVariable
)

// String returns the configuration name of the mode.
func (m HeightMode) String() string {
	switch m {
	case HeightFixed:
		return "fixed"
	case HeightVariable:
		return "variable"
	default:
		return fmt.Sprintf("HeightMode(%d)", int(m))
	}
}

// defaultItemHeight is the fixed height used when none is configured.
const defaultItemHeight = 48

// ItemHeight is the item height model: either Fixed(Value) or
// Variable{estimated: Value}. Construct it with FixedHeight or VariableHeight.
type ItemHeight struct {
	Mode  HeightMode
	Value float32
}

// FixedHeight returns a model where every item is h units tall.
func FixedHeight(h float32) ItemHeight {
	return ItemHeight{Mode: HeightFixed, Value: h}
}

// VariableHeight returns a model where unmeasured items are estimated units tall.
func VariableHeight(estimated float32) ItemHeight {
	return ItemHeight{Mode: HeightVariable, Value: estimated}
}

// IsVariable reports whether items are measured individually.
func (h ItemHeight) IsVariable() bool {
	return h.Mode == HeightVariable
}

// String renders the model as "fixed(48)" or "variable(~50)".
func (h ItemHeight) String() string {
	if h.IsVariable() {
		return fmt.Sprintf("variable(~%g)", h.Value)
	}
	return fmt.Sprintf("fixed(%g)", h.Value)
}

// heightOf resolves the height of one item. Negative values are treated as 0
// so a bad measurement can never make offsets decrease.
func (h ItemHeight) heightOf(index int, measured map[int]float32) float32 {
	if h.Mode == HeightVariable {
		if v, ok := measured[index]; ok {
			return maxf(v, 0)
		}
	}
	return maxf(h.Value, 0)
}
