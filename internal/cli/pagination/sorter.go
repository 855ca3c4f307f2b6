package pagination

import (
	"cmp"
	"fmt"
	"slices"
)

// Sort fields accepted by RowSorter.
const (
	FieldIndex  = "index"
	FieldY      = "y"
	FieldHeight = "height"
)

// Row is the layout of one item in content coordinates.
type Row struct {
	Index  int     `json:"index"  yaml:"index"`
	Y      float32 `json:"y"      yaml:"y"`
	Height float32 `json:"height" yaml:"height"`
}

// RowSorter orders rows by a named field.
type RowSorter struct {
	validFields []string
}

// NewRowSorter creates a RowSorter for index, y and height.
func NewRowSorter() *RowSorter {
	return &RowSorter{validFields: []string{FieldHeight, FieldIndex, FieldY}}
}

// IsValidField checks if the field is valid for sorting.
func (s *RowSorter) IsValidField(field string) bool {
	return slices.Contains(s.validFields, field)
}

// GetValidFields returns all valid sort fields in sorted order.
func (s *RowSorter) GetValidFields() []string {
	return slices.Clone(s.validFields)
}

// Sort returns a sorted copy of rows. An empty field keeps the input order.
// Ties are broken by index so the output is deterministic.
func (s *RowSorter) Sort(rows []Row, field, order string) ([]Row, error) {
	sorted := slices.Clone(rows)
	if field == "" {
		return sorted, nil
	}
	if !s.IsValidField(field) {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, s.validFields)
	}

	slices.SortStableFunc(sorted, func(a, b Row) int {
		var c int
		switch field {
		case FieldY:
			c = cmp.Compare(a.Y, b.Y)
		case FieldHeight:
			c = cmp.Compare(a.Height, b.Height)
		}
		if c == 0 {
			c = cmp.Compare(a.Index, b.Index)
		}
		if order == SortOrderDesc {
			c = -c
		}
		return c
	})
	return sorted, nil
}
