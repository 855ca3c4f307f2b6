// Package pagination provides index windows, metadata and sorting for CLI
// commands that list item rows.
//
// This package contains:
//   - Params: CLI flag values and validation for offset- and page-based paging
//   - Meta: metadata printed alongside a page of rows
//   - RowSorter: ordering of item rows by field
//
// Windows are computed from a total count so that callers never materialize
// rows outside the requested page.
package pagination
