package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/vlist/internal/cli/pagination"
	"github.com/rshade/vlist/internal/logging"
	"github.com/rshade/vlist/internal/virtuallist"
)

// ItemsReport is the output of `vlist items`.
type ItemsReport struct {
	Rows []pagination.Row `json:"rows" yaml:"rows"`
	Meta pagination.Meta  `json:"meta" yaml:"meta"`
}

// NewItemsCmd creates the items command.
func NewItemsCmd() *cobra.Command {
	params := pagination.NewParams()
	var (
		sortFlag string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Print item bounds for a window of indices",
		Long: `Prints the content-space Y offset and height of a window of items. The
window is selected with --offset/--limit or --page/--page-size; only the
selected rows are computed.`,
		Example: `  # First 100 items
  vlist items

  # Items 5000-5049, tallest first
  vlist items --offset 5000 --limit 50 --sort height:desc

  # Page 3 as NDJSON
  vlist items --page 3 --page-size 20 --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			if err = params.Validate(); err != nil {
				return err
			}
			if params.SortField, params.SortOrder, err = pagination.ParseSort(sortFlag); err != nil {
				return err
			}
			sorter := pagination.NewRowSorter()
			if params.SortField != "" && !sorter.IsValidField(params.SortField) {
				return fmt.Errorf("%w: %q (valid: %v)", pagination.ErrInvalidSortField, params.SortField, sorter.GetValidFields())
			}

			list, err := buildList(cmd)
			if err != nil {
				return err
			}

			report, err := buildItemsReport(list, *params)
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Debug().
				Ctx(cmd.Context()).
				Int("rows", len(report.Rows)).
				Int("total", report.Meta.TotalItems).
				Msg("item window computed")

			return renderItems(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().IntVar(&params.Limit, "limit", pagination.DefaultLimit, "maximum rows (0 for all)")
	cmd.Flags().IntVar(&params.Offset, "offset", pagination.DefaultOffset, "rows to skip")
	cmd.Flags().IntVar(&params.Page, "page", 0, "1-based page number (requires --page-size)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "rows per page")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "sort by index, y or height, optionally with :asc or :desc")
	cmd.Flags().StringVarP(&output, "output", "o", string(OutputTable), "output format: table, json, ndjson, yaml")

	return cmd
}

func buildItemsReport(list *virtuallist.VirtualList, params pagination.Params) (ItemsReport, error) {
	total := list.ItemCount()
	start, end := params.Window(total)

	rows := make([]pagination.Row, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, pagination.Row{
			Index:  i,
			Y:      list.OffsetForIndex(i),
			Height: list.ItemHeightAt(i),
		})
	}

	if params.SortField != "" {
		sorted, err := pagination.NewRowSorter().Sort(rows, params.SortField, params.SortOrder)
		if err != nil {
			return ItemsReport{}, err
		}
		rows = sorted
	}

	return ItemsReport{Rows: rows, Meta: pagination.NewMeta(params, total)}, nil
}

func renderItems(w io.Writer, format OutputFormat, report ItemsReport) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, report)
	case OutputNDJSON:
		return writeNDJSON(w, report.Rows)
	case OutputYAML:
		return writeYAML(w, report)
	default:
		return renderItemsTable(w, report)
	}
}

func renderItemsTable(w io.Writer, report ItemsReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Index\tY\tHeight\t")
	for _, r := range report.Rows {
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t\n", r.Index, r.Y, r.Height)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	m := report.Meta
	p := newPrinter()
	p.Fprintf(w, "\nPage %d of %d (%d items)", m.CurrentPage, m.TotalPages, m.TotalItems)
	if m.HasNext {
		fmt.Fprint(w, ", more available")
	}
	fmt.Fprintln(w)
	return nil
}
