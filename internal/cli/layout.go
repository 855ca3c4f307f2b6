package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/vlist/internal/logging"
	"github.com/rshade/vlist/internal/virtuallist"
)

// LayoutReport is the output of `vlist layout`.
type LayoutReport struct {
	Items         int          `json:"items"                   yaml:"items"`
	ItemHeight    string       `json:"item_height"             yaml:"item_height"`
	Viewport      float32      `json:"viewport"                yaml:"viewport"`
	ContentHeight float32      `json:"content_height"          yaml:"content_height"`
	ScrollOffset  float32      `json:"scroll_offset"           yaml:"scroll_offset"`
	MaxScroll     float32      `json:"max_scroll"              yaml:"max_scroll"`
	Progress      float32      `json:"progress"                yaml:"progress"`
	RangeStart    int          `json:"range_start"             yaml:"range_start"`
	RangeEnd      int          `json:"range_end"               yaml:"range_end"`
	StickyHeader  string       `json:"sticky_header,omitempty" yaml:"sticky_header,omitempty"`
	VisibleItems  []LayoutItem `json:"visible_items"           yaml:"visible_items"`
}

// LayoutItem is one visible item with bounds relative to the viewport.
type LayoutItem struct {
	Index int     `json:"index" yaml:"index"`
	X     float32 `json:"x"     yaml:"x"`
	Y     float32 `json:"y"     yaml:"y"`
	W     float32 `json:"w"     yaml:"w"`
	H     float32 `json:"h"     yaml:"h"`
}

// NewLayoutCmd creates the layout command.
func NewLayoutCmd() *cobra.Command {
	var (
		offset float32
		index  int
		width  float32
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the layout of a list at a scroll position",
		Long: `Builds a list from the configuration, scrolls it and prints the content
height, scroll metrics, visible range, sticky header and the bounds of every
visible item relative to the viewport.`,
		Example: `  # Layout at the top of the list
  vlist layout

  # Scroll so item 500 is at the top
  vlist layout --index 500

  # Scroll to y=1200 in a 300-unit viewport and print YAML
  vlist layout --viewport 300 --offset 1200 --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			list, err := buildList(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("index") {
				if err = list.ScrollToIndex(index); err != nil {
					return err
				}
			} else {
				list.SetScrollOffset(offset)
			}

			report := buildLayoutReport(list, width)
			logging.FromContext(cmd.Context()).Debug().
				Ctx(cmd.Context()).
				Int("visible", len(report.VisibleItems)).
				Msg("layout computed")

			return renderLayout(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().Float32Var(&offset, "offset", 0, "scroll offset")
	cmd.Flags().IntVar(&index, "index", 0, "scroll so this item is at the top (overrides --offset)")
	cmd.Flags().Float32Var(&width, "width", defaultLayoutWidth, "viewport width")
	cmd.Flags().StringVarP(&output, "output", "o", string(OutputTable), "output format: table, json, ndjson, yaml")

	return cmd
}

func buildLayoutReport(list *virtuallist.VirtualList, width float32) LayoutReport {
	r := list.VisibleRange()
	report := LayoutReport{
		Items:         list.ItemCount(),
		ItemHeight:    list.Config().ItemHeight.String(),
		Viewport:      list.Viewport(),
		ContentHeight: list.ContentHeight(),
		ScrollOffset:  list.ScrollOffset(),
		MaxScroll:     list.MaxScrollOffset(),
		Progress:      list.ScrollProgress(),
		RangeStart:    r.Start,
		RangeEnd:      r.End,
		VisibleItems:  make([]LayoutItem, 0, r.Len()),
	}

	if h, ok := list.CurrentStickyHeader(); ok {
		report.StickyHeader = h.Title
	}

	for item := range list.VisibleItems(width) {
		b := item.Bounds
		report.VisibleItems = append(report.VisibleItems, LayoutItem{
			Index: item.Index, X: b.X, Y: b.Y, W: b.W, H: b.H,
		})
	}
	return report
}

func renderLayout(w io.Writer, format OutputFormat, report LayoutReport) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, report)
	case OutputNDJSON:
		return writeNDJSON(w, report.VisibleItems)
	case OutputYAML:
		return writeYAML(w, report)
	default:
		return renderLayoutTable(w, report)
	}
}

func renderLayoutTable(w io.Writer, report LayoutReport) error {
	p := newPrinter()

	p.Fprintf(w, "Items:          %d (%s)\n", report.Items, report.ItemHeight)
	p.Fprintf(w, "Content height: %.1f\n", report.ContentHeight)
	p.Fprintf(w, "Viewport:       %.1f\n", report.Viewport)
	p.Fprintf(w, "Scroll offset:  %.1f / %.1f (%.1f%%)\n", report.ScrollOffset, report.MaxScroll, report.Progress*100)
	p.Fprintf(w, "Visible range:  [%d, %d)\n", report.RangeStart, report.RangeEnd)
	if report.StickyHeader != "" {
		p.Fprintf(w, "Sticky header:  %s\n", report.StickyHeader)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Index\tX\tY\tW\tH\t")
	for _, it := range report.VisibleItems {
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.1f\t%.1f\t\n", it.Index, it.X, it.Y, it.W, it.H)
	}
	return tw.Flush()
}
