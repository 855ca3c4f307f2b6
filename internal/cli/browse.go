package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/logging"
	listview "github.com/rshade/vlist/internal/tui/list"
	"github.com/rshade/vlist/internal/virtuallist"
)

// refreshBatch is the number of items a completed refresh appends.
const refreshBatch = 10

// NewBrowseCmd creates the browse command.
func NewBrowseCmd() *cobra.Command {
	var (
		sectionSize int
		variable    bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a list interactively",
		Long: `Opens an interactive terminal view of a list. Items are one row tall
(tui.row_height), or between one and three rows with --variable. Scroll with
the arrow keys, j/k, PgUp/PgDn, Home/End or the mouse wheel; pull past the top
to refresh. Without a terminal, prints the layout instead.`,
		Example: `  # Browse 5,000 items
  vlist browse --items 5000

  # Group items into sections of 50 with sticky headers
  vlist browse --sections 50

  # Variable row heights
  vlist browse --variable`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f, ok := cmd.OutOrStdout().(*os.File); !ok || !isTerminal(f) {
				logging.FromContext(cmd.Context()).Debug().
					Ctx(cmd.Context()).
					Msg("stdout is not a terminal, printing layout")
				list, err := buildList(cmd)
				if err != nil {
					return err
				}
				return renderLayout(cmd.OutOrStdout(), OutputTable, buildLayoutReport(list, defaultLayoutWidth))
			}

			model, err := newBrowseModel(cmd, sectionSize, variable)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&sectionSize, "sections", 0, "group items into sections of this size (0 for none)")
	cmd.Flags().BoolVar(&variable, "variable", false, "use variable row heights")

	return cmd
}

// newBrowseModel builds a row-unit list and wraps it in a list view.
func newBrowseModel(cmd *cobra.Command, sectionSize int, variable bool) (*listview.Model, error) {
	cfg := config.GetGlobalConfig()
	flags, err := readListFlags(cmd, cfg)
	if err != nil {
		return nil, err
	}
	if sectionSize < 0 {
		return nil, fmt.Errorf("sections must be >= 0, got %d", sectionSize)
	}

	log := logging.FromContext(cmd.Context())
	rowHeight := float32(cfg.TUI.RowHeight)

	list := virtuallist.New().
		WithLogger(logging.ComponentLogger(*log, "virtuallist")).
		Overscan(cfg.List.Overscan).
		PullToRefresh(true).
		Items(flags.items)
	if variable {
		list.VariableHeight(rowHeight)
	} else {
		list.FixedHeight(rowHeight)
	}
	if sectionSize > 0 {
		list.Sections(rowSections(flags.items, sectionSize))
	}

	opts := []listview.Option{
		listview.WithScrollbar(cfg.TUI.ShowScrollbar),
		listview.WithLogger(logging.ComponentLogger(*log, "listview")),
		listview.WithRefreshFunc(delayedRefresh(cfg.TUI.RefreshDelay)),
	}
	if variable {
		opts = append(opts, listview.WithMeasureFunc(measureRow))
	}

	return listview.New(list, renderRow, opts...), nil
}

// rowSections splits n items into sticky sections of size items, each with
// a one-row header.
func rowSections(n, size int) virtuallist.SectionConfig {
	var sc virtuallist.SectionConfig
	for start := 0; start < n; start += size {
		title := fmt.Sprintf("Items %d-%d", start, min(start+size, n)-1)
		h := virtuallist.NewSectionHeader(fmt.Sprintf("s%d", start/size), title, 1).
			WithItems(start, min(size, n-start))
		sc = sc.Add(h)
	}
	return sc
}

func renderRow(index, _ int) string {
	lines := make([]string, measureRow(index, 0))
	lines[0] = fmt.Sprintf("Item %d", index)
	for i := 1; i < len(lines); i++ {
		lines[i] = fmt.Sprintf("  line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

// measureRow gives items a repeating height of one to three rows.
func measureRow(index, _ int) int {
	return 1 + index%3
}

// delayedRefresh simulates a data source that answers after delay.
func delayedRefresh(delay time.Duration) listview.RefreshFunc {
	return func() tea.Cmd {
		return tea.Tick(delay, func(time.Time) tea.Msg {
			return listview.RefreshDoneMsg{Added: refreshBatch}
		})
	}
}
