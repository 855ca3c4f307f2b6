package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/logging"
	"github.com/rshade/vlist/internal/virtuallist"
)

// Default viewport dimensions, in layout units.
const (
	defaultViewport    = 600
	defaultLayoutWidth = 400
)

// listFlags are the list shape flags shared by every command.
type listFlags struct {
	items    int
	viewport float32
}

// readListFlags reads --items and --viewport, falling back to the config.
func readListFlags(cmd *cobra.Command, cfg *config.Config) (listFlags, error) {
	items, _ := cmd.Flags().GetInt("items")
	viewport, _ := cmd.Flags().GetFloat32("viewport")

	if items < 0 {
		items = cfg.TUI.ItemCount
	}
	if viewport < 0 {
		return listFlags{}, fmt.Errorf("viewport must be >= 0, got %g", viewport)
	}
	return listFlags{items: items, viewport: viewport}, nil
}

// buildList creates a list configured from the global config and the shared
// flags. Its logger is the command logger tagged with component=virtuallist.
func buildList(cmd *cobra.Command) (*virtuallist.VirtualList, error) {
	cfg := config.GetGlobalConfig()

	flags, err := readListFlags(cmd, cfg)
	if err != nil {
		return nil, err
	}

	if err = cfg.List.Validate(); err != nil {
		return nil, err
	}

	log := logging.FromContext(cmd.Context())
	list := virtuallist.New().WithLogger(logging.ComponentLogger(*log, "virtuallist"))
	if err = cfg.List.Apply(list); err != nil {
		return nil, err
	}
	list.Items(flags.items).ViewportHeight(flags.viewport)

	log.Debug().
		Ctx(cmd.Context()).
		Int("items", flags.items).
		Float32("viewport", flags.viewport).
		Float32("content_height", list.ContentHeight()).
		Msg("list built")

	return list, nil
}
