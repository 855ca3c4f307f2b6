package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the vlist CLI.
// It loads configuration (global, project-local and --config overlay), wires
// up logging and tracing, and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "vlist",
		Short:   "Virtualized list layout engine",
		Long:    "vlist: inspect, browse and benchmark virtualized list layouts",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML or TOML file merged over the loaded configuration")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .vlist/config.yaml")
	cmd.PersistentFlags().Int("items", -1, "number of items (default: tui.item_count from config)")
	cmd.PersistentFlags().Float32("viewport", defaultViewport, "viewport height in layout units")

	cmd.AddCommand(
		NewLayoutCmd(),
		NewItemsCmd(),
		NewBrowseCmd(),
		NewBenchCmd(),
		newConfigCmd(),
	)

	return cmd
}

// loadConfig resolves the project directory, merges the --config overlay and
// installs the result as the global configuration.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()

	projectFlag, _ := cmd.Flags().GetString("project-dir")
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	projectDir := config.ResolveProjectDir(ctx, projectFlag, wd)
	config.SetResolvedProjectDir(projectDir)

	cfg := config.NewWithProjectDir(ctx, projectDir)

	if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
		if mergeErr := config.MergeOverlay(cfg, overlay); mergeErr != nil {
			return fmt.Errorf("loading --config: %w", mergeErr)
		}
	}

	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Print the layout of 100,000 fixed-height items scrolled to y=48000
  vlist layout --items 100000 --offset 48000

  # Print item bounds for page 3 as JSON
  vlist items --page 3 --page-size 20 --output json

  # Browse a list interactively
  vlist browse --items 5000

  # Benchmark layout for several list sizes
  vlist bench --sizes 1000,100000,1000000

  # Initialize configuration
  vlist config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
