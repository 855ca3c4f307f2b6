package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/vlist/internal/config"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration after merging the global file, the project-local
file, environment overrides and any --config overlay.`,
		Example: `  vlist config show
  vlist config show --config overlay.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if path := cfg.ConfigPath(); path != "" {
				cmd.Printf("# %s\n", path)
			}
			return writeYAML(cmd.OutOrStdout(), cfg)
		},
	}
}
