package config

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/jask/lapclock/internal/cliutil"
	appconfig "github.com/jask/lapclock/internal/config"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Configuration commands",
		Long:  `Commands for inspecting and creating the lapclock configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newShowCmd(), newPathCmd(), newInitCmd())

	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.HandleOutput(cmd, Effective(cliutil.RuntimeFrom(cmd).Config))
		},
	}
	cmd.Flags().String("template", "", "Template for output format. Accepts Go template format (e.g. --template='{{.tick.interval}}')")
	cmd.Flags().String("format", "yaml", "Output format. Accepts 'json' or 'yaml'")
	return cmd
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cliutil.RuntimeFrom(cmd).ConfigPath)
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Example: heredoc.Doc(`
			# Create ~/.config/lapclock/config.toml with the defaults
			$ lapclock config init
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := cliutil.RuntimeFrom(cmd)
			if _, err := os.Stat(rt.ConfigPath); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", rt.ConfigPath)
			}
			if err := appconfig.Save(rt.ConfigPath, rt.Config); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", rt.ConfigPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

// Effective renders cfg as plain values for printing.
func Effective(cfg appconfig.Config) map[string]any {
	keys := map[string]any{}
	for action, k := range cfg.Keys {
		keys[action] = k
	}
	return map[string]any{
		"tick": map[string]any{"interval": cfg.Tick.Interval.String()},
		"laps": map[string]any{"highlight_after": cfg.Laps.HighlightAfter},
		"ui":   map[string]any{"show_chart": cfg.UI.ShowChart, "alt_screen": cfg.UI.AltScreen},
		"log":  map[string]any{"path": cfg.Log.Path, "level": cfg.Log.Level},
		"keys": keys,
	}
}
