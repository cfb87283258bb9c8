package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/lapclock/cmd/lapclock/root/config"
	"github.com/jask/lapclock/cmd/lapclock/root/format"
	"github.com/jask/lapclock/cmd/lapclock/root/headless"
	"github.com/jask/lapclock/cmd/lapclock/root/version"
	"github.com/jask/lapclock/internal/cliutil"
	appconfig "github.com/jask/lapclock/internal/config"
	"github.com/jask/lapclock/internal/report"
	"github.com/jask/lapclock/internal/tui"
)

func NewRootCmd() *cobra.Command {
	var cfgFile string
	var summary string

	cmd := &cobra.Command{
		Use:   "lapclock",
		Short: "Terminal stopwatch with laps",
		Long: heredoc.Doc(`
			A stopwatch for the terminal. Start and pause the clock, record laps,
			and see the best and worst laps highlighted from the fourth lap on.
		`),
		Example: heredoc.Doc(`
			# Run the stopwatch
			$ lapclock

			# Print the laps as YAML when quitting
			$ lapclock --summary yaml
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.Load(cfgFile)
			if err != nil {
				return err
			}
			rt := &cliutil.Runtime{ConfigPath: appconfig.Path(cfgFile), Config: cfg}
			cmd.SetContext(cliutil.WithRuntime(cmd.Context(), rt))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.RuntimeFrom(cmd).Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if summary != "" && !report.ValidFormat(summary) {
				return fmt.Errorf("%w: %q", report.ErrUnknownFormat, summary)
			}
			rt := cliutil.RuntimeFrom(cmd)
			logger, err := rt.Logger()
			if err != nil {
				return err
			}

			app := tui.New(tui.Options{Config: rt.Config, Logger: logger})
			opts := []tea.ProgramOption{tea.WithContext(cmd.Context()), tea.WithReportFocus()}
			if rt.Config.UI.AltScreen {
				opts = append(opts, tea.WithAltScreen())
			}
			logger.Info("Session started", "session", app.Engine().ID())
			if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
				return fmt.Errorf("run stopwatch: %w", err)
			}
			logger.Info("Session ended", "elapsed_ms", app.Engine().Elapsed(), "laps", app.Engine().LapCount())

			if summary == "" {
				return nil
			}
			return report.Write(cmd.OutOrStdout(), summary, report.FromEngine(app.Engine()))
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.config/lapclock/config.toml)")
	cmd.Flags().StringVar(&summary, "summary", "", "Print the session summary on exit. Accepts 'text', 'json', 'yaml' or 'toml'")

	cmd.AddCommand(headless.NewHeadlessCmd())
	cmd.AddCommand(format.NewFormatCmd())
	cmd.AddCommand(config.NewConfigCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
