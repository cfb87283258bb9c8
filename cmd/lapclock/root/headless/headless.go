package headless

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/jask/lapclock/internal/cliutil"
	"github.com/jask/lapclock/internal/headless"
)

func NewHeadlessCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Drive the stopwatch from stdin",
		Long: heredoc.Doc(`
			Reads one command per line from stdin: start, pause, toggle, lap,
			reset, secondary or quit. Close matches such as "strat" are accepted.
			An empty line is the secondary control: a lap while running, a reset
			otherwise. On quit or end of input the session summary is printed.
		`),
		Example: heredoc.Doc(`
			# Time a scripted session and print it as JSON
			$ printf 'start\nlap\npause\n' | lapclock headless --format json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := cliutil.RuntimeFrom(cmd)
			logger, err := rt.Logger()
			if err != nil {
				return err
			}

			host, err := headless.New(headless.Options{
				Interval:       rt.Config.Tick.Interval,
				HighlightAfter: rt.Config.Laps.HighlightAfter,
				Format:         format,
				Logger:         logger,
			}, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return host.Run(ctx, cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Summary format. Accepts 'text', 'json', 'yaml' or 'toml'")

	return cmd
}
