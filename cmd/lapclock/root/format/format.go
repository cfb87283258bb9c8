package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/jask/lapclock/internal/stopwatch"
)

func NewFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <milliseconds|duration>...",
		Short: "Format elapsed times the way the stopwatch shows them",
		Example: heredoc.Doc(`
			$ lapclock format 3661250
			01:01:01.25

			$ lapclock format 1m30.5s
			00:01:30.50
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				ms, err := ParseMillis(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), stopwatch.FormatElapsed(ms))
			}
			return nil
		},
	}
	return cmd
}

// ParseMillis accepts a non-negative integer millisecond count or a Go
// duration string.
func ParseMillis(s string) (int64, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("negative time %q", s)
		}
		return ms, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want milliseconds or a duration like 1m30s", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative time %q", s)
	}
	return d.Milliseconds(), nil
}
