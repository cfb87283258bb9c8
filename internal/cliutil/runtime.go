package cliutil

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jask/lapclock/internal/config"
	"github.com/jask/lapclock/internal/logging"
)

// Runtime is the per-invocation state the root command prepares for its
// subcommands.
type Runtime struct {
	ConfigPath string
	Config     config.Config

	logger *log.Logger
	closer io.Closer
}

type runtimeKey struct{}

func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// RuntimeFrom returns the runtime stored on cmd's context, or one holding
// the loaded defaults when the root pre-run did not execute.
func RuntimeFrom(cmd *cobra.Command) *Runtime {
	if ctx := cmd.Context(); ctx != nil {
		if rt, ok := ctx.Value(runtimeKey{}).(*Runtime); ok {
			return rt
		}
	}
	cfg, err := config.Load("")
	if err != nil {
		log.Warn("Falling back to built-in configuration", "error", err)
		cfg = config.Defaults()
	}
	return &Runtime{ConfigPath: config.Path(""), Config: cfg}
}

// Logger opens the configured log file on first use.
func (r *Runtime) Logger() (*log.Logger, error) {
	if r.logger != nil {
		return r.logger, nil
	}
	logger, closer, err := logging.New(r.Config.Log)
	if err != nil {
		return nil, err
	}
	r.logger, r.closer = logger, closer
	return logger, nil
}

// Close releases the log file if one was opened.
func (r *Runtime) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer, r.logger = nil, nil
	return err
}
