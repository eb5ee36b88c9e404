package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/tasklist/adapter/cli/menu"
	"github.com/felixgeelhaar/tasklist/internal/exitcode"
	"github.com/felixgeelhaar/tasklist/pkg/observability"
	"github.com/spf13/cobra"
)

var logger *slog.Logger

type commandContext struct {
	startedAt time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "Tasklist - a small interactive to-do manager",
	Long: `Tasklist keeps a list of tasks in memory for the length of a session.

Run without a subcommand to open the interactive menu.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx := observability.WithCorrelationID(cmd.Context(), "")
		ctx = context.WithValue(ctx, commandContextKey{}, commandContext{startedAt: time.Now()})
		cmd.SetContext(ctx)
		getLogger().InfoContext(ctx, "command start",
			"command", cmd.CommandPath(),
		)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		info, ok := ctx.Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		getLogger().InfoContext(ctx, "command end",
			"command", cmd.CommandPath(),
			observability.DurationKey, time.Since(info.startedAt).Milliseconds(),
		)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		if a == nil || a.Container == nil {
			return errors.New("app not initialized")
		}
		return menu.New(a.Container, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
	},
}

// Execute runs the root command and returns the process exit code. Errors
// and panics that reach this point are logged and reported with a generic
// message.
func Execute(ctx context.Context) (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = fail(ctx, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fail(ctx, err)
	}
	return exitcode.Success
}

func fail(ctx context.Context, err error) int {
	getLogger().ErrorContext(ctx, "command failed", observability.ErrorKey, err)

	out := rootCmd.OutOrStdout()
	fmt.Fprintf(out, "\nUnexpected error: %v\n", err)
	fmt.Fprintln(out, "Please restart the application.")
	return exitcode.Failure
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// Logger returns the CLI logger, falling back to the default logger.
func Logger() *slog.Logger {
	return getLogger()
}

func getLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
