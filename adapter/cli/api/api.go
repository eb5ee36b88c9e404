package api

import (
	"context"
	"errors"
	"fmt"

	httpapi "github.com/felixgeelhaar/tasklist/adapter/api"
	"github.com/felixgeelhaar/tasklist/adapter/cli"
	"github.com/felixgeelhaar/tasklist/internal/app"
	"github.com/spf13/cobra"
)

var addr string

// Cmd is the HTTP API command group.
var Cmd = &cobra.Command{
	Use:   "api",
	Short: "Manage the tasklist HTTP API",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start a JSON HTTP API exposing the task operations.

The server keeps its own task list for as long as it runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a := cli.GetApp()
		if a == nil || a.Container == nil {
			return errors.New("app not initialized")
		}
		cfg := a.Container.Config
		logger := cli.Logger()

		container := app.NewConcurrentContainer(cfg, logger)
		handler := httpapi.NewTaskHandler(httpapi.TaskHandlerConfig{
			CreateTask:    container.CreateTaskHandler,
			UpdateTask:    container.UpdateTaskHandler,
			DeleteTask:    container.DeleteTaskHandler,
			SetCompletion: container.SetTaskCompletionHandler,
			ListTasks:     container.ListTasksHandler,
			GetTask:       container.GetTaskHandler,
			Logger:        logger,
		})

		serverCfg := httpapi.DefaultServerConfig()
		serverCfg.Addr = cfg.APIAddr
		if addr != "" {
			serverCfg.Addr = addr
		}
		srv := httpapi.NewServer(serverCfg, handler, logger)

		fmt.Fprintf(cmd.OutOrStdout(), "API server listening on %s\n", serverCfg.Addr)
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides API_ADDR)")
	Cmd.AddCommand(serveCmd)
}
