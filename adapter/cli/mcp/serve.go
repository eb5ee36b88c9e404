package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/tasklist/adapter/cli"
	"github.com/felixgeelhaar/tasklist/internal/app"
	mcpinternal "github.com/felixgeelhaar/tasklist/internal/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start an MCP server exposing the task operations as tools.

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

		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s\n", cfg.MCPAddr)
		err := mcpinternal.Serve(ctx, cfg, container, logger)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
