package mcp

import (
	"errors"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/tasklist/internal/app"
)

// ToolDependencies provides handlers and context for MCP tools.
type ToolDependencies struct {
	Container *app.Container
}

// RegisterTaskTools registers MCP tools that mirror the menu actions.
func RegisterTaskTools(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return errors.New("server is required")
	}
	if deps.Container == nil {
		return errors.New("container is required")
	}

	return registerTaskTools(srv, deps)
}
