package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/tasklist/internal/productivity/application/queries"
)

const tasksURI = "tasklist://tasks"

// RegisterResources registers MCP resources that expose the task list.
func RegisterResources(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return fmt.Errorf("server is required")
	}
	if deps.Container == nil {
		return fmt.Errorf("container is required")
	}

	tools := taskTools{container: deps.Container}

	srv.Resource(tasksURI).
		Name("Tasks").
		Description("All tasks in creation order").
		MimeType("application/json").
		Handler(tools.readTasks)

	return nil
}

func (t taskTools) readTasks(ctx context.Context, uri string, params map[string]string) (*mcp.ResourceContent, error) {
	tasks, err := t.container.ListTasksHandler.Handle(withRequest(ctx), queries.ListTasksQuery{})
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ResourceContent{
		URI:      uri,
		MimeType: "application/json",
		Text:     string(data),
	}, nil
}
