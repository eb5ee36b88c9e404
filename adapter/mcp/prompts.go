package mcp

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"
)

// RegisterPrompts registers MCP prompts for common task list workflows.
func RegisterPrompts(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return fmt.Errorf("server is required")
	}

	srv.Prompt("task_review").
		Description("Walk through the open tasks and decide what to finish, reword, or drop.").
		Handler(func(ctx context.Context, args map[string]string) (*mcp.PromptResult, error) {
			return &mcp.PromptResult{
				Description: "Task Review",
				Messages: []mcp.PromptMessage{
					{
						Role: string(mcp.RoleUser),
						Content: mcp.TextContent{
							Type: "text",
							Text: `Help me review my task list. Please:

1. Read every task using the ` + tasksURI + ` resource
2. Look at the ones with status TODO

Then for each of those suggest one of:
- finish it now and mark it with task.complete
- sharpen its title or description with task.update
- drop it with task.delete

Keep titles under 200 characters and descriptions under 1000.`,
						},
					},
				},
			}, nil
		})

	return nil
}
