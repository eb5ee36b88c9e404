package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/tasklist/internal/app"
	"github.com/felixgeelhaar/tasklist/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tasklist/internal/productivity/application/queries"
)

type taskCreateInput struct {
	Title       string `json:"title" jsonschema:"required"`
	Description string `json:"description,omitempty"`
}

type taskListInput struct{}

type taskIDInput struct {
	TaskID int `json:"task_id" jsonschema:"required"`
}

// taskUpdateInput leaves a field unchanged when it is absent. A present
// empty string is an explicit value.
type taskUpdateInput struct {
	TaskID      int     `json:"task_id" jsonschema:"required"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type taskTools struct {
	container *app.Container
}

func registerTaskTools(srv *mcp.Server, deps ToolDependencies) error {
	tools := taskTools{container: deps.Container}

	srv.Tool("task.create").
		Description("Create a new task. Title is required, description is optional.").
		Handler(tools.create)

	srv.Tool("task.list").
		Description("List all tasks in creation order").
		Handler(tools.list)

	srv.Tool("task.get").
		Description("Get a task by ID").
		Handler(tools.get)

	srv.Tool("task.update").
		Description("Update a task's title and/or description. Omitted fields are left unchanged.").
		Handler(tools.update)

	srv.Tool("task.delete").
		Description("Delete a task").
		Handler(tools.delete)

	srv.Tool("task.complete").
		Description("Mark a task as complete").
		Handler(tools.complete)

	srv.Tool("task.reopen").
		Description("Mark a task as incomplete").
		Handler(tools.reopen)

	return nil
}

func (t taskTools) create(ctx context.Context, input taskCreateInput) (*commands.CreateTaskResult, error) {
	return t.container.CreateTaskHandler.Handle(withRequest(ctx), commands.CreateTaskCommand{
		Title:       input.Title,
		Description: input.Description,
	})
}

func (t taskTools) list(ctx context.Context, _ taskListInput) ([]queries.TaskDTO, error) {
	return t.container.ListTasksHandler.Handle(withRequest(ctx), queries.ListTasksQuery{})
}

func (t taskTools) get(ctx context.Context, input taskIDInput) (*queries.TaskDTO, error) {
	if err := requireTaskID(input.TaskID); err != nil {
		return nil, err
	}
	return t.container.GetTaskHandler.Handle(withRequest(ctx), queries.GetTaskQuery{TaskID: input.TaskID})
}

func (t taskTools) update(ctx context.Context, input taskUpdateInput) (map[string]any, error) {
	if err := requireTaskID(input.TaskID); err != nil {
		return nil, err
	}
	if _, err := t.container.UpdateTaskHandler.Handle(withRequest(ctx), commands.UpdateTaskCommand{
		TaskID:      input.TaskID,
		Title:       input.Title,
		Description: input.Description,
	}); err != nil {
		return nil, err
	}
	return map[string]any{"task_id": input.TaskID, "updated": true}, nil
}

func (t taskTools) delete(ctx context.Context, input taskIDInput) (map[string]any, error) {
	if err := requireTaskID(input.TaskID); err != nil {
		return nil, err
	}
	if err := t.container.DeleteTaskHandler.Handle(withRequest(ctx), commands.DeleteTaskCommand{
		TaskID: input.TaskID,
	}); err != nil {
		return nil, err
	}
	return map[string]any{"task_id": input.TaskID, "deleted": true}, nil
}

func (t taskTools) complete(ctx context.Context, input taskIDInput) (map[string]any, error) {
	return t.setCompletion(ctx, input.TaskID, true)
}

func (t taskTools) reopen(ctx context.Context, input taskIDInput) (map[string]any, error) {
	return t.setCompletion(ctx, input.TaskID, false)
}

func (t taskTools) setCompletion(ctx context.Context, id int, completed bool) (map[string]any, error) {
	if err := requireTaskID(id); err != nil {
		return nil, err
	}
	if _, err := t.container.SetTaskCompletionHandler.Handle(withRequest(ctx), commands.SetTaskCompletionCommand{
		TaskID:    id,
		Completed: completed,
	}); err != nil {
		return nil, err
	}
	return map[string]any{"task_id": id, "completed": completed}, nil
}
