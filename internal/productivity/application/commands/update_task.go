package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// UpdateTaskCommand contains the data needed to update a task.
type UpdateTaskCommand struct {
	TaskID      int
	Title       *string // nil means no change
	Description *string // nil means no change, "" clears it
}

// UpdateTaskResult contains the task as left by the update.
type UpdateTaskResult struct {
	Task task.Task `json:"task"`
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo task.Repository
	logger   *slog.Logger
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository, logger *slog.Logger) *UpdateTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UpdateTaskHandler{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Handle executes the UpdateTaskCommand.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error) {
	var changes task.Changes

	if cmd.Title != nil {
		title, err := task.NormalizeTitle(*cmd.Title)
		if err != nil {
			return nil, err
		}
		changes.Title = &title
	}

	if cmd.Description != nil {
		description, err := task.NormalizeDescription(*cmd.Description)
		if err != nil {
			return nil, err
		}
		changes.Description = &description
	}

	updated, ok := h.taskRepo.Update(cmd.TaskID, changes)
	if !ok {
		return nil, task.ErrTaskNotFound
	}

	h.logger.DebugContext(ctx, "task updated", "task_id", cmd.TaskID, "fields", changes.Fields())
	return &UpdateTaskResult{Task: updated}, nil
}
