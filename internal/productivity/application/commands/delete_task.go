package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// DeleteTaskCommand contains the data needed to delete a task.
type DeleteTaskCommand struct {
	TaskID int
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo task.Repository
	logger   *slog.Logger
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo task.Repository, logger *slog.Logger) *DeleteTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeleteTaskHandler{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Handle executes the DeleteTaskCommand.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	if !h.taskRepo.Delete(cmd.TaskID) {
		return task.ErrTaskNotFound
	}
	h.logger.DebugContext(ctx, "task deleted", "task_id", cmd.TaskID)
	return nil
}
