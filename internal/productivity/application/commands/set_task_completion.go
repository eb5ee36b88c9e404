package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// SetTaskCompletionCommand marks a task complete or incomplete.
type SetTaskCompletionCommand struct {
	TaskID    int
	Completed bool
}

// SetTaskCompletionResult contains the task after its flag was set.
type SetTaskCompletionResult struct {
	Task task.Task `json:"task"`
}

// SetTaskCompletionHandler handles the SetTaskCompletionCommand.
type SetTaskCompletionHandler struct {
	taskRepo task.Repository
	logger   *slog.Logger
}

// NewSetTaskCompletionHandler creates a new SetTaskCompletionHandler.
func NewSetTaskCompletionHandler(taskRepo task.Repository, logger *slog.Logger) *SetTaskCompletionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SetTaskCompletionHandler{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Handle executes the SetTaskCompletionCommand. It is idempotent.
func (h *SetTaskCompletionHandler) Handle(ctx context.Context, cmd SetTaskCompletionCommand) (*SetTaskCompletionResult, error) {
	t, ok := h.taskRepo.SetCompleted(cmd.TaskID, cmd.Completed)
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	h.logger.DebugContext(ctx, "task completion set", "task_id", cmd.TaskID, "completed", cmd.Completed)
	return &SetTaskCompletionResult{Task: t}, nil
}
