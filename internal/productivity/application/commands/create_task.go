package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title       string
	Description string
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID int       `json:"task_id"`
	Task   task.Task `json:"-"`
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo task.Repository
	logger   *slog.Logger
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository, logger *slog.Logger) *CreateTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateTaskHandler{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Handle executes the CreateTaskCommand.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	title, err := task.NormalizeTitle(cmd.Title)
	if err != nil {
		return nil, err
	}
	description, err := task.NormalizeDescription(cmd.Description)
	if err != nil {
		return nil, err
	}

	t := h.taskRepo.Create(title, description)
	h.logger.DebugContext(ctx, "task created", "task_id", t.ID)

	return &CreateTaskResult{TaskID: t.ID, Task: t}, nil
}
