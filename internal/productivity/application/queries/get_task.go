package queries

import (
	"context"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// GetTaskQuery contains the parameters for getting a single task.
type GetTaskQuery struct {
	TaskID int
}

// GetTaskHandler handles the GetTaskQuery.
type GetTaskHandler struct {
	taskRepo task.Repository
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(taskRepo task.Repository) *GetTaskHandler {
	return &GetTaskHandler{taskRepo: taskRepo}
}

// Handle executes the GetTaskQuery.
func (h *GetTaskHandler) Handle(ctx context.Context, query GetTaskQuery) (*TaskDTO, error) {
	t, ok := h.taskRepo.Get(query.TaskID)
	if !ok {
		return nil, task.ErrTaskNotFound
	}

	dto := NewTaskDTO(t)
	return &dto, nil
}
