package queries

import (
	"context"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Status      string `json:"status"`
}

// NewTaskDTO converts a task into its transfer form.
func NewTaskDTO(t task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Status:      t.Status(),
	}
}

// ListTasksQuery lists every task in creation order.
type ListTasksQuery struct{}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery. An empty store yields an empty slice.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	tasks := h.taskRepo.List()

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, NewTaskDTO(t))
	}
	return dtos, nil
}
