package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/felixgeelhaar/tasklist/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tasklist/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// maxBodyBytes bounds request bodies; the largest valid task is well below it.
const maxBodyBytes = 64 << 10

// TaskHandler handles task API requests.
type TaskHandler struct {
	createTask    *commands.CreateTaskHandler
	updateTask    *commands.UpdateTaskHandler
	deleteTask    *commands.DeleteTaskHandler
	setCompletion *commands.SetTaskCompletionHandler
	listTasks     *queries.ListTasksHandler
	getTask       *queries.GetTaskHandler
	logger        *slog.Logger
}

// TaskHandlerConfig holds dependencies for the task handler.
type TaskHandlerConfig struct {
	CreateTask    *commands.CreateTaskHandler
	UpdateTask    *commands.UpdateTaskHandler
	DeleteTask    *commands.DeleteTaskHandler
	SetCompletion *commands.SetTaskCompletionHandler
	ListTasks     *queries.ListTasksHandler
	GetTask       *queries.GetTaskHandler
	Logger        *slog.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(cfg TaskHandlerConfig) *TaskHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &TaskHandler{
		createTask:    cfg.CreateTask,
		updateTask:    cfg.UpdateTask,
		deleteTask:    cfg.DeleteTask,
		setCompletion: cfg.SetCompletion,
		listTasks:     cfg.ListTasks,
		getTask:       cfg.GetTask,
		logger:        cfg.Logger,
	}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// updateTaskRequest leaves a field unchanged when it is absent from the body.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ListTasks handles GET /api/v1/tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.listTasks.Handle(r.Context(), queries.ListTasksQuery{})
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// CreateTask handles POST /api/v1/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.createTask.Handle(r.Context(), commands.CreateTaskCommand{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/tasks/"+strconv.Itoa(result.TaskID))
	writeJSON(w, http.StatusCreated, queries.NewTaskDTO(result.Task))
}

// GetTask handles GET /api/v1/tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	dto, err := h.getTask.Handle(r.Context(), queries.GetTaskQuery{TaskID: id})
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// UpdateTask handles PATCH /api/v1/tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.updateTask.Handle(r.Context(), commands.UpdateTaskCommand{
		TaskID:      id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, queries.NewTaskDTO(result.Task))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	if err := h.deleteTask.Handle(r.Context(), commands.DeleteTaskCommand{TaskID: id}); err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteTask handles POST /api/v1/tasks/{id}/complete
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	h.handleCompletion(w, r, true)
}

// ReopenTask handles POST /api/v1/tasks/{id}/reopen
func (h *TaskHandler) ReopenTask(w http.ResponseWriter, r *http.Request) {
	h.handleCompletion(w, r, false)
}

func (h *TaskHandler) handleCompletion(w http.ResponseWriter, r *http.Request, completed bool) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	result, err := h.setCompletion.Handle(r.Context(), commands.SetTaskCompletionCommand{
		TaskID:    id,
		Completed: completed,
	})
	if err != nil {
		h.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, queries.NewTaskDTO(result.Task))
}

func (h *TaskHandler) writeTaskError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		writeError(w, ErrNotFound, "Task not found")
	case errors.Is(err, task.ErrInvalidArgument):
		writeError(w, ErrBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "task request failed", "error", err)
		writeError(w, ErrInternalServer, "")
	}
}

func parseTaskID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, ErrBadRequest, "Task ID must be a positive integer")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, ErrBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
