package app

import (
	"log/slog"

	"github.com/felixgeelhaar/tasklist/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tasklist/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tasklist/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/tasklist/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// TaskRepo is the process-wide task store. Its contents live only as
	// long as the container.
	TaskRepo task.Repository

	// Task Command Handlers
	CreateTaskHandler        *commands.CreateTaskHandler
	UpdateTaskHandler        *commands.UpdateTaskHandler
	DeleteTaskHandler        *commands.DeleteTaskHandler
	SetTaskCompletionHandler *commands.SetTaskCompletionHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler
}

// NewContainer creates a container for a single front end driving the store
// one operation at a time.
func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	return newContainer(cfg, logger, persistence.NewMemoryTaskRepository())
}

// NewConcurrentContainer creates a container whose store serializes access,
// for front ends that serve requests from several goroutines.
func NewConcurrentContainer(cfg *config.Config, logger *slog.Logger) *Container {
	repo := persistence.NewLockedTaskRepository(persistence.NewMemoryTaskRepository())
	return newContainer(cfg, logger, repo)
}

func newContainer(cfg *config.Config, logger *slog.Logger, repo task.Repository) *Container {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		TaskRepo: repo,

		CreateTaskHandler:        commands.NewCreateTaskHandler(repo, logger),
		UpdateTaskHandler:        commands.NewUpdateTaskHandler(repo, logger),
		DeleteTaskHandler:        commands.NewDeleteTaskHandler(repo, logger),
		SetTaskCompletionHandler: commands.NewSetTaskCompletionHandler(repo, logger),

		ListTasksHandler: queries.NewListTasksHandler(repo),
		GetTaskHandler:   queries.NewGetTaskHandler(repo),
	}

	logger.Debug("container initialized")
	return c
}
