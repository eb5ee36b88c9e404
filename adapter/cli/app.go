package cli

import (
	"github.com/felixgeelhaar/tasklist/internal/app"
)

// App holds the CLI application dependencies.
type App struct {
	// Container wires the task store and its handlers for the menu.
	Container *app.Container
}

// NewApp creates a new CLI application backed by the provided container.
func NewApp(container *app.Container) *App {
	return &App{Container: container}
}

// cliApp is the global CLI application instance
var cliApp *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	cliApp = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return cliApp
}
