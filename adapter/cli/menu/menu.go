// Package menu implements the interactive text menu over the task handlers.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/felixgeelhaar/tasklist/internal/app"
	"github.com/felixgeelhaar/tasklist/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tasklist/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// Menu actions, numbered as shown to the user.
const (
	actionAdd = iota + 1
	actionView
	actionUpdate
	actionDelete
	actionComplete
	actionIncomplete
	actionQuit
)

// Update choices offered by the update flow.
const (
	updateTitle = iota + 1
	updateDescription
	updateBoth
)

const (
	boxWidth = 48
	ruleSize = 50
)

var menuItems = []string{
	"1. Add Task",
	"2. View Tasks",
	"3. Update Task",
	"4. Delete Task",
	"5. Mark Task Complete",
	"6. Mark Task Incomplete",
	"7. Quit",
}

// Menu drives the task handlers from line-oriented input.
type Menu struct {
	container *app.Container
	in        *lineReader
	out       io.Writer
	logger    *slog.Logger
}

// New creates a menu reading from in and writing to out.
func New(container *app.Container, in io.Reader, out io.Writer) *Menu {
	logger := container.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		container: container,
		in:        newLineReader(in),
		out:       out,
		logger:    logger.With("component", "menu"),
	}
}

// Run shows the menu until the user quits, input ends, or ctx is canceled.
// Those all return nil; any other error is unexpected.
func (m *Menu) Run(ctx context.Context) error {
	defer m.in.Close()
	m.showBanner()

	for {
		m.showMenu()

		choice, err := m.askMenuChoice(ctx)
		if err != nil {
			return m.stop(err)
		}
		if choice == actionQuit {
			fmt.Fprintln(m.out, "\nGoodbye.")
			return nil
		}

		m.logger.DebugContext(ctx, "menu action", "choice", choice)
		if err := m.dispatch(ctx, choice); err != nil {
			return m.stop(err)
		}

		if _, err := m.ask(ctx, "\nPress Enter to continue..."); err != nil {
			return m.stop(err)
		}
	}
}

func (m *Menu) stop(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		fmt.Fprintln(m.out, "\nGoodbye.")
		return nil
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(m.out, "\n\nGoodbye!")
		return nil
	default:
		return err
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case actionAdd:
		return m.addTask(ctx)
	case actionView:
		return m.viewTasks(ctx)
	case actionUpdate:
		return m.updateTask(ctx)
	case actionDelete:
		return m.deleteTask(ctx)
	case actionComplete:
		return m.setCompletion(ctx, true)
	case actionIncomplete:
		return m.setCompletion(ctx, false)
	default:
		return fmt.Errorf("unknown menu choice %d", choice)
	}
}

func (m *Menu) showBanner() {
	rule := strings.Repeat("=", ruleSize)
	fmt.Fprintln(m.out, "\n"+rule)
	fmt.Fprintln(m.out, "  TODO APPLICATION")
	fmt.Fprintln(m.out, rule)
}

func (m *Menu) showMenu() {
	border := "+" + strings.Repeat("-", boxWidth) + "+"
	fmt.Fprintln(m.out, "\n"+border)
	fmt.Fprintln(m.out, "|"+center("MAIN MENU", boxWidth)+"|")
	fmt.Fprintln(m.out, border)
	for _, item := range menuItems {
		fmt.Fprintln(m.out, "| "+padRight(item, boxWidth-1)+"|")
	}
	fmt.Fprintln(m.out, border)
}

func (m *Menu) section(title string) {
	fmt.Fprintln(m.out, "\n"+title)
	fmt.Fprintln(m.out, strings.Repeat("-", 40))
}

func (m *Menu) addTask(ctx context.Context) error {
	m.section("Add Task")

	title, err := m.askTitle(ctx, "Title: ")
	if err != nil {
		return err
	}
	description, err := m.askDescription(ctx, "Description (optional): ")
	if err != nil {
		return err
	}

	result, err := m.container.CreateTaskHandler.Handle(ctx, commands.CreateTaskCommand{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	fmt.Fprintf(m.out, "Task %d added.\n", result.TaskID)
	return nil
}

func (m *Menu) viewTasks(ctx context.Context) error {
	m.section("Tasks")

	tasks, err := m.container.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{})
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	fmt.Fprintln(m.out, FormatTaskTable(tasks))
	return nil
}

// lookup returns the task or reports it missing. A nil DTO with a nil error
// means the task does not exist.
func (m *Menu) lookup(ctx context.Context, id int) (*queries.TaskDTO, error) {
	dto, err := m.container.GetTaskHandler.Handle(ctx, queries.GetTaskQuery{TaskID: id})
	if errors.Is(err, task.ErrTaskNotFound) {
		m.notFound(id)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return dto, nil
}

func (m *Menu) notFound(id int) {
	fmt.Fprintf(m.out, "Task %d not found.\n", id)
}

func (m *Menu) updateTask(ctx context.Context) error {
	m.section("Update Task")

	id, err := m.askTaskID(ctx)
	if err != nil {
		return err
	}
	current, err := m.lookup(ctx, id)
	if err != nil || current == nil {
		return err
	}

	fmt.Fprintf(m.out, "\nCurrent: %s\n", current.Title)
	fmt.Fprintln(m.out, "Update: (1) Title  (2) Description  (3) Both")

	choice, err := m.askInt(ctx, "Enter choice: ", "Enter 1, 2, or 3.", updateTitle, updateBoth)
	if err != nil {
		return err
	}

	cmd := commands.UpdateTaskCommand{TaskID: id}
	if choice == updateTitle || choice == updateBoth {
		title, err := m.askTitle(ctx, "New title: ")
		if err != nil {
			return err
		}
		cmd.Title = &title
	}
	if choice == updateDescription || choice == updateBoth {
		description, err := m.askDescription(ctx, "New description: ")
		if err != nil {
			return err
		}
		cmd.Description = &description
	}

	_, err = m.container.UpdateTaskHandler.Handle(ctx, cmd)
	if errors.Is(err, task.ErrTaskNotFound) {
		m.notFound(id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Fprintln(m.out, "Task updated.")
	return nil
}

func (m *Menu) deleteTask(ctx context.Context) error {
	m.section("Delete Task")

	id, err := m.askTaskID(ctx)
	if err != nil {
		return err
	}
	current, err := m.lookup(ctx, id)
	if err != nil || current == nil {
		return err
	}

	fmt.Fprintf(m.out, "\nTask: %s\n", current.Title)

	confirmed, err := m.askConfirmation(ctx, "Delete?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(m.out, "Cancelled.")
		return nil
	}

	err = m.container.DeleteTaskHandler.Handle(ctx, commands.DeleteTaskCommand{TaskID: id})
	if errors.Is(err, task.ErrTaskNotFound) {
		m.notFound(id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Fprintln(m.out, "Task deleted.")
	return nil
}

func (m *Menu) setCompletion(ctx context.Context, completed bool) error {
	title, done := "Mark Incomplete", "Task marked incomplete."
	if completed {
		title, done = "Mark Complete", "Task marked complete."
	}
	m.section(title)

	id, err := m.askTaskID(ctx)
	if err != nil {
		return err
	}

	_, err = m.container.SetTaskCompletionHandler.Handle(ctx, commands.SetTaskCompletionCommand{
		TaskID:    id,
		Completed: completed,
	})
	if errors.Is(err, task.ErrTaskNotFound) {
		m.notFound(id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to set task completion: %w", err)
	}

	fmt.Fprintln(m.out, done)
	return nil
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
