package menu

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// ask writes prompt and returns the next trimmed input line.
func (m *Menu) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	text, err := m.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// askInt re-asks until the input is an integer in [lo, hi].
func (m *Menu) askInt(ctx context.Context, prompt, retry string, lo, hi int) (int, error) {
	for {
		text, err := m.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		fmt.Fprintln(m.out, retry)
	}
}

func (m *Menu) askMenuChoice(ctx context.Context) (int, error) {
	return m.askInt(ctx, "Choice (1-7): ", "Enter a number between 1 and 7.", actionAdd, actionQuit)
}

func (m *Menu) askTaskID(ctx context.Context) (int, error) {
	return m.askInt(ctx, "Task ID: ", "Enter a valid task ID.", 1, math.MaxInt)
}

func (m *Menu) askTitle(ctx context.Context, prompt string) (string, error) {
	for {
		text, err := m.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		title, err := task.NormalizeTitle(text)
		switch {
		case err == nil:
			return title, nil
		case errors.Is(err, task.ErrEmptyTitle):
			fmt.Fprintln(m.out, "Title is required.")
		case errors.Is(err, task.ErrTitleTooLong):
			fmt.Fprintf(m.out, "Title must be %d characters or less.\n", task.MaxTitleLength)
		default:
			return "", err
		}
	}
}

func (m *Menu) askDescription(ctx context.Context, prompt string) (string, error) {
	for {
		text, err := m.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		description, err := task.NormalizeDescription(text)
		switch {
		case err == nil:
			return description, nil
		case errors.Is(err, task.ErrDescriptionTooLong):
			fmt.Fprintf(m.out, "Description must be %d characters or less.\n", task.MaxDescriptionLength)
		default:
			return "", err
		}
	}
}

func (m *Menu) askConfirmation(ctx context.Context, prompt string) (bool, error) {
	for {
		text, err := m.ask(ctx, prompt+" (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(text) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(m.out, "Enter 'y' or 'n'.")
	}
}
