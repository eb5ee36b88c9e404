package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits for task input, measured in characters.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrEmptyTitle         = fmt.Errorf("%w: task title cannot be empty", ErrInvalidArgument)
	ErrTitleTooLong       = fmt.Errorf("%w: task title must be %d characters or less", ErrInvalidArgument, MaxTitleLength)
	ErrDescriptionTooLong = fmt.Errorf("%w: task description must be %d characters or less", ErrInvalidArgument, MaxDescriptionLength)
)

// Task represents a single to-do item.
//
// Task is a value: the store hands out copies, so changing a Task held by a
// caller never changes stored state.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Status returns the display status of the task.
func (t Task) Status() string {
	if t.Completed {
		return "DONE"
	}
	return "TODO"
}

// Changes describes a partial update. A nil field is left unchanged; a
// non-nil field is written, including an empty string.
type Changes struct {
	Title       *string
	Description *string
}

// Set returns a pointer to v for use in Changes.
func Set(v string) *string {
	return &v
}

// Fields returns the names of the fields that are set.
func (c Changes) Fields() []string {
	var fields []string
	if c.Title != nil {
		fields = append(fields, "title")
	}
	if c.Description != nil {
		fields = append(fields, "description")
	}
	return fields
}

// NormalizeTitle trims the title and checks it against the title limits.
func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// NormalizeDescription trims the description and checks its length. An empty
// description is valid.
func NormalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return description, nil
}
