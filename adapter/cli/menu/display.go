package menu

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/felixgeelhaar/tasklist/internal/productivity/application/queries"
)

// maxTitleDisplay is the number of title characters shown in the task table.
const maxTitleDisplay = 50

const (
	headerID     = "ID"
	headerTitle  = "TITLE"
	headerStatus = "STATUS"
	columnGap    = "  "
)

// FormatTaskTable renders tasks as a fixed-width table with ID, TITLE and
// STATUS columns. Titles are truncated for display only.
func FormatTaskTable(tasks []queries.TaskDTO) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}

	idWidth := utf8.RuneCountInString(headerID)
	titleWidth := utf8.RuneCountInString(headerTitle)
	for _, t := range tasks {
		idWidth = max(idWidth, utf8.RuneCountInString(strconv.Itoa(t.ID)))
		titleWidth = max(titleWidth, utf8.RuneCountInString(truncate(t.Title, maxTitleDisplay)))
	}

	header := padRight(headerID, idWidth) + columnGap + padRight(headerTitle, titleWidth) + columnGap + headerStatus
	separator := strings.Repeat("-", utf8.RuneCountInString(header))

	lines := []string{separator, header, separator}
	for _, t := range tasks {
		lines = append(lines, padRight(strconv.Itoa(t.ID), idWidth)+columnGap+
			padRight(truncate(t.Title, maxTitleDisplay), titleWidth)+columnGap+
			t.Status)
	}
	lines = append(lines, separator)

	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func padRight(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
