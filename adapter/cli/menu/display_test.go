package menu

import (
	"strings"
	"testing"

	"github.com/felixgeelhaar/tasklist/internal/productivity/application/queries"
	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
	"github.com/stretchr/testify/assert"
)

func dtos(tasks ...task.Task) []queries.TaskDTO {
	out := make([]queries.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, queries.NewTaskDTO(t))
	}
	return out
}

func TestFormatTaskTable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No tasks found.", FormatTaskTable(nil))
		assert.Equal(t, "No tasks found.", FormatTaskTable([]queries.TaskDTO{}))
	})

	t.Run("single task", func(t *testing.T) {
		got := FormatTaskTable(dtos(task.Task{ID: 1, Title: "Buy milk"}))

		want := strings.Join([]string{
			"--------------------",
			"ID  TITLE     STATUS",
			"--------------------",
			"1   Buy milk  TODO",
			"--------------------",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("columns widen to content", func(t *testing.T) {
		got := FormatTaskTable(dtos(
			task.Task{ID: 9, Title: "a", Completed: true},
			task.Task{ID: 10, Title: "Walk the dog"},
		))

		lines := strings.Split(got, "\n")
		assert.Len(t, lines, 6)
		assert.Equal(t, "ID  TITLE         STATUS", lines[1])
		assert.Equal(t, "9   a             DONE", lines[3])
		assert.Equal(t, "10  Walk the dog  TODO", lines[4])
		assert.Equal(t, strings.Repeat("-", len(lines[1])), lines[0])
	})

	t.Run("titles truncated for display", func(t *testing.T) {
		long := strings.Repeat("x", 80)
		got := FormatTaskTable(dtos(task.Task{ID: 1, Title: long}))

		assert.Contains(t, got, "1   "+strings.Repeat("x", maxTitleDisplay)+"  TODO")
		assert.NotContains(t, got, strings.Repeat("x", maxTitleDisplay+1))
	})

	t.Run("multibyte titles align by rune", func(t *testing.T) {
		got := FormatTaskTable(dtos(
			task.Task{ID: 1, Title: "café"},
			task.Task{ID: 2, Title: "tea"},
		))

		lines := strings.Split(got, "\n")
		assert.Equal(t, "1   café   TODO", lines[3])
		assert.Equal(t, "2   tea    TODO", lines[4])
	})
}

func TestFormatTaskTable_ShowsDTOStatus(t *testing.T) {
	got := FormatTaskTable([]queries.TaskDTO{{ID: 3, Title: "x", Completed: true, Status: "DONE"}})

	assert.Contains(t, got, "3   x      DONE")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "éé", truncate("ééé", 2))
}
