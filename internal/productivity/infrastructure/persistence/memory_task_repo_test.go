package persistence

import (
	"testing"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(tasks []task.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestMemoryTaskRepository_EmptyList(t *testing.T) {
	repo := NewMemoryTaskRepository()

	tasks := repo.List()

	require.NotNil(t, tasks)
	assert.Empty(t, tasks)
	assert.Equal(t, 1, repo.NextID())
}

func TestMemoryTaskRepository_Create(t *testing.T) {
	repo := NewMemoryTaskRepository()

	created := repo.Create("Buy milk", "2 litres")

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, "2 litres", created.Description)
	assert.False(t, created.Completed)
	assert.Equal(t, 2, repo.NextID())
}

func TestMemoryTaskRepository_Create_DoesNotValidate(t *testing.T) {
	repo := NewMemoryTaskRepository()

	created := repo.Create("", "")

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "", created.Title)
}

func TestMemoryTaskRepository_IDsIncreaseAcrossDeletes(t *testing.T) {
	repo := NewMemoryTaskRepository()

	last := 0
	for i := 0; i < 10; i++ {
		created := repo.Create("task", "")
		assert.Greater(t, created.ID, last)
		last = created.ID
		if i%3 == 0 {
			require.True(t, repo.Delete(created.ID))
		}
	}
	assert.Equal(t, last+1, repo.NextID())
}

func TestMemoryTaskRepository_ListPreservesCreationOrder(t *testing.T) {
	repo := NewMemoryTaskRepository()
	a := repo.Create("A", "")
	b := repo.Create("B", "")
	c := repo.Create("C", "")

	_, ok := repo.Update(a.ID, task.Changes{Title: task.Set("A2")})
	require.True(t, ok)
	_, ok = repo.SetCompleted(c.ID, true)
	require.True(t, ok)

	tasks := repo.List()
	assert.Equal(t, []int{a.ID, b.ID, c.ID}, ids(tasks))
	assert.Equal(t, "A2", tasks[0].Title)
}

func TestMemoryTaskRepository_DeleteLeavesSurvivorsIntact(t *testing.T) {
	repo := NewMemoryTaskRepository()
	repo.Create("one", "")
	repo.Create("two", "")
	repo.Create("three", "")

	require.True(t, repo.Delete(2))

	assert.Equal(t, []int{1, 3}, ids(repo.List()))
	_, ok := repo.Get(2)
	assert.False(t, ok)

	next := repo.Create("four", "")
	assert.Equal(t, 4, next.ID)
}

func TestMemoryTaskRepository_Get(t *testing.T) {
	repo := NewMemoryTaskRepository()
	created := repo.Create("Walk dog", "evening")

	t.Run("found", func(t *testing.T) {
		got, ok := repo.Get(created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)
	})

	t.Run("not found", func(t *testing.T) {
		got, ok := repo.Get(99)
		assert.False(t, ok)
		assert.Equal(t, task.Task{}, got)
	})
}

func TestMemoryTaskRepository_Update(t *testing.T) {
	t.Run("title only leaves description", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		created := repo.Create("X", "Y")

		updated, ok := repo.Update(created.ID, task.Changes{Title: task.Set("Z")})

		require.True(t, ok)
		assert.Equal(t, task.Task{ID: created.ID, Title: "Z", Description: "Y"}, updated)
		got, _ := repo.Get(created.ID)
		assert.Equal(t, "Z", got.Title)
		assert.Equal(t, "Y", got.Description)
	})

	t.Run("explicit empty description clears it", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		created := repo.Create("X", "Y")

		_, ok := repo.Update(created.ID, task.Changes{Description: task.Set("")})

		require.True(t, ok)
		got, _ := repo.Get(created.ID)
		assert.Equal(t, "X", got.Title)
		assert.Equal(t, "", got.Description)
	})

	t.Run("unset description is left unchanged", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		created := repo.Create("X", "Y")

		_, ok := repo.Update(created.ID, task.Changes{})

		require.True(t, ok)
		got, _ := repo.Get(created.ID)
		assert.Equal(t, "Y", got.Description)
	})

	t.Run("both fields", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		created := repo.Create("X", "Y")

		repo.Update(created.ID, task.Changes{Title: task.Set("T"), Description: task.Set("D")})

		got, _ := repo.Get(created.ID)
		assert.Equal(t, "T", got.Title)
		assert.Equal(t, "D", got.Description)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestMemoryTaskRepository_SetCompleted(t *testing.T) {
	repo := NewMemoryTaskRepository()
	created := repo.Create("Test", "")

	done, ok := repo.SetCompleted(created.ID, true)
	assert.True(t, ok)
	assert.True(t, done.Completed)
	_, ok = repo.SetCompleted(created.ID, true)
	assert.True(t, ok)
	got, _ := repo.Get(created.ID)
	assert.True(t, got.Completed)

	reopened, ok := repo.SetCompleted(created.ID, false)
	assert.True(t, ok)
	assert.Equal(t, task.Task{ID: created.ID, Title: "Test"}, reopened)
	got, _ = repo.Get(created.ID)
	assert.False(t, got.Completed)
}

func TestMemoryTaskRepository_NotFoundIsSideEffectFree(t *testing.T) {
	repo := NewMemoryTaskRepository()
	repo.Create("one", "a")
	repo.Create("two", "b")
	before := repo.List()
	nextBefore := repo.NextID()

	updated, ok := repo.Update(42, task.Changes{Title: task.Set("nope"), Description: task.Set("")})
	assert.False(t, ok)
	assert.Equal(t, task.Task{}, updated)
	assert.False(t, repo.Delete(42))
	_, ok = repo.SetCompleted(42, true)
	assert.False(t, ok)

	assert.Equal(t, before, repo.List())
	assert.Equal(t, nextBefore, repo.NextID())
}

func TestMemoryTaskRepository_ReturnedValuesAreCopies(t *testing.T) {
	repo := NewMemoryTaskRepository()
	created := repo.Create("original", "desc")

	created.Title = "mutated"
	got, _ := repo.Get(1)
	assert.Equal(t, "original", got.Title)

	got.Completed = true
	list := repo.List()
	assert.False(t, list[0].Completed)

	list[0].Title = "mutated via list"
	list = append(list, task.Task{ID: 7})
	assert.Len(t, repo.List(), 1)
	assert.Equal(t, "original", repo.List()[0].Title)
}

func TestMemoryTaskRepository_ChangesPointerNotRetained(t *testing.T) {
	repo := NewMemoryTaskRepository()
	created := repo.Create("original", "")
	title := "first"

	repo.Update(created.ID, task.Changes{Title: &title})
	title = "second"

	got, _ := repo.Get(created.ID)
	assert.Equal(t, "first", got.Title)
}

func TestMemoryTaskRepository_IndependentInstances(t *testing.T) {
	a := NewMemoryTaskRepository()
	b := NewMemoryTaskRepository()

	a.Create("only in a", "")

	assert.Len(t, a.List(), 1)
	assert.Empty(t, b.List())
	assert.Equal(t, 1, b.Create("first in b", "").ID)
}

func TestMemoryTaskRepository_EndToEnd(t *testing.T) {
	repo := NewMemoryTaskRepository()

	milk := repo.Create("Buy milk", "")
	assert.Equal(t, 1, milk.ID)
	assert.False(t, milk.Completed)

	dog := repo.Create("Walk dog", "")
	assert.Equal(t, 2, dog.ID)

	_, ok := repo.SetCompleted(1, true)
	require.True(t, ok)
	require.True(t, repo.Delete(2))

	assert.Equal(t, []task.Task{{ID: 1, Title: "Buy milk", Completed: true}}, repo.List())
	_, ok = repo.Get(2)
	assert.False(t, ok)
}
