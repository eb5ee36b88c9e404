package persistence

import (
	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// MemoryTaskRepository implements task.Repository in process memory.
//
// Tasks are kept in creation order. Identifiers start at 1 and are never
// reused, even after a delete. It is not safe for concurrent use; wrap it in
// a LockedTaskRepository when more than one goroutine drives it.
type MemoryTaskRepository struct {
	tasks  []task.Task
	nextID int
}

// NewMemoryTaskRepository creates an empty repository.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks:  make([]task.Task, 0),
		nextID: 1,
	}
}

// Create appends a new, incomplete task and returns a copy of it.
func (r *MemoryTaskRepository) Create(title, description string) task.Task {
	t := task.Task{
		ID:          r.nextID,
		Title:       title,
		Description: description,
	}
	r.tasks = append(r.tasks, t)
	r.nextID++
	return t
}

// List returns a snapshot of all tasks in creation order.
func (r *MemoryTaskRepository) List() []task.Task {
	out := make([]task.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Get returns a copy of the task with the given id.
func (r *MemoryTaskRepository) Get(id int) (task.Task, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return task.Task{}, false
	}
	return r.tasks[i], true
}

// Update writes the fields set in changes and returns the updated task.
func (r *MemoryTaskRepository) Update(id int, changes task.Changes) (task.Task, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return task.Task{}, false
	}
	if changes.Title != nil {
		r.tasks[i].Title = *changes.Title
	}
	if changes.Description != nil {
		r.tasks[i].Description = *changes.Description
	}
	return r.tasks[i], true
}

// Delete removes the task, keeping the order of the remaining tasks.
func (r *MemoryTaskRepository) Delete(id int) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return true
}

// SetCompleted sets the completion flag. Setting the current value again
// still succeeds.
func (r *MemoryTaskRepository) SetCompleted(id int, completed bool) (task.Task, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return task.Task{}, false
	}
	r.tasks[i].Completed = completed
	return r.tasks[i], true
}

// NextID returns the identifier the next Create will assign.
func (r *MemoryTaskRepository) NextID() int {
	return r.nextID
}

func (r *MemoryTaskRepository) indexOf(id int) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
