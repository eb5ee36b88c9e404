package persistence

import (
	"sync"

	"github.com/felixgeelhaar/tasklist/internal/productivity/domain/task"
)

// LockedTaskRepository serializes access to another task.Repository.
// Reads share the lock; every mutation holds it exclusively.
type LockedTaskRepository struct {
	mu   sync.RWMutex
	repo task.Repository
}

// NewLockedTaskRepository wraps repo with a read/write mutex.
func NewLockedTaskRepository(repo task.Repository) *LockedTaskRepository {
	return &LockedTaskRepository{repo: repo}
}

func (r *LockedTaskRepository) Create(title, description string) task.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.Create(title, description)
}

func (r *LockedTaskRepository) List() []task.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.repo.List()
}

func (r *LockedTaskRepository) Get(id int) (task.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.repo.Get(id)
}

func (r *LockedTaskRepository) Update(id int, changes task.Changes) (task.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.Update(id, changes)
}

func (r *LockedTaskRepository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.Delete(id)
}

func (r *LockedTaskRepository) SetCompleted(id int, completed bool) (task.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.SetCompleted(id, completed)
}
