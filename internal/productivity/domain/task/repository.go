package task

// Repository defines the operations of a task store.
//
// Absence is not an error: lookups and mutations report it with ok=false
// and leave the store untouched. A successful mutation returns the task as it
// stands after that call.
type Repository interface {
	Create(title, description string) Task
	List() []Task
	Get(id int) (Task, bool)
	Update(id int, changes Changes) (Task, bool)
	Delete(id int) bool
	SetCompleted(id int, completed bool) (Task, bool)
}
