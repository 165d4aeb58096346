package task

import (
	"strings"
	"sync"
)

// List is the ordered task store. Positions exposed to callers are 1-based
// and shift down after a deletion.
type List struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewList creates a list holding tasks in the given order.
func NewList(tasks ...Task) *List {
	l := &List{tasks: make([]Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Add appends t and returns the new size of the list.
func (l *List) Add(t Task) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append(l.tasks, t)
	return len(l.tasks)
}

// Len returns the number of tasks.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tasks)
}

// Get returns the task at the 1-based index.
func (l *List) Get(index int) (Task, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.valid(index) {
		return nil, ErrInvalidTaskIndex
	}
	return l.tasks[index-1], nil
}

// MarkDone marks the task at the 1-based index as done and returns it.
func (l *List) MarkDone(index int) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.valid(index) {
		return nil, ErrInvalidTaskIndex
	}
	t := l.tasks[index-1]
	t.MarkDone()
	return t, nil
}

// MarkUndone clears the done flag of the task at the 1-based index and returns it.
func (l *List) MarkUndone(index int) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.valid(index) {
		return nil, ErrInvalidTaskIndex
	}
	t := l.tasks[index-1]
	t.MarkUndone()
	return t, nil
}

// Delete removes and returns the task at the 1-based index.
func (l *List) Delete(index int) (Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.valid(index) {
		return nil, ErrInvalidTaskIndex
	}
	t := l.tasks[index-1]
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	return t, nil
}

// Find returns the display strings of tasks whose description contains
// keyword, in list order. An empty keyword matches nothing.
func (l *List) Find(keyword string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if keyword == "" {
		return nil
	}

	var out []string
	for _, t := range l.tasks {
		if strings.Contains(t.Description(), keyword) {
			out = append(out, t.Display())
		}
	}
	return out
}

// Display returns the display string of every task in list order.
func (l *List) Display() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Display()
	}
	return out
}

// Tasks returns a copy of the task slice in list order.
func (l *List) Tasks() []Task {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) valid(index int) bool {
	return index >= 1 && index <= len(l.tasks)
}
