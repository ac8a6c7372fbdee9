package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sandeepkv93/taskbook/internal/model"
	"github.com/sandeepkv93/taskbook/internal/storage"
)

var ErrNotFound = errors.New("store: task not found")

type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// TaskStore owns the ordered task collection and the next-id counter.
// Every successful mutation is persisted through the saver before it is
// reported to the caller; a failed save rolls the mutation back so the
// in-memory state always matches the last reported outcome.
type TaskStore struct {
	saver  storage.Saver
	tasks  []model.Task
	nextID int
	now    func() time.Time
}

func New(saver storage.Saver, tasks []model.Task) *TaskStore {
	s := &TaskStore{
		saver: saver,
		tasks: slices.Clone(tasks),
		now:   time.Now,
	}
	s.nextID = deriveNextID(s.tasks)
	return s
}

// Open loads the collection persisted at path. A corrupt or unreadable
// file is recoverable: the returned store is empty but usable, and the
// load error is returned alongside it for the caller to surface.
func Open(path string) (*TaskStore, error) {
	file := storage.NewFile(path)
	tasks, err := file.Load()
	if err != nil {
		return New(file, nil), err
	}
	return New(file, tasks), nil
}

// The counter is never persisted; it is always recomputed from the ids
// actually present so deleted ids are not reused within a run but a
// fresh load continues from the current maximum.
func deriveNextID(tasks []model.Task) int {
	next := 1
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

func (s *TaskStore) Add(title, description string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, model.ErrEmptyTitle
	}

	task := model.Task{
		ID:          s.nextID,
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, task)
	s.nextID++

	if err := s.save(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		s.nextID--
		return model.Task{}, err
	}
	return task, nil
}

func (s *TaskStore) Get(id int) (model.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return s.tasks[idx], nil
}

// Update applies the provided fields and leaves nil fields untouched.
func (s *TaskStore) Update(id int, title, description *string) (model.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if title != nil && strings.TrimSpace(*title) == "" {
		return model.Task{}, model.ErrEmptyTitle
	}

	prev := s.tasks[idx]
	if title != nil {
		s.tasks[idx].Title = strings.TrimSpace(*title)
	}
	if description != nil {
		s.tasks[idx].Description = strings.TrimSpace(*description)
	}

	if err := s.save(); err != nil {
		s.tasks[idx] = prev
		return model.Task{}, err
	}
	return s.tasks[idx], nil
}

// Complete marks the task done. Completing an already completed task is
// an idempotent no-op reported with changed == false; no save happens.
func (s *TaskStore) Complete(id int) (model.Task, bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if s.tasks[idx].Completed {
		return s.tasks[idx], false, nil
	}

	prev := s.tasks[idx]
	completedAt := s.now()
	s.tasks[idx].Completed = true
	s.tasks[idx].CompletedAt = &completedAt

	if err := s.save(); err != nil {
		s.tasks[idx] = prev
		return model.Task{}, false, err
	}
	return s.tasks[idx], true, nil
}

// Uncomplete is the mirror of Complete: an already pending task is a
// no-op, otherwise the completion flag and timestamp are cleared.
func (s *TaskStore) Uncomplete(id int) (model.Task, bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if !s.tasks[idx].Completed {
		return s.tasks[idx], false, nil
	}

	prev := s.tasks[idx]
	s.tasks[idx].Completed = false
	s.tasks[idx].CompletedAt = nil

	if err := s.save(); err != nil {
		s.tasks[idx] = prev
		return model.Task{}, false, err
	}
	return s.tasks[idx], true, nil
}

// Delete removes the task with the given id. The yes/no decision comes
// from the caller; confirmed == false is a cancellation, not an error,
// and is reported with deleted == false.
func (s *TaskStore) Delete(id int, confirmed bool) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if !confirmed {
		return false, nil
	}

	removed := s.tasks[idx]
	s.tasks = slices.Delete(s.tasks, idx, idx+1)

	if err := s.save(); err != nil {
		s.tasks = slices.Insert(s.tasks, idx, removed)
		return false, err
	}
	return true, nil
}

// List returns the tasks in insertion order, optionally restricted to
// pending ones.
func (s *TaskStore) List(includeCompleted bool) []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !includeCompleted && t.Completed {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *TaskStore) Stats() Stats {
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}

func (s *TaskStore) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

func (s *TaskStore) save() error {
	if err := s.saver.Save(s.tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
