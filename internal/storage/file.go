package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sandeepkv93/taskbook/internal/model"
)

const fileTimeLayout = time.RFC3339Nano

type taskRecord struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at"`
}

// File reads and writes the task collection as an indented JSON array.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Load returns the persisted tasks. A missing file yields an empty
// collection and no error; unreadable or malformed content yields an
// error wrapping ErrCorrupt.
func (f *File) Load() ([]model.Task, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		task, convErr := recordToTask(rec)
		if convErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, convErr)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (f *File) Save(tasks []model.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, taskToRecord(task))
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create task file dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}

func taskToRecord(task model.Task) taskRecord {
	rec := taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(fileTimeLayout),
	}
	if task.CompletedAt != nil {
		formatted := task.CompletedAt.Format(fileTimeLayout)
		rec.CompletedAt = &formatted
	}
	return rec
}

func recordToTask(rec taskRecord) (model.Task, error) {
	created, err := time.Parse(fileTimeLayout, rec.CreatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %d created_at: %v", rec.ID, err)
	}
	task := model.Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Completed:   rec.Completed,
		CreatedAt:   created,
	}
	if rec.CompletedAt != nil {
		completed, parseErr := time.Parse(fileTimeLayout, *rec.CompletedAt)
		if parseErr != nil {
			return model.Task{}, fmt.Errorf("task %d completed_at: %v", rec.ID, parseErr)
		}
		task.CompletedAt = &completed
	}
	return task, nil
}
