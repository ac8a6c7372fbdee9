package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyTitle = errors.New("model: task title is required")
	ErrInvalidID  = errors.New("model: task id must be positive")
)

type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (t Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, t.ID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Completed && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task is pending")
	}
	return nil
}
