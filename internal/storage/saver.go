package storage

import (
	"errors"

	"github.com/sandeepkv93/taskbook/internal/model"
)

var ErrCorrupt = errors.New("storage: corrupt task file")

// Saver persists the full task collection, overwriting any previous state.
type Saver interface {
	Save(tasks []model.Task) error
}
