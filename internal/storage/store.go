package storage

import (
	"errors"
	"fmt"
)

const (
	// ReportsDir is the table holding evaluation reports.
	ReportsDir = "reports"
)

var (
	// DefaultDir is the root directory of the file storage.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key of a stored item.
type Key struct {
	Dataset string `json:"dataset"`
	Run     string `json:"run"`
	Label   string `json:"label"`
}

// Path is the file name for the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s_%s", k.Dataset, k.Run, k.Label)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
