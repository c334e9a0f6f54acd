// Package jsonfile persists a collection as a single JSON array document on
// disk: whole-document read, pretty-printed whole-document overwrite. Each
// collection is owned by one Collection value whose mutex spans the entire
// read-modify-write cycle, so two concurrent mutators cannot interleave and
// lose an update.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection owns one JSON array document holding records of type T.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// New creates a Collection backed by the file at path. The file must already
// exist; a missing file is a deployment error, not an empty collection.
func New[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads the whole document and returns the decoded records.
// POST: Returns records in storage order; a parse failure is wrapped with
// the file path
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// Mutate applies fn to the current records and overwrites the document with
// fn's result. The collection lock is held across the whole cycle. If fn
// returns an error nothing is written and the error is returned unchanged.
// POST: On success the document holds exactly the records fn returned
func (c *Collection[T]) Mutate(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.write(updated)
}

func (c *Collection[T]) read() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}
	return records, nil
}

// write serializes the full collection pretty-printed and replaces the
// document via a temp file and rename, so readers never see a torn write.
func (c *Collection[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
