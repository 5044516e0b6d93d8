// Package cachestore snapshots the last successful fetch to a JSON file so
// the list can be browsed again without the network.
package cachestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ferhatb/itemls/internal/model"
)

// JSON-backed snapshot. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

const cacheFileName = "items.json"

// Store reads and writes the snapshot inside dir.
type Store struct {
	dir string
}

// New returns a Store rooted at dir; an empty dir means the working
// directory.
func New(dir string) *Store { return &Store{dir: dir} }

func (s *Store) path() (string, error) {
	dir := s.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	return filepath.Join(dir, cacheFileName), nil
}

// Load returns the cached items, or an empty list when no snapshot exists.
func (s *Store) Load() ([]model.Item, error) {
	p, err := s.path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Save overwrites the snapshot with items.
func (s *Store) Save(items []model.Item) error {
	p, err := s.path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
