// Package history persists processing results as JSON files so users
// can save and revisit refined text.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is one saved processing result.
type Record struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Model     string    `json:"model"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists records under a base directory, one JSON file each.
type Store struct {
	baseDir string

	mu      sync.RWMutex
	records map[string]*Record
	loaded  bool
}

// NewStore creates a store rooted at baseDir. The directory is created
// on first save.
func NewStore(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		records: make(map[string]*Record),
	}
}

// DefaultDir returns the per-user history directory.
func DefaultDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".airefiner", "history")
	}
	return filepath.Join(".airefiner", "history")
}

// Save persists a new record and returns it with ID and timestamp set.
func (s *Store) Save(task, model, input, result string) (*Record, error) {
	rec := &Record{
		ID:        uuid.NewString(),
		Task:      task,
		Model:     model,
		Input:     input,
		Result:    result,
		CreatedAt: time.Now(),
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := os.WriteFile(s.recordPath(rec.ID), data, 0o644); err != nil {
		return nil, err
	}

	s.ensureLoaded()
	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()
	return rec, nil
}

// Get returns a record by ID.
func (s *Store) Get(id string) (*Record, error) {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("record not found: %s", id)
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *Store) List() []*Record {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Delete removes a record.
func (s *Store) Delete(id string) error {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("record not found: %s", id)
	}
	delete(s.records, id)
	return os.Remove(s.recordPath(id))
}

// Internal helpers

func (s *Store) recordPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *Store) ensureLoaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loaded = true

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		s.records[rec.ID] = &rec
	}
}
