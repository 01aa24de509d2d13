package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Record is the persisted session state: the bearer token plus the profile
// fields the login response supplied. The file is a durable mirror of the
// in-memory session, not a second source of truth.
type Record struct {
	Token    string `toml:"token,omitempty"`
	UserType string `toml:"user_type,omitempty"`
	Username string `toml:"username,omitempty"`
	UserID   int    `toml:"user_id,omitempty"`
}

// Store persists session records across runs.
type Store interface {
	// Load reads the persisted record. A store with no record returns the
	// zero Record and no error.
	Load() (Record, error)
	// Save replaces the persisted record.
	Save(rec Record) error
	// Clear removes the persisted record entirely.
	Clear() error
}

// FileStore persists the session record as a TOML file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the session file. A missing file is not an error.
func (s *FileStore) Load() (Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var rec Record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	return rec, nil
}

// Save writes the record, creating parent directories as needed. The file
// holds a bearer token, hence the restrictive mode.
func (s *FileStore) Save(rec Record) error {
	data, err := toml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemoryStore keeps the session record in memory. It backs tests and
// ephemeral sessions.
type MemoryStore struct {
	mu  sync.Mutex
	rec Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored record.
func (s *MemoryStore) Load() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec, nil
}

// Save replaces the stored record.
func (s *MemoryStore) Save(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	return nil
}

// Clear resets the store to empty.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = Record{}
	return nil
}
