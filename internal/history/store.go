// Package history persists calculation results as a capped JSON file so
// past readings can be listed, re-opened, and browsed interactively.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/hurufapp/huruf/internal/engine"
)

// ErrStoreCorrupted indicates the history file exists but contains invalid
// data. Callers should abort unless the user explicitly clears the history.
var ErrStoreCorrupted = errors.New("history file corrupted")

// ErrNotFound indicates no stored result matches the requested ID.
var ErrNotFound = errors.New("history entry not found")

// StoreVersion is the current schema version of the history file.
const StoreVersion = 1

// DefaultMaxEntries caps the file when no limit is configured.
const DefaultMaxEntries = 200

// storeData is the serialized form of the history file.
type storeData struct {
	Version int             `json:"version"`
	Entries []engine.Result `json:"entries"`
}

// Store manages calculation history persisted as a JSON file. Entries are
// kept newest-first; appending past the cap evicts the oldest.
type Store struct {
	mu         sync.RWMutex
	filePath   string
	maxEntries int
	entries    []engine.Result
}

// NewStore creates a Store backed by the given file path. If filePath is
// empty, it defaults to ~/.huruf/history.json. maxEntries <= 0 selects
// DefaultMaxEntries.
func NewStore(filePath string, maxEntries int) (*Store, error) {
	if filePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home directory: %w", err)
		}
		filePath = filepath.Join(homeDir, ".huruf", "history.json")
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Store{
		filePath:   filePath,
		maxEntries: maxEntries,
	}, nil
}

// lockFilePath is the sibling lockfile guarding history.json against
// concurrent huruf invocations.
func (s *Store) lockFilePath() string {
	return s.filePath + ".lock"
}

// acquireFileLock takes the advisory lockfile for the history file and
// returns the release function. A lock older than staleLockAge whose owner
// PID is gone gets broken, so a crashed run cannot wedge the store.
func (s *Store) acquireFileLock() (func(), error) {
	lockPath := s.lockFilePath()

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	const maxRetries = 10
	const retryDelay = 100 * time.Millisecond
	const staleLockAge = 30 * time.Second

	for range maxRetries {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			// Owner PID, read back by liveness checks.
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}

		if removeStaleLock(lockPath, staleLockAge) {
			continue
		}
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("could not acquire lock on %s after retries", lockPath)
}

// removeStaleLock breaks an aged-out lock whose owner is no longer running.
// True means the caller should retry the exclusive create immediately.
func removeStaleLock(lockPath string, staleLockAge time.Duration) bool {
	info, statErr := os.Stat(lockPath)
	if statErr != nil || time.Since(info.ModTime()) <= staleLockAge {
		return false
	}

	if isLockHeldByLiveProcess(lockPath) {
		return false
	}

	_ = os.Remove(lockPath)
	return true
}

// isLockHeldByLiveProcess reports whether the PID recorded in the lockfile
// still names a running process. Unreadable or malformed contents count as
// not held.
func isLockHeldByLiveProcess(lockPath string) bool {
	pidData, readErr := os.ReadFile(lockPath)
	if readErr != nil || len(pidData) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(pidData), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	return processExists(pid) == nil
}

func processExists(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	// Signal 0 tests existence without delivering anything.
	return proc.Signal(syscall.Signal(0))
}

// Load reads the history from the JSON file. A missing file yields an empty
// store; a corrupted one returns ErrStoreCorrupted.
func (s *Store) Load() error {
	unlock, lockErr := s.acquireFileLock()
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.entries = nil
			return nil
		}
		return fmt.Errorf("reading history file: %w", err)
	}

	var fileData storeData
	if unmarshalErr := json.Unmarshal(data, &fileData); unmarshalErr != nil {
		s.entries = nil
		return fmt.Errorf("%w: %w", ErrStoreCorrupted, unmarshalErr)
	}

	if fileData.Version != StoreVersion {
		s.entries = nil
		return fmt.Errorf("%w: unsupported version %d (expected %d)",
			ErrStoreCorrupted, fileData.Version, StoreVersion)
	}

	s.entries = fileData.Entries
	s.trimLocked()

	return nil
}

// Save writes the history to the JSON file atomically.
func (s *Store) Save() error {
	unlock, lockErr := s.acquireFileLock()
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	s.mu.RLock()
	fileData := storeData{
		Version: StoreVersion,
		Entries: s.entries,
	}
	data, err := json.MarshalIndent(fileData, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return fmt.Errorf("creating history directory: %w", mkdirErr)
	}

	// Write atomically via temp file
	tmpPath := s.filePath + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing history temp file: %w", writeErr)
	}

	if renameErr := os.Rename(tmpPath, s.filePath); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming history temp file: %w", renameErr)
	}

	return nil
}

// Append inserts a result at the front, evicting the oldest entries past
// the cap.
func (s *Store) Append(result *engine.Result) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}
	if result.ID == "" {
		return errors.New("result ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]engine.Result{*result}, s.entries...)
	s.trimLocked()
	return nil
}

// List returns stored results newest-first. limit <= 0 returns everything.
func (s *Store) List(limit int) []engine.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]engine.Result, n)
	copy(out, s.entries[:n])
	return out
}

// ListByType returns stored results of one calculation type, newest-first.
func (s *Store) ListByType(calcType engine.CalculationType, limit int) []engine.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []engine.Result
	for _, entry := range s.entries {
		if entry.Type != calcType {
			continue
		}
		out = append(out, entry)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Get retrieves a stored result by ID. A unique ID prefix also matches, so
// the CLI can accept shortened IDs.
func (s *Store) Get(id string) (engine.Result, error) {
	if id == "" {
		return engine.Result{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *engine.Result
	for i := range s.entries {
		if s.entries[i].ID == id {
			return s.entries[i], nil
		}
		if len(id) >= 4 && len(id) < len(s.entries[i].ID) && s.entries[i].ID[:len(id)] == id {
			if match != nil {
				return engine.Result{}, fmt.Errorf("%w: ambiguous prefix %q", ErrNotFound, id)
			}
			match = &s.entries[i]
		}
	}
	if match != nil {
		return *match, nil
	}
	return engine.Result{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Count returns the number of stored entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// FilePath returns the file path of the history store.
func (s *Store) FilePath() string {
	return s.filePath
}

// trimLocked drops entries past the cap. Caller holds the write lock.
func (s *Store) trimLocked() {
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[:s.maxEntries]
	}
}
