package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rmarques/notekeeper/pkg/core"
)

const (
	// DefaultFilename is the backing file for the note collection.
	DefaultFilename = "notes.json"

	// corruptSuffixFormat is the timestamp layout embedded in backup
	// filenames when an unreadable collection is set aside.
	corruptSuffixFormat = "20060102T150405Z"
)

// emptyCollection is what a healthy but empty backing file contains.
var emptyCollection = []byte("[]")

// Store implements core.Store using a single JSON file.
//
// The whole collection lives in one array; reads and writes always
// cover the full file. Writes go through an atomic temp-file+rename so
// a reader never observes a partially written collection and a crashed
// write never destroys the previous durable state.
type Store struct {
	Path   string
	config Config

	mu      sync.Mutex
	watcher *watchWorker
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path     string // directory holding the backing file
	Filename string // defaults to DefaultFilename
	Logger   *slog.Logger
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// File returns the full path of the backing file.
func (s *Store) File() string {
	return filepath.Join(s.Path, s.config.Filename)
}

// Initialize performs the necessary setup for the store (mkdir, seed file).
// It is idempotent: an existing directory and file are left alone.
func (s *Store) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.File()); os.IsNotExist(err) {
		if err := writeFileAtomic(s.File(), emptyCollection, 0644); err != nil {
			return fmt.Errorf("failed to seed notes file: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat notes file: %w", err)
	}

	return nil
}

// Load reads the persisted collection.
//
// Recovery policy (self-healing, in order of severity):
//  1. Missing file -> seed an empty collection, return empty.
//  2. Empty content -> persist "[]" so future reads are well-formed.
//  3. Valid JSON, wrong shape (object instead of array) -> log, reset
//     to empty. The old content is discarded; that is the documented
//     recovery policy, not an accident.
//  4. Invalid JSON -> copy the unreadable file to a timestamped backup
//     alongside, then reset to empty. The operator can recover the
//     backup manually.
//
// Note: context is not used here as these are blocking local file operations.
func (s *Store) Load(ctx context.Context) ([]core.Note, error) {
	data, err := os.ReadFile(s.File())
	if os.IsNotExist(err) {
		if err := s.reset(); err != nil {
			return nil, err
		}
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		if err := s.reset(); err != nil {
			return nil, err
		}
		return []core.Note{}, nil
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		if json.Valid(data) {
			// Parses but is not a collection of notes.
			if s.config.Logger != nil {
				s.config.Logger.Warn("notes file has unexpected shape, resetting to empty collection",
					"path", s.File(), "error", err)
			}
			if err := s.reset(); err != nil {
				return nil, err
			}
			return []core.Note{}, nil
		}

		// Corruption: set the bytes aside before healing.
		backup, berr := s.backupCorrupt(data)
		if berr != nil {
			return nil, fmt.Errorf("failed to back up corrupt notes file: %w", berr)
		}
		if s.config.Logger != nil {
			s.config.Logger.Error("notes file is corrupt, backed up and reset to empty collection",
				"path", s.File(), "backup", backup, "error", err)
		}
		if err := s.reset(); err != nil {
			return nil, err
		}
		return []core.Note{}, nil
	}

	if notes == nil {
		// "null" unmarshals cleanly into a nil slice.
		notes = []core.Note{}
	}
	return notes, nil
}

// ReplaceAll persists the given collection as the new durable state.
//
// Note: context is not used here as these are blocking local file operations.
func (s *Store) ReplaceAll(ctx context.Context, notes []core.Note) error {
	if notes == nil {
		// A nil slice would serialize as "null", which is not a collection.
		notes = []core.Note{}
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := writeFileAtomic(s.File(), data, 0644); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}

	return nil
}

// reset heals the backing file to an empty collection.
func (s *Store) reset() error {
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := writeFileAtomic(s.File(), emptyCollection, 0644); err != nil {
		return fmt.Errorf("failed to reset notes file: %w", err)
	}
	return nil
}

// backupCorrupt writes the unreadable bytes to a sibling file whose
// suffix embeds the detection instant, and returns the backup path.
func (s *Store) backupCorrupt(data []byte) (string, error) {
	backup := fmt.Sprintf("%s.corrupt-%s", s.File(), time.Now().UTC().Format(corruptSuffixFormat))
	if err := os.WriteFile(backup, data, 0644); err != nil {
		return "", err
	}
	return backup, nil
}
