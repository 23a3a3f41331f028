package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix marks the scratch files used for atomic writes, so
// the watcher (and curious operators) can tell them from real data.
const TempFilePrefix = "notekeeper-tmp-"

// writeFileAtomic replaces filename with data without ever exposing a
// partial file. The bytes land in a scratch file in the same directory,
// are synced to disk, and only then renamed over the target: rename is
// atomic on POSIX filesystems, so a reader sees the old content or the
// new, never a mix, and a crash mid-write leaves the old file durable.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	// Same directory as the target, so the rename cannot cross devices.
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	// The rename consumes the scratch file; removal matters only on the
	// error paths, where it keeps the directory free of leftovers.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
