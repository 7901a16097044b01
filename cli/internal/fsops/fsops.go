// Package fsops implements idempotent file operations used by the
// post-generation customizer. Every operation reports its outcome with an
// explicit error kind, so callers can tell "source absent, ignore" from
// "operation failed, warn" without inspecting OS error chains.
package fsops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrSourceMissing is reported when the operation source path does not
	// exist. The operation is a no-op in this case.
	ErrSourceMissing = errors.New("source path does not exist")
	// ErrDestinationExists is reported when a move destination is already
	// occupied. The source is left in place.
	ErrDestinationExists = errors.New("destination path already exists")
)

// RemoveFile removes the file at path. Missing file is reported
// with ErrSourceMissing.
func RemoveFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrSourceMissing
		}
		return fmt.Errorf("failed to get access to %s: %s", path, err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %s", path, err)
	}
	return nil
}

// RemoveDir removes the directory at path with its content. Missing
// directory is reported with ErrSourceMissing.
func RemoveDir(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrSourceMissing
		}
		return fmt.Errorf("failed to get access to %s: %s", path, err)
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %s", path, err)
	}
	return nil
}

// Move relocates src to dst, creating missing parent directories of dst.
// Missing source is reported with ErrSourceMissing, occupied destination
// with ErrDestinationExists. Files and directories are handled the same way.
func Move(src string, dst string) error {
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return ErrSourceMissing
		}
		return fmt.Errorf("failed to get access to %s: %s", src, err)
	}

	if _, err := os.Stat(dst); err == nil {
		return ErrDestinationExists
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %s", filepath.Dir(dst), err)
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %s to %s: %s", src, dst, err)
	}
	return nil
}
