package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// EnsureDir creates the directory (and any missing parent) if it does not
// already exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return fmt.Errorf("could not create directory %q: %w", path, err)
	}
	return nil
}

// PathExists returns whether anything exists at the given path.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FileExists returns whether a regular file exists at the given path. It
// fails if the path exists but points to a directory.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("path %q is a directory, not a file", path)
	}
	return true, nil
}

// WriteFile writes the content at the given path, creating the file if
// needed, truncating it otherwise.
func WriteFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("could not write file %q: %w", path, err)
	}
	return nil
}

// ReadFile reads the whole content of the file at the given path.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %q: %w", path, err)
	}
	return content, nil
}
