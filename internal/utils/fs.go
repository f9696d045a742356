package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DirCheckResult represents the result of dir checks
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// IsFile reports whether path names a regular file.
func IsFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}

// EnsureDir creates dirPath and its parents.
func EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dirPath, err)
	}
	return nil
}

// SaveTOMLFile encodes data into filePath. The file is written next to
// its final name and renamed into place, so readers never see half a file.
func SaveTOMLFile(data any, filePath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", filePath, err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", filePath, err)
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return fmt.Errorf("replace %s: %w", filePath, err)
	}
	return nil
}

// AbsPath returns p made absolute, or "unknown" for an empty path.
func AbsPath(p string) string {
	if p == "" {
		return "unknown"
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetExecutableDir returns the directory of the running binary with
// symlinks resolved, so files installed next to it are found.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus creates dirPath when missing and tests that a file can
// be created inside it.
func CheckDirStatus(dirPath string) DirCheckResult {
	var result DirCheckResult
	stat, err := os.Stat(dirPath)
	switch {
	case err == nil && !stat.IsDir():
		result.Error = fmt.Errorf("%s is not a directory", dirPath)
		return result
	case errors.Is(err, os.ErrNotExist):
		if err := EnsureDir(dirPath); err != nil {
			result.Error = err
			return result
		}
	case err != nil:
		result.Error = err
		return result
	}
	result.Exists = true

	probe, err := os.CreateTemp(dirPath, ".write_test*")
	if err != nil {
		result.Error = fmt.Errorf("directory %s is not writable: %w", dirPath, err)
		return result
	}
	probe.Close()
	os.Remove(probe.Name())
	result.Writable = true
	return result
}
