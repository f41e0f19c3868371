package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirCheckResult represents the result of dir checks
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile encodes data as TOML into filePath, creating parent dirs.
func SaveTOMLFile(data any, filePath string) error {
	if err := EnsureDir(filepath.Dir(filePath)); err != nil {
		return err
	}
	file, err := os.Create(filePath)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(data)
}

// GetAbsolutePath returns the absolute path of a file
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	if !filepath.IsAbs(path) {
		if absPath, err := filepath.Abs(path); err == nil {
			return absPath
		}
	}
	return path
}

// testWriteAccess tests if a directory can be written to
func testWriteAccess(dirPath string) bool {
	testFile := filepath.Join(dirPath, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	file.Close()
	os.Remove(testFile)
	return true
}

// GetExecutableDir returns the directory of the current executable,
// following symlinks.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus creates dirPath if needed and tests that it is writable
func CheckDirStatus(dirPath string) DirCheckResult {
	result := DirCheckResult{}
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		result.Error = err
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return result
	}
	result.Exists = true
	result.Writable = testWriteAccess(dirPath)
	return result
}
