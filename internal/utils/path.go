package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ResolveDataFile finds the word list in order of preference:
// 1. The path as given (absolute or relative to the working directory)
// 2. Relative to the executable directory
// 3. Relative to the parent of the executable directory
func ResolveDataFile(userSpecifiedPath string) (string, error) {
	if userSpecifiedPath == "" {
		return "", fmt.Errorf("no data file specified")
	}

	candidatePaths := []string{userSpecifiedPath}
	if !filepath.IsAbs(userSpecifiedPath) {
		if execDir, err := GetExecutableDir(); err == nil {
			candidatePaths = append(candidatePaths,
				filepath.Join(execDir, userSpecifiedPath),
				filepath.Join(filepath.Dir(execDir), userSpecifiedPath),
			)
		}
	}

	for _, path := range candidatePaths {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			log.Debugf("Found data file: %s", path)
			return GetAbsolutePath(path), nil
		}
		log.Debugf("Data file candidate not valid: %s", path)
	}
	return "", fmt.Errorf("data file %s not found in %v: %w", userSpecifiedPath, candidatePaths, os.ErrNotExist)
}
