package gamescanner

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// LevelExt is the file extension of level maps
const LevelExt = ".txt"

var (
	// ErrNoLevels is returned when the data directory holds no level files
	ErrNoLevels = errors.New("no level files found")

	// ErrLevelNotFound is returned when a required level is missing
	ErrLevelNotFound = errors.New("level not found")
)

// ScanLevels lists the level files in the data directory, sorted by name
func ScanLevels(dataPath string) ([]string, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var levels []string
	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		// Skip hidden files
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if strings.HasSuffix(strings.ToLower(name), LevelExt) {
			levels = append(levels, name)
		}
	}

	sort.Strings(levels)
	return levels, nil
}

// PickLevel returns preferred if it is among levels. Otherwise it falls
// back to the first level found, unless strict is set, in which case a
// missing preferred level is an error.
func PickLevel(levels []string, preferred string, strict bool) (string, error) {
	for _, level := range levels {
		if level == preferred {
			return level, nil
		}
	}
	if strict {
		return "", fmt.Errorf("%w: %s", ErrLevelNotFound, preferred)
	}
	if len(levels) == 0 {
		return "", ErrNoLevels
	}
	return levels[0], nil
}
