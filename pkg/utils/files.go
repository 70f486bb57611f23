package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source is one input file read into memory.
type Source struct {
	Name string // path as given by the caller, used in diagnostics
	Path string // absolute path
	Text string
}

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource reads the whole file at relPath.
func ReadSource(relPath string) (Source, error) {
	fullPath, _, err := GetPathInfo(relPath)
	if err != nil {
		return Source{}, fmt.Errorf("resolve %s: %w", relPath, err)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return Source{}, fmt.Errorf("read %s: %w", relPath, err)
	}
	return Source{Name: relPath, Path: fullPath, Text: string(data)}, nil
}
