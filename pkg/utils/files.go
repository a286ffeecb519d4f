package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsPythonFile checks if a file is a Python source file
func IsPythonFile(filename string) bool {
	return strings.HasSuffix(filename, ".py")
}

// SplitLines splits source text into lines. A single trailing newline does
// not produce a phantom empty last element, so SplitLines followed by a
// "\n" join round-trips text that ends with exactly one newline.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// FindPythonFiles recursively finds all Python source files in a directory,
// skipping hidden directories and any file whose path (relative to root)
// matches one of the exclude glob patterns.
func FindPythonFiles(root string, excludes []string) ([]string, error) {
	var pyFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsPythonFile(filepath.Base(path)) {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if IsExcluded(rel, excludes) {
			return nil
		}

		pyFiles = append(pyFiles, path)
		return nil
	})

	return pyFiles, err
}

// IsExcluded reports whether path matches any of the exclude glob patterns.
// Patterns use doublestar semantics, so "venv/**" excludes everything below
// a venv directory.
func IsExcluded(path string, excludes []string) bool {
	p := filepath.ToSlash(path)
	for _, pattern := range excludes {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
