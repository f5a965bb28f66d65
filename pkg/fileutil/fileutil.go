// Package fileutil provides file system helpers for locating and reading
// puzzle input files.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFileCaseInsensitive searches for a file with the given name in the
// specified directory. The search is case-insensitive, which is useful for
// cross-platform compatibility (inputs checked in as Day1.TXT still load).
//
// Returns the actual path to the file if found.
func FindFileCaseInsensitive(dir, filename string) (string, error) {
	searchName := strings.ToLower(filename)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(entry.Name()) == searchName {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("file not found: %s (searched in %s)", filename, dir)
}

// FindFileCaseInsensitiveFS is FindFileCaseInsensitive over an fs.FS
// (embed.FS or os.DirFS).
func FindFileCaseInsensitiveFS(fsys fs.FS, dir, filename string) (string, error) {
	searchName := strings.ToLower(filename)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(entry.Name()) == searchName {
			// fs.FS uses forward slashes
			return dir + "/" + entry.Name(), nil
		}
	}

	return "", fmt.Errorf("file not found: %s (searched in %s)", filename, dir)
}

// InputFilename returns the conventional input file name for a day.
func InputFilename(day int) string {
	return fmt.Sprintf("day%d.txt", day)
}

// ReadInput loads the puzzle input for the given day from dir. The file name
// is day<N>.txt, matched case-insensitively. Trailing whitespace is trimmed
// so a final newline never leaks into parsers.
func ReadInput(dir string, day int) (string, error) {
	path, err := FindFileCaseInsensitive(dir, InputFilename(day))
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}

	return strings.TrimRight(string(data), "\r\n \t"), nil
}

// ReadInputFS is ReadInput over an fs.FS.
func ReadInputFS(fsys fs.FS, dir string, day int) (string, error) {
	path, err := FindFileCaseInsensitiveFS(fsys, dir, InputFilename(day))
	if err != nil {
		return "", err
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}

	return strings.TrimRight(string(data), "\r\n \t"), nil
}
