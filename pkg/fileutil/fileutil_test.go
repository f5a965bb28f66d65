package fileutil

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestFindFileCaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := []string{
		"day1.txt",
		"Day2.TXT",
		"DAY13.txt",
	}

	for _, filename := range testFiles {
		path := filepath.Join(tmpDir, filename)
		if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	tests := []struct {
		name          string
		searchName    string
		shouldFind    bool
		expectedMatch string
	}{
		{
			name:          "exact match",
			searchName:    "day1.txt",
			shouldFind:    true,
			expectedMatch: "day1.txt",
		},
		{
			name:          "lowercase search for mixed case file",
			searchName:    "day2.txt",
			shouldFind:    true,
			expectedMatch: "Day2.TXT",
		},
		{
			name:          "mixed case search for uppercase file",
			searchName:    "Day13.txt",
			shouldFind:    true,
			expectedMatch: "DAY13.txt",
		},
		{
			name:       "file not found",
			searchName: "day25.txt",
			shouldFind: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := FindFileCaseInsensitive(tmpDir, tt.searchName)

			if tt.shouldFind {
				if err != nil {
					t.Errorf("Expected to find file, but got error: %v", err)
					return
				}

				actualFilename := filepath.Base(path)
				if actualFilename != tt.expectedMatch {
					t.Errorf("Expected filename %s, got %s", tt.expectedMatch, actualFilename)
				}

				if _, err := os.Stat(path); err != nil {
					t.Errorf("Returned path does not exist: %s", path)
				}
			} else {
				if err == nil {
					t.Errorf("Expected error for non-existent file, but got path: %s", path)
				}
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Day5.txt")
	if err := os.WriteFile(path, []byte("3,0,4,0,99\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	got, err := ReadInput(tmpDir, 5)
	if err != nil {
		t.Fatalf("ReadInput failed: %v", err)
	}
	if got != "3,0,4,0,99" {
		t.Errorf("ReadInput = %q, want trailing newline trimmed", got)
	}

	if _, err := ReadInput(tmpDir, 6); err == nil {
		t.Error("ReadInput for a missing day expected error")
	}
}

func TestReadInputFS(t *testing.T) {
	fsys := fstest.MapFS{
		"inputs/DAY9.TXT": {Data: []byte("104,1125899906842624,99\r\n")},
	}

	got, err := ReadInputFS(fsys, "inputs", 9)
	if err != nil {
		t.Fatalf("ReadInputFS failed: %v", err)
	}
	if got != "104,1125899906842624,99" {
		t.Errorf("ReadInputFS = %q, want CRLF trimmed", got)
	}
}
