package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirectoryScanner validates the explicit package directories a
// generation run was given. Grounded on
// Toyz-axon/internal/cli/scanner.go's DirectoryScanner, trimmed to drop
// its "./..." recursive-pattern handling: that convenience is a
// Non-goal feature (see SPEC_FULL.md's DOMAIN STACK note), so each
// argument here names exactly one package directory to scan, no glob
// expansion.
type DirectoryScanner struct{}

// NewDirectoryScanner constructs a DirectoryScanner.
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories resolves each of rootDirs to an absolute path and
// verifies it names an existing directory.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	cleanDirs := make([]string, 0, len(rootDirs))

	for _, rootDir := range rootDirs {
		absDir, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, fmt.Errorf("resolve path %s: %w", rootDir, err)
		}

		info, err := os.Stat(absDir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("directory does not exist: %s", rootDir)
			}
			return nil, fmt.Errorf("stat %s: %w", rootDir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("not a directory: %s", rootDir)
		}

		cleanDirs = append(cleanDirs, absDir)
	}

	return cleanDirs, nil
}
