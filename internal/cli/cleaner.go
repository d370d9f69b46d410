package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// Cleaner removes previously generated autogen_module.go files.
// Grounded on Toyz-axon/internal/cli/cleaner.go's Cleaner, trimmed of
// its "./..." recursive-walk branch for the same reason
// DirectoryScanner drops it: glob expansion is a Non-goal feature here.
type Cleaner struct{}

// NewCleaner constructs a Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanGeneratedFiles removes autogen_module.go from each of
// directories, skipping any directory that doesn't exist or doesn't
// carry a generated file.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var removed []string

	for _, dir := range directories {
		file, err := c.cleanSingleDirectory(dir)
		if err != nil {
			return removed, fmt.Errorf("clean directory %s: %w", dir, err)
		}
		if file != "" {
			removed = append(removed, file)
		}
	}

	return removed, nil
}

func (c *Cleaner) cleanSingleDirectory(dir string) (string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", nil
	}

	autogenFile := filepath.Join(dir, "autogen_module.go")
	if _, err := os.Stat(autogenFile); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("check %s: %w", autogenFile, err)
	}

	if err := os.Remove(autogenFile); err != nil {
		return "", fmt.Errorf("remove %s: %w", autogenFile, err)
	}

	return autogenFile, nil
}
