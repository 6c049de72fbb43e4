package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/teamify/internal/config"
)

// CheckExisting returns an error if dir already contains a roster file
func CheckExisting(dir string) error {
	path := filepath.Join(dir, config.DefaultFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("roster already initialized\n\nFound existing: %s\n\nUse 'teamify init --force' to overwrite it", config.DefaultFileName)
	}
	return nil
}
