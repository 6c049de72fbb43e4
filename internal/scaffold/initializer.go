package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/dyluth/teamify/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// DefaultRosterName is used when no roster name is given.
const DefaultRosterName = "my-team"

// Initialize writes a sample roster.yml into dir.
// If force is true, an existing roster.yml is replaced.
// Returns the path of the created file.
func Initialize(dir, name string, force bool) (string, error) {
	if name == "" {
		name = DefaultRosterName
	}

	path := filepath.Join(dir, config.DefaultFileName)

	if force {
		if err := handleForce(path); err != nil {
			return "", err
		}
	} else if err := CheckExisting(dir); err != nil {
		return "", err
	}

	content, err := renderRoster(name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	// The template must load as a valid roster
	if _, err := config.Load(path); err != nil {
		return "", fmt.Errorf("created %s is not a valid roster: %w", path, err)
	}

	return path, nil
}

// handleForce removes an existing roster file if --force was specified
func handleForce(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("⚠️  Removing existing %s...\n", filepath.Base(path))
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// renderRoster fills the roster template with name
func renderRoster(name string) ([]byte, error) {
	raw, err := templatesFS.ReadFile("templates/roster.yml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read roster template: %w", err)
	}

	tmpl, err := template.New("roster").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return nil, fmt.Errorf("failed to render roster template: %w", err)
	}

	return buf.Bytes(), nil
}
