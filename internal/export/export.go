// Package export writes the log buffer's text export to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FilenameLayout is the date part of an export file name.
const FilenameLayout = "2006-01-02"

// Filename returns "agribot-logs-YYYY-MM-DD.txt" for t's UTC calendar date.
func Filename(t time.Time) string {
	return "agribot-logs-" + t.UTC().Format(FilenameLayout) + ".txt"
}

// ContentDisposition is the header value for an HTTP download of the export.
func ContentDisposition(t time.Time) string {
	return fmt.Sprintf("attachment; filename=%q", Filename(t))
}

// WriteFile writes text into dir under Filename(t) and returns the path.
// The write goes to a temp file in dir first and is renamed into place, so
// a reader never sees a partial export.
func WriteFile(dir string, t time.Time, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, Filename(t))
	tmp, err := os.CreateTemp(dir, ".agribot-export-*")
	if err != nil {
		return "", fmt.Errorf("create temp export: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename export: %w", err)
	}
	return path, nil
}
