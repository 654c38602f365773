// Package storage manages uploaded files on disk. Each case gets its own
// subdirectory under the upload root; stored filenames carry an upload
// timestamp prefix so repeated uploads of the same file never collide.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JustJay7/appeal-case-manager/pkg/logger"
)

// Store writes and removes uploaded case files.
type Store struct {
	root   string
	logger *logger.Logger
}

// New creates a file store rooted at the given upload directory.
func New(root string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{root: root, logger: log}, nil
}

// Save streams an upload into the case directory and returns the stored path
// and the size written. A partially written file is removed on failure.
func (s *Store) Save(caseID uint, filename string, src io.Reader) (string, int64, error) {
	caseDir := filepath.Join(s.root, fmt.Sprintf("case_%d", caseID))
	if err := os.MkdirAll(caseDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create case directory: %w", err)
	}

	timestamp := time.Now().UTC().Format("20060102_150405")
	fullPath := filepath.Join(caseDir, fmt.Sprintf("%s_%s", timestamp, filename))

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", 0, fmt.Errorf("failed to save file: %w", err)
	}

	s.logger.Info("File saved", "path", fullPath, "size", size)
	return fullPath, size, nil
}

// Remove deletes a stored file from disk.
func (s *Store) Remove(path string) error {
	return os.Remove(path)
}

// Exists reports whether the stored file is still present on disk.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SanitizeFilename strips directory components and replaces characters
// outside [A-Za-z0-9._-] so the name is safe to store.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return strings.Trim(sb.String(), "._")
}

// Extension returns the lower-cased file extension without the leading dot,
// or an empty string when the name carries none.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
