// Package adapter contains infrastructure adapters for the pyliner CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	m "github.com/shock/pyliner/internal/model"
)

// Storage abstracts the filesystem operations the domain layer relies on when
// resolving and inlining modules. It intentionally hides direct `os` access so
// the inlining logic can be tested without touching the disk.
type Storage interface {
	// Canonicalize resolves a path to absolute, cleaned form. It fails when
	// the path does not exist.
	Canonicalize(path m.Path) (m.Path, error)

	// ReadFile loads a file and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Exists reports whether a file or directory exists at path.
	Exists(path m.Path) bool

	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) bool

	// ListDir returns the entry names of a directory.
	ListDir(path m.Path) ([]string, error)
}

// FSStorage implements Storage on top of an afero filesystem. Backed by the
// OS filesystem in production and by an in-memory tree in tests.
type FSStorage struct {
	fs afero.Afero

	// virtual storage canonicalizes against "/" instead of the process
	// working directory.
	virtual bool
}

// NewLocalStorage constructs a Storage backed by the real filesystem.
func NewLocalStorage() *FSStorage {
	return &FSStorage{fs: afero.Afero{Fs: afero.NewOsFs()}}
}

// NewMemStorage constructs a Storage backed by an in-memory tree rooted at
// "/", for deterministic tests.
func NewMemStorage() *FSStorage {
	return &FSStorage{fs: afero.Afero{Fs: afero.NewMemMapFs()}, virtual: true}
}

// AddFile writes a file, creating parent directories as needed. Intended for
// fixture setup against the in-memory backend.
func (s *FSStorage) AddFile(path m.Path, content string) error {
	if err := s.fs.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return err
	}

	return s.fs.WriteFile(string(path), []byte(content), 0o644)
}

// Canonicalize resolves the path to absolute, cleaned form.
func (s *FSStorage) Canonicalize(path m.Path) (m.Path, error) {
	resolved := string(path)

	if s.virtual {
		if !strings.HasPrefix(resolved, "/") {
			resolved = "/" + resolved
		}

		resolved = filepath.Clean(resolved)
	} else {
		abs, err := filepath.Abs(resolved)
		if err != nil {
			return "", fmt.Errorf("canonicalize %s: %w", path, err)
		}

		resolved = abs
	}

	if !s.Exists(m.Path(resolved)) {
		return "", fmt.Errorf("canonicalize %s: no such file or directory", path)
	}

	return m.Path(resolved), nil
}

// ReadFile loads file contents.
func (s *FSStorage) ReadFile(path m.Path) ([]byte, error) {
	content, err := s.fs.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, nil
}

// WriteFile writes content to a file with the given permissions.
func (s *FSStorage) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := s.fs.WriteFile(string(path), content, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Exists reports whether a file or directory exists at path.
func (s *FSStorage) Exists(path m.Path) bool {
	ok, err := s.fs.Exists(string(path))

	return err == nil && ok
}

// IsDir reports whether path exists and is a directory.
func (s *FSStorage) IsDir(path m.Path) bool {
	ok, err := s.fs.DirExists(string(path))

	return err == nil && ok
}

// ListDir returns the entry names of a directory.
func (s *FSStorage) ListDir(path m.Path) ([]string, error) {
	infos, err := s.fs.ReadDir(string(path))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	return names, nil
}
