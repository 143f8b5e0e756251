package storage

import (
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("file not found")

// StorageService reads and writes images inside a single working directory.
type StorageService struct {
	root   string
	logger *zap.Logger
}

func NewStorageService(root string, logger *zap.Logger) *StorageService {
	return &StorageService{
		root:   root,
		logger: logger,
	}
}

func (s *StorageService) Root() string {
	return s.root
}

// Path resolves a filename relative to the working directory.
func (s *StorageService) Path(name string) string {
	return filepath.Join(s.root, name)
}

// Exists reports whether name is a regular file in the working directory.
func (s *StorageService) Exists(name string) bool {
	if name == "" {
		return false
	}
	info, err := os.Stat(s.Path(name))
	if err != nil {
		return false
	}
	return !info.IsDir()
}
