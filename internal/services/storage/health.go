package storage

import (
	"fmt"
	"os"
	"sort"

	"github.com/phambaophuc/watermark-manager/pkg/utils"
)

// HealthCheck checks the working directory is usable
func (s *StorageService) HealthCheck() map[string]string {
	status := make(map[string]string)

	info, err := os.Stat(s.root)
	switch {
	case err != nil:
		status["image_dir"] = "unhealthy: " + err.Error()
	case !info.IsDir():
		status["image_dir"] = fmt.Sprintf("unhealthy: %s is not a directory", s.root)
	default:
		status["image_dir"] = "healthy"
	}

	return status
}

// ListImages returns the supported image files in the working directory, sorted by name.
func (s *StorageService) ListImages() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || utils.IsTempFilename(entry.Name()) {
			continue
		}
		if utils.IsSupportedImage(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
