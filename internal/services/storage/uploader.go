package storage

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/phambaophuc/watermark-manager/pkg/utils"
	"go.uber.org/zap"
)

// Upload writes name through a temporary sibling file and renames it into
// place once write succeeds. On failure nothing is left behind.
func (s *StorageService) Upload(ctx context.Context, name string, write func(w io.Writer) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := s.Path(name)
	tmpPath := utils.TempFilename(target)

	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}

	if err := writeAndClose(file, write); err != nil {
		s.removeTemp(tmpPath)
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		s.removeTemp(tmpPath)
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}

	s.logger.Debug("File saved", zap.String("path", target))
	return target, nil
}

func writeAndClose(file *os.File, write func(w io.Writer) error) error {
	buffered := bufio.NewWriter(file)
	if err := write(buffered); err != nil {
		file.Close()
		return err
	}
	if err := buffered.Flush(); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (s *StorageService) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove temporary file", zap.String("path", path), zap.Error(err))
	}
}
