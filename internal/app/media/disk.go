package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DiskStore writes artifacts under a local media root
type DiskStore struct {
	root   string
	logger *zap.Logger
}

// NewDiskStore creates the media root subdirectories if needed
func NewDiskStore(root string, logger *zap.Logger) (*DiskStore, error) {
	for _, dir := range []string{uploadsDir, responsesDir} {
		path := filepath.Join(root, dir)
		if err := os.MkdirAll(path, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create media directory %s: %w", path, err)
		}
	}
	return &DiskStore{root: root, logger: logger}, nil
}

func (s *DiskStore) SaveUpload(_ context.Context, data []byte, originalName string) (string, error) {
	name := timestampName(uploadExt(originalName))
	return s.write(filepath.Join(s.root, uploadsDir, name), data)
}

func (s *DiskStore) SaveResponse(_ context.Context, data []byte, ext string) (string, error) {
	name := timestampName(ext)
	return s.write(filepath.Join(s.root, responsesDir, name), data)
}

func (s *DiskStore) write(path string, data []byte) (string, error) {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	s.logger.Debug("artifact saved", zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}
