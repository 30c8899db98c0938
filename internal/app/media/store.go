package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store archives uploaded audio and synthesized responses.
// Artifacts are write-once: nothing in this service reads them back.
type Store interface {
	// SaveUpload stores caller audio and returns the artifact location.
	SaveUpload(ctx context.Context, data []byte, originalName string) (string, error)

	// SaveResponse stores synthesized audio and returns the artifact location.
	SaveResponse(ctx context.Context, data []byte, ext string) (string, error)
}

const (
	uploadsDir   = "uploads"
	responsesDir = "responses"

	timestampLayout = "20060102_150405.000"
)

// timestampName builds a collision-safe artifact name. Two uploads inside
// the same millisecond are disambiguated by a short random suffix.
func timestampName(ext string) string {
	if ext == "" {
		ext = ".mp3"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s%s", time.Now().Format(timestampLayout), suffix, ext)
}

// uploadExt keeps the caller's extension when it looks sane
func uploadExt(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".mp3", ".wav", ".m4a", ".ogg", ".flac", ".webm":
		return ext
	default:
		return ".mp3"
	}
}
