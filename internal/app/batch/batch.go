package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"cinevoice/internal/app/model"
	"cinevoice/internal/app/repository"
	"cinevoice/internal/app/speech"
)

// Runner transcribes every audio file in a directory and records results
type Runner struct {
	transcriber speech.Transcriber
	dao         repository.ExchangeDAO
	progress    *ProgressManager
	logger      *zap.Logger
}

// Summary reports one batch run
type Summary struct {
	Processed int
	Failed    int
}

func NewRunner(transcriber speech.Transcriber, dao repository.ExchangeDAO, progress *ProgressManager, logger *zap.Logger) *Runner {
	return &Runner{
		transcriber: transcriber,
		dao:         dao,
		progress:    progress,
		logger:      logger,
	}
}

// CollectAudioFiles lists supported audio files oldest first
func CollectAudioFiles(inputDir string) ([]model.FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var fileInfos []model.FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".mp3", ".wav", ".m4a", ".ogg", ".flac":
		default:
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(inputDir, entry.Name()),
			Name:     entry.Name(),
			ModTime:  info.ModTime(),
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.Before(fileInfos[j].ModTime)
	})

	return fileInfos, nil
}

// Run processes inputDir sequentially. Per-file failures are recorded and
// counted but do not stop the run.
func (r *Runner) Run(ctx context.Context, inputDir string) (*Summary, error) {
	files, err := CollectAudioFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &Summary{}, nil
	}

	bar := r.progress.NewBar(int64(len(files)), "transcribing")
	summary := &Summary{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		start := time.Now()
		transcript, err := r.transcriber.Transcript(ctx, file.FullPath)

		exchange := &model.Exchange{
			CreatedAt:  time.Now().UTC(),
			UploadPath: file.FullPath,
			Provider:   r.transcriber.Name(),
			LatencyMs:  time.Since(start).Milliseconds(),
		}

		if err != nil {
			summary.Failed++
			exchange.ErrorMessage = err.Error()
			r.logger.Warn("transcription failed",
				zap.String("file", file.Name), zap.Error(err))
		} else {
			summary.Processed++
			exchange.Transcript = transcript
		}

		if _, err := r.dao.Record(exchange); err != nil {
			r.logger.Error("failed to record exchange",
				zap.String("file", file.Name), zap.Error(err))
		}

		bar.Increment()
	}

	r.progress.Wait()
	return summary, nil
}
