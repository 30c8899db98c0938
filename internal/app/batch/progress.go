package batch

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls batch progress rendering
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// ProgressManager wraps the mpb container. Disabled progress is a no-op so
// the batch runner never branches on it.
type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// ProgressBar tracks one batch run
type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

// NewBar creates a progress bar for total items
func (m *ProgressManager) NewBar(total int64, name string) *ProgressBar {
	if !m.enabled {
		return &ProgressBar{enabled: false}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bar := m.container.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	return &ProgressBar{bar: bar, enabled: true}
}

func (b *ProgressBar) Increment() {
	if b.enabled {
		b.bar.Increment()
	}
}

// Wait blocks until all bars have completed rendering
func (m *ProgressManager) Wait() {
	if m.enabled {
		m.container.Wait()
	}
}
