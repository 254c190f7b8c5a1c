package swfimg

import (
	"io"
	"log/slog"
	"runtime"
)

const (
	defaultQuality  = 100
	defaultMaxWidth = 1024
)

type config struct {
	quality     int
	maxWidth    int
	concurrency int
	limits      Limits
	logger      *slog.Logger
}

type Option func(*config)

func defaultConfig() config {
	return config{
		quality:     defaultQuality,
		maxWidth:    defaultMaxWidth,
		concurrency: runtime.GOMAXPROCS(0),
		limits:      defaultLimits(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithQuality sets the re-encode quality, clamped to [0, 100]. For JPEG
// output this is the lossy quality; for PNG it selects compression
// effort only. Default 100.
func WithQuality(q int) Option {
	return func(c *config) {
		if q < 0 {
			q = 0
		}
		if q > 100 {
			q = 100
		}
		c.quality = q
	}
}

// WithMaxWidth caps output image width in pixels. Wider images are
// downscaled preserving aspect ratio; images at or under the cap keep
// their original size. Default 1024.
func WithMaxWidth(w int) Option {
	return func(c *config) {
		if w > 0 {
			c.maxWidth = w
		}
	}
}

// WithConcurrency bounds the recompression worker pool. Returned order
// is tag-stream order regardless of the setting; 1 recompresses strictly
// sequentially. Default GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLimits overrides the decoder's memory caps. Zero fields keep
// their defaults.
func WithLimits(l Limits) Option {
	return func(c *config) {
		c.limits = l.withDefaults()
	}
}

// WithLogger sets a logger for per-tag skip diagnostics. Skips are
// always reported in the returned outcomes; by default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
