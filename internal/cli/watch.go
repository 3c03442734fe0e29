package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/runnerr0/unshorts/internal/clip"
	"github.com/runnerr0/unshorts/internal/fetch"
	"github.com/runnerr0/unshorts/internal/watcher"
)

// Execute implements the go-flags Commander interface for WatchCommand.
// It runs the clipboard poll loop in the foreground until interrupted.
func (c *WatchCommand) Execute(args []string) error {
	store, cfg, err := openStore(c.globals)
	if err != nil {
		return err
	}
	statsPath, err := cfg.StatsPath()
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.Watcher.PollIntervalSeconds) * time.Second
	if c.Interval > 0 {
		interval = time.Duration(c.Interval) * time.Second
	}

	level := cfg.Logging.Level
	if c.LogLevel != "" {
		level = c.LogLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	fetcher := fetch.NewClient(
		fetch.WithTimeout(time.Duration(cfg.Fetcher.TimeoutSeconds)*time.Second),
		fetch.WithUserAgent(cfg.Fetcher.UserAgent),
		fetch.WithRateLimit(cfg.Fetcher.RequestsPerMinute),
	)

	w := watcher.New(clip.System(), store, fetcher, statsPath, interval, logger.Sugar())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newLogger builds a zap logger at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
