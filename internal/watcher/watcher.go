// Package watcher runs the clipboard poll loop: classify, normalize, dedup,
// fetch title, record, write back, persist.
package watcher

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/runnerr0/unshorts/internal/clip"
	"github.com/runnerr0/unshorts/internal/history"
	"github.com/runnerr0/unshorts/internal/stats"
	"github.com/runnerr0/unshorts/internal/youtube"
)

// TitleFetcher resolves a page title for a URL, best-effort.
type TitleFetcher interface {
	Title(ctx context.Context, url string) string
}

// Watcher polls the clipboard on a fixed interval and runs the conversion
// pipeline for each new YouTube link it sees. Everything runs on a single
// goroutine; the only blocking point is the title fetch, which is bounded by
// the fetcher's timeout.
type Watcher struct {
	clipboard clip.Clipboard
	store     history.Store
	fetcher   TitleFetcher
	statsPath string
	interval  time.Duration
	log       *zap.SugaredLogger

	// lastWritten is the URL this watcher last wrote back to the
	// clipboard, so its own rewrite is not reprocessed on the next tick.
	lastWritten string

	now func() time.Time
}

// New creates a Watcher. A nil logger disables logging.
func New(clipboard clip.Clipboard, store history.Store, fetcher TitleFetcher, statsPath string, interval time.Duration, log *zap.SugaredLogger) *Watcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{
		clipboard: clipboard,
		store:     store,
		fetcher:   fetcher,
		statsPath: statsPath,
		interval:  interval,
		log:       log,
		now:       time.Now,
	}
}

// Run polls until ctx is canceled. No tick failure stops the loop.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Infow("watcher started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick runs the pipeline once for the current clipboard content. Every step
// is best-effort: a failed clipboard read, fetch, or persist is logged and
// the tick ends, never the process.
func (w *Watcher) Tick(ctx context.Context) {
	text, err := w.clipboard.ReadText()
	if err != nil {
		w.log.Debugw("clipboard read failed", "error", err)
		return
	}
	text = strings.TrimSpace(text)

	// Don't reprocess our own rewrite.
	if text == "" || text == w.lastWritten {
		return
	}

	linkType := youtube.Classify(text)
	if linkType == youtube.LinkNone {
		return
	}

	converted := youtube.Normalize(text)

	// Silent dedup: already-recorded URLs are skipped with no feedback.
	if w.store.Contains(converted) {
		return
	}

	title := w.fetcher.Title(ctx, converted)

	w.store.Append(history.Record{
		Title: title,
		URL:   converted,
		Date:  w.now().Format(history.DateFormat),
		Type:  string(linkType),
	})
	w.log.Infow("converted", "url", converted, "title", title, "type", linkType)

	w.lastWritten = converted
	if err := w.clipboard.WriteText(converted); err != nil {
		w.log.Warnw("clipboard write failed", "error", err)
	}

	if err := w.store.Persist(); err != nil {
		w.log.Errorw("history persist failed", "error", err)
	}
	if err := stats.WriteFile(w.statsPath, w.store.Records()); err != nil {
		w.log.Errorw("stats write failed", "error", err)
	}
}
