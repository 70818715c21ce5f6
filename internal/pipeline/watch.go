package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce coalesces the bursts of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

// Watch runs reload and Run once, then again every time the file at
// path is written or replaced, until ctx is cancelled. Failures of a
// single run are logged and do not stop the watch.
func (p *Pipeline) Watch(ctx context.Context, path string, reload func() (Request, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place, which drops a watch on the file itself.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	log := p.log.With(zap.String("config", target))
	log.Info("watching for changes")
	p.runOnce(log, reload)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug("config changed", zap.Stringer("op", event.Op))
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			p.runOnce(log, reload)
		}
	}
}

func (p *Pipeline) runOnce(log *zap.Logger, reload func() (Request, error)) {
	req, err := reload()
	if err != nil {
		log.Error("reloading config", zap.Error(err))
		return
	}
	if _, err := p.Run(req); err != nil {
		log.Error("generation failed", zap.Error(err))
	}
}
