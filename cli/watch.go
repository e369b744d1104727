package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
)

type WatchCmd struct{}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file itself. Atomic saves
	// replace the file, which would silently drop a file-level watch.
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printInfof(ctx.Stdout, "Watching %s", pathStyle.Render(s.path))
	if err := renderSummary(ctx.Stdout, s); err != nil {
		return err
	}

	// Debounce timer - editors often write files in multiple steps
	const debounceDelay = 100 * time.Millisecond
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	rerender := make(chan struct{}, 1)

	for {
		select {
		case <-runCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				select {
				case rerender <- struct{}{}:
				default:
				}
			})

		case <-rerender:
			if err := s.reload(); err != nil {
				printError(ctx.Stderr, fmt.Sprintf("failed to reload journal: %v", err))
				continue
			}
			_, _ = fmt.Fprintln(ctx.Stdout)
			printInfof(ctx.Stdout, "Journal changed at %s", time.Now().Format("15:04:05"))
			if err := renderSummary(ctx.Stdout, s); err != nil {
				return err
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("file watcher error: %v", watchErr))
		}
	}
}
