package i18n

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog whenever a file in the locale directory is
// written, created, or removed. It blocks until ctx is cancelled.
func (c *Catalog) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(c.dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if err := c.Reload(); err != nil {
				log.Printf("Locale reload failed: %v", err)
				continue
			}
			log.Printf("Locale catalogs reloaded after change to %s", event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Locale watcher error: %v", err)
		}
	}
}
