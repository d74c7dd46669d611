package settings

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watch reloads the store when the settings file changes on disk and
// invokes onReload after each reload. It watches the parent directory
// so edits that replace the file (editors, cloud sync) are seen.
// The returned stop function ends the watch.
func (s *Store) Watch(onReload func()) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close settings watcher")
		}
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				log.Debug().Str("path", s.path).Msg("settings file changed on disk, reloading")
				s.Load()
				if onReload != nil {
					onReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("settings watcher error")
			}
		}
	}()

	return func() {
		close(done)
		if err := watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close settings watcher")
		}
	}, nil
}
