package watcher

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/marykwonn/Project-Texas/internal/util"
)

// Event reports a change to one of the watched files.
type Event struct {
	Path      string
	Operation string
}

// FileWatcher watches individual input files. It watches their parent
// directories so that editors that replace files on save are still seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	events  chan Event
	closing chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewFileWatcher(paths []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher: watcher,
		files:   make(map[string]struct{}, len(paths)),
		events:  make(chan Event, 100),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		fw.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go fw.processEvents()
	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	defer close(fw.done)
	defer close(fw.events)

	for {
		select {
		case <-fw.closing:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if _, watched := fw.files[filepath.Clean(event.Name)]; !watched {
				continue
			}
			select {
			case fw.events <- Event{Path: event.Name, Operation: event.Op.String()}:
			case <-fw.closing:
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("File watch error: " + err.Error())
		}
	}
}

// Events delivers changes to watched files. It is closed by Close.
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

// Close stops watching and waits for the event loop to exit.
func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.closing)
		err = fw.watcher.Close()
		<-fw.done
	})
	return err
}

// ChangeDetector filters out events that leave a file's content unchanged,
// such as the several writes an editor issues for one save.
type ChangeDetector struct {
	mu   sync.Mutex
	seen map[string]util.Fingerprint
}

func NewChangeDetector() *ChangeDetector {
	return &ChangeDetector{seen: make(map[string]util.Fingerprint)}
}

// Changed reports whether path differs from the last time it was checked.
// An unreadable file counts as unchanged.
func (d *ChangeDetector) Changed(path string) bool {
	fp, err := util.FingerprintFile(path)
	if err != nil {
		util.LogDebugf("Cannot fingerprint %s: %v", path, err)
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.seen[path]; ok && prev == fp {
		return false
	}
	d.seen[path] = fp
	return true
}
