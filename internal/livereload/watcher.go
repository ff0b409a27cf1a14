package livereload

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change before
// onChange runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports batches of changed files under a set of roots.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	onChange func(names []string)

	dirs  []string
	files map[string]bool
}

// NewWatcher watches each root. A directory root is watched recursively; a
// file root (a SQLite catalog, say) is watched through its parent directory.
func NewWatcher(roots []string, debounce time.Duration, onChange func(names []string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	w := &Watcher{
		fs:       fw,
		debounce: debounce,
		onChange: onChange,
		files:    make(map[string]bool),
	}

	for _, root := range roots {
		root = filepath.Clean(root)
		info, err := os.Stat(root)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", root, err)
		}
		if !info.IsDir() {
			w.files[root] = true
			if err := fw.Add(filepath.Dir(root)); err != nil {
				fw.Close()
				return nil, fmt.Errorf("watching %s: %w", root, err)
			}
			continue
		}
		w.dirs = append(w.dirs, root)
		if err := w.addTree(root); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.fs.Add(path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}
		}
		return nil
	})
}

// relevant reports whether name is a watched file or lies under a watched
// directory.
func (w *Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	if w.files[name] {
		return true
	}
	for _, dir := range w.dirs {
		if name == dir || strings.HasPrefix(name, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run delivers debounced change batches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]bool)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !w.relevant(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						log.Printf("livereload: %v", err)
					}
				}
			}
			pending[ev.Name] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			clear(pending)
			w.onChange(names)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Printf("livereload: watcher error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
