// Package credential reads the completion API key from a file and reports
// when the file changes.
package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/iw2rmb/ghostwrite/internal/logging"
)

// DefaultDebounce coalesces the burst of events an editor produces when it
// saves a file.
const DefaultDebounce = 75 * time.Millisecond

var ErrEmptyKey = errors.New("api key file is empty")

// RotatedMsg carries a key that differs from the previously seen one.
type RotatedMsg struct {
	Key string
}

// ReadKeyFile returns the trimmed first line of path.
func ReadKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read api key: %w", err)
	}
	key, _, _ := strings.Cut(string(data), "\n")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyKey)
	}
	return key, nil
}

type Options struct {
	Debounce time.Duration
	Logger   logging.Logger
}

// Watcher follows one key file. The parent directory is watched so that
// atomic replace-by-rename saves are seen too.
type Watcher struct {
	path string
	opt  Options
	fw   *fsnotify.Watcher

	out  chan RotatedMsg
	done chan struct{}

	closeOnce sync.Once
	closeErr  error
	wg        sync.WaitGroup
}

// Watch starts following path. current is the key already in use; it is
// not reported again.
func Watch(path, current string, opt Options) (*Watcher, error) {
	if opt.Debounce <= 0 {
		opt.Debounce = DefaultDebounce
	}
	if opt.Logger == nil {
		opt.Logger = logging.Nop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch api key: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch api key: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch api key: %w", err)
	}

	w := &Watcher{
		path: abs,
		opt:  opt,
		fw:   fw,
		out:  make(chan RotatedMsg, 1),
		done: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop(current)
	return w, nil
}

// Wait blocks until the next rotation. After Close it yields nil.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.out:
			return msg
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fw.Close()
		w.wg.Wait()
	})
	return w.closeErr
}

func (w *Watcher) loop(last string) {
	defer w.wg.Done()
	ctx := context.Background()
	log := w.opt.Logger.With("path", w.path)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.opt.Debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn(ctx, "api key watch error", "err", err)

		case <-timer.C:
			key, err := ReadKeyFile(w.path)
			if err != nil {
				// Mid-rewrite or removed; keep the old key until a
				// readable one shows up.
				log.Debug(ctx, "api key unreadable", "err", err)
				continue
			}
			if key == last {
				continue
			}
			last = key
			w.publish(RotatedMsg{Key: key})
		}
	}
}

// publish keeps only the newest undelivered rotation.
func (w *Watcher) publish(msg RotatedMsg) {
	for {
		select {
		case w.out <- msg:
			return
		default:
		}
		select {
		case <-w.out:
		default:
		}
	}
}
