package themeutil

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jmigpin/squidl/util/uiutil/widget"
	"github.com/pkg/errors"
)

// Reloads a theme file when it changes. The callback runs on the watcher goroutine.
type Watcher struct {
	w        *fsnotify.Watcher
	filename string
	base     *widget.Theme
	fn       func(*widget.Theme, error)
	done     chan struct{}
}

// Watches the file directory, so editors that replace the file are also noticed.
func Watch(filename string, base *widget.Theme, fn func(*widget.Theme, error)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "theme watch")
	}
	filename = filepath.Clean(filename)
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, errors.Wrap(err, "theme watch")
	}
	tw := &Watcher{
		w:        w,
		filename: filename,
		base:     base,
		fn:       fn,
		done:     make(chan struct{}),
	}
	go tw.eventLoop()
	return tw, nil
}

// Waits for the watcher goroutine to return.
func (tw *Watcher) Close() error {
	err := tw.w.Close() // closes the events/errors chans
	<-tw.done
	return err
}

func (tw *Watcher) eventLoop() {
	defer close(tw.done)
	for {
		select {
		case ev, ok := <-tw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != tw.filename {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			tw.fn(Load(tw.filename, tw.base))
		case err, ok := <-tw.w.Errors:
			if !ok {
				return
			}
			tw.fn(nil, err)
		}
	}
}
