package watcher

import "github.com/fsnotify/fsnotify"

// fsnotifyWrite builds a write event for white-box tests.
func fsnotifyWrite(path string) fsnotify.Event {
	return fsnotify.Event{Name: path, Op: fsnotify.Write}
}
