// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dragkit/dragkit/base/errors"
)

// SaveOptions saves the serializable option fields to the given
// filename, encoded per its extension: YAML for .yaml and .yml, JSON
// for .json, and TOML otherwise. Callbacks, bounds descriptors,
// explicit target nodes, and the external position are runtime state
// and are skipped.
func SaveOptions(opts *Options, filename string) error {
	var b []byte
	var err error
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(opts)
	case ".json":
		b, err = json.MarshalIndent(opts, "", "  ")
	default:
		b, err = toml.Marshal(opts)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// OpenOptions returns options read from the given filename, decoded
// per its extension as in [SaveOptions], applied on top of the
// [NewOptions] defaults.
func OpenOptions(filename string) (*Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	opts := NewOptions()
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, opts)
	case ".json":
		err = json.Unmarshal(b, opts)
	default:
		err = toml.Unmarshal(b, opts)
	}
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// OptionsWatcher monitors a saved options file and reloads it whenever
// it changes on disk. See [WatchOptions].
type OptionsWatcher struct {
	// Filename is the path of the watched options file.
	Filename string

	watcher *fsnotify.Watcher
	done    chan bool
}

// WatchOptions watches the given options file and calls update with
// freshly loaded options each time the file is written or recreated.
// It watches the containing directory, so editors that save by
// replacing the file keep being tracked. The update function is called
// from the watch goroutine. Close the returned watcher to stop.
func WatchOptions(filename string, update func(opts *Options)) (*OptionsWatcher, error) {
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watch.Add(filepath.Dir(filename)); err != nil {
		watch.Close()
		return nil, err
	}
	ow := &OptionsWatcher{Filename: filename, watcher: watch, done: make(chan bool)}
	go func() {
		base := filepath.Base(filename)
		done := ow.done
		for {
			select {
			case <-done:
				return
			case event := <-watch.Events:
				if filepath.Base(event.Name) != base {
					continue
				}
				switch {
				case event.Op&fsnotify.Write == fsnotify.Write ||
					event.Op&fsnotify.Create == fsnotify.Create:
					opts, err := OpenOptions(ow.Filename)
					if err != nil {
						errors.Log(err)
						continue
					}
					update(opts)
				}
			case err := <-watch.Errors:
				_ = err
			}
		}
	}()
	return ow, nil
}

// Close stops watching and releases the underlying watcher. It is safe
// to call multiple times.
func (ow *OptionsWatcher) Close() {
	if ow.watcher != nil {
		ow.watcher.Close()
		ow.watcher = nil
	}
	if ow.done != nil {
		ow.done <- true
		close(ow.done)
		ow.done = nil
	}
}
