// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/spellcheck/fault"
)

// time without further changes before the file is reloaded, writers
// usually truncate first and fill the file with several writes
const settleDelay = 250 * time.Millisecond

// Watcher - calls a reload function whenever a word list file changes
//
// the directory is watched rather than the file so that editors that
// replace the file by renaming are also seen
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	reload   func() error
	shutdown chan struct{}
	finished chan struct{}
}

// NewWatcher - prepare to watch a file, it must already exist
func NewWatcher(fileName string, log *logger.L, reload func() error) (*Watcher, error) {
	if nil == log || nil == reload {
		return nil, fault.ErrNotInitialised
	}

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		reload:   reload,
	}, nil
}

// Start - begin watching in a background go routine
func (w *Watcher) Start() error {
	if nil != w.shutdown {
		return fault.ErrAlreadyInitialised
	}

	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	w.shutdown = make(chan struct{})
	w.finished = make(chan struct{})
	go w.run()

	w.log.Infof("watching: %q", w.filePath)
	return nil
}

// Stop - end watching and wait for the go routine to exit
func (w *Watcher) Stop() error {
	if nil == w.shutdown {
		return fault.ErrNotInitialised
	}
	close(w.shutdown)
	<-w.finished
	w.shutdown = nil
	return w.watcher.Close()
}

func (w *Watcher) run() {
	defer close(w.finished)

	// nil while no reload is pending
	var settled <-chan time.Time

	for {
		select {
		case <-w.shutdown:
			return

		case <-settled:
			settled = nil
			if err := w.reload(); nil != err {
				w.log.Errorf("reload: %q  error: %s", w.filePath, err)
			} else {
				w.log.Infof("reloaded: %q", w.filePath)
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if fileRemoved(event) {
				w.log.Warnf("file: %q removed, keeping current words", w.filePath)
				settled = nil
				continue
			}
			if fileChanged(event) {
				// restart the delay on every change
				settled = time.After(settleDelay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func fileRemoved(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Remove|fsnotify.Rename) != 0
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod) != 0
}
