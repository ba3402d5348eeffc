// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"sync"
)

// Shared - a dictionary that can be used from several go routines
// and replaced while in use
//
// the backends themselves are not thread safe, so every access goes
// through the lock; lookups take the read lock
type Shared struct {
	sync.RWMutex
	d        Dictionary
	replaced []func()
}

// NewShared - wrap a dictionary
func NewShared(d Dictionary) *Shared {
	return &Shared{
		d: d,
	}
}

// Add - add a word under the write lock
func (s *Shared) Add(word string) error {
	s.Lock()
	defer s.Unlock()
	return s.d.Add(word)
}

// Contains - look up a word under the read lock
func (s *Shared) Contains(word string) bool {
	s.RLock()
	defer s.RUnlock()
	return s.d.Contains(word)
}

// Suggest - suggestions under the read lock
func (s *Shared) Suggest(word string, count int) []string {
	s.RLock()
	defer s.RUnlock()
	return s.d.Suggest(word, count)
}

// Size - number of words in the current dictionary
func (s *Shared) Size() int {
	s.RLock()
	defer s.RUnlock()
	return s.d.Size()
}

// OnReplace - register a function to run after each swap, while the
// write lock is still held so no lookup can see the new words first
func (s *Shared) OnReplace(f func()) {
	s.Lock()
	s.replaced = append(s.replaced, f)
	s.Unlock()
}

// Replace - swap in a different dictionary
func (s *Shared) Replace(d Dictionary) {
	s.Lock()
	defer s.Unlock()
	s.d = d
	for _, f := range s.replaced {
		f()
	}
}

// Reload - build a new dictionary without holding the lock, then
// swap it in; on error the current dictionary is kept
func (s *Shared) Reload(build func() (Dictionary, error)) error {
	d, err := build()
	if nil != err {
		return err
	}
	s.Replace(d)
	return nil
}
