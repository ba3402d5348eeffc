// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/spellcheck/fault"
)

// longest line accepted from a word list
const maximumLineLength = 64 * 1024

// Load - add one word per line from r
//
// surrounding white space is removed, blank lines are skipped and
// repeated words are counted but not treated as an error
func Load(d Dictionary, r io.Reader) (added int, duplicates int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maximumLineLength)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if "" == word {
			continue
		}
		err := d.Add(word)
		switch {
		case nil == err:
			added += 1
		case fault.IsErrExists(err):
			duplicates += 1
		default:
			return added, duplicates, err
		}
	}
	return added, duplicates, scanner.Err()
}

// LoadFile - Load from a named file
func LoadFile(d Dictionary, fileName string) (added int, duplicates int, err error) {
	f, err := os.Open(fileName)
	if nil != err {
		return 0, 0, err
	}
	defer f.Close()

	return Load(d, f)
}

// Open - create a dictionary of the given backend and fill it from a
// file
//
// a file without any words gives fault.ErrEmptyDictionary, this also
// stops a reload from a file caught while it is being rewritten
func Open(backend string, fileName string) (Dictionary, int, error) {
	d, err := New(backend)
	if nil != err {
		return nil, 0, err
	}
	_, duplicates, err := LoadFile(d, fileName)
	if nil != err {
		return nil, 0, err
	}
	if 0 == d.Size() {
		return nil, duplicates, fault.ErrEmptyDictionary
	}
	return d, duplicates, nil
}
