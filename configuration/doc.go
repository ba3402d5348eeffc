// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - run a Lua configuration file and map the
// table it returns onto a Go structure
//
// fields are matched using the "gluamapper" struct tag, e.g.
//
//	type Configuration struct {
//		DataDirectory string `gluamapper:"data_directory"`
//	}
//
// the Lua file sees its own name as arg[0] so it can locate files
// relative to itself
package configuration
