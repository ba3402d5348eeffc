// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package corrector - read words one per line, replace the misspelt
// ones with a suggestion from a dictionary and write the result
package corrector
