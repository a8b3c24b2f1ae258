// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Contract violations in the tree (stale or past-the-end iterators,
// rotations on absent nodes) are not returned, they panic through
// Panic/Panicf after logging to the PANIC channel
package fault
