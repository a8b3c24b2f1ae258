// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read a Lua configuration file into a
// structure
//
// The file is executed as a Lua chunk and the table it returns is
// mapped onto the fields of the structure using "gluamapper" tags
package configuration
