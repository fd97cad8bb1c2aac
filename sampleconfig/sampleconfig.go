// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	_ "embed"
)

// sampleBtcaddrConf is a string containing the commented example config for
// btcaddr.
//
//go:embed sample-btcaddr.conf
var sampleBtcaddrConf string

// Btcaddr returns a string containing the commented example config for
// btcaddr.
func Btcaddr() string {
	return sampleBtcaddrConf
}
