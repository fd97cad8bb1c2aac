// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashes

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// Hash160B calculates the hash ripemd160(sha256(b)).
func Hash160B(b []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(chainhash.HashB(b))
	return hasher.Sum(nil)
}

// Hash160H calculates the hash ripemd160(sha256(b)) and returns the result as
// a Hash160.
func Hash160H(b []byte) Hash160 {
	var h Hash160
	copy(h[:], Hash160B(b))
	return h
}

// DoubleHashB calculates sha256(sha256(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}
