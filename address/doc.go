// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package address implements the Base58Check encoding of Bitcoin
pay-to-pubkey-hash (P2PKH) and pay-to-script-hash (P2SH) addresses.

# Serialization

A serialized address is 25 bytes:

	1-byte version || 20-byte hash || 4-byte checksum

The checksum is the first four bytes of sha256(sha256(version || hash)).  The
version byte identifies both the network and the address format:

	Network  Format  Version  Leading character
	mainnet  p2pkh   0        1
	mainnet  p2sh    5        3
	testnet  p2pkh   111      m or n
	testnet  p2sh    196      2

# Errors

Decoding distinguishes between input that is structurally invalid
(ErrInvalidAddress) and input that is well formed but has a checksum that does
not match its payload (ErrInvalidChecksum), so callers can report transcription
errors separately.  The hash itself is never interpreted, so an all-zero hash
is a valid address.
*/
package address
