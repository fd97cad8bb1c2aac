// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package hashes provides the fixed-size hash types and digest functions used
when encoding Bitcoin addresses.

Hash160 holds a 20-byte ripemd160(sha256(data)) digest such as the hash of a
serialized public key or a script.  Hash32 holds the 4-byte checksum that is
appended to Base58Check payloads.  Both are plain byte arrays, so they are
comparable with == and their zero values are all-zero hashes.

Both types are converted to and from lowercase hexadecimal strings.  Strings
that decode to the wrong number of bytes are rejected with ErrInvalidLength
rather than being truncated or padded.
*/
package hashes
