// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package keypair decodes WIF secret key strings into secp256k1 key pairs.

A decoded secret key is 37 bytes for a key whose public key is serialized in
the uncompressed format and 38 bytes for one whose public key is serialized in
the compressed format:

	1-byte network prefix || 32-byte private key || [0x01] || 4-byte checksum

FromSecretKeyStr relies on the length alone.  It extracts the private key and
derives the public key without verifying the prefix, marker or checksum.
DecodeWIF verifies all of them against an expected network.

The compression format recorded in a KeyPair determines how PubKeyBytes
serializes the public key and therefore which address the pair maps to.
*/
package keypair
