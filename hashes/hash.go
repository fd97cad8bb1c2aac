// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashes

import (
	"encoding/hex"
	"fmt"
)

const (
	// Hash160Size is the number of bytes in a Hash160.
	Hash160Size = 20

	// Hash32Size is the number of bytes in a Hash32.
	Hash32Size = 4
)

// Hash160 is a 20-byte digest such as the result of Hash160B applied to a
// serialized public key.
type Hash160 [Hash160Size]byte

// Hash32 is a 4-byte truncated digest.  It is used as the checksum of
// Base58Check encoded payloads.
type Hash32 [Hash32Size]byte

// setBytes copies src into dst after ensuring both are the same length.  It
// is shared by all of the fixed-size hash types.
func setBytes(dst, src []byte) error {
	if len(src) != len(dst) {
		str := fmt.Sprintf("invalid hash length of %d, want %d", len(src),
			len(dst))
		return makeError(ErrInvalidLength, str)
	}
	copy(dst, src)
	return nil
}

// decodeHex decodes the hex string s into dst.  The decoded string must be
// exactly the length of dst.  Nothing is truncated or padded.
func decodeHex(dst []byte, s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("malformed hash string %q: %v", s, err)
		return makeError(ErrMalformedHex, str)
	}
	return setBytes(dst, b)
}

// String returns the Hash160 as a lowercase hexadecimal string.
func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the bytes which represent the hash.
func (h Hash160) Bytes() []byte {
	b := make([]byte, Hash160Size)
	copy(b, h[:])
	return b
}

// IsEqual returns true if target is the same as the hash.
func (h *Hash160) IsEqual(target *Hash160) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHash160 returns a new Hash160 from a byte slice.  An error is returned if
// the number of bytes passed in is not Hash160Size.
func NewHash160(b []byte) (Hash160, error) {
	var h Hash160
	if err := setBytes(h[:], b); err != nil {
		return Hash160{}, err
	}
	return h, nil
}

// NewHash160FromStr creates a Hash160 from a hex string.  The string must
// decode to exactly Hash160Size bytes.
func NewHash160FromStr(s string) (Hash160, error) {
	var h Hash160
	if err := decodeHex(h[:], s); err != nil {
		return Hash160{}, err
	}
	return h, nil
}

// String returns the Hash32 as a lowercase hexadecimal string.
func (h Hash32) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the bytes which represent the hash.
func (h Hash32) Bytes() []byte {
	b := make([]byte, Hash32Size)
	copy(b, h[:])
	return b
}

// IsEqual returns true if target is the same as the hash.
func (h *Hash32) IsEqual(target *Hash32) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHash32 returns a new Hash32 from a byte slice.  An error is returned if
// the number of bytes passed in is not Hash32Size.
func NewHash32(b []byte) (Hash32, error) {
	var h Hash32
	if err := setBytes(h[:], b); err != nil {
		return Hash32{}, err
	}
	return h, nil
}

// NewHash32FromStr creates a Hash32 from a hex string.  The string must decode
// to exactly Hash32Size bytes.
func NewHash32FromStr(s string) (Hash32, error) {
	var h Hash32
	if err := decodeHex(h[:], s); err != nil {
		return Hash32{}, err
	}
	return h, nil
}
