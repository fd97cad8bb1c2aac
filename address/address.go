// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/btcaddr/hashes"
)

const (
	// payloadLen is the number of bytes covered by the checksum: the version
	// byte followed by the hash.
	payloadLen = 1 + hashes.Hash160Size

	// SerializedLen is the number of bytes in a serialized address: the
	// payload followed by the checksum.
	SerializedLen = payloadLen + hashes.Hash32Size
)

// Address is a pay-to-pubkey-hash or pay-to-script-hash address for a specific
// network.
//
// Addresses are immutable values and are comparable with ==.  The zero value
// is the mainnet P2PKH address of the all-zero hash.
type Address struct {
	format Format
	net    Network
	hash   hashes.Hash160
}

// Checksum returns the first four bytes of sha256(sha256(data)).
func Checksum(data []byte) hashes.Hash32 {
	var cksum hashes.Hash32
	copy(cksum[:], hashes.DoubleHashB(data))
	return cksum
}

// New returns an address that wraps an already computed hash for the given
// network and format.
func New(hash hashes.Hash160, net Network, format Format) (Address, error) {
	if _, ok := VersionFor(net, format); !ok {
		str := fmt.Sprintf("unsupported network %v and format %v", net,
			format)
		return Address{}, makeError(ErrInvalidAddress, str)
	}
	return Address{format: format, net: net, hash: hash}, nil
}

// FromPublicKey returns the address for the given serialized public key.  The
// key is hashed with ripemd160(sha256(pubKey)) and the result is wrapped with
// the version byte for the network and format and a checksum.
//
// The serialized form is decoded again before it is returned, so encoding and
// decoding are guaranteed to agree on the layout.
func FromPublicKey(pubKey []byte, net Network, format Format) (Address, error) {
	version, ok := VersionFor(net, format)
	if !ok {
		str := fmt.Sprintf("unsupported network %v and format %v", net,
			format)
		return Address{}, makeError(ErrInvalidAddress, str)
	}

	var b [SerializedLen]byte
	b[0] = version
	copy(b[1:payloadLen], hashes.Hash160B(pubKey))
	cksum := Checksum(b[:payloadLen])
	copy(b[payloadLen:], cksum[:])

	return FromBytes(b[:])
}

// FromBytes decodes a serialized address.  The serialization must be
// SerializedLen bytes consisting of the version byte, the 20-byte hash and the
// 4-byte checksum of the preceding bytes.
//
// ErrInvalidAddress is returned for the wrong length or an unknown version
// byte and ErrInvalidChecksum is returned when the checksum does not match.
func FromBytes(b []byte) (Address, error) {
	if len(b) != SerializedLen {
		str := fmt.Sprintf("address is %d bytes instead of %d", len(b),
			SerializedLen)
		return Address{}, makeError(ErrInvalidAddress, str)
	}

	// The checksum does not protect secret data, so a constant time
	// comparison is not needed.
	cksum := Checksum(b[:payloadLen])
	if !cksum.IsEqual((*hashes.Hash32)(b[payloadLen:])) {
		str := fmt.Sprintf("address checksum %x does not match calculated "+
			"checksum %x", b[payloadLen:], cksum[:])
		return Address{}, makeError(ErrInvalidChecksum, str)
	}

	net, format, ok := LookupVersion(b[0])
	if !ok {
		str := fmt.Sprintf("unknown address version %d", b[0])
		return Address{}, makeError(ErrInvalidAddress, str)
	}

	var hash hashes.Hash160
	copy(hash[:], b[1:payloadLen])
	return Address{format: format, net: net, hash: hash}, nil
}

// Decode decodes the Base58Check string encoding of an address.
func Decode(addr string) (Address, error) {
	// The decoder returns an empty slice when the string contains characters
	// outside of the alphabet.
	decoded := base58.Decode(addr)
	if len(decoded) == 0 {
		str := fmt.Sprintf("address %q is not valid base58", addr)
		return Address{}, makeError(ErrInvalidAddress, str)
	}
	return FromBytes(decoded)
}

// Network returns the network the address is intended for.
func (a Address) Network() Network {
	return a.net
}

// Format returns the format of the address.
func (a Address) Format() Format {
	return a.format
}

// Hash returns the hash carried by the address.  For P2PKH addresses it is
// the hash of a serialized public key and for P2SH addresses it is the hash of
// a script.
func (a Address) Hash() hashes.Hash160 {
	return a.hash
}

// Version returns the version byte that prefixes the serialized address.
func (a Address) Version() byte {
	// Addresses can only be created with a supported network and format.
	version, _ := VersionFor(a.net, a.format)
	return version
}

// IsForNet returns whether or not the address is associated with the passed
// network.
func (a Address) IsForNet(net Network) bool {
	return a.net == net
}

// Bytes returns the serialized address.  The checksum is recomputed from the
// version and hash on every call.
func (a Address) Bytes() [SerializedLen]byte {
	var b [SerializedLen]byte
	b[0] = a.Version()
	copy(b[1:payloadLen], a.hash[:])
	cksum := Checksum(b[:payloadLen])
	copy(b[payloadLen:], cksum[:])
	return b
}

// String returns the Base58Check encoding of the address.
func (a Address) String() string {
	b := a.Bytes()
	return base58.Encode(b[:])
}
