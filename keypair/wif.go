// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/btcaddr/address"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// compressMagic is the marker byte that follows the private key scalar in a
// secret key whose public key is serialized in the compressed format.
const compressMagic = 0x01

// wifPrefixes maps networks to the prefix byte of their secret key strings.
var wifPrefixes = [...]struct {
	net    address.Network
	prefix byte
}{
	{address.Mainnet, 0x80},
	{address.Testnet, 0xef},
}

// WIFPrefix returns the prefix byte of secret key strings for the passed
// network.
func WIFPrefix(net address.Network) (byte, bool) {
	for _, p := range wifPrefixes {
		if p.net == net {
			return p.prefix, true
		}
	}
	return 0, false
}

// networkForPrefix returns the network identified by a secret key prefix
// byte.
func networkForPrefix(prefix byte) (address.Network, bool) {
	for _, p := range wifPrefixes {
		if p.prefix == prefix {
			return p.net, true
		}
	}
	return 0, false
}

// NetworkForWIF returns the network identified by the prefix byte of the
// passed secret key string.
func NetworkForWIF(wif string) (address.Network, error) {
	decoded, _, err := decodeSecret(wif)
	if err != nil {
		return 0, err
	}
	defer clear(decoded)

	net, ok := networkForPrefix(decoded[0])
	if !ok {
		str := fmt.Sprintf("unknown secret key prefix %#02x", decoded[0])
		return 0, makeError(ErrWrongNetwork, str)
	}
	return net, nil
}

// DecodeWIF decodes a WIF secret key string which is required to be for the
// passed network.
//
// The string must be the base58 encoding of the following byte sequence:
//
//   - 1 byte to identify the network
//   - 32 bytes of a big-endian, zero-padded private key
//   - 1 optional byte of 0x01 when the public key is compressed
//   - 4 bytes of checksum, which must equal the first four bytes of the double
//     sha256 of every preceding byte
//
// Unlike FromSecretKeyStr, every part of the sequence is verified.
func DecodeWIF(wif string, net address.Network) (*KeyPair, error) {
	decoded, compressed, err := decodeSecret(wif)
	if err != nil {
		return nil, err
	}
	defer clear(decoded)

	payload := decoded[:len(decoded)-4]
	cksum := address.Checksum(payload)
	if !bytes.Equal(cksum[:], decoded[len(payload):]) {
		return nil, makeError(ErrInvalidSecretChecksum, "secret key checksum "+
			"mismatch")
	}

	prefix, ok := WIFPrefix(net)
	if !ok || decoded[0] != prefix {
		str := fmt.Sprintf("secret key prefix %#02x is not for %v",
			decoded[0], net)
		return nil, makeError(ErrWrongNetwork, str)
	}

	scalarEnd := scalarOffset + secp256k1.PrivKeyBytesLen
	if compressed && decoded[scalarEnd] != compressMagic {
		str := fmt.Sprintf("compression marker %#02x instead of %#02x",
			decoded[scalarEnd], compressMagic)
		return nil, makeError(ErrInvalidCompressionFlag, str)
	}

	return newKeyPair(decoded[scalarOffset:scalarEnd], compressed)
}

// WIF returns the WIF secret key string of the key pair for the passed
// network.  The compression marker byte is included when the pair is
// compressed.
func (kp *KeyPair) WIF(net address.Network) (string, error) {
	prefix, ok := WIFPrefix(net)
	if !ok {
		str := fmt.Sprintf("no secret key prefix for network %v", net)
		return "", makeError(ErrWrongNetwork, str)
	}

	// Precalculate size.  Maximum number of bytes before base58 encoding is
	// one byte for the network, 32 bytes of private key, possibly one extra
	// byte if the pubkey is to be compressed, and finally four bytes of
	// checksum.
	encodeLen := uncompressedLen
	if kp.compressed {
		encodeLen = compressedLen
	}

	a := make([]byte, 0, encodeLen)
	defer clear(a[:cap(a)])
	a = append(a, prefix)
	secret := kp.secret.Serialize()
	a = append(a, secret...)
	clear(secret)
	if kp.compressed {
		a = append(a, compressMagic)
	}
	cksum := address.Checksum(a)
	a = append(a, cksum[:]...)
	return base58.Encode(a), nil
}
