// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/btcaddr/address"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// scalarOffset is the offset of the private key scalar in a decoded
	// secret key.  It follows the single network prefix byte.
	scalarOffset = 1

	// uncompressedLen is the length of a decoded secret key for a key whose
	// public key is serialized in the uncompressed format: the prefix byte,
	// the 32-byte scalar and the 4-byte checksum.
	uncompressedLen = scalarOffset + secp256k1.PrivKeyBytesLen + 4

	// compressedLen is the length of a decoded secret key for a key whose
	// public key is serialized in the compressed format.  It carries an
	// additional marker byte between the scalar and the checksum.
	compressedLen = uncompressedLen + 1
)

// KeyPair is a secp256k1 private key, its public key and the serialization
// format used for the public key.  The format is fixed when the pair is
// created.
type KeyPair struct {
	secret     *secp256k1.PrivateKey
	public     *secp256k1.PublicKey
	compressed bool
}

// newKeyPair derives the public key for the passed big-endian scalar.  The
// scalar must be in the range [1, N-1] where N is the secp256k1 group order.
func newKeyPair(scalar []byte, compressed bool) (*KeyPair, error) {
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(scalar); overflow || k.IsZero() {
		return nil, makeError(ErrSecretOutOfRange, "private key is not in "+
			"the range of the secp256k1 group order")
	}
	secret := secp256k1.NewPrivateKey(&k)
	k.Zero()

	kp := &KeyPair{
		secret:     secret,
		public:     secret.PubKey(),
		compressed: compressed,
	}
	return kp, nil
}

// decodeSecret base58 decodes a secret key string and reports whether the
// length identifies a compressed key.
func decodeSecret(secret string) ([]byte, bool, error) {
	// The decoder returns an empty slice both for an empty string and for
	// characters outside of the alphabet.  Only the latter is malformed
	// base58.  An empty string decodes to zero bytes and fails the length
	// check below.
	decoded := base58.Decode(secret)
	if len(decoded) == 0 && secret != "" {
		return nil, false, makeError(ErrInvalidSecret, "secret key is not "+
			"valid base58")
	}

	switch len(decoded) {
	case uncompressedLen:
		return decoded, false, nil
	case compressedLen:
		return decoded, true, nil
	}

	clear(decoded)
	str := fmt.Sprintf("secret key decoded to %d bytes instead of %d or %d",
		len(decoded), uncompressedLen, compressedLen)
	return nil, false, makeError(ErrInvalidSecretLength, str)
}

// FromSecretKeyStr decodes a WIF secret key string into a key pair.  The
// length of the decoded string determines whether the public key is
// serialized in the compressed format.
//
// Only the base58 encoding, the decoded length and the private key scalar are
// checked.  The network prefix byte, the compression marker byte and the
// checksum are not verified, so a key for another network or a string with a
// corrupt checksum is accepted.  Use DecodeWIF to verify all of them.
func FromSecretKeyStr(secret string) (*KeyPair, error) {
	decoded, compressed, err := decodeSecret(secret)
	if err != nil {
		return nil, err
	}
	defer clear(decoded)

	scalar := decoded[scalarOffset : scalarOffset+secp256k1.PrivKeyBytesLen]
	return newKeyPair(scalar, compressed)
}

// Secret returns the private key.
func (kp *KeyPair) Secret() *secp256k1.PrivateKey {
	return kp.secret
}

// Public returns the public key.
func (kp *KeyPair) Public() *secp256k1.PublicKey {
	return kp.public
}

// Compressed returns whether the public key is serialized in the compressed
// format.
func (kp *KeyPair) Compressed() bool {
	return kp.compressed
}

// PubKeyBytes returns the serialized public key.  It is the 33-byte compressed
// format when the pair is compressed and the 65-byte uncompressed format
// otherwise.
func (kp *KeyPair) PubKeyBytes() []byte {
	if kp.compressed {
		return kp.public.SerializeCompressed()
	}
	return kp.public.SerializeUncompressed()
}

// Address returns the address of the serialized public key for the passed
// network and format.
func (kp *KeyPair) Address(net address.Network, format address.Format) (address.Address, error) {
	return address.FromPublicKey(kp.PubKeyBytes(), net, format)
}
