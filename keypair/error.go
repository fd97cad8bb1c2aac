// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidSecret indicates a secret key string contains characters
	// outside of the base58 alphabet.  An empty string is not invalid base58;
	// it decodes to zero bytes and is rejected with ErrInvalidSecretLength.
	ErrInvalidSecret = ErrorKind("ErrInvalidSecret")

	// ErrInvalidSecretLength indicates a secret key string decoded to a
	// number of bytes that is neither the uncompressed nor the compressed
	// WIF length.
	ErrInvalidSecretLength = ErrorKind("ErrInvalidSecretLength")

	// ErrSecretOutOfRange indicates the private key scalar carried by a
	// secret key string is zero or not less than the secp256k1 group order.
	ErrSecretOutOfRange = ErrorKind("ErrSecretOutOfRange")

	// ErrInvalidSecretChecksum indicates the trailing checksum of a secret
	// key string does not match its payload.  It is only returned by
	// DecodeWIF.
	ErrInvalidSecretChecksum = ErrorKind("ErrInvalidSecretChecksum")

	// ErrWrongNetwork indicates the prefix byte of a secret key string does
	// not identify the expected network.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")

	// ErrInvalidCompressionFlag indicates a compressed secret key string does
	// not carry the expected compression marker byte.  It is only returned by
	// DecodeWIF.
	ErrInvalidCompressionFlag = ErrorKind("ErrInvalidCompressionFlag")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to decoding a secret key.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
