// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"
	"strings"
)

// Network identifies the Bitcoin network an address is intended for.
type Network uint8

// These constants define the supported networks.
const (
	// Mainnet is the main Bitcoin network.
	Mainnet Network = iota

	// Testnet is the public Bitcoin test network.
	Testnet

	numNetworks
)

// networkStrings maps networks to their human-readable names.
var networkStrings = [numNetworks]string{
	Mainnet: "mainnet",
	Testnet: "testnet",
}

// String returns the network as a human-readable name.
func (n Network) String() string {
	if n < numNetworks {
		return networkStrings[n]
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// ParseNetwork returns the network with the given case-insensitive name.
func ParseNetwork(s string) (Network, error) {
	for n, name := range networkStrings {
		if strings.EqualFold(s, name) {
			return Network(n), nil
		}
	}
	return 0, fmt.Errorf("unknown network %q", s)
}

// Format identifies what the hash carried by an address commits to.
type Format uint8

// These constants define the supported address formats.
const (
	// P2PKH is a pay-to-pubkey-hash address.  The hash commits to a
	// serialized public key.  Mainnet addresses start with 1.
	P2PKH Format = iota

	// P2SH is a pay-to-script-hash address.  The hash commits to a script.
	// Mainnet addresses start with 3.
	P2SH

	numFormats
)

// formatStrings maps address formats to their human-readable names.
var formatStrings = [numFormats]string{
	P2PKH: "p2pkh",
	P2SH:  "p2sh",
}

// String returns the format as a human-readable name.
func (f Format) String() string {
	if f < numFormats {
		return formatStrings[f]
	}
	return fmt.Sprintf("Unknown Format (%d)", uint8(f))
}

// ParseFormat returns the address format with the given case-insensitive
// name.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatStrings {
		if strings.EqualFold(s, name) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown address format %q", s)
}

// versionEntry associates an address version byte with the network and
// format it identifies.
type versionEntry struct {
	net     Network
	format  Format
	version byte
}

// versionTable is the single source of truth for address version bytes.  Both
// VersionFor and LookupVersion consult it, so the two directions can't drift
// apart.  No two entries may share a version byte.
var versionTable = [...]versionEntry{
	{Mainnet, P2PKH, 0x00},
	{Mainnet, P2SH, 0x05},
	{Testnet, P2PKH, 0x6f},
	{Testnet, P2SH, 0xc4},
}

// VersionFor returns the address version byte for the given network and
// format.  Every network and format constant defined by this package has an
// entry, so false is only returned for values outside of those.
func VersionFor(net Network, format Format) (byte, bool) {
	for i := range versionTable {
		e := &versionTable[i]
		if e.net == net && e.format == format {
			return e.version, true
		}
	}
	return 0, false
}

// LookupVersion returns the network and format identified by the given
// address version byte.  False is returned when the byte is not a known
// version.
func LookupVersion(version byte) (Network, Format, bool) {
	for i := range versionTable {
		e := &versionTable[i]
		if e.version == version {
			return e.net, e.format, true
		}
	}
	return 0, 0, false
}
