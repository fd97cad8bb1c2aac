// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
btcaddr derives the Bitcoin address of the public key for a WIF secret key and
decodes Bitcoin addresses.

The long form of all of the options (except -C) can be specified in a
configuration file that is automatically parsed when btcaddr starts.  By
default, the configuration file is located at ~/.btcaddr/btcaddr.conf on
POSIX-style operating systems and %LOCALAPPDATA%\Btcaddr\btcaddr.conf on
Windows.  The -C (--configfile) flag can be used to override this location.

Usage:

	btcaddr [OPTIONS] <secret key>
	btcaddr [OPTIONS] --decode <address>

Application Options:

	-V, --version       Display version information and exit
	-C, --configfile=   Path to configuration file
	    --sampleconfig  Print a commented example configuration file and exit
	-v, --verbose       Show the secret key and public key along with the
	                    address
	    --testnet       Use the test network
	    --format=       Address format to derive {p2pkh, p2sh} (default:
	                    p2pkh)
	    --strict        Verify the checksum, network prefix and compression
	                    marker of the secret key
	    --decode        Decode the argument as an address instead of a secret
	                    key
	-d, --debuglevel=   Logging level {trace, debug, info, warn, error,
	                    critical, off} (default: warn)
	    --logfile=      Also write log output to this file, rotating it as it
	                    grows

Help Options:

	-h, --help          Show this help message

Exit Status:

	0  Success
	1  Usage or configuration error
	2  The secret key is not valid base58
	3  The secret key decoded to an unsupported length
	4  The secret key was rejected for another reason, such as a private key
	   outside of the group order or a failed --strict check
	5  The address is malformed or has an unknown version byte
	6  The address checksum does not match
*/
package main
