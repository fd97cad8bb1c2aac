// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/decred/btcaddr/address"
	"github.com/decred/btcaddr/internal/version"
	"github.com/decred/btcaddr/keypair"
	"github.com/decred/btcaddr/sampleconfig"
	flags "github.com/jessevdk/go-flags"
)

// Process exit codes.  Each kind of invalid input has its own code so scripts
// can tell them apart.
const (
	exitOK                  = 0
	exitUsage               = 1
	exitInvalidSecret       = 2
	exitInvalidSecretLength = 3
	exitBadSecretKey        = 4
	exitInvalidAddress      = 5
	exitInvalidChecksum     = 6
)

// describeError returns the exit code and a short summary for an error
// returned while deriving or decoding an address.
func describeError(err error) (int, string) {
	var kpKind keypair.ErrorKind
	switch {
	case errors.Is(err, keypair.ErrInvalidSecret):
		return exitInvalidSecret, "invalid secret key"
	case errors.Is(err, keypair.ErrInvalidSecretLength):
		return exitInvalidSecretLength, "unsupported secret key length"
	case errors.As(err, &kpKind):
		return exitBadSecretKey, "unusable secret key"
	case errors.Is(err, address.ErrInvalidAddress):
		return exitInvalidAddress, "invalid address"
	case errors.Is(err, address.ErrInvalidChecksum):
		return exitInvalidChecksum, "address checksum mismatch"
	}
	return exitUsage, "error"
}

// compressionTag returns the human-readable public key serialization format.
func compressionTag(compressed bool) string {
	if compressed {
		return "(compressed)"
	}
	return "(uncompressed)"
}

// decodeSecret decodes the secret key according to the configured strictness.
// A lenient decode warns when the key's prefix is not for the configured
// network since the prefix is otherwise ignored.
func decodeSecret(cfg *config, secret string) (*keypair.KeyPair, error) {
	if cfg.Strict {
		return keypair.DecodeWIF(secret, cfg.net)
	}

	kp, err := keypair.FromSecretKeyStr(secret)
	if err != nil {
		return nil, err
	}
	net, err := keypair.NetworkForWIF(secret)
	switch {
	case err != nil:
		log.Warnf("Secret key prefix is not recognized: %v", err)
	case net != cfg.net:
		log.Warnf("Secret key is for %v, deriving %v address anyway", net,
			cfg.net)
	}
	return kp, nil
}

// deriveAddress writes the address of the public key for the secret key.
func deriveAddress(cfg *config, secret string, w io.Writer) error {
	kp, err := decodeSecret(cfg, secret)
	if err != nil {
		return err
	}
	log.Debugf("Decoded %s secret key", strings.Trim(
		compressionTag(kp.Compressed()), "()"))

	tag := compressionTag(kp.Compressed())
	pubKey := kp.PubKeyBytes()
	if cfg.Verbose {
		fmt.Fprintf(w, "Secret key: %s %s\n", secret, tag)
		fmt.Fprintf(w, "Public key (%s): %x %s\n",
			strings.ToUpper(cfg.format.String()), pubKey, tag)
	}

	addr, err := address.FromPublicKey(pubKey, cfg.net, cfg.format)
	if err != nil {
		return err
	}
	log.Debugf("Derived %v %v address", cfg.net, cfg.format)

	if cfg.Verbose {
		fmt.Fprintf(w, "Bitcoin address: %s\n", addr)
		return nil
	}
	fmt.Fprintln(w, addr)
	return nil
}

// decodeAddress writes the network, format, version byte and hash of the
// address.
func decodeAddress(cfg *config, addrStr string, w io.Writer) error {
	addr, err := address.Decode(addrStr)
	if err != nil {
		return err
	}
	if !addr.IsForNet(cfg.net) {
		log.Warnf("Address is for %v, not %v", addr.Network(), cfg.net)
	}

	fmt.Fprintf(w, "Network: %v\n", addr.Network())
	fmt.Fprintf(w, "Format: %v\n", addr.Format())
	fmt.Fprintf(w, "Version: %d\n", addr.Version())
	fmt.Fprintf(w, "Hash: %v\n", addr.Hash())
	return nil
}

// run performs the action selected by the config on the positional argument.
func run(cfg *config, arg string, w io.Writer) error {
	if cfg.Decode {
		return decodeAddress(cfg, arg, w)
	}
	return deriveAddress(cfg, arg, w)
}

// btcaddrMain is the real main function for btcaddr.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func btcaddrMain() int {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return exitOK
		}
		fmt.Fprintln(os.Stderr, err)
		var suppress errSuppressUsage
		if !errors.As(err, &suppress) {
			fmt.Fprintln(os.Stderr, "Use btcaddr -h to show usage")
		}
		return exitUsage
	}

	if cfg.ShowVersion {
		fmt.Printf("btcaddr version %s (Go version %s %s/%s)\n",
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return exitOK
	}
	if cfg.SampleConfig {
		fmt.Print(sampleconfig.Btcaddr())
		return exitOK
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitUsage
		}
		defer logRotator.Close()
	}
	setLogLevel(cfg.DebugLevel)

	if err := run(cfg, args[0], os.Stdout); err != nil {
		code, summary := describeError(err)
		log.Debugf("Exiting with code %d: %v", code, err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", summary, err)
		return code
	}
	return exitOK
}

func main() {
	os.Exit(btcaddrMain())
}
