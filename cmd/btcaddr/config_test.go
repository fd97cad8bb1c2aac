// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/decred/btcaddr/address"
	"github.com/decred/btcaddr/sampleconfig"
	flags "github.com/jessevdk/go-flags"
)

// writeConfigFile writes the passed contents to a config file in a temporary
// directory and returns its path.
func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), defaultConfigFilename)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestLoadConfig ensures options are loaded from the config file and the
// command line with the command line taking precedence.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		contents   string
		args       []string
		net        address.Network
		format     address.Format
		strict     bool
		debugLevel string
	}{{
		name:       "defaults",
		args:       []string{secret0},
		net:        address.Mainnet,
		format:     address.P2PKH,
		debugLevel: defaultLogLevel,
	}, {
		name:       "config file",
		contents:   "[Application Options]\ntestnet=1\nformat=p2sh\nstrict=1\n",
		args:       []string{secret0},
		net:        address.Testnet,
		format:     address.P2SH,
		strict:     true,
		debugLevel: defaultLogLevel,
	}, {
		name:       "command line overrides config file",
		contents:   "[Application Options]\nformat=p2sh\ndebuglevel=info\n",
		args:       []string{"--format=P2PKH", "-d", "debug", secret0},
		net:        address.Mainnet,
		format:     address.P2PKH,
		debugLevel: "debug",
	}, {
		name:       "command line options",
		args:       []string{"--testnet", "--strict", "--format", "p2sh", secret0},
		net:        address.Testnet,
		format:     address.P2SH,
		strict:     true,
		debugLevel: defaultLogLevel,
	}}

	for _, test := range tests {
		configFile := writeConfigFile(t, test.contents)
		args := append([]string{"-C", configFile}, test.args...)
		cfg, remaining, err := loadConfig(args)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if len(remaining) != 1 || remaining[0] != secret0 {
			t.Errorf("%q: unexpected remaining args %v", test.name, remaining)
			continue
		}
		if cfg.net != test.net {
			t.Errorf("%q: mismatched network -- got %v, want %v", test.name,
				cfg.net, test.net)
		}
		if cfg.format != test.format {
			t.Errorf("%q: mismatched format -- got %v, want %v", test.name,
				cfg.format, test.format)
		}
		if cfg.Strict != test.strict {
			t.Errorf("%q: mismatched strict -- got %v, want %v", test.name,
				cfg.Strict, test.strict)
		}
		if cfg.DebugLevel != test.debugLevel {
			t.Errorf("%q: mismatched debug level -- got %q, want %q",
				test.name, cfg.DebugLevel, test.debugLevel)
		}
	}
}

// TestLoadConfigErrors ensures invalid options and argument counts are
// rejected.
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		args     []string
		suppress bool
	}{{
		name: "no arguments",
	}, {
		name: "too many arguments",
		args: []string{secret0, secret1C},
	}, {
		name: "decode without address",
		args: []string{"--decode"},
	}, {
		name: "invalid format",
		args: []string{"--format=p2wpkh", secret0},
	}, {
		name: "invalid debug level",
		args: []string{"--debuglevel=loud", secret0},
	}, {
		name: "unknown option",
		args: []string{"--bogus", secret0},
	}, {
		name:     "invalid config file",
		contents: "[Application Options]\nbogus=1\n",
		args:     []string{secret0},
		suppress: true,
	}}

	for _, test := range tests {
		configFile := writeConfigFile(t, test.contents)
		args := append([]string{"-C", configFile}, test.args...)
		_, _, err := loadConfig(args)
		if err == nil {
			t.Errorf("%q: did not receive expected error", test.name)
			continue
		}
		var suppress errSuppressUsage
		if got := errors.As(err, &suppress); got != test.suppress {
			t.Errorf("%q: mismatched usage suppression -- got %v, want %v",
				test.name, got, test.suppress)
		}
	}
}

// TestLoadConfigMissingFile ensures an explicitly specified config file that
// does not exist is an error.
func TestLoadConfigMissingFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "missing.conf")
	_, _, err := loadConfig([]string{"-C", configFile, secret0})
	var suppress errSuppressUsage
	if !errors.As(err, &suppress) {
		t.Fatalf("unexpected error -- got %v, want errSuppressUsage", err)
	}
}

// TestLoadConfigEarlyExit ensures the help, version and sample config flags
// are reported without requiring any positional arguments.
func TestLoadConfigEarlyExit(t *testing.T) {
	_, _, err := loadConfig([]string{"-h"})
	var e *flags.Error
	if !errors.As(err, &e) || e.Type != flags.ErrHelp {
		t.Fatalf("unexpected help error: %v", err)
	}

	cfg, args, err := loadConfig([]string{"-V"})
	if err != nil {
		t.Fatalf("unexpected version error: %v", err)
	}
	if !cfg.ShowVersion || args != nil {
		t.Fatalf("unexpected version config %+v with args %v", cfg, args)
	}

	cfg, args, err = loadConfig([]string{"--sampleconfig"})
	if err != nil {
		t.Fatalf("unexpected sample config error: %v", err)
	}
	if !cfg.SampleConfig || args != nil {
		t.Fatalf("unexpected sample config %+v with args %v", cfg, args)
	}
}

// TestSampleConfig ensures the sample config file is accepted as a config
// file and leaves every option at its default.
func TestSampleConfig(t *testing.T) {
	configFile := writeConfigFile(t, sampleconfig.Btcaddr())
	cfg, _, err := loadConfig([]string{"-C", configFile, secret0})
	if err != nil {
		t.Fatalf("failed to load sample config: %v", err)
	}
	if cfg.TestNet || cfg.Strict || cfg.Verbose || cfg.LogFile != "" {
		t.Fatalf("sample config changed defaults: %+v", cfg)
	}
	if cfg.format != address.P2PKH || cfg.DebugLevel != defaultLogLevel {
		t.Fatalf("sample config changed defaults: %+v", cfg)
	}
}

// TestCleanAndExpandPath ensures a leading ~ expands to the home directory of
// the current or named user and environment variables are expanded.
func TestCleanAndExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	t.Setenv("BTCADDR_TEST_DIR", filepath.FromSlash("/tmp/btcaddr"))

	tests := []struct {
		name string
		path string
		want string
	}{{
		name: "home",
		path: "~",
		want: filepath.Clean(homeDir),
	}, {
		name: "file in home",
		path: "~/btcaddr.conf",
		want: filepath.Join(homeDir, "btcaddr.conf"),
	}, {
		name: "unknown user",
		path: "~btcaddr-no-such-user/btcaddr.conf",
		want: filepath.Clean("~btcaddr-no-such-user/btcaddr.conf"),
	}, {
		name: "environment variable",
		path: "$BTCADDR_TEST_DIR/logs/../btcaddr.log",
		want: filepath.Join(filepath.FromSlash("/tmp/btcaddr"), "btcaddr.log"),
	}, {
		name: "plain",
		path: "logs/./btcaddr.log",
		want: filepath.Join("logs", "btcaddr.log"),
	}}

	// Expand the named current user when the user database knows it.
	if cu, err := user.Current(); err == nil {
		if u, err := user.Lookup(cu.Username); err == nil && u.HomeDir != "" {
			tests = append(tests, struct {
				name string
				path string
				want string
			}{
				name: "named user",
				path: "~" + u.Username + "/btcaddr.conf",
				want: filepath.Join(u.HomeDir, "btcaddr.conf"),
			})
		}
	}

	for _, test := range tests {
		got := cleanAndExpandPath(test.path)
		if got != test.want {
			t.Errorf("%q: mismatched path -- got %q, want %q", test.name, got,
				test.want)
		}
	}
}
