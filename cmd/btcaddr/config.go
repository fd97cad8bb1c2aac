// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/decred/btcaddr/address"
	"github.com/decred/dcrd/dcrutil/v4"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "btcaddr.conf"
	defaultLogLevel       = "warn"
	defaultFormat         = "p2pkh"
)

var (
	defaultHomeDir    = dcrutil.AppDataDir("btcaddr", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// config defines the configuration options for btcaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile   string `short:"C" long:"configfile" description:"Path to configuration file"`
	SampleConfig bool   `long:"sampleconfig" description:"Print a commented example configuration file and exit"`
	Verbose      bool   `short:"v" long:"verbose" description:"Show the secret key and public key along with the address"`
	TestNet      bool   `long:"testnet" description:"Use the test network"`
	Format       string `long:"format" description:"Address format to derive {p2pkh, p2sh}"`
	Strict       bool   `long:"strict" description:"Verify the checksum, network prefix and compression marker of the secret key"`
	Decode       bool   `long:"decode" description:"Decode the argument as an address instead of a secret key"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile      string `long:"logfile" description:"Also write log output to this file, rotating it as it grows"`

	net    address.Network
	format address.Format
}

// cleanAndExpandPath expands environment variables and leading ~ in the passed
// path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.  The path is left untouched when the home
	// directory can't be determined.
	if strings.HasPrefix(path, "~") {
		userName, rest := path[1:], ""
		if i := strings.IndexAny(path, "\\/"); i != -1 {
			userName, rest = path[1:i], path[i:]
		}

		var homeDir string
		if userName == "" {
			homeDir, _ = os.UserHomeDir()
		} else if u, err := user.Lookup(userName); err == nil {
			homeDir = u.HomeDir
		}
		if homeDir != "" {
			path = homeDir + rest
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// loadConfig initializes and parses the config using a config file and the
// passed command line arguments.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file and
//     the version and sample config flags
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The remaining positional arguments are returned.  When the version or sample
// config flags are set, the pre-parsed config is returned right away without
// loading the config file or validating any other option.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		Format:     defaultFormat,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the help
	// message error can be ignored here since they will be caught by the
	// final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}
	if preCfg.ShowVersion || preCfg.SampleConfig {
		return &preCfg, nil, nil
	}

	// Load additional config from file.  A missing file is only an error
	// when it was explicitly specified.
	parser := flags.NewParser(&cfg, flags.HelpFlag)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	if fileExists(configFile) {
		err := flags.NewIniParser(parser).ParseFile(configFile)
		if err != nil {
			str := fmt.Sprintf("error parsing config file %s: %v",
				configFile, err)
			return nil, nil, errSuppressUsage(str)
		}
	} else if preCfg.ConfigFile != defaultConfigFile {
		str := fmt.Sprintf("config file %s does not exist", configFile)
		return nil, nil, errSuppressUsage(str)
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Validate the logging level.
	if _, ok := slog.LevelFromString(cfg.DebugLevel); !ok {
		str := fmt.Sprintf("the specified debug level [%v] is invalid",
			cfg.DebugLevel)
		return nil, nil, errors.New(str)
	}

	if cfg.TestNet {
		cfg.net = address.Testnet
	}
	cfg.format, err = address.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = cleanAndExpandPath(cfg.LogFile)
	}

	if len(remainingArgs) != 1 {
		what := "private key"
		if cfg.Decode {
			what = "address"
		}
		str := fmt.Sprintf("exactly one %s must be specified", what)
		return nil, nil, errors.New(str)
	}

	return &cfg, remainingArgs, nil
}
