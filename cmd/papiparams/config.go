// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"
	"github.com/papicoin/papid/chaincfg"
	"github.com/papicoin/papid/sampleconfig"
)

const (
	defaultConfigFilename = "papiparams.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "papiparams.log"
	defaultLogLevel       = "info"
	defaultNetwork        = "main"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("papid", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// config defines the configuration options for papiparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	// General application behavior.
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	HomeDir     string `short:"A" long:"appdata" description:"Path to application home directory"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`

	// Logging.
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	// Network.
	Network string `long:"network" description:"Network to describe {main, test, regtest}"`
	TestNet bool   `long:"testnet" description:"Use the test network"`
	RegTest bool   `long:"regtest" description:"Use the regression test network"`

	// Deployment window overrides.
	VBParams []string `long:"vbparams" description:"Override the activation window of a regression test network deployment as deployment:start:timeout -- may be specified multiple times"`

	// Node-local sync settings.
	AssumeValid      string `long:"assumevalid" description:"Hash of the block whose ancestors are assumed to have valid scripts; reported beside the compiled-in value"`
	MinimumChainWork string `long:"minimumchainwork" description:"Minimum cumulative chain work in hex; reported beside the compiled-in value"`

	// Output.
	DumpGenesis bool `long:"dumpgenesis" description:"Write the serialized genesis block of the network as hex and exit"`

	// The following fields are parsed from the options above.
	overrides        []chaincfg.DeploymentOverride
	assumeValid      *chainhash.Hash
	minimumChainWork *big.Int
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Nothing to do when no path is given.
	if path == "" {
		return path
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
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

// createDefaultConfigFile writes the commented sample config to destPath.
func createDefaultConfigFile(destPath string) error {
	// Create the destination directory if it does not exist.
	err := os.MkdirAll(filepath.Dir(destPath), 0700)
	if err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(sampleconfig.Papiparams()), 0600)
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// parseMinimumChainWork parses a hex encoded amount of chain work with an
// optional 0x prefix.
func parseMinimumChainWork(s string) (*big.Int, error) {
	hexStr := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	work, ok := new(big.Int).SetString(hexStr, 16)
	if !ok || hexStr == "" || work.Sign() < 0 {
		return nil, fmt.Errorf("invalid minimum chain work %q: must be a "+
			"non-negative hex number", s)
	}
	return work, nil
}

// selectedNetwork returns the name of the network requested by the network
// options or an error when they conflict.
func selectedNetwork(cfg *config) (string, error) {
	var flagNets []string
	if cfg.TestNet {
		flagNets = append(flagNets, "test")
	}
	if cfg.RegTest {
		flagNets = append(flagNets, "regtest")
	}

	switch {
	case len(flagNets) > 1:
		return "", errors.New("the testnet and regtest params can't be " +
			"used together -- choose one of the two")
	case len(flagNets) == 1 && cfg.Network != defaultNetwork &&
		cfg.Network != flagNets[0]:

		return "", fmt.Errorf("the network option %q conflicts with the "+
			"%s network flag", cfg.Network, flagNets[0])
	case len(flagNets) == 1:
		return flagNets[0], nil
	}
	return cfg.Network, nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in papiparams functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take precedence.
func loadConfig(appName string, args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		HomeDir:    defaultHomeDir,
		ConfigFile: defaultConfigFile,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		Network:    defaultNetwork,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	// Update the home directory if specified.  Since the home directory is
	// updated, other variables need to be updated to reflect the new
	// changes.
	if preCfg.HomeDir != "" {
		cfg.HomeDir, _ = filepath.Abs(cleanAndExpandPath(preCfg.HomeDir))
		if preCfg.ConfigFile == defaultConfigFile {
			cfg.ConfigFile = filepath.Join(cfg.HomeDir, defaultConfigFilename)
		} else {
			cfg.ConfigFile = cleanAndExpandPath(preCfg.ConfigFile)
		}
		if preCfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)
		} else {
			cfg.LogDir = preCfg.LogDir
		}
	}
	configFileSpecified := preCfg.ConfigFile != defaultConfigFile

	// Create a default config file when one does not exist and the user did
	// not specify an override.
	if !configFileSpecified && !fileExists(cfg.ConfigFile) {
		err := createDefaultConfigFile(cfg.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config file: "+
				"%v\n", err)
		}
	}

	// Load additional config from file.
	parser := newConfigParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(cfg.ConfigFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) || configFileSpecified {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n", err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		return &cfg, remainingArgs, nil
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %w", "loadConfig", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Resolve the network from the network options and ensure it exists.
	network, err := selectedNetwork(&cfg)
	if err != nil {
		err := fmt.Errorf("%s: %w", "loadConfig", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}
	if _, err := chaincfg.ParamsFor(network); err != nil {
		err := fmt.Errorf("%s: %w", "loadConfig", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}
	cfg.Network = network

	// Deployment windows may only be overridden on the regression test
	// network.
	if len(cfg.VBParams) > 0 && cfg.Network != "regtest" {
		str := "%s: the vbparams option may only be used with the regtest " +
			"network"
		err := fmt.Errorf(str, "loadConfig")
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}
	for _, vbParams := range cfg.VBParams {
		override, err := chaincfg.ParseDeploymentOverride(vbParams)
		if err != nil {
			err := fmt.Errorf("%s: %w", "loadConfig", err)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		cfg.overrides = append(cfg.overrides, override)
	}

	// Parse the node-local sync settings.
	if cfg.AssumeValid != "" {
		hash, err := chainhash.NewHashFromStr(cfg.AssumeValid)
		if err != nil {
			err := fmt.Errorf("%s: invalid assumevalid %q: %w", "loadConfig",
				cfg.AssumeValid, err)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		cfg.assumeValid = hash
	}
	if cfg.MinimumChainWork != "" {
		work, err := parseMinimumChainWork(cfg.MinimumChainWork)
		if err != nil {
			err := fmt.Errorf("%s: %w", "loadConfig", err)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		cfg.minimumChainWork = work
	}

	// Append the network type to the log directory so it is "namespaced"
	// per network and initialize the log rotator.
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), cfg.Network)
	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, errSuppressUsage(err.Error())
		}
	}

	return &cfg, remainingArgs, nil
}
