// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/papicoin/papid/chaincfg"
	"github.com/papicoin/papid/sampleconfig"
)

// testLoadConfig loads the config with the given arguments and a temporary
// home directory without file logging.
func testLoadConfig(t *testing.T, args ...string) (*config, error) {
	t.Helper()

	appData := t.TempDir()
	args = append([]string{"--appdata=" + appData, "--nofilelogging"}, args...)
	cfg, _, err := loadConfig("papiparams", args)
	return cfg, err
}

// TestLoadConfigDefaults ensures the defaults select the main network and a
// commented sample config is written to the home directory.
func TestLoadConfigDefaults(t *testing.T) {
	appData := t.TempDir()
	cfg, _, err := loadConfig("papiparams", []string{"--appdata=" + appData,
		"--nofilelogging"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Network != "main" {
		t.Errorf("unexpected network %q", cfg.Network)
	}
	if cfg.DebugLevel != defaultLogLevel {
		t.Errorf("unexpected debug level %q", cfg.DebugLevel)
	}
	if want := filepath.Join(appData, defaultLogDirname, "main"); cfg.LogDir != want {
		t.Errorf("unexpected log dir - got %s, want %s", cfg.LogDir, want)
	}
	if len(cfg.overrides) != 0 || cfg.assumeValid != nil ||
		cfg.minimumChainWork != nil {

		t.Errorf("unexpected parsed options %v %v %v", cfg.overrides,
			cfg.assumeValid, cfg.minimumChainWork)
	}

	configFile := filepath.Join(appData, defaultConfigFilename)
	contents, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatalf("default config file not created: %v", err)
	}
	if string(contents) != sampleconfig.Papiparams() {
		t.Fatal("default config file is not the sample config")
	}
}

// TestLoadConfigNetworks ensures the network options resolve to a single
// known network.
func TestLoadConfigNetworks(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
		kind    error
	}{{
		name: "testnet flag",
		args: []string{"--testnet"},
		want: "test",
	}, {
		name: "regtest flag",
		args: []string{"--regtest"},
		want: "regtest",
	}, {
		name: "network option",
		args: []string{"--network=test"},
		want: "test",
	}, {
		name: "network option matching flag",
		args: []string{"--network=regtest", "--regtest"},
		want: "regtest",
	}, {
		name:    "network option conflicting with flag",
		args:    []string{"--network=test", "--regtest"},
		wantErr: true,
	}, {
		name:    "both network flags",
		args:    []string{"--testnet", "--regtest"},
		wantErr: true,
	}, {
		name:    "unknown network",
		args:    []string{"--network=simnet"},
		wantErr: true,
		kind:    chaincfg.ErrUnknownNetwork,
	}}

	for _, test := range tests {
		cfg, err := testLoadConfig(t, test.args...)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: did not receive expected error", test.name)
				continue
			}
			if test.kind != nil && !errors.Is(err, test.kind) {
				t.Errorf("%s: unexpected error - got %v, want %v", test.name,
					err, test.kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if cfg.Network != test.want {
			t.Errorf("%s: unexpected network - got %s, want %s", test.name,
				cfg.Network, test.want)
		}
	}
}

// TestLoadConfigVBParams ensures deployment overrides are parsed and only
// accepted for the regression test network.
func TestLoadConfigVBParams(t *testing.T) {
	cfg, err := testLoadConfig(t, "--regtest", "--vbparams=csv:100:200",
		"--vbparams=segwit:0:999999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []chaincfg.DeploymentOverride{
		{ID: chaincfg.DeploymentCSV, StartTime: 100, Timeout: 200},
		{ID: chaincfg.DeploymentSegwit, StartTime: 0, Timeout: 999999999999},
	}
	if len(cfg.overrides) != len(want) {
		t.Fatalf("unexpected overrides %+v", cfg.overrides)
	}
	for i := range want {
		if cfg.overrides[i] != want[i] {
			t.Errorf("unexpected override #%d - got %+v, want %+v", i,
				cfg.overrides[i], want[i])
		}
	}

	if _, err := testLoadConfig(t, "--vbparams=csv:100:200"); err == nil {
		t.Error("vbparams accepted on the main network")
	}
	if _, err := testLoadConfig(t, "--testnet", "--vbparams=csv:100:200"); err == nil {
		t.Error("vbparams accepted on the test network")
	}
	_, err = testLoadConfig(t, "--regtest", "--vbparams=csv:100")
	if !errors.Is(err, chaincfg.ErrMalformedDeploymentOverride) {
		t.Errorf("unexpected error - got %v, want %v", err,
			chaincfg.ErrMalformedDeploymentOverride)
	}
	_, err = testLoadConfig(t, "--regtest", "--vbparams=taproot:0:1")
	if !errors.Is(err, chaincfg.ErrUnknownDeployment) {
		t.Errorf("unexpected error - got %v, want %v", err,
			chaincfg.ErrUnknownDeployment)
	}
}

// TestLoadConfigLocalSettings ensures the node-local sync settings are parsed.
func TestLoadConfigLocalSettings(t *testing.T) {
	const hash = "657c25695adb6efa2aad41289128545356f981c38e098a773b24ff5ff1e5ea8a"
	cfg, err := testLoadConfig(t, "--assumevalid="+hash,
		"--minimumchainwork=0x1000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.assumeValid == nil || cfg.assumeValid.String() != hash {
		t.Errorf("unexpected assume valid %v", cfg.assumeValid)
	}
	if cfg.minimumChainWork == nil || cfg.minimumChainWork.Int64() != 0x1000 {
		t.Errorf("unexpected minimum chain work %v", cfg.minimumChainWork)
	}

	badArgs := []string{
		"--assumevalid=xyz",
		"--assumevalid=" + strings.Repeat("00", 33),
		"--minimumchainwork=xyz",
		"--minimumchainwork=0x",
		"--minimumchainwork=-10",
	}
	for _, arg := range badArgs {
		if _, err := testLoadConfig(t, arg); err == nil {
			t.Errorf("%s: did not receive expected error", arg)
		}
	}
}

// TestLoadConfigFile ensures options are read from the config file and
// combined with the command line.
func TestLoadConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "custom.conf")
	contents := "[Application Options]\nregtest=1\nvbparams=csv:1:2\n" +
		"debuglevel=CHCF=debug\n"
	if err := os.WriteFile(configFile, []byte(contents), 0600); err != nil {
		t.Fatalf("unable to write config file: %v", err)
	}

	cfg, err := testLoadConfig(t, "--configfile="+configFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Network != "regtest" || len(cfg.overrides) != 1 {
		t.Fatalf("config file not applied: network %s, overrides %v",
			cfg.Network, cfg.overrides)
	}

	cfg, err = testLoadConfig(t, "--configfile="+configFile,
		"--vbparams=segwit:3:4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := cfg.overrides[len(cfg.overrides)-1]
	if last.ID != chaincfg.DeploymentSegwit || last.StartTime != 3 {
		t.Fatalf("command line override not applied last: %+v",
			cfg.overrides)
	}

	missing := filepath.Join(t.TempDir(), "missing.conf")
	if _, err := testLoadConfig(t, "--configfile="+missing); err == nil {
		t.Fatal("missing config file accepted")
	}
}

// TestLoadConfigErrors ensures malformed options are rejected and help is
// reported as such.
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown option", []string{"--bogus"}},
		{"invalid debug level", []string{"--debuglevel=loud"}},
		{"invalid subsystem", []string{"--debuglevel=NOPE=debug"}},
		{"unexpected pair format", []string{"--debuglevel=PAPI=debug=x"}},
	}

	for _, test := range tests {
		if _, err := testLoadConfig(t, test.args...); err == nil {
			t.Errorf("%s: did not receive expected error", test.name)
		}
	}

	_, err := testLoadConfig(t, "--help")
	var e *flags.Error
	if !errors.As(err, &e) || e.Type != flags.ErrHelp {
		t.Fatalf("unexpected help error %v", err)
	}
	setLogLevels(defaultLogLevel)
}

// TestSampleConfigParses ensures every option in the sample config is known
// to the parser once uncommented.
func TestSampleConfigParses(t *testing.T) {
	var lines []string
	for _, line := range strings.Split(sampleconfig.Papiparams(), "\n") {
		// Only uncomment lines that set an option.
		option := strings.TrimPrefix(line, "; ")
		if strings.HasPrefix(line, "; ") && strings.Contains(option, "=") &&
			!strings.Contains(option, " ") {

			lines = append(lines, option)
			continue
		}
		lines = append(lines, line)
	}

	var cfg config
	parser := newConfigParser(&cfg, flags.None)
	err := flags.NewIniParser(parser).Parse(strings.NewReader(
		strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("unable to parse uncommented sample config: %v", err)
	}
	if !cfg.RegTest || len(cfg.VBParams) != 2 {
		t.Fatalf("sample options not applied: %+v", cfg)
	}
}

// TestFileLogging ensures the log file is created in the per-network log
// directory.
func TestFileLogging(t *testing.T) {
	appData := t.TempDir()
	cfg, _, err := loadConfig("papiparams", []string{"--appdata=" + appData,
		"--testnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeLogRotator()

	log.Infof("file logging test")
	logFile := filepath.Join(appData, defaultLogDirname, "test",
		defaultLogFilename)
	if cfg.LogDir != filepath.Dir(logFile) {
		t.Fatalf("unexpected log dir %s", cfg.LogDir)
	}
	if !fileExists(logFile) {
		t.Fatalf("log file %s not created", logFile)
	}
}
