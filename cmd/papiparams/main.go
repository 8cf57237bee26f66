// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	flags "github.com/jessevdk/go-flags"
	"github.com/papicoin/papid/chaincfg"
	"github.com/papicoin/papid/internal/version"
)

// networkSelector picks the active network and adjusts its deployments.
// *chaincfg.Registry implements it.
type networkSelector interface {
	Select(name string) error
	OverrideRegTestDeploymentWindow(id chaincfg.DeploymentID, startTime,
		timeout int64) error
	Active() *chaincfg.Params
}

// processNetworks implements networkSelector with the process-wide chain
// parameters.
type processNetworks struct{}

func (processNetworks) Select(name string) error {
	return chaincfg.SelectNetwork(name)
}

func (processNetworks) OverrideRegTestDeploymentWindow(id chaincfg.DeploymentID,
	startTime, timeout int64) error {

	return chaincfg.OverrideRegTestDeploymentWindow(id, startTime, timeout)
}

func (processNetworks) Active() *chaincfg.Params {
	return chaincfg.ActiveParams()
}

// run selects the network described by the config, applies the deployment
// overrides, and writes the report to w.
func run(cfg *config, networks networkSelector, w io.Writer) error {
	if err := networks.Select(cfg.Network); err != nil {
		return err
	}
	for _, override := range cfg.overrides {
		err := networks.OverrideRegTestDeploymentWindow(override.ID,
			override.StartTime, override.Timeout)
		if err != nil {
			return err
		}
	}

	params := networks.Active()
	if cfg.DumpGenesis {
		return dumpGenesis(w, params)
	}
	local := &localSettings{
		assumeValid:      cfg.assumeValid,
		minimumChainWork: cfg.minimumChainWork,
	}
	return writeDescription(w, params, local)
}

// papiparamsMain is the real main function for papiparams.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func papiparamsMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	cfg, _, err := loadConfig(appName, os.Args[1:])
	if err != nil {
		return err
	}
	defer closeLogRotator()

	// Show version or the supported subsystems and exit when requested.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}
	if cfg.DebugLevel == "show" {
		return nil
	}

	log.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if err := run(cfg, processNetworks{}, os.Stdout); err != nil {
		log.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	if err := papiparamsMain(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
