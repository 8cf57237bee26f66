// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main Papicoin network, which is intended for the transfer
// of monetary value, there also exists two standard networks: the public test
// network and the regression test network.  These networks are incompatible
// with each other (each sharing a different genesis block and magic bytes) and
// software should handle errors where input intended for one network is used
// on an application instance running on a different network.
//
// The parameters of every network are built and checked when the package is
// initialized.  Each genesis block is assembled from its inputs and must hash
// to the value of the deployed network, otherwise the process panics before
// main runs.
//
// A main package selects the active network exactly once during startup and
// afterwards reads it from anywhere without further synchronization.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//		"log"
//
//		"github.com/papicoin/papid/chaincfg"
//	)
//
//	func main() {
//		network := flag.String("network", "main", "network to operate on")
//		flag.Parse()
//
//		if err := chaincfg.SelectNetwork(*network); err != nil {
//			log.Fatal(err)
//		}
//
//		// later...
//
//		params := chaincfg.ActiveParams()
//		fmt.Printf("%s genesis block %v\n", params.Name, params.GenesisHash)
//	}
//
// Requesting the active parameters before a network is selected is a startup
// ordering defect and panics.
//
// The activation windows of consensus rule change deployments may be replaced
// on the regression test network with OverrideRegTestDeploymentWindow.  This is
// only intended for test setup before the parameters are shared with other
// goroutines.  The parameters of the other networks can't be modified through
// the package.
package chaincfg
