// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strconv"
	"strings"
)

// DeploymentID identifies a consensus rule change deployment.  It is the
// offset of the deployment in the Deployments field of the consensus
// parameters.
type DeploymentID uint8

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy DeploymentID = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// DeploymentSegwit defines the rule change deployment ID for the
	// Segregated Witness (segwit) soft-fork package. The segwit package
	// includes the deployment of BIPS 141, 143, 144, 145 and 147.
	DeploymentSegwit

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// maxDeploymentBit is the highest version bit usable for signaling.  The top
// three bits of the version are reserved.
const maxDeploymentBit = 28

// deploymentNames maps deployments to the names accepted on the command line.
var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentCSV:       "csv",
	DeploymentSegwit:    "segwit",
}

// String returns the DeploymentID as a human-readable name.
func (id DeploymentID) String() string {
	if id < DefinedDeployments {
		return deploymentNames[id]
	}
	return fmt.Sprintf("Unknown DeploymentID (%d)", uint8(id))
}

// ParseDeploymentID returns the deployment with the given name.
func ParseDeploymentID(name string) (DeploymentID, error) {
	for id, deploymentName := range deploymentNames {
		if deploymentName == name {
			return DeploymentID(id), nil
		}
	}
	str := fmt.Sprintf("unknown deployment %q", name)
	return 0, makeError(ErrUnknownDeployment, str)
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime int64

	// Timeout is the median block time after which the attempted
	// deployment expires.
	Timeout int64
}

// DeploymentOverride is a replacement activation window for a deployment on
// the regression test network.
type DeploymentOverride struct {
	ID        DeploymentID
	StartTime int64
	Timeout   int64
}

// ParseDeploymentOverride parses an override of the form
// deployment:start:timeout where start and timeout are unix times.
func ParseDeploymentOverride(s string) (DeploymentOverride, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		str := fmt.Sprintf("deployment override %q is not of the form "+
			"deployment:start:timeout", s)
		return DeploymentOverride{}, makeError(ErrMalformedDeploymentOverride, str)
	}

	id, err := ParseDeploymentID(parts[0])
	if err != nil {
		return DeploymentOverride{}, err
	}
	start, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		str := fmt.Sprintf("invalid start time %q for deployment %s: %v",
			parts[1], id, err)
		return DeploymentOverride{}, makeError(ErrMalformedDeploymentOverride, str)
	}
	timeout, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		str := fmt.Sprintf("invalid timeout %q for deployment %s: %v",
			parts[2], id, err)
		return DeploymentOverride{}, makeError(ErrMalformedDeploymentOverride, str)
	}

	return DeploymentOverride{ID: id, StartTime: start, Timeout: timeout}, nil
}

// validateDeploymentWindow returns an error when the window starts after it
// times out.
func validateDeploymentWindow(id DeploymentID, start, timeout int64) error {
	if start > timeout {
		str := fmt.Sprintf("deployment %s starts at %d after its timeout %d",
			id, start, timeout)
		return makeError(ErrInvalidDeploymentWindow, str)
	}
	return nil
}
