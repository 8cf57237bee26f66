// Copyright (c) 2017-2019 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"net"

	"github.com/btcsuite/btcd/blockchain"
	"golang.org/x/net/idna"
)

// validateConsensus checks the difficulty, subsidy, and rule change
// parameters of a network for internal consistency.
func validateConsensus(p *Params) error {
	c := &p.Consensus
	if c.SubsidyHalvingInterval <= 0 {
		str := fmt.Sprintf("%s subsidy halving interval %d is not positive",
			p.Name, c.SubsidyHalvingInterval)
		return makeError(ErrInvalidSubsidyInterval, str)
	}

	// The retarget window is the timespan in blocks so the timespan must be
	// a whole number of block intervals.
	if c.TargetTimePerBlock <= 0 || c.TargetTimespan < c.TargetTimePerBlock ||
		c.TargetTimespan%c.TargetTimePerBlock != 0 {

		str := fmt.Sprintf("%s target timespan %v is not a whole multiple "+
			"of target block time %v", p.Name, c.TargetTimespan,
			c.TargetTimePerBlock)
		return makeError(ErrInvalidRetargetWindow, str)
	}

	if c.MinerConfirmationWindow == 0 ||
		c.RuleChangeActivationThreshold > c.MinerConfirmationWindow {

		str := fmt.Sprintf("%s rule change activation threshold %d exceeds "+
			"miner confirmation window %d", p.Name,
			c.RuleChangeActivationThreshold, c.MinerConfirmationWindow)
		return makeError(ErrThresholdExceedsWindow, str)
	}

	if c.PowLimit == nil || blockchain.BigToCompact(c.PowLimit) != c.PowLimitBits {
		str := fmt.Sprintf("%s proof of work limit bits %08x do not encode "+
			"the proof of work limit %064x", p.Name, c.PowLimitBits,
			c.PowLimit)
		return makeError(ErrPowLimitMismatch, str)
	}
	if p.GenesisBlock != nil {
		genesisTarget := blockchain.CompactToBig(p.GenesisBlock.Header.Bits)
		if genesisTarget.Cmp(c.PowLimit) > 0 {
			str := fmt.Sprintf("%s genesis difficulty bits %08x exceed the "+
				"proof of work limit %08x", p.Name,
				p.GenesisBlock.Header.Bits, c.PowLimitBits)
			return makeError(ErrPowLimitMismatch, str)
		}
	}

	return validateDeployments(p)
}

// validateDeployments ensures every deployment has a well formed window and
// signals on its own version bit.
func validateDeployments(p *Params) error {
	var usedBits uint32
	for i := range p.Consensus.Deployments {
		id := DeploymentID(i)
		deployment := &p.Consensus.Deployments[i]
		if deployment.BitNumber > maxDeploymentBit {
			str := fmt.Sprintf("%s deployment %s signals on bit %d which is "+
				"above %d", p.Name, id, deployment.BitNumber,
				maxDeploymentBit)
			return makeError(ErrInvalidDeploymentBit, str)
		}
		bit := uint32(1) << deployment.BitNumber
		if usedBits&bit != 0 {
			str := fmt.Sprintf("%s deployment %s signals on bit %d which "+
				"is already in use", p.Name, id, deployment.BitNumber)
			return makeError(ErrInvalidDeploymentBit, str)
		}
		usedBits |= bit

		err := validateDeploymentWindow(id, deployment.StartTime,
			deployment.Timeout)
		if err != nil {
			return err
		}
	}
	return nil
}

// validateSeeds ensures the seeds of a network can be dialed.  DNS seeds must
// be IP literals or valid host names and fixed seeds need an address and a
// port.
func validateSeeds(p *Params) error {
	for _, seed := range p.DNSSeeds {
		if net.ParseIP(seed.Host) != nil {
			continue
		}
		if _, err := idna.Lookup.ToASCII(seed.Host); err != nil {
			str := fmt.Sprintf("%s DNS seed %q is not a valid host name: %v",
				p.Name, seed.Host, err)
			return makeError(ErrInvalidSeed, str)
		}
	}
	for _, seed := range p.FixedSeeds {
		if seed.IP == nil || seed.Port == 0 {
			str := fmt.Sprintf("%s fixed seed %v has no address or port",
				p.Name, seed)
			return makeError(ErrInvalidSeed, str)
		}
	}
	return nil
}

// validateParams performs all of the single network checks.
func validateParams(p *Params) error {
	if err := validateConsensus(p); err != nil {
		return err
	}
	if err := validateCheckpoints(p); err != nil {
		return err
	}
	return validateSeeds(p)
}

// validateNetworks ensures the networks can be told apart from each other on
// the wire and that only one of them disables retargeting.
func validateNetworks(networks []*Params) error {
	names := make(map[string]struct{}, len(networks))
	nets := make(map[[4]byte]string, len(networks))
	ports := make(map[string]string, len(networks))
	var noRetarget []string
	for _, p := range networks {
		if _, ok := names[p.Name]; ok {
			str := fmt.Sprintf("network name %q is defined more than once",
				p.Name)
			return makeError(ErrDuplicateNet, str)
		}
		names[p.Name] = struct{}{}

		magic := p.MagicBytes()
		if other, ok := nets[magic]; ok {
			str := fmt.Sprintf("%s and %s share magic bytes %x", other,
				p.Name, magic)
			return makeError(ErrDuplicateNet, str)
		}
		nets[magic] = p.Name

		if other, ok := ports[p.DefaultPort]; ok {
			str := fmt.Sprintf("%s and %s share default port %s", other,
				p.Name, p.DefaultPort)
			return makeError(ErrDuplicateNet, str)
		}
		ports[p.DefaultPort] = p.Name

		if p.Consensus.NoRetargeting {
			noRetarget = append(noRetarget, p.Name)
		}
	}
	if len(noRetarget) > 1 {
		str := fmt.Sprintf("retargeting is disabled on more than one "+
			"network: %v", noRetarget)
		return makeError(ErrMultipleNoRetarget, str)
	}
	return nil
}

func init() {
	registry, err := NewRegistry()
	if err != nil {
		panic(fmt.Sprintf("invalid chain parameters: %v", err))
	}
	defaultRegistry = registry
}
