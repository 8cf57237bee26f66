// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/jedib0t/go-pretty/table"
	"github.com/papicoin/papid/chaincfg"
)

// localSettings are node-local values shown beside the compiled-in ones.
// They never modify the network parameters.
type localSettings struct {
	assumeValid      *chainhash.Hash
	minimumChainWork *big.Int
}

// dumpGenesis writes the serialized genesis block of the network as hex.
func dumpGenesis(w io.Writer, params *chaincfg.Params) error {
	var buf bytes.Buffer
	if err := params.GenesisBlock.Serialize(&buf); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, hex.EncodeToString(buf.Bytes()))
	return err
}

// newTable returns a table writer with the style used for all output.
func newTable(header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}

// yesNo returns a human-readable form of b.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// chainWorkString returns the chain work in hex or unset.
func chainWorkString(work *big.Int) string {
	if work == nil {
		return "unset"
	}
	return fmt.Sprintf("0x%064x", work)
}

// hashString returns the hash or unset.
func hashString(hash *chainhash.Hash) string {
	if hash == nil {
		return "unset"
	}
	return hash.String()
}

// localString returns the compiled-in value along with the node-local value
// when one is configured.
func localString(compiled, local string, isSet bool) string {
	if !isSet {
		return compiled
	}
	return fmt.Sprintf("%s (local; compiled-in %s)", local, compiled)
}

// networkTable returns the general and consensus parameters of the network.
func networkTable(params *chaincfg.Params, local *localSettings) table.Writer {
	c := &params.Consensus
	genesis := params.GenesisBlock
	genesisTime := genesis.Header.Timestamp.UTC().Format(time.RFC3339)
	genesisReward := btcutil.Amount(genesis.Transactions[0].TxOut[0].Value)
	magic := params.MagicBytes()

	t := newTable("Parameter", "Value")
	t.AppendRow(table.Row{"Network", params.Name})
	t.AppendRow(table.Row{"Magic bytes", hex.EncodeToString(magic[:])})
	t.AppendRow(table.Row{"Default port", params.DefaultPort})
	t.AppendRow(table.Row{"Prune after height", params.PruneAfterHeight})
	t.AppendRow(table.Row{"Genesis hash", params.GenesisHash})
	t.AppendRow(table.Row{"Genesis merkle root", params.GenesisMerkleRoot})
	t.AppendRow(table.Row{"Genesis time", genesisTime})
	t.AppendRow(table.Row{"Genesis nonce", genesis.Header.Nonce})
	t.AppendRow(table.Row{"Genesis bits", fmt.Sprintf("%08x", genesis.Header.Bits)})
	t.AppendRow(table.Row{"Genesis work", blockchain.CalcWork(genesis.Header.Bits)})
	t.AppendRow(table.Row{"Genesis reward", genesisReward.Format(btcutil.AmountSatoshi)})
	t.AppendRow(table.Row{"Subsidy halving interval", c.SubsidyHalvingInterval})
	t.AppendRow(table.Row{"Proof of work limit", fmt.Sprintf("%064x", c.PowLimit)})
	t.AppendRow(table.Row{"Proof of work limit bits", fmt.Sprintf("%08x", c.PowLimitBits)})
	t.AppendRow(table.Row{"Target timespan", c.TargetTimespan})
	t.AppendRow(table.Row{"Target time per block", c.TargetTimePerBlock})
	t.AppendRow(table.Row{"Difficulty adjustment interval", c.DifficultyAdjustmentInterval()})
	t.AppendRow(table.Row{"Reduce minimum difficulty", yesNo(c.ReduceMinDifficulty)})
	t.AppendRow(table.Row{"No retargeting", yesNo(c.NoRetargeting)})
	t.AppendRow(table.Row{"Rule change activation threshold",
		fmt.Sprintf("%d of %d (%.0f%%)", c.RuleChangeActivationThreshold,
			c.MinerConfirmationWindow, c.ThresholdPercent())})

	minimumChainWork := localString(chainWorkString(c.MinimumChainWork),
		chainWorkString(local.minimumChainWork), local.minimumChainWork != nil)
	assumeValid := localString(hashString(c.DefaultAssumeValid),
		hashString(local.assumeValid), local.assumeValid != nil)
	t.AppendRow(table.Row{"Minimum chain work", minimumChainWork})
	t.AppendRow(table.Row{"Assume valid", assumeValid})

	t.AppendRow(table.Row{"Mining requires peers", yesNo(params.MiningRequiresPeers)})
	t.AppendRow(table.Row{"Default consistency checks", yesNo(params.DefaultConsistencyChecks)})
	t.AppendRow(table.Row{"Require standard", yesNo(params.RequireStandard)})
	t.AppendRow(table.Row{"Mine blocks on demand", yesNo(params.MineBlocksOnDemand)})

	txData := &params.ChainTxData
	t.AppendRow(table.Row{"Chain tx data", fmt.Sprintf("%d txs as of %s at "+
		"%g tx/s", txData.TxCount, txData.Time.UTC().Format(time.RFC3339),
		txData.TxRate)})
	return t
}

// deploymentTable returns the rule change deployments of the network.
func deploymentTable(params *chaincfg.Params) table.Writer {
	t := newTable("Deployment", "Bit", "Start time", "Timeout")
	for i, deployment := range params.Consensus.Deployments {
		t.AppendRow(table.Row{chaincfg.DeploymentID(i), deployment.BitNumber,
			deployment.StartTime, deployment.Timeout})
	}
	return t
}

// prefixTable returns the base58 prefixes of the network along with the
// characters encoded data of each kind begins with.
func prefixTable(params *chaincfg.Params) table.Writer {
	t := newTable("Kind", "Prefix", "Begins with")
	for _, kind := range chaincfg.Base58Types() {
		t.AppendRow(table.Row{kind, hex.EncodeToString(params.Base58Prefix(kind)),
			params.Base58Leader(kind)})
	}
	return t
}

// seedTable returns the DNS and fixed seeds of the network.
func seedTable(params *chaincfg.Params) table.Writer {
	t := newTable("Seed", "Kind", "Filtering")
	for _, seed := range params.DNSSeeds {
		t.AppendRow(table.Row{seed, "dns", yesNo(seed.HasFiltering)})
	}
	for _, seed := range params.FixedSeeds {
		t.AppendRow(table.Row{seed, "fixed", "-"})
	}
	return t
}

// checkpointTable returns the checkpoints of the network.
func checkpointTable(params *chaincfg.Params) table.Writer {
	t := newTable("Height", "Hash")
	for _, checkpoint := range params.Checkpoints {
		t.AppendRow(table.Row{checkpoint.Height, checkpoint.Hash})
	}
	return t
}

// writeDescription writes all parameters of the network as tables.
func writeDescription(w io.Writer, params *chaincfg.Params, local *localSettings) error {
	tables := []table.Writer{
		networkTable(params, local),
		deploymentTable(params),
		prefixTable(params),
		seedTable(params),
		checkpointTable(params),
	}
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}
	}
	return nil
}
