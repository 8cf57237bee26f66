// Copyright (c) 2018-2021 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// RegTest represents the regression test network.
const RegTest wire.BitcoinNet = 0xdfcbccbb

// regTestGenesisHash is the hash of the genesis block of the regression test
// network.
const regTestGenesisHash = "2204cf542cefda33e8037b854db105fafb92803df6be7c0df4af4eab98ec6068"

// RegTestParams returns the network parameters for the regression test
// network.  This should not be confused with the public test network.  The
// purpose of this network is primarily for unit tests and RPC server tests.
// Blocks are mined on demand and difficulty never changes.
//
// Since this network is only intended for unit testing, its values are subject
// to change even if it would cause a hard fork.  It panics if the genesis block
// does not match the expected one.
func RegTestParams() *Params {
	params, err := newRegTestParams()
	if err != nil {
		panic(err)
	}
	return params
}

func newRegTestParams() (*Params, error) {
	// regTestPowLimit is the highest proof of work value a Papicoin block
	// can have for the regression test network.  It is the value 2^255 - 1.
	regTestPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	genesisBlock, err := createNetworkGenesisBlock(1643388629, 0, 0x207fffff)
	if err != nil {
		return nil, err
	}
	genesisHash, err := verifyGenesis("regtest", genesisBlock,
		regTestGenesisHash, genesisMerkleRoot)
	if err != nil {
		return nil, err
	}

	return &Params{
		Name:             "regtest",
		Net:              RegTest,
		DefaultPort:      "44776",
		PruneAfterHeight: 1000,

		Consensus: ConsensusParams{
			SubsidyHalvingInterval: 150,
			PowLimit:               regTestPowLimit,
			PowLimitBits:           0x207fffff,
			TargetTimespan:         time.Minute * 5,
			TargetTimePerBlock:     time.Second * 30,
			ReduceMinDifficulty:    true,
			NoRetargeting:          true,

			// Faster than normal for regtest (144 instead of 2016).
			RuleChangeActivationThreshold: 108, // 75% for testchains
			MinerConfirmationWindow:       144,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {BitNumber: 28},
				DeploymentCSV:       {BitNumber: 0},
				DeploymentSegwit:    {BitNumber: 1},
			},

			// The best chain should have at least this much work.
			MinimumChainWork: new(big.Int),

			// By default assume that the signatures in ancestors of this
			// block are valid.
			DefaultAssumeValid: &chainhash.Hash{},
		},

		GenesisBlock:      genesisBlock,
		GenesisHash:       genesisHash,
		GenesisMerkleRoot: genesisBlock.Header.MerkleRoot,

		// NOTE: There must NOT be any seeds.
		DNSSeeds:   nil,
		FixedSeeds: nil,

		Checkpoints: []Checkpoint{
			{0, newHashFromStr(regTestGenesisHash)},
		},

		ChainTxData: ChainTxData{
			Time:    time.Unix(0, 0),
			TxCount: 0,
			TxRate:  0,
		},

		// Address encoding magics
		PubKeyHashAddrID:  117, // starts with p
		ScriptHashAddrID:  196, // starts with 2
		ScriptHashAddrID2: 58,  // starts with Q
		PrivateKeyID:      239, // starts with 9 (uncompressed) or c (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		MiningRequiresPeers:      false,
		DefaultConsistencyChecks: true,
		RequireStandard:          false,
		MineBlocksOnDemand:       true,
	}, nil
}
