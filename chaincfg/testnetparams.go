// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// TestNet represents the public Papicoin test network.
const TestNet wire.BitcoinNet = 0x8ac3fadf

// testGenesisHash is the hash of the genesis block of the test network.
const testGenesisHash = "657c25695adb6efa2aad41289128545356f981c38e098a773b24ff5ff1e5ea8a"

// TestNetParams returns the network parameters for the test currency network.
// This network is sometimes simply called "testnet".  It panics if the genesis
// block does not match the deployed network.
func TestNetParams() *Params {
	params, err := newTestNetParams()
	if err != nil {
		panic(err)
	}
	return params
}

func newTestNetParams() (*Params, error) {
	// testNetPowLimit is the highest proof of work value a Papicoin block
	// can have for the test network.  It is the value 2^236 - 1.
	testNetPowLimit := hexToBigInt("00000fffffffffffffffffffffffffffffffffff" +
		"ffffffffffffffffffffffff")

	genesisBlock, err := createNetworkGenesisBlock(1643388629, 567095,
		0x1e0ffff0)
	if err != nil {
		return nil, err
	}
	genesisHash, err := verifyGenesis("test", genesisBlock, testGenesisHash,
		genesisMerkleRoot)
	if err != nil {
		return nil, err
	}

	return &Params{
		Name:             "test",
		Net:              TestNet,
		DefaultPort:      "44775",
		PruneAfterHeight: 1000,

		Consensus: ConsensusParams{
			SubsidyHalvingInterval: 1155801,
			PowLimit:               testNetPowLimit,
			PowLimitBits:           0x1e0fffff,
			TargetTimespan:         time.Minute * 5,
			TargetTimePerBlock:     time.Second * 30,
			ReduceMinDifficulty:    true,
			NoRetargeting:          false,

			RuleChangeActivationThreshold: 1512, // 75% for testchains
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {BitNumber: 28},
				DeploymentCSV:       {BitNumber: 0},
				DeploymentSegwit:    {BitNumber: 1},
			},

			MinimumChainWork:   nil,
			DefaultAssumeValid: nil,
		},

		GenesisBlock:      genesisBlock,
		GenesisHash:       genesisHash,
		GenesisMerkleRoot: genesisBlock.Header.MerkleRoot,

		// Nodes with support for servicebits filtering should be at the
		// top.
		DNSSeeds: []DNSSeed{
			{"89.58.28.213", true},
			{"185.163.118.233", true},
			{"188.68.52.16", true},
		},
		// The DNS seed hosts stand in until a fixed seed list is published.
		FixedSeeds: fixedSeeds(44775, "89.58.28.213", "185.163.118.233",
			"188.68.52.16"),

		Checkpoints: []Checkpoint{
			{0, newHashFromStr(testGenesisHash)},
		},

		// Data as of the genesis block.
		ChainTxData: ChainTxData{
			Time:    time.Unix(1643388629, 0),
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

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          false,
		MineBlocksOnDemand:       false,
	}, nil
}
