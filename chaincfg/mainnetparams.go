// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// MainNet represents the main Papicoin network.
const MainNet wire.BitcoinNet = 0x2af6cabd

// mainGenesisHash is the hash of the genesis block of the main network.
const mainGenesisHash = "9129aa2517de90550d450d57be9a9bc2da9c6ed56bc8805cbb71747ccc734a1d"

// MainNetParams returns the network parameters for the main Papicoin network.
// It panics if the genesis block does not match the deployed network.
func MainNetParams() *Params {
	params, err := newMainNetParams()
	if err != nil {
		panic(err)
	}
	return params
}

func newMainNetParams() (*Params, error) {
	// mainPowLimit is the highest proof of work value a Papicoin block can
	// have for the main network.  It is the value 2^236 - 1.
	mainPowLimit := hexToBigInt("00000fffffffffffffffffffffffffffffffffffff" +
		"ffffffffffffffffffffff")

	genesisBlock, err := createNetworkGenesisBlock(1643388629, 2000609473,
		0x1e0ffff0)
	if err != nil {
		return nil, err
	}
	genesisHash, err := verifyGenesis("main", genesisBlock, mainGenesisHash,
		genesisMerkleRoot)
	if err != nil {
		return nil, err
	}

	return &Params{
		Name:             "main",
		Net:              MainNet,
		DefaultPort:      "44774",
		PruneAfterHeight: 100000,

		Consensus: ConsensusParams{
			SubsidyHalvingInterval: 1155801,
			PowLimit:               mainPowLimit,
			PowLimitBits:           0x1e0fffff,
			TargetTimespan:         time.Minute * 5,
			TargetTimePerBlock:     time.Second * 30,
			ReduceMinDifficulty:    false,
			NoRetargeting:          false,

			// Consensus rule change deployments.
			//
			// The miner confirmation window is independent of the
			// retarget interval.
			RuleChangeActivationThreshold: 6048, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       8064,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {BitNumber: 28},
				DeploymentCSV:       {BitNumber: 0},
				DeploymentSegwit:    {BitNumber: 1},
			},

			// Not yet set for the main network.  Operators may supply
			// their own values at startup.
			MinimumChainWork:   nil,
			DefaultAssumeValid: nil,
		},

		GenesisBlock:      genesisBlock,
		GenesisHash:       genesisHash,
		GenesisMerkleRoot: genesisBlock.Header.MerkleRoot,

		// Note that of those with the service bits flag, most only
		// support a subset of possible options.
		DNSSeeds: []DNSSeed{
			{"89.58.28.213", true},
			{"185.163.118.233", true},
			{"188.68.52.16", true},
		},
		// The DNS seed hosts stand in until a fixed seed list is published.
		FixedSeeds: fixedSeeds(44774, "89.58.28.213", "185.163.118.233",
			"188.68.52.16"),

		// Checkpoints ordered from oldest to newest.
		Checkpoints: []Checkpoint{
			{0, newHashFromStr(mainGenesisHash)},
			{100, newHashFromStr("e5bd71ef221490a87f6c3e9f3316de46445abb38da39e5803817d3d3830874f5")},
			{200, newHashFromStr("67b2f460db93ebaaaeef1f791a5ad85f9e6f6d135028728e0c9eccb8dd0c8a05")},
			{300, newHashFromStr("09abb8a7255d93b973ab69497c4e47946a64ac83aae61035aa9a8be270d792e9")},
			{400, newHashFromStr("cbbb745a9e8ad0a67ce6c4bb65968d1fd72c539d5f3d1f64c6ad7b8fe1575c87")},
			{500, newHashFromStr("07c038e0a83e248c566b77ba23d01d744f3ae040de8971b79f3f9460f880ee79")},
			{600, newHashFromStr("6c2cf5c36b75458bbc60d82e1a67e948448754d2c78e1bea2772a295c1068a35")},
			{700, newHashFromStr("befce2b2d7d5728e5c6e044c16e323b180e1273d881f591cbb9fb9264d88072a")},
			{800, newHashFromStr("fafa750c584c25784dc09c2d6886f33eb360d472d60b5d83725a2f11812f1207")},
			{900, newHashFromStr("be3c351f894d804f626bd91074917b9ba3b6628efa9ec5cf8229ae31855ea6d9")},
			{1000, newHashFromStr("befce2b2d7d5728e5c6e044c16e323b180e1273d881f591cbb9fb9264d88072a")},
		},

		// Data as of the genesis block.
		ChainTxData: ChainTxData{
			Time:    time.Unix(1643388629, 0),
			TxCount: 0,
			TxRate:  0,
		},

		// Address encoding magics
		PubKeyHashAddrID:  55,  // starts with P
		ScriptHashAddrID:  5,   // starts with 3
		ScriptHashAddrID2: 50,  // starts with M
		PrivateKeyID:      176, // starts with 6 (uncompressed) or T (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		MineBlocksOnDemand:       false,
	}, nil
}
