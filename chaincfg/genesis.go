// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
)

// GenesisTimestamp is the headline embedded in the coinbase of the genesis
// block of every network.
const GenesisTimestamp = "NY Times 28/Oct/2022 Ukraine President Cautions " +
	"Against War Talk"

const (
	// genesisCoinbaseBits is the compact difficulty pushed at the start of
	// the genesis coinbase script.  It predates the network and is not its
	// proof of work limit.
	genesisCoinbaseBits = 486604799

	// genesisCoinbaseTag is the one byte discriminator pushed after the
	// difficulty.
	genesisCoinbaseTag = 0x04
)

// genesisRewardPubKey is the uncompressed public key the genesis reward is
// paid to.
var genesisRewardPubKey = hexDecode("042384710fa68ad25023690c80f3468c8f13" +
	"f8daad8c857fb6798bc4a8e4d3eb4b10f4d460adf08dce601aaf0f470b3cfe1ab7770b" +
	"4acf21b179c45070ac7b03a9")

// genesisMerkleRoot is the merkle root shared by the genesis blocks of all
// networks since they only differ in their headers.
const genesisMerkleRoot = "1f0e8d133387e0e6e264a66b2bdbd9670ec0821065ccc189ec" +
	"164153868f92c2"

// GenesisRewardScript returns the pay-to-pubkey script the genesis reward is
// paid to.
func GenesisRewardScript() []byte {
	script, err := txscript.NewScriptBuilder().
		AddData(genesisRewardPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		panic(err)
	}
	return script
}

// genesisCoinbaseScript returns the signature script of the genesis coinbase
// input.  The tag is added as raw opcodes since the builder converts single
// byte data pushes of small integers to their canonical small integer opcode.
func genesisCoinbaseScript(timestamp string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, genesisCoinbaseTag}).
		AddData([]byte(timestamp)).
		Script()
}

// CreateGenesisBlock assembles the first block of a chain.  The block holds a
// single coinbase transaction whose input commits to timestamp and whose only
// output pays reward to rewardScript.  The header has no previous block and
// commits to the coinbase through its merkle root.
//
// The output of the coinbase can never be spent since it is not added to the
// set of unspent outputs.  The function has no side effects so the same inputs
// always produce the same block.
func CreateGenesisBlock(timestamp string, rewardScript []byte,
	blockTime time.Time, nonce, bits uint32, version int32,
	reward int64) (*wire.MsgBlock, error) {

	sigScript, err := genesisCoinbaseScript(timestamp)
	if err != nil {
		str := fmt.Sprintf("unable to build genesis coinbase script: %v", err)
		return nil, makeError(ErrGenesisScript, str)
	}

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		// Fully null.
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(wire.NewTxOut(reward, rewardScript))

	merkles := blockchain.BuildMerkleTreeStore(
		[]*btcutil.Tx{btcutil.NewTx(coinbase)}, false)

	block := wire.NewMsgBlock(&wire.BlockHeader{
		Version:    version,
		PrevBlock:  chainhash.Hash{}, // All zero.
		MerkleRoot: *merkles[len(merkles)-1],
		Timestamp:  blockTime,
		Bits:       bits,
		Nonce:      nonce,
	})
	if err := block.AddTransaction(coinbase); err != nil {
		return nil, err
	}
	return block, nil
}

// createNetworkGenesisBlock builds the genesis block of a network from the
// header fields that differ between networks.
func createNetworkGenesisBlock(unixTime int64, nonce, bits uint32) (*wire.MsgBlock, error) {
	return CreateGenesisBlock(GenesisTimestamp, GenesisRewardScript(),
		time.Unix(unixTime, 0), nonce, bits, 1, 0)
}

// verifyGenesis ensures the genesis block of the named network hashes to the
// expected values and returns its block hash.
func verifyGenesis(network string, block *wire.MsgBlock, wantHash,
	wantMerkleRoot string) (chainhash.Hash, error) {

	merkleRoot := block.Header.MerkleRoot
	if merkleRoot != *newHashFromStr(wantMerkleRoot) {
		str := fmt.Sprintf("%s genesis merkle root is %v, expected %s",
			network, merkleRoot, wantMerkleRoot)
		return chainhash.Hash{}, makeError(ErrGenesisMismatch, str)
	}

	hash := block.BlockHash()
	if hash != *newHashFromStr(wantHash) {
		str := fmt.Sprintf("%s genesis block hash is %v, expected %s",
			network, hash, wantHash)
		return chainhash.Hash{}, makeError(ErrGenesisMismatch, str)
	}

	log.Tracef("Verified %s genesis block %v", network, hash)
	return hash, nil
}
