// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestRegTestGenesisBlock tests the genesis block of the regression test
// network for validity by checking the encoded bytes and hashes.
func TestRegTestGenesisBlock(t *testing.T) {
	genesisBlockBytes, _ := hex.DecodeString("01000000000000000000000000000000000000000000000000000000000000" +
		"0000000000c2928f86534116ec89c1cc651082c00e67d9db2b6ba664e2e6e0" +
		"8733138d0e1fd51ef461ffff7f200000000001010000000100000000000000" +
		"00000000000000000000000000000000000000000000000000ffffffff4804" +
		"ffff001d0104404e592054696d65732032382f4f63742f3230323220556b72" +
		"61696e6520507265736964656e742043617574696f6e7320416761696e7374" +
		"205761722054616c6bffffffff0100000000000000004341042384710fa68a" +
		"d25023690c80f3468c8f13f8daad8c857fb6798bc4a8e4d3eb4b10f4d460ad" +
		"f08dce601aaf0f470b3cfe1ab7770b4acf21b179c45070ac7b03a9ac000000" +
		"00")

	// Encode the genesis block to raw bytes.
	params := RegTestParams()
	var buf bytes.Buffer
	err := params.GenesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("TestRegTestGenesisBlock: %v", err)
	}

	// Ensure the encoded block matches the expected bytes.
	if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
		t.Fatalf("TestRegTestGenesisBlock: Genesis block does not appear valid - "+
			"got %v, want %v", spew.Sdump(buf.Bytes()),
			spew.Sdump(genesisBlockBytes))
	}

	// Check hash of the block against expected hash.
	hash := params.GenesisBlock.BlockHash()
	if !params.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestRegTestGenesisBlock: Genesis block hash does not "+
			"appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(params.GenesisHash))
	}
	if hash.String() != regTestGenesisHash {
		t.Fatalf("TestRegTestGenesisBlock: unexpected genesis hash - got %v, "+
			"want %v", hash, regTestGenesisHash)
	}
	if params.GenesisMerkleRoot.String() != genesisMerkleRoot {
		t.Fatalf("TestRegTestGenesisBlock: unexpected merkle root - got %v, "+
			"want %v", params.GenesisMerkleRoot, genesisMerkleRoot)
	}
}
