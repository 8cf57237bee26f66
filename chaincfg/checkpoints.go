// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointAt returns the checkpoint at the given height or nil when there is
// none.
func (p *Params) CheckpointAt(height int32) *Checkpoint {
	i := sort.Search(len(p.Checkpoints), func(i int) bool {
		return p.Checkpoints[i].Height >= height
	})
	if i < len(p.Checkpoints) && p.Checkpoints[i].Height == height {
		return &p.Checkpoints[i]
	}
	return nil
}

// VerifyCheckpoint returns whether a block with the given hash may exist at
// height.  It is only false when a checkpoint exists at that height and its
// hash differs.
func (p *Params) VerifyCheckpoint(height int32, hash *chainhash.Hash) bool {
	checkpoint := p.CheckpointAt(height)
	if checkpoint == nil {
		return true
	}
	return checkpoint.Hash.IsEqual(hash)
}

// LatestCheckpoint returns the most recent checkpoint or nil when the network
// has none.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	return &p.Checkpoints[len(p.Checkpoints)-1]
}

// validateCheckpoints ensures the checkpoints are strictly increasing by
// height and begin with the genesis block.
func validateCheckpoints(p *Params) error {
	if len(p.Checkpoints) == 0 {
		return nil
	}

	first := p.Checkpoints[0]
	if first.Height != 0 || first.Hash == nil || *first.Hash != p.GenesisHash {
		str := fmt.Sprintf("%s first checkpoint (height %d) does not commit "+
			"to genesis block %v", p.Name, first.Height, p.GenesisHash)
		return makeError(ErrCheckpointGenesis, str)
	}

	for i := 1; i < len(p.Checkpoints); i++ {
		prev, cur := p.Checkpoints[i-1], p.Checkpoints[i]
		if cur.Height <= prev.Height {
			str := fmt.Sprintf("%s checkpoint at height %d follows "+
				"checkpoint at height %d", p.Name, cur.Height, prev.Height)
			return makeError(ErrCheckpointOrder, str)
		}
		if cur.Hash == nil {
			str := fmt.Sprintf("%s checkpoint at height %d has no hash",
				p.Name, cur.Height)
			return makeError(ErrCheckpointOrder, str)
		}
	}
	return nil
}
