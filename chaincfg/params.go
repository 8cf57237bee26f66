// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"net"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// bigOne is 1 represented as a big.Int.  It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// FixedSeed is a compiled-in peer address used when DNS seeding is unavailable
// or returns nothing.
type FixedSeed struct {
	IP   net.IP
	Port uint16
}

// String returns the seed as a host:port pair.
func (s FixedSeed) String() string {
	return net.JoinHostPort(s.IP.String(), strconv.Itoa(int(s.Port)))
}

// NetAddress returns the seed as a wire network address advertising the
// provided services.
func (s FixedSeed) NetAddress(services wire.ServiceFlag) *wire.NetAddress {
	return wire.NewNetAddressIPPort(s.IP, s.Port, services)
}

// ChainTxData is a snapshot of the transaction count as of a known block.  It
// only feeds sync progress estimates and is never used for validation.
type ChainTxData struct {
	// Time is the timestamp of the block the snapshot was taken at.
	Time time.Time

	// TxCount is the total number of transactions between the genesis block
	// and Time.
	TxCount int64

	// TxRate is the estimated number of transactions per second after Time.
	TxRate float64
}

// EstimateTxCount returns the expected total number of transactions at the
// given time by extrapolating from the snapshot.
func (d *ChainTxData) EstimateTxCount(at time.Time) float64 {
	count := float64(d.TxCount)
	if at.After(d.Time) {
		count += at.Sub(d.Time).Seconds() * d.TxRate
	}
	return count
}

// ConsensusParams houses the rule constants of a network that every node must
// agree on.
type ConsensusParams struct {
	// SubsidyHalvingInterval is the number of blocks between reductions of
	// the block subsidy by half.
	SubsidyHalvingInterval int32

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// ReduceMinDifficulty defines whether the network allows blocks at the
	// minimum difficulty once enough time has passed without finding a
	// block.  This is really only useful for test networks and should not
	// be set on a main network.
	ReduceMinDifficulty bool

	// NoRetargeting disables difficulty adjustment entirely.
	NoRetargeting bool

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// MinimumChainWork is the amount of cumulative work the best chain must
	// exceed before the node considers itself synced.  Nil when unset.
	MinimumChainWork *big.Int

	// DefaultAssumeValid is the block whose ancestors are assumed to have
	// valid scripts.  Nil when unset.
	DefaultAssumeValid *chainhash.Hash
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets.
func (c *ConsensusParams) DifficultyAdjustmentInterval() int64 {
	return int64(c.TargetTimespan / c.TargetTimePerBlock)
}

// ThresholdPercent returns the share of the miner confirmation window that
// must signal for a deployment to lock in.
func (c *ConsensusParams) ThresholdPercent() float64 {
	if c.MinerConfirmationWindow == 0 {
		return 0
	}
	return float64(c.RuleChangeActivationThreshold) * 100 /
		float64(c.MinerConfirmationWindow)
}

// Params defines a Papicoin network by its parameters.  These parameters may be
// used by Papicoin applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PruneAfterHeight is the height below which block data may be
	// discarded when pruning is enabled.
	PruneAfterHeight int32

	// Consensus houses the rules every node on the network enforces.
	Consensus ConsensusParams

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot chainhash.Hash

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are compiled-in peers tried when DNS seeding fails.
	FixedSeeds []FixedSeed

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// ChainTxData is the transaction count snapshot as of the latest
	// checkpoint.
	ChainTxData ChainTxData

	// Address encoding magics
	PubKeyHashAddrID  byte // First byte of a P2PKH address
	ScriptHashAddrID  byte // First byte of a P2SH address
	ScriptHashAddrID2 byte // First byte of a secondary P2SH address
	PrivateKeyID      byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// MiningRequiresPeers specifies whether mining is refused while the
	// node has no peers.
	MiningRequiresPeers bool

	// DefaultConsistencyChecks enables expensive internal consistency
	// checks by default.
	DefaultConsistencyChecks bool

	// RequireStandard is a mempool param to reject non standard txs
	// instead of accepting and relaying them.
	RequireStandard bool

	// MineBlocksOnDemand specifies whether blocks may be mined on request
	// rather than continuously.
	MineBlocksOnDemand bool
}

// MagicBytes returns the message start bytes in the order they appear on the
// wire.
func (p *Params) MagicBytes() [4]byte {
	var magic [4]byte
	binary.LittleEndian.PutUint32(magic[:], uint32(p.Net))
	return magic
}

// String returns the network name.
func (p *Params) String() string {
	return p.Name
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs. This is only provided for the hard-coded constants
// so errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// hexToBigInt converts the passed hex string into a big integer and will panic
// if there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToBigInt(hexStr string) *big.Int {
	val, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("failed to parse big integer from hex: " + hexStr)
	}
	return val
}

// fixedSeeds returns fixed seeds for the given addresses, all listening on
// port.
func fixedSeeds(port uint16, addrs ...string) []FixedSeed {
	seeds := make([]FixedSeed, 0, len(addrs))
	for _, addr := range addrs {
		ip := net.ParseIP(addr)
		if ip == nil {
			panic(fmt.Sprintf("invalid fixed seed address %q", addr))
		}
		seeds = append(seeds, FixedSeed{IP: ip, Port: port})
	}
	return seeds
}
