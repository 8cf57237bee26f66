// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/base58"
)

// Base58Type identifies the kind of data a base58 prefix is prepended to.
type Base58Type int

// These constants define the base58 prefix kinds of a network.
const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	ScriptAddress2
	SecretKey
	ExtPublicKey
	ExtSecretKey

	numBase58Types
)

// base58TypeStrings is a map of base58 types back to their constant names for
// pretty printing.
var base58TypeStrings = map[Base58Type]string{
	PubKeyAddress:  "PubKeyAddress",
	ScriptAddress:  "ScriptAddress",
	ScriptAddress2: "ScriptAddress2",
	SecretKey:      "SecretKey",
	ExtPublicKey:   "ExtPublicKey",
	ExtSecretKey:   "ExtSecretKey",
}

// String returns the Base58Type as a human-readable name.
func (t Base58Type) String() string {
	if s, ok := base58TypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Base58Type (%d)", int(t))
}

// payloadLen returns the length of the data that follows the prefix.
func (t Base58Type) payloadLen() int {
	switch t {
	case PubKeyAddress, ScriptAddress, ScriptAddress2:
		return 20
	case SecretKey:
		return 32
	case ExtPublicKey, ExtSecretKey:
		// Depth, parent fingerprint, child number, chain code, and key.
		return 1 + 4 + 4 + 32 + 33
	}
	return 0
}

// Base58Types returns all base58 prefix kinds in definition order.
func Base58Types() []Base58Type {
	types := make([]Base58Type, 0, numBase58Types)
	for t := PubKeyAddress; t < numBase58Types; t++ {
		types = append(types, t)
	}
	return types
}

// Base58Prefix returns the prefix bytes of the given kind for the network or
// nil for an unknown kind.
func (p *Params) Base58Prefix(t Base58Type) []byte {
	switch t {
	case PubKeyAddress:
		return []byte{p.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{p.ScriptHashAddrID}
	case ScriptAddress2:
		return []byte{p.ScriptHashAddrID2}
	case SecretKey:
		return []byte{p.PrivateKeyID}
	case ExtPublicKey:
		return p.HDPublicKeyID[:]
	case ExtSecretKey:
		return p.HDPrivateKeyID[:]
	}
	return nil
}

// AddressPrefixLeader returns the leading characters of the base58check
// encoding of prefix followed by payloadLen zero bytes.  It shows which
// characters encoded data of the kind begins with.
func AddressPrefixLeader(prefix []byte, payloadLen int, n int) string {
	b := make([]byte, len(prefix)+payloadLen, len(prefix)+payloadLen+4)
	copy(b, prefix)
	cksum := chainhash.DoubleHashB(b)
	b = append(b, cksum[:4]...)

	encoded := base58.Encode(b)
	if n > len(encoded) {
		n = len(encoded)
	}
	return encoded[:n]
}

// Base58Leader returns the leading characters encoded data of the given kind
// begins with on the network.
func (p *Params) Base58Leader(t Base58Type) string {
	n := 1
	if t == ExtPublicKey || t == ExtSecretKey {
		n = 4
	}
	return AddressPrefixLeader(p.Base58Prefix(t), t.payloadLen(), n)
}
