// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sync"
)

// defaultRegistry holds the parameters of every network for the process.  It
// is built by the package init function.
var defaultRegistry *Registry

// Registry owns the parameters of the main, test, and regression test networks
// and tracks which of them is active.
//
// All networks are built and validated when the registry is created.  The
// active network is chosen once with Select and is never changed afterwards,
// so it may be read from any number of goroutines started after selection
// without further synchronization.
type Registry struct {
	networks []*Params
	byName   map[string]*Params
	regTest  *Params

	selectOnce sync.Once
	active     *Params

	hdPrivToPubKeyIDs map[[4]byte][]byte
	pubKeyHashAddrIDs map[byte]struct{}
	scriptHashAddrIDs map[byte]struct{}
}

// NewRegistry builds the parameters for all networks and validates them.  An
// error means the compiled-in parameters are wrong and the process must not
// continue.
func NewRegistry() (*Registry, error) {
	constructors := []func() (*Params, error){
		newMainNetParams,
		newTestNetParams,
		newRegTestParams,
	}

	r := &Registry{
		byName:            make(map[string]*Params, len(constructors)),
		hdPrivToPubKeyIDs: make(map[[4]byte][]byte),
		pubKeyHashAddrIDs: make(map[byte]struct{}),
		scriptHashAddrIDs: make(map[byte]struct{}),
	}
	for _, newParams := range constructors {
		params, err := newParams()
		if err != nil {
			return nil, err
		}
		if err := validateParams(params); err != nil {
			return nil, err
		}
		r.networks = append(r.networks, params)
		r.byName[params.Name] = params

		r.pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
		r.scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
		r.scriptHashAddrIDs[params.ScriptHashAddrID2] = struct{}{}
		r.hdPrivToPubKeyIDs[params.HDPrivateKeyID] = params.HDPublicKeyID[:]

		log.Debugf("Built %s network parameters (genesis %v)", params.Name,
			params.GenesisHash)
	}
	if err := validateNetworks(r.networks); err != nil {
		return nil, err
	}
	r.regTest = r.byName["regtest"]

	return r, nil
}

// ParamsFor returns the parameters of the network with exactly the given
// name.
func (r *Registry) ParamsFor(name string) (*Params, error) {
	params, ok := r.byName[name]
	if !ok {
		str := fmt.Sprintf("unknown network %q, must be one of %v", name,
			r.Names())
		return nil, makeError(ErrUnknownNetwork, str)
	}
	return params, nil
}

// Names returns the names of all networks.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.networks))
	for _, params := range r.networks {
		names = append(names, params.Name)
	}
	return names
}

// Networks returns the parameters of all networks ordered main, test,
// regtest.
func (r *Registry) Networks() []*Params {
	networks := make([]*Params, len(r.networks))
	copy(networks, r.networks)
	return networks
}

// Select makes the named network the active one.  It may only succeed once.
func (r *Registry) Select(name string) error {
	params, err := r.ParamsFor(name)
	if err != nil {
		return err
	}

	selected := false
	r.selectOnce.Do(func() {
		r.active = params
		selected = true
	})
	if !selected {
		str := fmt.Sprintf("cannot select network %s: network %s is already "+
			"active", name, r.active.Name)
		return makeError(ErrAlreadySelected, str)
	}

	log.Infof("Active network: %s (genesis %v)", params.Name,
		params.GenesisHash)
	return nil
}

// Active returns the parameters of the selected network.
//
// It panics when no network has been selected since that can only be caused
// by a startup ordering defect.
func (r *Registry) Active() *Params {
	if r.active == nil {
		panic(makeError(ErrNotInitialized, "active network requested "+
			"before a network was selected"))
	}
	return r.active
}

// OverrideRegTestDeploymentWindow replaces the activation window of a
// deployment on the regression test network.  No other network can be
// modified.
//
// This is only intended for test setup and must be done before the parameters
// are shared with other goroutines.
func (r *Registry) OverrideRegTestDeploymentWindow(id DeploymentID, startTime,
	timeout int64) error {

	if id >= DefinedDeployments {
		str := fmt.Sprintf("unknown deployment id %d", uint8(id))
		return makeError(ErrUnknownDeployment, str)
	}
	if err := validateDeploymentWindow(id, startTime, timeout); err != nil {
		return err
	}

	deployment := &r.regTest.Consensus.Deployments[id]
	deployment.StartTime = startTime
	deployment.Timeout = timeout

	log.Warnf("Overriding %s deployment %s window: start %d, timeout %d",
		r.regTest.Name, id, startTime, timeout)
	return nil
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not used by any network, the ErrUnknownHDKeyID error will be returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		str := fmt.Sprintf("extended key id %x is not 4 bytes", id)
		return nil, makeError(ErrUnknownHDKeyID, str)
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := r.hdPrivToPubKeyIDs[key]
	if !ok {
		str := fmt.Sprintf("unknown extended private key id %x", id)
		return nil, makeError(ErrUnknownHDKeyID, str)
	}
	return pubBytes, nil
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any network.
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	_, ok := r.pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any network.
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	_, ok := r.scriptHashAddrIDs[id]
	return ok
}

// ParamsFor returns the process-wide parameters of the named network.
func ParamsFor(name string) (*Params, error) {
	return defaultRegistry.ParamsFor(name)
}

// SelectNetwork makes the named network the active one for the process.  It
// must be called exactly once during startup.
func SelectNetwork(name string) error {
	return defaultRegistry.Select(name)
}

// ActiveParams returns the parameters of the network chosen with
// SelectNetwork.  It panics if no network has been selected.
func ActiveParams() *Params {
	return defaultRegistry.Active()
}

// OverrideRegTestDeploymentWindow replaces the activation window of a
// deployment on the process-wide regression test network.
func OverrideRegTestDeploymentWindow(id DeploymentID, startTime, timeout int64) error {
	return defaultRegistry.OverrideRegTestDeploymentWindow(id, startTime, timeout)
}

// Networks returns the process-wide parameters of all networks.
func Networks() []*Params {
	return defaultRegistry.Networks()
}

// HDPrivateKeyToPublicKeyID returns the extended public key id paired with the
// given extended private key id on any network.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	return defaultRegistry.HDPrivateKeyToPublicKeyID(id)
}
