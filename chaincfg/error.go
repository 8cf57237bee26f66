// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrGenesisMismatch indicates a constructed genesis block hashes to a
	// value other than the hard-coded one for its network.  It is never
	// recoverable since the binary would follow the wrong chain.
	ErrGenesisMismatch = ErrorKind("ErrGenesisMismatch")

	// ErrGenesisScript indicates the genesis coinbase or reward script could
	// not be built from the provided inputs.
	ErrGenesisScript = ErrorKind("ErrGenesisScript")

	// ErrUnknownNetwork indicates a network name that does not match any of
	// the defined networks.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrNotInitialized indicates the active network was requested before
	// one was selected.
	ErrNotInitialized = ErrorKind("ErrNotInitialized")

	// ErrAlreadySelected indicates an attempt to select the active network
	// more than once.
	ErrAlreadySelected = ErrorKind("ErrAlreadySelected")

	// ErrUnknownDeployment indicates a deployment identifier or name that is
	// not defined.
	ErrUnknownDeployment = ErrorKind("ErrUnknownDeployment")

	// ErrInvalidDeploymentWindow indicates a deployment whose start time is
	// after its timeout.
	ErrInvalidDeploymentWindow = ErrorKind("ErrInvalidDeploymentWindow")

	// ErrInvalidDeploymentBit indicates a deployment signals on a version bit
	// that is out of range or shared with another deployment.
	ErrInvalidDeploymentBit = ErrorKind("ErrInvalidDeploymentBit")

	// ErrMalformedDeploymentOverride indicates a deployment override string
	// that is not of the form deployment:start:timeout.
	ErrMalformedDeploymentOverride = ErrorKind("ErrMalformedDeploymentOverride")

	// ErrInvalidSubsidyInterval indicates a non-positive halving interval.
	ErrInvalidSubsidyInterval = ErrorKind("ErrInvalidSubsidyInterval")

	// ErrInvalidRetargetWindow indicates the target timespan is not a whole
	// multiple of the target block spacing.
	ErrInvalidRetargetWindow = ErrorKind("ErrInvalidRetargetWindow")

	// ErrThresholdExceedsWindow indicates a rule change activation threshold
	// larger than the miner confirmation window.
	ErrThresholdExceedsWindow = ErrorKind("ErrThresholdExceedsWindow")

	// ErrPowLimitMismatch indicates the compact proof of work limit does not
	// encode the full limit or the genesis difficulty exceeds the limit.
	ErrPowLimitMismatch = ErrorKind("ErrPowLimitMismatch")

	// ErrCheckpointOrder indicates checkpoints that are not strictly
	// increasing by height.
	ErrCheckpointOrder = ErrorKind("ErrCheckpointOrder")

	// ErrCheckpointGenesis indicates the height zero checkpoint is missing or
	// does not commit to the genesis block.
	ErrCheckpointGenesis = ErrorKind("ErrCheckpointGenesis")

	// ErrInvalidSeed indicates a DNS seed or fixed seed that can't be used
	// for peer discovery.
	ErrInvalidSeed = ErrorKind("ErrInvalidSeed")

	// ErrDuplicateNet indicates two networks share a name, magic bytes, or
	// default port.
	ErrDuplicateNet = ErrorKind("ErrDuplicateNet")

	// ErrMultipleNoRetarget indicates more than one network disables
	// difficulty retargeting.
	ErrMultipleNoRetarget = ErrorKind("ErrMultipleNoRetarget")

	// ErrUnknownHDKeyID indicates an extended private key version that is not
	// used by any defined network.
	ErrUnknownHDKeyID = ErrorKind("ErrUnknownHDKeyID")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to the chain parameters.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
