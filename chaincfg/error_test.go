// Copyright (c) 2020-2021 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrGenesisMismatch, "ErrGenesisMismatch"},
		{ErrGenesisScript, "ErrGenesisScript"},
		{ErrUnknownNetwork, "ErrUnknownNetwork"},
		{ErrNotInitialized, "ErrNotInitialized"},
		{ErrAlreadySelected, "ErrAlreadySelected"},
		{ErrUnknownDeployment, "ErrUnknownDeployment"},
		{ErrInvalidDeploymentWindow, "ErrInvalidDeploymentWindow"},
		{ErrInvalidDeploymentBit, "ErrInvalidDeploymentBit"},
		{ErrMalformedDeploymentOverride, "ErrMalformedDeploymentOverride"},
		{ErrInvalidSubsidyInterval, "ErrInvalidSubsidyInterval"},
		{ErrInvalidRetargetWindow, "ErrInvalidRetargetWindow"},
		{ErrThresholdExceedsWindow, "ErrThresholdExceedsWindow"},
		{ErrPowLimitMismatch, "ErrPowLimitMismatch"},
		{ErrCheckpointOrder, "ErrCheckpointOrder"},
		{ErrCheckpointGenesis, "ErrCheckpointGenesis"},
		{ErrInvalidSeed, "ErrInvalidSeed"},
		{ErrDuplicateNet, "ErrDuplicateNet"},
		{ErrMultipleNoRetarget, "ErrMultipleNoRetarget"},
		{ErrUnknownHDKeyID, "ErrUnknownHDKeyID"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrUnknownNetwork == ErrUnknownNetwork",
		err:       ErrUnknownNetwork,
		target:    ErrUnknownNetwork,
		wantMatch: true,
		wantAs:    ErrUnknownNetwork,
	}, {
		name:      "Error.ErrUnknownNetwork == ErrUnknownNetwork",
		err:       makeError(ErrUnknownNetwork, ""),
		target:    ErrUnknownNetwork,
		wantMatch: true,
		wantAs:    ErrUnknownNetwork,
	}, {
		name:      "Error.ErrUnknownNetwork == Error.ErrUnknownNetwork",
		err:       makeError(ErrUnknownNetwork, ""),
		target:    makeError(ErrUnknownNetwork, ""),
		wantMatch: true,
		wantAs:    ErrUnknownNetwork,
	}, {
		name:      "ErrGenesisMismatch != ErrUnknownNetwork",
		err:       ErrGenesisMismatch,
		target:    ErrUnknownNetwork,
		wantMatch: false,
		wantAs:    ErrGenesisMismatch,
	}, {
		name:      "Error.ErrGenesisMismatch != ErrUnknownNetwork",
		err:       makeError(ErrGenesisMismatch, ""),
		target:    ErrUnknownNetwork,
		wantMatch: false,
		wantAs:    ErrGenesisMismatch,
	}, {
		name:      "ErrGenesisMismatch != Error.ErrUnknownNetwork",
		err:       ErrGenesisMismatch,
		target:    makeError(ErrUnknownNetwork, ""),
		wantMatch: false,
		wantAs:    ErrGenesisMismatch,
	}, {
		name:      "Error.ErrGenesisMismatch != Error.ErrUnknownNetwork",
		err:       makeError(ErrGenesisMismatch, ""),
		target:    makeError(ErrUnknownNetwork, ""),
		wantMatch: false,
		wantAs:    ErrGenesisMismatch,
	}, {
		name:      "Error.ErrAlreadySelected != io.EOF",
		err:       makeError(ErrAlreadySelected, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrAlreadySelected,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
