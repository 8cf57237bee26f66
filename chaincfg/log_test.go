// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/decred/slog"
)

// useBufferLogger sets the package logger to a backend that writes
// trace-level logs to the returned buffer.  A function is returned to set the
// logger back to Disabled when finished.
//
// Tests using it must not be parallel since the logger is package-level.
func useBufferLogger() (*bytes.Buffer, func()) {
	var buf bytes.Buffer
	backend := slog.NewBackend(&buf)
	l := backend.Logger("CHCF")
	l.SetLevel(slog.LevelTrace)
	UseLogger(l)
	return &buf, func() {
		UseLogger(slog.Disabled)
	}
}

// TestRegistryLogging ensures building a registry, selecting a network, and
// overriding a deployment are logged at their intended levels.
func TestRegistryLogging(t *testing.T) {
	buf, reset := useBufferLogger()
	defer reset()

	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("unable to create registry: %v", err)
	}
	if err := r.Select("regtest"); err != nil {
		t.Fatalf("unable to select network: %v", err)
	}
	if err := r.OverrideRegTestDeploymentWindow(DeploymentCSV, 0, 1); err != nil {
		t.Fatalf("unable to override deployment: %v", err)
	}

	output := buf.String()
	wantLines := []string{
		"[TRC] CHCF: Verified main genesis block " + mainGenesisHash,
		"[DBG] CHCF: Built test network parameters (genesis " + testGenesisHash + ")",
		"[INF] CHCF: Active network: regtest (genesis " + regTestGenesisHash + ")",
		"[WRN] CHCF: Overriding regtest deployment csv window: start 0, timeout 1",
	}
	for _, want := range wantLines {
		if !strings.Contains(output, want) {
			t.Errorf("log output does not contain %q:\n%s", want, output)
		}
	}
}
