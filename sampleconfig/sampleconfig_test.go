// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	"strings"
	"testing"
)

// TestPapiparams ensures the embedded sample config is present and leaves
// every option commented out.
func TestPapiparams(t *testing.T) {
	sample := Papiparams()
	if !strings.HasPrefix(sample, "[Application Options]") {
		t.Fatal("sample config does not start with the options section")
	}
	for i, line := range strings.Split(sample, "\n") {
		if i == 0 || line == "" {
			continue
		}
		if !strings.HasPrefix(line, ";") {
			t.Errorf("line %d of the sample config is not commented: %q",
				i+1, line)
		}
	}
}
