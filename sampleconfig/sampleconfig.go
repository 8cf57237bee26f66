// Copyright (c) 2017-2022 The Decred developers
// Copyright (c) 2022 The Papicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sampleconfig

import (
	_ "embed"
)

// samplePapiparamsConf is a string containing the commented example config for
// papiparams.
//
//go:embed sample-papiparams.conf
var samplePapiparamsConf string

// Papiparams returns a string containing the commented example config for
// papiparams.
func Papiparams() string {
	return samplePapiparamsConf
}
