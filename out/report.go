// Copyright 2017 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of optimization results: iteration
// history files, density plots and STL export of 3D results
package out

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopto/opt"
)

// SaveHistory writes the iteration history as a JSON file
func SaveHistory(dirout, fname string, history []*opt.Record) (err error) {
	b, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal history:\n%v", err)
	}
	io.WriteFileVD(dirout, fname, bytes.NewBuffer(b))
	return
}

// ReadHistory reads an iteration history file written by SaveHistory
func ReadHistory(path string) (history []*opt.Record, err error) {
	if _, err = os.Stat(path); err != nil {
		return nil, chk.Err("cannot read history file %q:\n%v", path, err)
	}
	b := io.ReadFile(path)
	err = json.Unmarshal(b, &history)
	if err != nil {
		return nil, chk.Err("cannot unmarshal history file %q:\n%v", path, err)
	}
	return
}

// SaveDensity writes the final density field as a JSON array
func SaveDensity(dirout, fname string, ρ []float64) (err error) {
	b, err := json.Marshal(ρ)
	if err != nil {
		return chk.Err("cannot marshal density field:\n%v", err)
	}
	io.WriteFileVD(dirout, fname, bytes.NewBuffer(b))
	return
}
