//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package utils implements the parameters and the logging facility
// of the mdsum command.
package utils

import (
	"runtime"

	"github.com/markkurossi/mdhash/manifest"
)

// Params specify digest parameters.
type Params struct {
	Verbose bool

	// Algorithm is the registry name of the hash algorithm.
	Algorithm string

	// Rumination specifies how many times the digest is re-hashed.
	Rumination int

	// Tangle specifies how many tangle rounds are applied to the
	// state before the digest is computed.
	Tangle uint64

	// Upper selects uppercase hexadecimal output.
	Upper bool

	// Workers specifies the number of concurrent digest workers.
	Workers int

	// Manifest is the digest database. It is closed by Close.
	Manifest *manifest.DB
}

// NewParams returns new digest params object, initialized with the
// default values.
func NewParams() *Params {
	return &Params{
		Algorithm: "sha256",
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Close closes all open resources.
func (p *Params) Close() {
	if p.Manifest != nil {
		p.Manifest.Close()
		p.Manifest = nil
	}
}
