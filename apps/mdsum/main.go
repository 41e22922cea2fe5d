//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/mdhash"
	"github.com/markkurossi/mdhash/manifest"
	"github.com/markkurossi/mdhash/timing"
	"github.com/markkurossi/mdhash/utils"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errFailed = errors.New("verification failed")

func main() {
	log.SetFlags(0)

	params := utils.NewParams()

	fAlg := flag.String("a", params.Algorithm, "hash algorithm")
	fRuminate := flag.Int("r", 0, "re-hash the digest `n` more times")
	fTangle := flag.Uint64("t", 0, "apply `n` tangle rounds before digest")
	fUpper := flag.Bool("u", false, "uppercase hexadecimal output")
	fWorkers := flag.Int("j", params.Workers, "number of digest workers")
	fDB := flag.String("db", "", "digest manifest `file`")
	fUpdate := flag.Bool("update", false, "store digests into manifest")
	fCheck := flag.Bool("check", false, "verify files against manifest")
	fSums := flag.String("c", "", "verify digests listed in `file`")
	fWatch := flag.Bool("watch", false, "re-digest files when they change")
	fBench := flag.Int("bench", 0, "benchmark algorithms with `size` bytes")
	fList := flag.Bool("list", false, "list algorithms")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	params.Algorithm = *fAlg
	params.Rumination = *fRuminate
	params.Tangle = *fTangle
	params.Upper = *fUpper
	params.Workers = *fWorkers
	params.Verbose = *fVerbose
	defer params.Close()

	logger := utils.NewLogger(os.Stderr, params.Verbose)

	if params.Rumination < 0 || params.Workers < 1 {
		fmt.Fprintf(os.Stderr, "invalid -r or -j value\n")
		os.Exit(exitUsage)
	}
	if *fList {
		listAlgorithms()
		return
	}
	if *fBench > 0 {
		benchmark(os.Stdout, *fBench, params.Rumination)
		return
	}

	alg, err := mdhash.Lookup(params.Algorithm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(exitUsage)
	}
	if (*fUpdate || *fCheck) && len(*fDB) == 0 {
		fmt.Fprintf(os.Stderr, "-update and -check require -db\n")
		os.Exit(exitUsage)
	}
	if len(*fDB) > 0 {
		params.Manifest, err = manifest.Open(*fDB)
		if err != nil {
			log.Fatal(err)
		}
	}

	args := flag.Args()
	if len(args) == 0 && len(*fSums) == 0 {
		args = []string{"-"}
	}

	t := timing.NewTiming()

	switch {
	case len(*fSums) > 0:
		err = checkSums(params, logger, alg, *fSums)
	case *fWatch:
		err = watch(params, logger, alg, args)
	default:
		var size timing.ByteSize
		size, err = run(params, logger, alg, args, *fCheck, *fUpdate)
		t.Sample(label(alg, params.Rumination), size)
	}
	if params.Verbose {
		t.Print(os.Stderr)
	}
	if err != nil {
		params.Close()
		os.Exit(exitFailure)
	}
}

func listAlgorithms() {
	for _, alg := range mdhash.Algorithms() {
		fmt.Printf("%-12s %-12s %3d bits\n", alg.Name, alg.Title, alg.Bits)
	}
	fmt.Printf("%-12s %-12s   t bits\n", "sha512/<t>", "SHA-512/t")
}

// run digests the files and prints or verifies their digests.
func run(params *utils.Params, logger *utils.Logger, alg *mdhash.Algorithm,
	files []string, check, update bool) (timing.ByteSize, error) {

	var size timing.ByteSize
	var failed bool

	for _, r := range digestFiles(params, alg, files) {
		if r.err != nil {
			logger.Errorf(utils.Point{Source: r.path}, "%s", r.err)
			failed = true
			continue
		}
		size += timing.ByteSize(r.size)

		if check {
			err := params.Manifest.Verify(alg.Name, r.path, r.digest)
			if err != nil {
				if errors.Is(err, manifest.ErrNotFound) {
					logger.Warningf(utils.Point{Source: r.path},
						"not in manifest")
				} else {
					fmt.Printf("%s: FAILED\n", r.path)
					logger.Debugf("%s\n", err)
				}
				failed = true
				continue
			}
			fmt.Printf("%s: OK\n", r.path)
			continue
		}

		fmt.Println(format(params, alg, r))

		if update {
			if err := params.Manifest.Put(r.entry(alg)); err != nil {
				logger.Errorf(utils.Point{Source: r.path}, "%s", err)
				failed = true
			}
		}
	}
	if failed {
		return size, errFailed
	}
	return size, nil
}
