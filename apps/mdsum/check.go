//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/markkurossi/mdhash"
	"github.com/markkurossi/mdhash/utils"
)

var errMalformed = errors.New("malformed digest line")

type sumLine struct {
	loc    utils.Point
	digest []byte
	path   string
}

// parseSumLine parses a digest list line of the form "digest  path"
// or "digest *path".
func parseSumLine(line string, size int) ([]byte, string, error) {
	idx := strings.IndexByte(line, ' ')
	if idx < 0 || idx+2 > len(line) {
		return nil, "", errMalformed
	}
	digest, err := hex.DecodeString(line[:idx])
	if err != nil || len(digest) != size {
		return nil, "", errMalformed
	}
	switch line[idx+1] {
	case ' ', '*':
	default:
		return nil, "", errMalformed
	}
	path := line[idx+2:]
	if len(path) == 0 {
		return nil, "", errMalformed
	}
	return digest, path, nil
}

func readSums(logger *utils.Logger, alg *mdhash.Algorithm,
	file string) ([]sumLine, error) {

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var result []sumLine
	var malformed bool

	scanner := bufio.NewScanner(f)
	loc := utils.Point{
		Source: file,
	}
	for scanner.Scan() {
		loc.Line++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		digest, path, err := parseSumLine(line, alg.Size)
		if err != nil {
			logger.Warningf(loc, "%s", err)
			malformed = true
			continue
		}
		result = append(result, sumLine{
			loc:    loc,
			digest: digest,
			path:   path,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if malformed {
		return result, errMalformed
	}
	return result, nil
}

// checkSums verifies the digests listed in file.
func checkSums(params *utils.Params, logger *utils.Logger,
	alg *mdhash.Algorithm, file string) error {

	lines, err := readSums(logger, alg, file)
	if err != nil && !errors.Is(err, errMalformed) {
		return logger.Errorf(utils.Point{Source: file}, "%s", err)
	}
	failed := err != nil

	files := make([]string, len(lines))
	for i, line := range lines {
		files[i] = line.path
	}
	for i, r := range digestFiles(params, alg, files) {
		if r.err != nil {
			logger.Errorf(lines[i].loc, "%s: %s", r.path, r.err)
			failed = true
			continue
		}
		if !bytes.Equal(r.digest, lines[i].digest) {
			fmt.Printf("%s: FAILED\n", r.path)
			failed = true
			continue
		}
		fmt.Printf("%s: OK\n", r.path)
	}
	if failed {
		return errFailed
	}
	return nil
}
