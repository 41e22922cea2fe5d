//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/markkurossi/mdhash"
	"github.com/markkurossi/mdhash/manifest"
	"github.com/markkurossi/mdhash/utils"
	"github.com/markkurossi/text/superscript"
)

type result struct {
	path    string
	size    int64
	modTime time.Time
	digest  []byte
	err     error
}

func (r *result) entry(alg *mdhash.Algorithm) *manifest.Entry {
	return &manifest.Entry{
		Path:      r.path,
		Algorithm: alg.Name,
		Size:      r.size,
		ModTime:   r.modTime,
		Digest:    r.digest,
	}
}

// label returns the algorithm title with the number of hash
// applications as a superscript, for example SHA-256³.
func label(alg *mdhash.Algorithm, rumination int) string {
	if rumination == 0 {
		return alg.Title
	}
	return alg.Title + superscript.Itoa(rumination+1)
}

func format(params *utils.Params, alg *mdhash.Algorithm, r *result) string {
	digest := fmt.Sprintf("%x", r.digest)
	if params.Upper {
		digest = strings.ToUpper(digest)
	}
	if params.Verbose {
		return fmt.Sprintf("%s (%s) = %s", label(alg, params.Rumination),
			r.path, digest)
	}
	return fmt.Sprintf("%s  %s", digest, r.path)
}

func digestReader(params *utils.Params, alg *mdhash.Algorithm,
	in io.Reader) ([]byte, int64, error) {

	d := alg.New()
	n, err := d.ReadFrom(in)
	if err != nil {
		return nil, n, err
	}
	d.Tangle(params.Tangle)
	return d.Ruminate(params.Rumination), n, nil
}

func digestFile(params *utils.Params, alg *mdhash.Algorithm,
	path string) *result {

	r := &result{
		path: path,
	}
	if path == "-" {
		r.digest, r.size, r.err = digestReader(params, alg, os.Stdin)
		r.modTime = time.Now()
		return r
	}
	f, err := os.Open(path)
	if err != nil {
		r.err = err
		return r
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		r.err = err
		return r
	}
	if fi.IsDir() {
		r.err = fmt.Errorf("is a directory")
		return r
	}
	r.modTime = fi.ModTime()
	r.digest, r.size, r.err = digestReader(params, alg, f)
	return r
}

// digestFiles digests the files with params.Workers concurrent
// workers. The results are returned in the order of the files.
func digestFiles(params *utils.Params, alg *mdhash.Algorithm,
	files []string) []*result {

	results := make([]*result, len(files))
	jobs := make(chan int)

	workers := params.Workers
	if workers > len(files) {
		workers = len(files)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = digestFile(params, alg, files[idx])
			}
		}()
	}
	for idx := range files {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}
