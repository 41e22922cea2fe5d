//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/markkurossi/mdhash"
	"github.com/markkurossi/mdhash/utils"
)

// settle is the time a file must stay unmodified before it is
// digested again.
const settle = 200 * time.Millisecond

// watch prints the digests of files and digests them again whenever
// they change. It returns when the process is interrupted.
func watch(params *utils.Params, logger *utils.Logger,
	alg *mdhash.Algorithm, files []string) error {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return logger.Errorf(utils.Point{Source: "watch"}, "%s", err)
	}
	defer watcher.Close()

	for _, file := range files {
		if err := watcher.Add(file); err != nil {
			return logger.Errorf(utils.Point{Source: file}, "%s", err)
		}
	}
	for _, r := range digestFiles(params, alg, files) {
		report(params, logger, alg, r)
	}
	logger.Debugf("watching %d files\n", len(files))

	pending := make(map[string]bool)
	timer := time.NewTimer(settle)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				pending[event.Name] = true
				timer.Reset(settle)
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Warningf(utils.Point{Source: event.Name}, "%s",
					event.Op)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warningf(utils.Point{Source: "watch"}, "%s", err)

		case <-timer.C:
			var changed []string
			for name := range pending {
				changed = append(changed, name)
			}
			clear(pending)
			for _, r := range digestFiles(params, alg, changed) {
				report(params, logger, alg, r)
			}
		}
	}
}

func report(params *utils.Params, logger *utils.Logger,
	alg *mdhash.Algorithm, r *result) {

	if r.err != nil {
		logger.Errorf(utils.Point{Source: r.path}, "%s", r.err)
		return
	}
	fmt.Println(format(params, alg, r))
	if params.Manifest != nil {
		if err := params.Manifest.Put(r.entry(alg)); err != nil {
			logger.Errorf(utils.Point{Source: r.path}, "%s", err)
		}
	}
}
