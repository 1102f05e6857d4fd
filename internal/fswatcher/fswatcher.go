// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

// Package fswatcher re-runs a callback when watched registry files change
// on disk. Watches are placed on the parent directories rather than the
// files themselves: editors and Kubernetes-style volume mounts replace
// files by rename, which invalidates file-level inotify watches. Content
// hashes distinguish real changes from directory noise.
package fswatcher

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FSWatcher watches a set of files and invokes a callback whenever any of
// their contents change.
type FSWatcher struct {
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// New starts watching the given files and calls onChange every time one of
// them is modified. The returned watcher must be closed by the caller.
func New(paths []string, onChange func(), logger *zap.Logger) (*FSWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fsw := &FSWatcher{
		watcher: watcher,
		logger:  logger,
	}

	fileHashes := make(map[string]string)
	uniqueDirs := make(map[string]bool)

	for _, p := range paths {
		if p == "" {
			continue
		}
		h, err := hashFile(p)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		fileHashes[p] = h
		dir := path.Dir(p)
		if !uniqueDirs[dir] {
			if err := fsw.watcher.Add(dir); err != nil {
				watcher.Close()
				return nil, err
			}
			uniqueDirs[dir] = true
		}
	}

	go fsw.run(fileHashes, onChange)
	return fsw, nil
}

// Close closes the watcher.
func (f *FSWatcher) Close() error {
	return f.watcher.Close()
}

func (f *FSWatcher) run(fileHashes map[string]string, onChange func()) {
	for {
		select {
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			changed := false
			for file, hash := range fileHashes {
				if modified, newHash := f.isModified(file, hash); modified {
					fileHashes[file] = newHash
					changed = true
				}
			}
			if changed {
				onChange()
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.logger.Error("file watcher failure", zap.Error(err))
		}
	}
}

// isModified returns true if the file content has changed since the last
// recorded hash.
func (f *FSWatcher) isModified(file string, previousHash string) (bool, string) {
	hash, err := hashFile(file)
	if err != nil {
		f.logger.Warn("file has been removed, using the last known version", zap.String("file", file))
		return false, ""
	}
	return previousHash != hash, hash
}

// hashFile returns the SHA256 hash of the file.
func hashFile(file string) (string, error) {
	f, err := os.Open(filepath.Clean(file))
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
