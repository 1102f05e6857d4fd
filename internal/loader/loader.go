// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

// Package loader reads semantic convention YAML files into raw group
// definitions, tagging every group with the file it came from. It performs
// structural validation only; cross-file references are left for the
// resolver, since files may legitimately reference attributes defined in
// files loaded later.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/semconvkit/registry-resolver/internal/multierror"
	"github.com/semconvkit/registry-resolver/internal/semconv"
)

// Group is a raw group definition together with its provenance, the path or
// URL of the file that declared it.
type Group struct {
	*semconv.Group
	Provenance string
}

// ParseError reports a file that could not be decoded, either because of a
// YAML syntax error or because of an unknown field.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Loader loads semantic convention files.
type Loader struct {
	logger *zap.Logger
}

// New creates a Loader.
func New(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadGlob loads every file matching the given glob pattern, in sorted path
// order so that loading is deterministic across platforms.
func (l *Loader) LoadGlob(pattern string) ([]Group, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	sort.Strings(paths)
	return l.LoadFiles(paths)
}

// LoadFiles loads the given files in order and concatenates their groups
// into one pre-resolution list. Errors are aggregated across files so a
// single run reports every broken file.
func (l *Loader) LoadFiles(paths []string) ([]Group, error) {
	var groups []Group
	var errs []error
	for _, path := range paths {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			errs = append(errs, &ParseError{File: path, Err: err})
			continue
		}
		fileGroups, err := l.LoadBytes(path, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		groups = append(groups, fileGroups...)
	}
	if err := multierror.Wrap(errs); err != nil {
		return nil, err
	}
	return groups, nil
}

// LoadBytes parses a single in-memory document. The provenance string is
// attached to every group for lineage tracking and error reporting.
func (l *Loader) LoadBytes(provenance string, data []byte) ([]Group, error) {
	doc, err := semconv.ParseDocument(data)
	if err != nil {
		return nil, &ParseError{File: provenance, Err: err}
	}

	var errs []error
	groups := make([]Group, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		for _, verr := range g.Validate() {
			errs = append(errs, &ParseError{File: provenance, Err: verr})
		}
		groups = append(groups, Group{Group: g, Provenance: provenance})
	}
	if err := multierror.Wrap(errs); err != nil {
		return nil, err
	}

	l.logger.Debug("loaded semantic convention file",
		zap.String("file", provenance),
		zap.Int("groups", len(groups)))
	return groups, nil
}
