// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

// Package app wires the resolution pipeline into the registry-resolver CLI.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/semconvkit/registry-resolver/internal/loader"
	"github.com/semconvkit/registry-resolver/internal/resolver"
	"github.com/semconvkit/registry-resolver/internal/schema"
	"github.com/semconvkit/registry-resolver/internal/validate"
)

// expandInput turns the --registry value into a sorted list of files. A
// directory means every .yaml/.yml file directly inside it; anything with
// glob metacharacters is treated as a pattern; everything else as a single
// file.
func expandInput(registry string) ([]string, error) {
	if registry == "" {
		return nil, fmt.Errorf("no registry specified, use --%s", flagRegistry)
	}

	if info, err := os.Stat(registry); err == nil && info.IsDir() {
		entries, err := os.ReadDir(registry)
		if err != nil {
			return nil, fmt.Errorf("failed to read registry directory %q: %w", registry, err)
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := filepath.Ext(e.Name())
			if ext == ".yaml" || ext == ".yml" {
				files = append(files, filepath.Join(registry, e.Name()))
			}
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no YAML files found in %q", registry)
		}
		sort.Strings(files)
		return files, nil
	}

	if strings.ContainsAny(registry, "*?[") {
		files, err := filepath.Glob(registry)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", registry, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no files match %q", registry)
		}
		sort.Strings(files)
		return files, nil
	}

	return []string{registry}, nil
}

// resolveRegistry runs load, resolve and validate over the given files and
// returns the resolved registry. Every stage aggregates its failures, so
// the returned error carries the complete report for that stage.
func resolveRegistry(logger *zap.Logger, files []string, opts *Options) (*schema.Registry, error) {
	groups, err := loader.New(logger).LoadFiles(files)
	if err != nil {
		return nil, err
	}

	reg, err := resolver.New(logger).Resolve(groups, resolver.Options{
		RegistryURL:    opts.RegistryURL,
		IncludeCatalog: opts.IncludeCatalog,
	})
	if err != nil {
		return nil, err
	}

	if err := validate.Check(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// emitRegistry writes the resolved schema to the configured output. The
// schema is written to a temporary file and renamed into place, so a
// failing run never leaves full or partial output behind.
func emitRegistry(reg *schema.Registry, opts *Options) error {
	format, err := schema.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	if opts.Output == "" || opts.Output == "-" {
		return reg.Emit(os.Stdout, format)
	}

	output := filepath.Clean(opts.Output)
	f, err := os.CreateTemp(filepath.Dir(output), filepath.Base(output)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", opts.Output, err)
	}
	if err := reg.Emit(f, format); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), output)
}
