// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/semconvkit/registry-resolver/internal/config"
	"github.com/semconvkit/registry-resolver/internal/fswatcher"
)

// ResolveCommand creates the resolve command: load, resolve, validate and
// emit the resolved schema.
func ResolveCommand(logger *zap.Logger) *cobra.Command {
	v := viper.New()
	opts := &Options{}

	command := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a semantic convention registry",
		Long: "Resolve a semantic convention registry into a single self-contained schema: " +
			"attribute references, extends inheritance and include constraints are flattened, " +
			"and every resolved attribute carries its lineage.",
		RunE: func(_ *cobra.Command, _ []string) error {
			opts.InitFromViper(v)

			files, err := expandInput(opts.Registry)
			if err != nil {
				return err
			}

			run := func() error {
				reg, err := resolveRegistry(logger, files, opts)
				if err != nil {
					return err
				}
				return emitRegistry(reg, opts)
			}

			if err := run(); err != nil {
				if !opts.Watch {
					return err
				}
				// In watch mode a broken registry is not fatal: report it
				// and wait for the next edit.
				logger.Error("resolution failed", zap.Error(err))
			}
			if !opts.Watch {
				return nil
			}

			watcher, err := fswatcher.New(files, func() {
				logger.Info("registry changed, re-resolving")
				if err := run(); err != nil {
					logger.Error("resolution failed", zap.Error(err))
				}
			}, logger)
			if err != nil {
				return err
			}
			defer watcher.Close()

			logger.Info("watching registry files", zap.Int("files", len(files)))
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	config.AddFlags(v, command, opts.AddFlags)
	return command
}
