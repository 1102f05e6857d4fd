// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/semconvkit/registry-resolver/internal/config"
	"github.com/semconvkit/registry-resolver/internal/resolver"
	"github.com/semconvkit/registry-resolver/internal/validate"
)

// CheckCommand creates the check command: run the full resolution pipeline
// for its error report without emitting a resolved schema.
func CheckCommand(logger *zap.Logger) *cobra.Command {
	v := viper.New()
	opts := &Options{}

	command := &cobra.Command{
		Use:   "check",
		Short: "Check a semantic convention registry",
		Long: "Load, resolve and validate a semantic convention registry. " +
			"Violations are aggregated so one run reports every problem.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.InitFromViper(v)

			files, err := expandInput(opts.Registry)
			if err != nil {
				return err
			}

			if _, err := resolveRegistry(logger, files, opts); err != nil {
				printReport(cmd, err)
				return fmt.Errorf("registry check failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registry is valid")
			return nil
		},
	}

	config.AddFlags(v, command, opts.AddFlags)
	return command
}

// printReport renders aggregated errors one per line with their full
// group/attribute context.
func printReport(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()

	var unresolved *resolver.UnresolvedReferenceError
	if errors.As(err, &unresolved) {
		for _, d := range unresolved.Dangling {
			fmt.Fprintln(out, d.String())
		}
		return
	}

	var invalid *validate.ValidationError
	if errors.As(err, &invalid) {
		for _, v := range invalid.Violations {
			fmt.Fprintln(out, v.String())
		}
		return
	}

	fmt.Fprintln(out, err.Error())
}
