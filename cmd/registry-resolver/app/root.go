// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/semconvkit/registry-resolver/internal/version"
)

// Command creates the registry-resolver root command.
func Command(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "registry-resolver",
		Short:        "Semantic convention registry resolver",
		Long:         "registry-resolver resolves semantic convention registries into self-contained resolved schemas",
		SilenceUsage: true,
	}
	root.AddCommand(ResolveCommand(logger))
	root.AddCommand(CheckCommand(logger))
	root.AddCommand(version.Command())
	return root
}
