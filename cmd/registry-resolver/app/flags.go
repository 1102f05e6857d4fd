// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"

	"github.com/spf13/viper"
)

const (
	flagRegistry    = "registry"
	flagOutput      = "output"
	flagFormat      = "format"
	flagRegistryURL = "registry-url"
	flagCatalog     = "catalog"
	flagWatch       = "watch"
)

// Options holds the configuration of a resolve or check run.
type Options struct {
	// Registry is a directory, file or glob pattern naming the semantic
	// convention YAML files to load.
	Registry string
	// Output is the path of the resolved schema file; "-" or empty writes
	// to stdout.
	Output string
	// Format selects yaml or json output.
	Format string
	// RegistryURL is recorded in the resolved schema header.
	RegistryURL string
	// IncludeCatalog attaches the shared attribute catalog to the output.
	IncludeCatalog bool
	// Watch keeps the process running and re-resolves on file changes.
	Watch bool
}

// AddFlags registers the command line flags.
func (*Options) AddFlags(flagSet *flag.FlagSet) {
	flagSet.String(flagRegistry, "", "Directory, file or glob pattern of semantic convention YAML files")
	flagSet.String(flagOutput, "-", "Output file for the resolved schema, - for stdout")
	flagSet.String(flagFormat, "yaml", "Output format: yaml or json")
	flagSet.String(flagRegistryURL, "", "Registry URL recorded in the resolved schema header")
	flagSet.Bool(flagCatalog, false, "Include the shared attribute catalog in the output")
	flagSet.Bool(flagWatch, false, "Watch the registry files and re-resolve on change")
}

// InitFromViper initializes Options with the values from viper.
func (o *Options) InitFromViper(v *viper.Viper) *Options {
	o.Registry = v.GetString(flagRegistry)
	o.Output = v.GetString(flagOutput)
	o.Format = v.GetString(flagFormat)
	o.RegistryURL = v.GetString(flagRegistryURL)
	o.IncludeCatalog = v.GetBool(flagCatalog)
	o.Watch = v.GetBool(flagWatch)
	return o
}
