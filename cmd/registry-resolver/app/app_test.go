// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/semconvkit/registry-resolver/internal/config"
	"github.com/semconvkit/registry-resolver/internal/schema"
)

const registryDoc = `
groups:
  - id: registry.client
    type: attribute_group
    brief: Client attributes.
    attributes:
      - id: client.address
        type: string
        stability: stable
        brief: Client address.
        examples: ['10.1.2.80']
`

const spanDoc = `
groups:
  - id: client.request.span
    type: span
    span_kind: client
    stability: stable
    brief: Outbound request span.
    attributes:
      - ref: client.address
        requirement_level: required
`

func writeRegistry(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestOptionsInitFromViper(t *testing.T) {
	opts := &Options{}
	v, command := config.Viperize(func(flagSet *flag.FlagSet) {
		opts.AddFlags(flagSet)
	})
	require.NoError(t, command.ParseFlags([]string{
		"--registry=model/",
		"--output=resolved.yaml",
		"--format=json",
		"--registry-url=https://example.com/registry",
		"--catalog=true",
		"--watch=true",
	}))
	opts.InitFromViper(v)

	assert.Equal(t, "model/", opts.Registry)
	assert.Equal(t, "resolved.yaml", opts.Output)
	assert.Equal(t, "json", opts.Format)
	assert.Equal(t, "https://example.com/registry", opts.RegistryURL)
	assert.True(t, opts.IncludeCatalog)
	assert.True(t, opts.Watch)
}

func TestExpandInput(t *testing.T) {
	dir := writeRegistry(t, map[string]string{
		"b.yaml":     registryDoc,
		"a.yml":      spanDoc,
		"readme.txt": "not yaml",
	})

	t.Run("directory", func(t *testing.T) {
		files, err := expandInput(dir)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, filepath.Join(dir, "a.yml"), files[0])
		assert.Equal(t, filepath.Join(dir, "b.yaml"), files[1])
	})

	t.Run("glob", func(t *testing.T) {
		files, err := expandInput(filepath.Join(dir, "*.yaml"))
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, filepath.Join(dir, "b.yaml"), files[0])
	})

	t.Run("single file", func(t *testing.T) {
		path := filepath.Join(dir, "b.yaml")
		files, err := expandInput(path)
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := expandInput("")
		require.ErrorContains(t, err, "no registry specified")
	})

	t.Run("directory without yaml", func(t *testing.T) {
		_, err := expandInput(t.TempDir())
		require.ErrorContains(t, err, "no YAML files found")
	})

	t.Run("glob without matches", func(t *testing.T) {
		_, err := expandInput(filepath.Join(t.TempDir(), "*.yaml"))
		require.ErrorContains(t, err, "no files match")
	})
}

func TestResolveCommand(t *testing.T) {
	dir := writeRegistry(t, map[string]string{
		"registry.yaml": registryDoc,
		"span.yaml":     spanDoc,
	})
	output := filepath.Join(t.TempDir(), "resolved.json")

	cmd := ResolveCommand(zaptest.NewLogger(t))
	cmd.SetArgs([]string{
		"--registry", dir,
		"--output", output,
		"--format", "json",
		"--registry-url", "https://example.com/registry",
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var resolved struct {
		RegistryURL string `json:"registry_url"`
		Groups      []struct {
			ID         string `json:"id"`
			Attributes []struct {
				Name             string `json:"name"`
				Type             string `json:"type"`
				RequirementLevel string `json:"requirement_level"`
			} `json:"attributes"`
			Lineage struct {
				SourceFile string `json:"source_file"`
				Attributes map[string]struct {
					SourceGroup string `json:"source_group"`
				} `json:"attributes"`
			} `json:"lineage"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(data, &resolved))
	assert.Equal(t, "https://example.com/registry", resolved.RegistryURL)
	require.Len(t, resolved.Groups, 2)

	span := resolved.Groups[1]
	assert.Equal(t, "client.request.span", span.ID)
	require.Len(t, span.Attributes, 1)
	assert.Equal(t, "client.address", span.Attributes[0].Name)
	assert.Equal(t, "string", span.Attributes[0].Type)
	assert.Equal(t, "required", span.Attributes[0].RequirementLevel)
	assert.Equal(t, "registry.client", span.Lineage.Attributes["client.address"].SourceGroup)
}

func TestResolveCommandFailureLeavesNoOutput(t *testing.T) {
	dir := writeRegistry(t, map[string]string{
		"broken.yaml": `
groups:
  - id: broken.group
    type: attribute_group
    brief: References nothing that exists.
    attributes:
      - ref: does.not.exist
`,
	})
	output := filepath.Join(t.TempDir(), "resolved.yaml")

	cmd := ResolveCommand(zaptest.NewLogger(t))
	cmd.SetArgs([]string{"--registry", dir, "--output", output})
	require.Error(t, cmd.Execute())

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err), "failed runs must not create output files")
}

func TestEmitRegistryFailureLeavesNoFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "resolved.json")

	// A group annotation that no encoder can serialize makes Emit fail
	// after the output file has already been opened.
	reg := &schema.Registry{
		Groups: []*schema.Group{
			{ID: "broken.group", Annotations: map[string]any{"bad": func() {}}},
		},
	}
	err := emitRegistry(reg, &Options{Output: output, Format: "json"})
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no full or partial output may remain after a failed emit")
}

func TestEmitRegistryLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "resolved.yaml")

	reg := &schema.Registry{Groups: []*schema.Group{{ID: "registry.client"}}}
	require.NoError(t, emitRegistry(reg, &Options{Output: output, Format: "yaml"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "resolved.yaml", entries[0].Name())
}

func TestCheckCommand(t *testing.T) {
	dir := writeRegistry(t, map[string]string{
		"registry.yaml": registryDoc,
		"span.yaml":     spanDoc,
	})

	cmd := CheckCommand(zaptest.NewLogger(t))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--registry", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "registry is valid")
}

func TestCheckCommandReportsDanglingRefs(t *testing.T) {
	dir := writeRegistry(t, map[string]string{
		"broken.yaml": `
groups:
  - id: broken.group
    type: attribute_group
    brief: Broken.
    attributes:
      - ref: missing.one
      - ref: missing.two
`,
	})

	cmd := CheckCommand(zaptest.NewLogger(t))
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--registry", dir})
	require.ErrorContains(t, cmd.Execute(), "registry check failed")
	assert.Contains(t, errOut.String(), "missing.one")
	assert.Contains(t, errOut.String(), "missing.two")
}

func TestRootCommand(t *testing.T) {
	root := Command(zaptest.NewLogger(t))
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["resolve"])
	assert.True(t, names["check"])
	assert.True(t, names["version"])
}
