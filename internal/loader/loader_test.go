// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const validDoc = `
groups:
  - id: registry.server
    type: attribute_group
    brief: Server attributes.
    attributes:
      - id: server.address
        type: string
        brief: Server address.
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadBytes(t *testing.T) {
	groups, err := New(zaptest.NewLogger(t)).LoadBytes("server.yaml", []byte(validDoc))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "registry.server", groups[0].ID)
	assert.Equal(t, "server.yaml", groups[0].Provenance)
}

func TestLoadBytesParseError(t *testing.T) {
	_, err := New(zaptest.NewLogger(t)).LoadBytes("broken.yaml", []byte("groups: {not: a list}[["))
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.yaml", parseErr.File)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoadBytesValidationAggregated(t *testing.T) {
	_, err := New(zaptest.NewLogger(t)).LoadBytes("invalid.yaml", []byte(`
groups:
  - id: bad.span
    type: span
    brief: Missing span_kind.
  - id: bad.metric
    type: metric
    brief: Missing everything.
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.span")
	assert.Contains(t, err.Error(), "bad.metric")
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.yaml", validDoc)
	second := writeFile(t, dir, "second.yaml", `
groups:
  - id: client.span
    type: span
    span_kind: client
    brief: Client span.
    attributes:
      - ref: server.address
`)

	groups, err := New(zaptest.NewLogger(t)).LoadFiles([]string{first, second})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, first, groups[0].Provenance)
	assert.Equal(t, second, groups[1].Provenance)
}

func TestLoadFilesErrorsAggregated(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.yaml", "groups: [{]")
	missing := filepath.Join(dir, "does-not-exist.yaml")

	_, err := New(zaptest.NewLogger(t)).LoadFiles([]string{broken, missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
	assert.Contains(t, err.Error(), "does-not-exist.yaml")
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	// Written out of order, loaded in sorted order.
	writeFile(t, dir, "bbb.yaml", validDoc)
	writeFile(t, dir, "aaa.yaml", `
groups:
  - id: registry.client
    type: attribute_group
    brief: Client attributes.
    attributes:
      - id: client.address
        type: string
        brief: Client address.
`)
	writeFile(t, dir, "ignored.txt", "not yaml")

	groups, err := New(zaptest.NewLogger(t)).LoadGlob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "registry.client", groups[0].ID)
	assert.Equal(t, "registry.server", groups[1].ID)
}

func TestLoadGlobNoMatches(t *testing.T) {
	_, err := New(zaptest.NewLogger(t)).LoadGlob(filepath.Join(t.TempDir(), "*.yaml"))
	require.ErrorContains(t, err, "no files match")
}
