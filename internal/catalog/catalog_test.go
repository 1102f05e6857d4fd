// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/semconvkit/registry-resolver/internal/loader"
)

func load(t *testing.T, provenance, doc string) []loader.Group {
	t.Helper()
	groups, err := loader.New(zaptest.NewLogger(t)).LoadBytes(provenance, []byte(doc))
	require.NoError(t, err)
	return groups
}

func TestBuild(t *testing.T) {
	groups := load(t, "registry.yaml", `
groups:
  - id: registry.http
    type: attribute_group
    brief: HTTP attributes.
    attributes:
      - id: http.request.method
        type: string
        brief: HTTP request method.
      - ref: url.full
  - id: http.server.request.duration
    type: metric
    metric_name: http.server.request.duration
    instrument: histogram
    unit: s
    brief: Request duration.
`)
	cat, err := Build(zaptest.NewLogger(t), groups)
	require.NoError(t, err)

	entry, ok := cat.Lookup("http.request.method")
	require.True(t, ok)
	assert.Equal(t, "registry.http", entry.GroupID)
	assert.Equal(t, "registry.yaml", entry.Provenance)
	assert.Equal(t, "http.request.method", entry.Attribute.ID)

	// Refs inside registry groups define nothing.
	_, ok = cat.Lookup("url.full")
	assert.False(t, ok)
	assert.Equal(t, 1, cat.Attributes())

	// Non-registry groups contribute no attribute definitions.
	_, ok = cat.Lookup("http.server.request.duration")
	assert.False(t, ok)
}

func TestBuildDuplicateAttribute(t *testing.T) {
	groups := load(t, "a.yaml", `
groups:
  - id: registry.foo
    type: attribute_group
    brief: Foo attributes.
    attributes:
      - id: foo.bar
        type: string
        brief: First definition.
`)
	groups = append(groups, load(t, "b.yaml", `
groups:
  - id: registry.other
    type: attribute_group
    brief: Other attributes.
    attributes:
      - id: foo.bar
        type: int
        brief: Second definition.
`)...)

	_, err := Build(zaptest.NewLogger(t), groups)
	require.Error(t, err)

	var dup *DuplicateAttributeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "foo.bar", dup.Name)
	assert.Equal(t, "registry.foo", dup.GroupA)
	assert.Equal(t, "registry.other", dup.GroupB)
}

func TestBuildDuplicatesAggregated(t *testing.T) {
	groups := load(t, "dups.yaml", `
groups:
  - id: registry.one
    type: attribute_group
    brief: One.
    attributes:
      - id: dup.first
        type: string
        brief: First.
      - id: dup.second
        type: string
        brief: Second.
  - id: registry.two
    type: attribute_group
    brief: Two.
    attributes:
      - id: dup.first
        type: string
        brief: First again.
      - id: dup.second
        type: string
        brief: Second again.
`)
	_, err := Build(zaptest.NewLogger(t), groups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup.first")
	assert.Contains(t, err.Error(), "dup.second")
}

func TestBuildEmpty(t *testing.T) {
	cat, err := Build(zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Attributes())
	_, ok := cat.Lookup("anything")
	assert.False(t, ok)
}
