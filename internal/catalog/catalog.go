// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

// Package catalog builds the flat attribute lookup table the resolver
// works against. A catalog is owned by a single resolution run; concurrent
// runs each build their own.
package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/semconvkit/registry-resolver/internal/loader"
	"github.com/semconvkit/registry-resolver/internal/multierror"
	"github.com/semconvkit/registry-resolver/internal/semconv"
)

// RegistryNamespace is the reserved id prefix of attribute registry groups.
// Only groups in this namespace contribute attribute definitions to the
// catalog, which is what makes bare `ref: some.attribute` lookups
// unambiguous.
const RegistryNamespace = "registry."

// Entry is one attribute definition in the catalog together with the group
// that defined it.
type Entry struct {
	Attribute  *semconv.Attribute
	GroupID    string
	Provenance string
}

// DuplicateAttributeError reports an attribute name defined by two distinct
// groups. Attribute names must be globally unique across the registry.
type DuplicateAttributeError struct {
	Name   string
	GroupA string
	GroupB string
}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf("attribute %q is defined by both %q and %q", e.Name, e.GroupA, e.GroupB)
}

// Catalog holds the deduplicated attribute definitions of one resolution
// run. It is read-only after Build returns.
type Catalog struct {
	attributes map[string]Entry
}

// Build constructs the catalog from the raw group list. Locally defined
// attributes of every group in the registry namespace are added, keyed by
// attribute name; a name claimed by two different groups is an error, and
// every such conflict is reported, not just the first. Groups outside the
// registry namespace define no attributes; the resolver indexes them by id
// itself, since extends and include targets span both namespaces.
func Build(logger *zap.Logger, groups []loader.Group) (*Catalog, error) {
	c := &Catalog{attributes: make(map[string]Entry)}
	var errs []error

	for _, g := range groups {
		if !strings.HasPrefix(g.ID, RegistryNamespace) {
			continue
		}
		for _, attr := range g.Attributes {
			if attr.IsRef() {
				continue
			}
			if prev, ok := c.attributes[attr.ID]; ok && prev.GroupID != g.ID {
				errs = append(errs, &DuplicateAttributeError{
					Name:   attr.ID,
					GroupA: prev.GroupID,
					GroupB: g.ID,
				})
				continue
			}
			c.attributes[attr.ID] = Entry{
				Attribute:  attr,
				GroupID:    g.ID,
				Provenance: g.Provenance,
			}
		}
	}

	if err := multierror.Wrap(errs); err != nil {
		return nil, err
	}
	logger.Debug("catalog built", zap.Int("attributes", len(c.attributes)))
	return c, nil
}

// Lookup returns the attribute definition registered under the given name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.attributes[name]
	return e, ok
}

// Attributes returns the number of cataloged attribute definitions.
func (c *Catalog) Attributes() int {
	return len(c.attributes)
}
