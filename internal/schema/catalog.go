// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
)

// AttributeRef is a stable numeric index into the shared attribute catalog.
type AttributeRef uint32

// Catalog is the deduplicated set of resolved attributes shared by all
// groups of a resolution run. Identical resolved attributes are interned
// once and addressed by AttributeRef; refs are assigned in first-seen order
// so the catalog order is deterministic for a given input.
type Catalog struct {
	Attributes []Attribute `yaml:"attributes" json:"attributes"`

	index map[string]AttributeRef
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]AttributeRef)}
}

// Ref interns the given attribute and returns its reference. Attributes
// that compare equal field for field share one entry.
func (c *Catalog) Ref(attr Attribute) AttributeRef {
	key := fingerprint(attr)
	if ref, ok := c.index[key]; ok {
		return ref
	}
	ref := AttributeRef(len(c.Attributes))
	c.Attributes = append(c.Attributes, attr)
	c.index[key] = ref
	return ref
}

// Attribute returns the attribute behind a reference.
func (c *Catalog) Attribute(ref AttributeRef) (Attribute, error) {
	if int(ref) >= len(c.Attributes) {
		return Attribute{}, fmt.Errorf("attribute ref %d out of range (catalog holds %d attributes)", ref, len(c.Attributes))
	}
	return c.Attributes[ref], nil
}

// Len returns the number of interned attributes.
func (c *Catalog) Len() int {
	return len(c.Attributes)
}

// fingerprint produces a canonical identity key for interning. JSON
// marshaling of Attribute is deterministic, which makes it a cheap stable
// fingerprint.
func fingerprint(attr Attribute) string {
	data, err := json.Marshal(attr)
	if err != nil {
		// Attribute contains only marshalable types; Marshal cannot fail
		// on well-formed input.
		panic(fmt.Sprintf("fingerprint attribute %q: %v", attr.Name, err))
	}
	return string(data)
}
