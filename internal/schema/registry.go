// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/semconvkit/registry-resolver/internal/semconv"
)

// Group is a fully resolved semantic convention group. The attribute list
// is flat and self-contained: inherited and referenced attributes have been
// copied in, so the group can be consumed without access to any other group.
type Group struct {
	ID          string             `yaml:"id" json:"id"`
	Type        semconv.GroupType  `yaml:"type" json:"type"`
	Brief       string             `yaml:"brief,omitempty" json:"brief,omitempty"`
	Note        string             `yaml:"note,omitempty" json:"note,omitempty"`
	Prefix      string             `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Stability   semconv.Stability  `yaml:"stability,omitempty" json:"stability,omitempty"`
	Deprecated  string             `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Attributes  []Attribute        `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	AnyOf       [][]string         `yaml:"any_of,omitempty" json:"any_of,omitempty"`
	SpanKind    semconv.SpanKind   `yaml:"span_kind,omitempty" json:"span_kind,omitempty"`
	Events      []string           `yaml:"events,omitempty" json:"events,omitempty"`
	MetricName  string             `yaml:"metric_name,omitempty" json:"metric_name,omitempty"`
	Instrument  semconv.Instrument `yaml:"instrument,omitempty" json:"instrument,omitempty"`
	Unit        string             `yaml:"unit,omitempty" json:"unit,omitempty"`
	Name        string             `yaml:"name,omitempty" json:"name,omitempty"`
	DisplayName string             `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Body        *semconv.AnyValue  `yaml:"body,omitempty" json:"body,omitempty"`
	Annotations map[string]any     `yaml:"annotations,omitempty" json:"annotations,omitempty"`
	Lineage     *GroupLineage      `yaml:"lineage,omitempty" json:"lineage,omitempty"`
}

// Attribute returns the group's resolved attribute with the given name, or
// nil if the group does not carry it.
func (g *Group) Attribute(name string) *Attribute {
	for i := range g.Attributes {
		if g.Attributes[i].Name == name {
			return &g.Attributes[i]
		}
	}
	return nil
}

// Registry is the final output of a resolution run: the resolved groups in
// input order, the shared attribute catalog, and the registry provenance
// header. It is immutable once emitted.
type Registry struct {
	RegistryURL string `yaml:"registry_url" json:"registry_url"`

	Groups []*Group `yaml:"groups" json:"groups"`

	// Catalog is only populated when the caller explicitly asks for it;
	// groups embed their resolved attributes either way.
	Catalog *Catalog `yaml:"catalog,omitempty" json:"catalog,omitempty"`
}

// Group returns the resolved group with the given id, or nil.
func (r *Registry) Group(id string) *Group {
	for _, g := range r.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// GroupsOfType returns the resolved groups of the given type, preserving
// registry order.
func (r *Registry) GroupsOfType(t semconv.GroupType) []*Group {
	var groups []*Group
	for _, g := range r.Groups {
		if g.Type == t {
			groups = append(groups, g)
		}
	}
	return groups
}
