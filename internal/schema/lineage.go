// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package schema

import "sort"

// AttributeLineage records where a resolved attribute's values came from.
// Fields taken unchanged from the referenced or inherited definition are in
// InheritedFields; fields explicitly set at the use site are in
// LocallyOverriddenFields. The two sets never intersect, and fields present
// on the attribute but in neither set were defined locally in the first
// place.
type AttributeLineage struct {
	SourceGroup             string   `yaml:"source_group" json:"source_group"`
	InheritedFields         []string `yaml:"inherited_fields,omitempty" json:"inherited_fields,omitempty"`
	LocallyOverriddenFields []string `yaml:"locally_overridden_fields,omitempty" json:"locally_overridden_fields,omitempty"`
}

// AddInherited records a field as taken from the source group.
func (l *AttributeLineage) AddInherited(field string) {
	l.InheritedFields = insertSorted(l.InheritedFields, field)
}

// AddOverridden records a field as locally overridden.
func (l *AttributeLineage) AddOverridden(field string) {
	l.LocallyOverriddenFields = insertSorted(l.LocallyOverriddenFields, field)
}

// insertSorted keeps the field sets sorted and free of duplicates so that
// emitted lineage is stable across runs.
func insertSorted(fields []string, field string) []string {
	i := sort.SearchStrings(fields, field)
	if i < len(fields) && fields[i] == field {
		return fields
	}
	fields = append(fields, "")
	copy(fields[i+1:], fields[i:])
	fields[i] = field
	return fields
}

// GroupLineage tracks the provenance of a group and the lineage of each of
// its resolved attributes, keyed by attribute name.
type GroupLineage struct {
	SourceFile string                       `yaml:"source_file" json:"source_file"`
	Attributes map[string]*AttributeLineage `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// NewGroupLineage creates a lineage record for a group loaded from the
// given file.
func NewGroupLineage(sourceFile string) *GroupLineage {
	return &GroupLineage{SourceFile: sourceFile}
}

// SetAttribute attaches a lineage record for the named attribute, replacing
// any previous record for that name.
func (l *GroupLineage) SetAttribute(name string, lineage *AttributeLineage) {
	if l.Attributes == nil {
		l.Attributes = make(map[string]*AttributeLineage)
	}
	l.Attributes[name] = lineage
}

// Attribute returns the lineage of the named attribute, or nil if the
// attribute was defined locally with no inheritance.
func (l *GroupLineage) Attribute(name string) *AttributeLineage {
	return l.Attributes[name]
}
