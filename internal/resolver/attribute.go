// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"github.com/semconvkit/registry-resolver/internal/schema"
	"github.com/semconvkit/registry-resolver/internal/semconv"
)

// concrete turns a local attribute definition into a fully resolved
// attribute. Absent optional fields take their documented defaults; in
// particular an omitted requirement level means "recommended".
func concrete(spec *semconv.Attribute) schema.Attribute {
	attr := schema.Attribute{
		Name:             spec.ID,
		RequirementLevel: semconv.RequirementLevel{Level: semconv.RequirementRecommended},
		SamplingRelevant: spec.SamplingRelevant,
		Examples:         spec.Examples,
	}
	if spec.Type != nil {
		attr.Type = *spec.Type
	}
	if spec.Brief != nil {
		attr.Brief = *spec.Brief
	}
	if spec.Tag != nil {
		attr.Tag = *spec.Tag
	}
	if spec.RequirementLevel != nil {
		attr.RequirementLevel = *spec.RequirementLevel
	}
	if spec.Note != nil {
		attr.Note = *spec.Note
	}
	if spec.Stability != nil {
		attr.Stability = *spec.Stability
	}
	if spec.Deprecated != nil {
		attr.Deprecated = *spec.Deprecated
	}
	return attr
}

// overlay copies the target attribute and applies the reference's local
// overrides on top. Local always wins over inherited; that is the single
// tie-break rule of the whole resolver. The returned lineage partitions
// every field into inherited vs. locally overridden.
func overlay(target schema.Attribute, spec *semconv.Attribute, sourceGroup string) (schema.Attribute, *schema.AttributeLineage) {
	merged := target
	lin := &schema.AttributeLineage{SourceGroup: sourceGroup}

	// The type of an attribute can never be overridden at a use site.
	lin.AddInherited(schema.FieldType)

	if spec.Brief != nil {
		merged.Brief = *spec.Brief
		lin.AddOverridden(schema.FieldBrief)
	} else {
		lin.AddInherited(schema.FieldBrief)
	}
	if spec.Examples != nil {
		merged.Examples = spec.Examples
		lin.AddOverridden(schema.FieldExamples)
	} else {
		lin.AddInherited(schema.FieldExamples)
	}
	if spec.Tag != nil {
		merged.Tag = *spec.Tag
		lin.AddOverridden(schema.FieldTag)
	} else {
		lin.AddInherited(schema.FieldTag)
	}
	if spec.RequirementLevel != nil {
		merged.RequirementLevel = *spec.RequirementLevel
		lin.AddOverridden(schema.FieldRequirementLevel)
	} else {
		lin.AddInherited(schema.FieldRequirementLevel)
	}
	if spec.SamplingRelevant != nil {
		merged.SamplingRelevant = spec.SamplingRelevant
		lin.AddOverridden(schema.FieldSamplingRelevant)
	} else {
		lin.AddInherited(schema.FieldSamplingRelevant)
	}
	if spec.Note != nil {
		merged.Note = *spec.Note
		lin.AddOverridden(schema.FieldNote)
	} else {
		lin.AddInherited(schema.FieldNote)
	}
	if spec.Stability != nil {
		merged.Stability = *spec.Stability
		lin.AddOverridden(schema.FieldStability)
	} else {
		lin.AddInherited(schema.FieldStability)
	}
	if spec.Deprecated != nil {
		merged.Deprecated = *spec.Deprecated
		lin.AddOverridden(schema.FieldDeprecated)
	} else {
		lin.AddInherited(schema.FieldDeprecated)
	}

	return merged, lin
}

// inheritAll builds the lineage for an attribute copied wholesale from a
// parent group: every field is inherited, nothing is overridden.
func inheritAll(sourceGroup string) *schema.AttributeLineage {
	lin := &schema.AttributeLineage{SourceGroup: sourceGroup}
	for _, f := range []string{
		schema.FieldType, schema.FieldBrief, schema.FieldExamples,
		schema.FieldTag, schema.FieldRequirementLevel,
		schema.FieldSamplingRelevant, schema.FieldNote,
		schema.FieldStability, schema.FieldDeprecated,
	} {
		lin.AddInherited(f)
	}
	return lin
}
