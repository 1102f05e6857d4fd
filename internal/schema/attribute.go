// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the resolved registry model: the self-contained,
// reference-free output of a resolution run, consumed by documentation and
// code generation pipelines. Nothing in this package resolves anything; it
// is the shape of the result plus its serialization.
package schema

import (
	"github.com/semconvkit/registry-resolver/internal/semconv"
)

// Attribute is a fully resolved attribute: every field carries a concrete
// value, never a pointer to another definition.
type Attribute struct {
	Name             string                   `yaml:"name" json:"name"`
	Type             semconv.AttributeType    `yaml:"type" json:"type"`
	Brief            string                   `yaml:"brief,omitempty" json:"brief,omitempty"`
	Examples         *semconv.Examples        `yaml:"examples,omitempty" json:"examples,omitempty"`
	Tag              string                   `yaml:"tag,omitempty" json:"tag,omitempty"`
	RequirementLevel semconv.RequirementLevel `yaml:"requirement_level" json:"requirement_level"`
	SamplingRelevant *bool                    `yaml:"sampling_relevant,omitempty" json:"sampling_relevant,omitempty"`
	Note             string                   `yaml:"note,omitempty" json:"note,omitempty"`
	Stability        semconv.Stability        `yaml:"stability,omitempty" json:"stability,omitempty"`
	Deprecated       string                   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Field names used in lineage records. Every overridable attribute field
// has one.
const (
	FieldType             = "type"
	FieldBrief            = "brief"
	FieldExamples         = "examples"
	FieldTag              = "tag"
	FieldRequirementLevel = "requirement_level"
	FieldSamplingRelevant = "sampling_relevant"
	FieldNote             = "note"
	FieldStability        = "stability"
	FieldDeprecated       = "deprecated"
)
