// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// AnyValue describes one node of an event body: a scalar field, an enum, or
// a map with nested fields. Bodies are carried through resolution untouched.
type AnyValue struct {
	ID               string            `yaml:"id" json:"id"`
	Type             string            `yaml:"type" json:"type"`
	Brief            string            `yaml:"brief,omitempty" json:"brief,omitempty"`
	Note             string            `yaml:"note,omitempty" json:"note,omitempty"`
	Stability        Stability         `yaml:"stability,omitempty" json:"stability,omitempty"`
	Examples         *Examples         `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequirementLevel *RequirementLevel `yaml:"requirement_level,omitempty" json:"requirement_level,omitempty"`
	Deprecated       string            `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Fields           []*AnyValue       `yaml:"fields,omitempty" json:"fields,omitempty"`
	Members          []EnumMember      `yaml:"members,omitempty" json:"members,omitempty"`
}

var anyValueTypes = []string{
	"boolean", "int", "double", "string", "any", "map", "enum", "undefined",
	"string[]", "int[]", "double[]", "boolean[]", "map[]",
}

var anyValueFields = []string{
	"id", "type", "brief", "note", "stability", "examples",
	"requirement_level", "deprecated", "fields", "members",
}

func (v *AnyValue) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "body field", anyValueFields); err != nil {
		return err
	}
	type plain AnyValue
	if err := node.Decode((*plain)(v)); err != nil {
		return err
	}
	if v.ID == "" {
		return fmt.Errorf("line %d: body field is missing an id", node.Line)
	}
	if !slices.Contains(anyValueTypes, v.Type) {
		return fmt.Errorf("line %d: unknown body field type %q", node.Line, v.Type)
	}
	if v.Type == "map" && len(v.Fields) == 0 {
		return fmt.Errorf("line %d: body field %q of type map has no fields", node.Line, v.ID)
	}
	if v.Type == "enum" && len(v.Members) == 0 {
		return fmt.Errorf("line %d: body field %q of type enum has no members", node.Line, v.ID)
	}
	return nil
}
