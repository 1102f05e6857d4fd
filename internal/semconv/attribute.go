// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Attribute is a single entry in a group's attribute list. It is either a
// locally defined attribute (id + type are set) or a reference to an
// attribute defined elsewhere in the registry (ref is set). A reference may
// carry local overrides for any of the optional fields; the resolver gives
// those precedence over the referenced definition.
//
// Optional fields are pointers so that "explicitly set in YAML" is
// distinguishable from "absent", which is what lineage tracking keys off.
type Attribute struct {
	Ref              string            `yaml:"ref,omitempty" json:"ref,omitempty"`
	ID               string            `yaml:"id,omitempty" json:"id,omitempty"`
	Type             *AttributeType    `yaml:"type,omitempty" json:"type,omitempty"`
	Brief            *string           `yaml:"brief,omitempty" json:"brief,omitempty"`
	Examples         *Examples         `yaml:"examples,omitempty" json:"examples,omitempty"`
	Tag              *string           `yaml:"tag,omitempty" json:"tag,omitempty"`
	RequirementLevel *RequirementLevel `yaml:"requirement_level,omitempty" json:"requirement_level,omitempty"`
	SamplingRelevant *bool             `yaml:"sampling_relevant,omitempty" json:"sampling_relevant,omitempty"`
	Note             *string           `yaml:"note,omitempty" json:"note,omitempty"`
	Stability        *Stability        `yaml:"stability,omitempty" json:"stability,omitempty"`
	Deprecated       *string           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

var attributeFields = []string{
	"ref", "id", "type", "brief", "examples", "tag", "requirement_level",
	"sampling_relevant", "note", "stability", "deprecated",
}

func (a *Attribute) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "attribute", attributeFields); err != nil {
		return err
	}
	type plain Attribute
	return node.Decode((*plain)(a))
}

// Name returns the attribute id for local definitions or the target id for
// references.
func (a *Attribute) Name() string {
	if a.Ref != "" {
		return a.Ref
	}
	return a.ID
}

// IsRef reports whether the attribute is a reference to another attribute.
func (a *Attribute) IsRef() bool {
	return a.Ref != ""
}

// AttributeType is either a primitive/array/template type name or an enum
// definition with members.
type AttributeType struct {
	// Name holds the type for non-enum attributes, e.g. "string" or
	// "template[int]". Empty when Members is set.
	Name    string       `yaml:"-" json:"-"`
	Members []EnumMember `yaml:"-" json:"-"`
}

var attributeTypeNames = []string{
	"boolean", "int", "double", "string", "any",
	"string[]", "int[]", "double[]", "boolean[]",
	"template[boolean]", "template[int]", "template[double]", "template[string]",
	"template[any]", "template[string[]]", "template[int[]]", "template[double[]]",
	"template[boolean[]]",
}

// IsEnum reports whether the type is an enum definition.
func (t *AttributeType) IsEnum() bool {
	return len(t.Members) > 0
}

func (t *AttributeType) String() string {
	if !t.IsEnum() {
		return t.Name
	}
	ids := make([]string, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.ID
	}
	return fmt.Sprintf("enum {%s}", strings.Join(ids, ", "))
}

func (t *AttributeType) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		if !slices.Contains(attributeTypeNames, name) {
			return fmt.Errorf("line %d: unknown attribute type %q", node.Line, name)
		}
		t.Name = name
		return nil
	case yaml.MappingNode:
		if err := checkFields(node, "attribute type", []string{"members", "allow_custom_values"}); err != nil {
			return err
		}
		var enum struct {
			Members []EnumMember `yaml:"members"`
			// Accepted for backwards compatibility with older registries,
			// no longer carries meaning.
			AllowCustomValues *bool `yaml:"allow_custom_values"`
		}
		if err := node.Decode(&enum); err != nil {
			return err
		}
		if len(enum.Members) == 0 {
			return fmt.Errorf("line %d: enum type must declare at least one member", node.Line)
		}
		t.Members = enum.Members
		return nil
	default:
		return fmt.Errorf("line %d: invalid attribute type", node.Line)
	}
}

func (t AttributeType) MarshalYAML() (any, error) {
	if !t.IsEnum() {
		return t.Name, nil
	}
	return map[string][]EnumMember{"members": t.Members}, nil
}

func (t AttributeType) MarshalJSON() ([]byte, error) {
	v, err := t.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return jsonMarshal(v)
}

// EnumMember is one entry of an enum attribute type.
type EnumMember struct {
	ID         string    `yaml:"id" json:"id"`
	Value      any       `yaml:"value" json:"value"`
	Brief      string    `yaml:"brief,omitempty" json:"brief,omitempty"`
	Note       string    `yaml:"note,omitempty" json:"note,omitempty"`
	Stability  Stability `yaml:"stability,omitempty" json:"stability,omitempty"`
	Deprecated string    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

func (m *EnumMember) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "enum member", []string{"id", "value", "brief", "note", "stability", "deprecated"}); err != nil {
		return err
	}
	type plain EnumMember
	return node.Decode((*plain)(m))
}

// Requirement levels. When omitted on a local definition the attribute is
// "recommended". The conditionally_required and recommended forms may carry
// a free-form text describing the condition or recommendation.
const (
	RequirementRequired              = "required"
	RequirementRecommended           = "recommended"
	RequirementOptional              = "optional"
	RequirementOptIn                 = "opt_in"
	RequirementConditionallyRequired = "conditionally_required"
)

// RequirementLevel captures the requirement_level field, which in YAML is
// either a plain string or a single-entry mapping of level to text.
type RequirementLevel struct {
	Level string `json:"level"`
	Text  string `json:"text,omitempty"`
}

func (r *RequirementLevel) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var level string
		if err := node.Decode(&level); err != nil {
			return err
		}
		switch level {
		case RequirementRequired, RequirementRecommended, RequirementOptional, RequirementOptIn:
			r.Level = level
			return nil
		}
		return fmt.Errorf("line %d: unknown requirement level %q", node.Line, level)
	case yaml.MappingNode:
		var m map[string]string
		if err := node.Decode(&m); err != nil {
			return err
		}
		if len(m) != 1 {
			return fmt.Errorf("line %d: requirement level must have exactly one entry", node.Line)
		}
		for level, text := range m {
			switch level {
			case RequirementConditionallyRequired, RequirementRecommended:
				r.Level = level
				r.Text = text
			default:
				return fmt.Errorf("line %d: requirement level %q does not accept a text", node.Line, level)
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: invalid requirement level", node.Line)
	}
}

func (r RequirementLevel) MarshalYAML() (any, error) {
	if r.Text == "" {
		return r.Level, nil
	}
	return map[string]string{r.Level: r.Text}, nil
}

func (r RequirementLevel) MarshalJSON() ([]byte, error) {
	v, err := r.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return jsonMarshal(v)
}

// Examples holds the example value(s) of an attribute. A single scalar
// example round-trips as a scalar, a sequence as a sequence.
type Examples struct {
	values []any
	scalar bool
}

// NewExamples builds an Examples from explicit values, always rendered as a
// sequence.
func NewExamples(values ...any) *Examples {
	return &Examples{values: values}
}

// Values returns the example values.
func (e *Examples) Values() []any {
	return e.values
}

func (e *Examples) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return node.Decode(&e.values)
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	e.values = []any{v}
	e.scalar = true
	return nil
}

func (e Examples) MarshalYAML() (any, error) {
	if e.scalar && len(e.values) == 1 {
		return e.values[0], nil
	}
	return e.values, nil
}

func (e Examples) MarshalJSON() ([]byte, error) {
	v, err := e.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return jsonMarshal(v)
}
