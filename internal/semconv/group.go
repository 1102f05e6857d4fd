// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package semconv

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GroupType enumerates the kinds of semantic convention groups.
type GroupType string

const (
	GroupTypeAttributeGroup GroupType = "attribute_group"
	GroupTypeSpan           GroupType = "span"
	GroupTypeEvent          GroupType = "event"
	GroupTypeMetric         GroupType = "metric"
	GroupTypeResource       GroupType = "resource"
	GroupTypeScope          GroupType = "scope"
)

var groupTypes = map[GroupType]bool{
	GroupTypeAttributeGroup: true,
	GroupTypeSpan:           true,
	GroupTypeEvent:          true,
	GroupTypeMetric:         true,
	GroupTypeResource:       true,
	GroupTypeScope:          true,
}

// SpanKind is the kind of a span group.
type SpanKind string

const (
	SpanKindClient   SpanKind = "client"
	SpanKindServer   SpanKind = "server"
	SpanKindProducer SpanKind = "producer"
	SpanKindConsumer SpanKind = "consumer"
	SpanKindInternal SpanKind = "internal"
)

var spanKinds = map[SpanKind]bool{
	SpanKindClient:   true,
	SpanKindServer:   true,
	SpanKindProducer: true,
	SpanKindConsumer: true,
	SpanKindInternal: true,
}

// Instrument is the instrument type of a metric group.
type Instrument string

const (
	InstrumentCounter       Instrument = "counter"
	InstrumentGauge         Instrument = "gauge"
	InstrumentHistogram     Instrument = "histogram"
	InstrumentUpDownCounter Instrument = "updowncounter"
)

var instruments = map[Instrument]bool{
	InstrumentCounter:       true,
	InstrumentGauge:         true,
	InstrumentHistogram:     true,
	InstrumentUpDownCounter: true,
}

// Stability of a group or attribute.
type Stability string

const (
	StabilityStable           Stability = "stable"
	StabilityDevelopment      Stability = "development"
	StabilityExperimental     Stability = "experimental"
	StabilityAlpha            Stability = "alpha"
	StabilityBeta             Stability = "beta"
	StabilityReleaseCandidate Stability = "release_candidate"
	StabilityDeprecated       Stability = "deprecated"
)

var stabilities = map[Stability]bool{
	StabilityStable:           true,
	StabilityDevelopment:      true,
	StabilityExperimental:     true,
	StabilityAlpha:            true,
	StabilityBeta:             true,
	StabilityReleaseCandidate: true,
	StabilityDeprecated:       true,
}

// Group is one semantic convention definition unit: an attribute group, a
// span, an event, a metric, a resource, or a scope. Groups are produced by
// the loader and mutated in place by the resolver until all references are
// applied.
type Group struct {
	ID          string         `yaml:"id" json:"id"`
	Type        GroupType      `yaml:"type" json:"type"`
	Brief       string         `yaml:"brief,omitempty" json:"brief,omitempty"`
	Note        string         `yaml:"note,omitempty" json:"note,omitempty"`
	Prefix      string         `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Extends     string         `yaml:"extends,omitempty" json:"extends,omitempty"`
	Stability   Stability      `yaml:"stability,omitempty" json:"stability,omitempty"`
	Deprecated  string         `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Attributes  []*Attribute   `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Constraints []*Constraint  `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	SpanKind    SpanKind       `yaml:"span_kind,omitempty" json:"span_kind,omitempty"`
	Events      []string       `yaml:"events,omitempty" json:"events,omitempty"`
	MetricName  string         `yaml:"metric_name,omitempty" json:"metric_name,omitempty"`
	Instrument  Instrument     `yaml:"instrument,omitempty" json:"instrument,omitempty"`
	Unit        string         `yaml:"unit,omitempty" json:"unit,omitempty"`
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"`
	DisplayName string         `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Body        *AnyValue      `yaml:"body,omitempty" json:"body,omitempty"`
	Annotations map[string]any `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

var groupFields = []string{
	"id", "type", "brief", "note", "prefix", "extends", "stability",
	"deprecated", "attributes", "constraints", "span_kind", "events",
	"metric_name", "instrument", "unit", "name", "display_name", "body",
	"annotations",
}

func (g *Group) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "group", groupFields); err != nil {
		return err
	}
	type plain Group
	return node.Decode((*plain)(g))
}

// Constraint is a group-level constraint: either any_of (the group's final
// attribute set must contain at least one of the listed attributes) or
// include (bulk-copy of another group's resolved attribute list).
type Constraint struct {
	AnyOf   []string `yaml:"any_of,omitempty" json:"any_of,omitempty"`
	Include string   `yaml:"include,omitempty" json:"include,omitempty"`
}

func (c *Constraint) UnmarshalYAML(node *yaml.Node) error {
	if err := checkFields(node, "constraint", []string{"any_of", "include"}); err != nil {
		return err
	}
	type plain Constraint
	return node.Decode((*plain)(c))
}

// Validate performs the structural checks that do not require any
// cross-group knowledge. It returns every violation found rather than
// stopping at the first one.
func (g *Group) Validate() []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("group %q: "+format, append([]any{g.ID}, args...)...))
	}

	if g.ID == "" {
		errs = append(errs, fmt.Errorf("group is missing an id"))
		return errs
	}
	if g.Type == "" {
		fail("missing required field \"type\"")
	} else if !groupTypes[g.Type] {
		fail("unknown group type %q", g.Type)
	}
	if g.Stability != "" && !stabilities[g.Stability] {
		fail("unknown stability %q", g.Stability)
	}

	if g.Type == GroupTypeSpan {
		if g.SpanKind == "" {
			fail("span groups require a span_kind")
		} else if !spanKinds[g.SpanKind] {
			fail("unknown span_kind %q", g.SpanKind)
		}
	} else {
		if g.SpanKind != "" {
			fail("span_kind is only valid on span groups")
		}
		if len(g.Events) > 0 {
			fail("events is only valid on span groups")
		}
	}

	if g.Type == GroupTypeMetric {
		if g.MetricName == "" {
			fail("metric groups require a metric_name")
		}
		if g.Instrument == "" {
			fail("metric groups require an instrument")
		} else if !instruments[g.Instrument] {
			fail("unknown instrument %q", g.Instrument)
		}
		if g.Unit == "" {
			fail("metric groups require a unit")
		}
	} else if g.Instrument != "" || g.MetricName != "" || g.Unit != "" {
		fail("metric_name, instrument and unit are only valid on metric groups")
	}

	if g.Type == GroupTypeEvent {
		if g.Body != nil && g.Name == "" {
			fail("event groups with a body require a name")
		}
		if g.Body == nil && g.Name == "" && g.Prefix == "" {
			fail("event groups require a name or a prefix")
		}
	} else if g.Body != nil {
		fail("body is only valid on event groups")
	}

	seen := make(map[string]bool, len(g.Attributes))
	for i, attr := range g.Attributes {
		switch {
		case attr.Ref != "" && attr.ID != "":
			fail("attribute %d sets both ref and id", i)
		case attr.Ref == "" && attr.ID == "":
			fail("attribute %d sets neither ref nor id", i)
		case attr.ID != "" && attr.Type == nil:
			fail("attribute %q is missing a type", attr.ID)
		}
		if name := attr.Name(); name != "" {
			if seen[name] {
				fail("attribute %q is referenced more than once", name)
			}
			seen[name] = true
		}
		if attr.Stability != nil && !stabilities[*attr.Stability] {
			fail("attribute %q: unknown stability %q", attr.Name(), *attr.Stability)
		}
	}

	for i, c := range g.Constraints {
		if (len(c.AnyOf) == 0) == (c.Include == "") {
			fail("constraint %d must set exactly one of any_of or include", i)
		}
	}

	return errs
}
