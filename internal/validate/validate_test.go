// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semconvkit/registry-resolver/internal/schema"
	"github.com/semconvkit/registry-resolver/internal/semconv"
)

func stringAttr(name string) schema.Attribute {
	return schema.Attribute{
		Name:             name,
		Type:             semconv.AttributeType{Name: "string"},
		RequirementLevel: semconv.RequirementLevel{Level: semconv.RequirementRecommended},
	}
}

func checkViolations(t *testing.T, reg *schema.Registry) []Violation {
	t.Helper()
	err := Check(reg)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Violations
}

func TestCheckValid(t *testing.T) {
	reg := &schema.Registry{
		Groups: []*schema.Group{
			{
				ID:         "registry.client",
				Type:       semconv.GroupTypeAttributeGroup,
				Attributes: []schema.Attribute{stringAttr("client.address")},
			},
			{
				ID:         "metric.requests",
				Type:       semconv.GroupTypeMetric,
				MetricName: "requests",
				Instrument: semconv.InstrumentCounter,
				Unit:       "{request}",
			},
		},
	}
	require.NoError(t, Check(reg))
}

func TestCheckDuplicateGroupID(t *testing.T) {
	reg := &schema.Registry{
		Groups: []*schema.Group{
			{ID: "same.id", Lineage: schema.NewGroupLineage("a.yaml")},
			{ID: "same.id", Lineage: schema.NewGroupLineage("b.yaml")},
		},
	}
	violations := checkViolations(t, reg)
	require.Len(t, violations, 1)
	assert.Equal(t, KindDuplicateGroupID, violations[0].Kind)
	assert.Equal(t, "same.id", violations[0].GroupID)
	assert.Contains(t, violations[0].Detail, "a.yaml")
	assert.Contains(t, violations[0].Detail, "b.yaml")
}

func TestCheckDuplicateMetricName(t *testing.T) {
	reg := &schema.Registry{
		Groups: []*schema.Group{
			{ID: "metric.one", MetricName: "http.requests"},
			{ID: "metric.two", MetricName: "http.requests"},
		},
	}
	violations := checkViolations(t, reg)
	require.Len(t, violations, 1)
	assert.Equal(t, KindDuplicateMetricName, violations[0].Kind)
	assert.Equal(t, "metric.two", violations[0].GroupID)
	assert.Equal(t, "http.requests", violations[0].Target)
}

func TestCheckDuplicateAttribute(t *testing.T) {
	reg := &schema.Registry{
		Groups: []*schema.Group{
			{
				ID: "group.with.dup",
				Attributes: []schema.Attribute{
					stringAttr("net.peer.name"),
					stringAttr("net.peer.name"),
				},
			},
		},
	}
	violations := checkViolations(t, reg)
	require.Len(t, violations, 1)
	assert.Equal(t, KindDuplicateAttribute, violations[0].Kind)
	assert.Equal(t, "net.peer.name", violations[0].Target)
}

func TestCheckAnyOf(t *testing.T) {
	tests := []struct {
		name      string
		attrs     []schema.Attribute
		anyOf     [][]string
		satisfied bool
	}{
		{
			name:      "satisfied by first candidate",
			attrs:     []schema.Attribute{stringAttr("net.peer.name")},
			anyOf:     [][]string{{"net.peer.name", "net.peer.ip"}},
			satisfied: true,
		},
		{
			name:      "satisfied by second candidate",
			attrs:     []schema.Attribute{stringAttr("net.peer.ip")},
			anyOf:     [][]string{{"net.peer.name", "net.peer.ip"}},
			satisfied: true,
		},
		{
			name:      "unsatisfied",
			attrs:     []schema.Attribute{stringAttr("unrelated.attr")},
			anyOf:     [][]string{{"net.peer.name", "net.peer.ip"}},
			satisfied: false,
		},
		{
			name:      "each constraint checked separately",
			attrs:     []schema.Attribute{stringAttr("net.peer.name")},
			anyOf:     [][]string{{"net.peer.name"}, {"http.method"}},
			satisfied: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reg := &schema.Registry{
				Groups: []*schema.Group{
					{ID: "constrained.group", Attributes: test.attrs, AnyOf: test.anyOf},
				},
			}
			err := Check(reg)
			if test.satisfied {
				require.NoError(t, err)
				return
			}
			violations := checkViolations(t, reg)
			require.Len(t, violations, 1)
			assert.Equal(t, KindUnsatisfiedAnyOf, violations[0].Kind)
			assert.Equal(t, "constrained.group", violations[0].GroupID)
			require.Error(t, err)
		})
	}
}

func TestCheckIncompleteAttribute(t *testing.T) {
	reg := &schema.Registry{
		Groups: []*schema.Group{
			{
				ID:         "group.incomplete",
				Attributes: []schema.Attribute{{Name: "typeless.attr"}},
			},
		},
	}
	violations := checkViolations(t, reg)
	require.Len(t, violations, 1)
	assert.Equal(t, KindIncompleteAttribute, violations[0].Kind)
	assert.Equal(t, "typeless.attr", violations[0].Target)
}

func TestCheckAggregatesAllViolations(t *testing.T) {
	reg := &schema.Registry{
		Groups: []*schema.Group{
			{ID: "dup.group"},
			{ID: "dup.group"},
			{
				ID:    "other.group",
				AnyOf: [][]string{{"never.present"}},
			},
		},
	}
	violations := checkViolations(t, reg)
	assert.Len(t, violations, 2)

	err := Check(reg)
	assert.Contains(t, err.Error(), "2 violation(s)")
}
