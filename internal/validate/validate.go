// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

// Package validate checks a resolved registry for internal consistency. The
// check is a pure read over the registry: it never mutates state, and it
// reports every violation found in one run instead of stopping at the first.
package validate

import (
	"fmt"
	"strings"

	"github.com/semconvkit/registry-resolver/internal/schema"
)

// ViolationKind classifies a consistency violation.
type ViolationKind string

const (
	// KindDuplicateAttribute flags two attributes sharing one name inside a
	// single group's final list, typically introduced by inheritance.
	KindDuplicateAttribute ViolationKind = "duplicate_attribute"
	// KindDuplicateGroupID flags two groups sharing one id.
	KindDuplicateGroupID ViolationKind = "duplicate_group_id"
	// KindDuplicateMetricName flags two metric groups sharing a metric name.
	KindDuplicateMetricName ViolationKind = "duplicate_metric_name"
	// KindUnsatisfiedAnyOf flags an any_of constraint none of whose
	// attributes made it into the group's final attribute set.
	KindUnsatisfiedAnyOf ViolationKind = "unsatisfied_any_of"
	// KindIncompleteAttribute flags an attribute that carries no type,
	// which means a reference escaped resolution.
	KindIncompleteAttribute ViolationKind = "incomplete_attribute"
)

// Violation is one machine-inspectable consistency failure.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	GroupID string        `json:"group_id"`
	Target  string        `json:"target,omitempty"`
	Detail  string        `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("group %q: %s", v.GroupID, v.Detail)
}

// ValidationError aggregates every violation of a validation run.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("registry validation failed with %d violation(s): %s",
		len(e.Violations), strings.Join(parts, "; "))
}

// Check validates the resolved registry. It returns nil on success or a
// *ValidationError carrying the full violation list.
func Check(reg *schema.Registry) error {
	var violations []Violation

	groupIDs := make(map[string]string)    // id -> provenance
	metricNames := make(map[string]string) // metric name -> group id

	for _, g := range reg.Groups {
		provenance := ""
		if g.Lineage != nil {
			provenance = g.Lineage.SourceFile
		}
		if prev, ok := groupIDs[g.ID]; ok {
			violations = append(violations, Violation{
				Kind:    KindDuplicateGroupID,
				GroupID: g.ID,
				Detail:  fmt.Sprintf("group id %q is declared in both %q and %q", g.ID, prev, provenance),
			})
		} else {
			groupIDs[g.ID] = provenance
		}

		if g.MetricName != "" {
			if prev, ok := metricNames[g.MetricName]; ok {
				violations = append(violations, Violation{
					Kind:    KindDuplicateMetricName,
					GroupID: g.ID,
					Target:  g.MetricName,
					Detail:  fmt.Sprintf("metric name %q is already used by group %q", g.MetricName, prev),
				})
			} else {
				metricNames[g.MetricName] = g.ID
			}
		}

		names := make(map[string]bool, len(g.Attributes))
		for _, attr := range g.Attributes {
			if names[attr.Name] {
				violations = append(violations, Violation{
					Kind:    KindDuplicateAttribute,
					GroupID: g.ID,
					Target:  attr.Name,
					Detail:  fmt.Sprintf("attribute %q appears more than once in the final attribute list", attr.Name),
				})
			}
			names[attr.Name] = true

			if attr.Type.Name == "" && !attr.Type.IsEnum() {
				violations = append(violations, Violation{
					Kind:    KindIncompleteAttribute,
					GroupID: g.ID,
					Target:  attr.Name,
					Detail:  fmt.Sprintf("attribute %q has no type; a reference escaped resolution", attr.Name),
				})
			}
		}

		for _, anyOf := range g.AnyOf {
			if !containsAny(names, anyOf) {
				violations = append(violations, Violation{
					Kind:    KindUnsatisfiedAnyOf,
					GroupID: g.ID,
					Detail:  fmt.Sprintf("none of the any_of attributes [%s] are present", strings.Join(anyOf, ", ")),
				})
			}
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func containsAny(names map[string]bool, candidates []string) bool {
	for _, c := range candidates {
		if names[c] {
			return true
		}
	}
	return false
}
