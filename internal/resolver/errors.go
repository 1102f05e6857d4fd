// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"fmt"
	"strings"
)

// RefKind says which kind of reference clause is dangling.
type RefKind string

const (
	KindRef     RefKind = "ref"
	KindExtends RefKind = "extends"
	KindInclude RefKind = "include"
)

// DanglingRef identifies one unresolvable reference: the group that holds
// it, the id it points at, and the file the group came from.
type DanglingRef struct {
	Kind       RefKind `json:"kind"`
	GroupID    string  `json:"group_id"`
	Target     string  `json:"target"`
	Provenance string  `json:"provenance"`
}

func (d DanglingRef) String() string {
	return fmt.Sprintf("group %q (%s): %s %q cannot be resolved", d.GroupID, d.Provenance, d.Kind, d.Target)
}

// UnresolvedReferenceError is returned when a full resolution pass makes no
// progress while references remain. It enumerates every dangling ref,
// extends and include so one run surfaces all of them. Cyclic extends
// chains and references to nonexistent targets both manifest this way.
type UnresolvedReferenceError struct {
	Dangling []DanglingRef
}

func (e *UnresolvedReferenceError) Error() string {
	parts := make([]string, len(e.Dangling))
	for i, d := range e.Dangling {
		parts[i] = d.String()
	}
	return fmt.Sprintf("resolution failed with %d unresolved reference(s): %s",
		len(e.Dangling), strings.Join(parts, "; "))
}
