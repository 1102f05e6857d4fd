// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package resolver

// The outer loop of the fixed point: extends and include clauses apply only
// once their target group is fully resolved, so each pass peels one layer
// off the inheritance chains. Cycles never become applicable and are left
// for collectDangling to report.

func indexByID(work []*workGroup) map[string]*workGroup {
	byID := make(map[string]*workGroup, len(work))
	for _, wg := range work {
		byID[wg.out.ID] = wg
	}
	return byID
}

// resolveExtendsPass applies every extends clause whose parent group is
// fully resolved. Returns the number of clauses applied.
func resolveExtendsPass(work []*workGroup) int {
	byID := indexByID(work)
	progress := 0
	for _, wg := range work {
		if wg.extends == "" {
			continue
		}
		parent, ok := byID[wg.extends]
		if !ok || parent == wg || !parent.isResolved() {
			continue
		}
		applyExtends(wg, parent)
		wg.extends = ""
		progress++
	}
	return progress
}

// applyExtends prepends the parent's resolved attribute list to the child's
// and inherits the parent's prefix when the child has none. A child
// attribute with the same name as an inherited one overrides it in place:
// wholesale if the child defines it locally, field by field if the child
// holds a ref. The ref case re-applies the child's explicit overrides over
// the parent's resolved attribute even when an earlier pass already
// resolved the ref against the catalog: fields the child leaves unset come
// from the immediate parent, which may itself refine the catalog
// definition.
func applyExtends(wg, parent *workGroup) {
	if wg.out.Prefix == "" {
		wg.out.Prefix = parent.out.Prefix
	}

	inherited := make([]*slot, 0, len(parent.slots)+len(wg.slots))
	pos := make(map[string]int, len(parent.slots))
	for _, ps := range parent.slots {
		pos[ps.attr.Name] = len(inherited)
		inherited = append(inherited, &slot{
			attr:     ps.attr,
			lin:      inheritAll(parent.out.ID),
			resolved: true,
		})
	}

	var rest []*slot
	for _, cs := range wg.slots {
		i, ok := pos[cs.name()]
		if !ok {
			rest = append(rest, cs)
			continue
		}
		if cs.ref != nil {
			merged, lin := overlay(inherited[i].attr, cs.ref, parent.out.ID)
			inherited[i] = &slot{attr: merged, lin: lin, resolved: true}
			continue
		}
		inherited[i] = cs
	}
	wg.slots = append(inherited, rest...)
}

// resolveIncludesPass applies every include constraint whose target group
// is fully resolved, bulk-copying the target's resolved attribute list with
// the same local-wins semantics as extends. Returns the number of includes
// applied.
func resolveIncludesPass(work []*workGroup) int {
	byID := indexByID(work)
	progress := 0
	for _, wg := range work {
		if len(wg.includes) == 0 {
			continue
		}
		var remaining []string
		for _, inc := range wg.includes {
			target, ok := byID[inc]
			if !ok || target == wg || !target.isResolved() {
				remaining = append(remaining, inc)
				continue
			}
			applyInclude(wg, target)
			progress++
		}
		wg.includes = remaining
	}
	return progress
}

func applyInclude(wg, target *workGroup) {
	names := make(map[string]bool, len(wg.slots))
	for _, s := range wg.slots {
		names[s.name()] = true
	}
	for _, ts := range target.slots {
		if names[ts.attr.Name] {
			continue
		}
		wg.slots = append(wg.slots, &slot{
			attr:     ts.attr,
			lin:      inheritAll(target.out.ID),
			resolved: true,
		})
		names[ts.attr.Name] = true
	}
}
