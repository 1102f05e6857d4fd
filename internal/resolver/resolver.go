// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

// Package resolver implements the multi-pass resolution engine that turns a
// raw semantic convention group list into a self-contained resolved
// registry. Attribute references, extends inheritance and include
// constraints are resolved by fixed-point iteration: passes repeat until a
// full pass makes no progress, at which point either everything is resolved
// or the remaining clauses are reported together as unresolvable.
package resolver

import (
	"go.uber.org/zap"

	"github.com/semconvkit/registry-resolver/internal/catalog"
	"github.com/semconvkit/registry-resolver/internal/loader"
	"github.com/semconvkit/registry-resolver/internal/schema"
	"github.com/semconvkit/registry-resolver/internal/semconv"
)

// Options controls a resolution run.
type Options struct {
	// RegistryURL is recorded as the provenance header of the resolved
	// registry.
	RegistryURL string
	// IncludeCatalog attaches the shared deduplicated attribute catalog to
	// the emitted registry.
	IncludeCatalog bool
}

// Resolver resolves one registry at a time. Each Resolve call builds and
// discards its own catalog, so independent registries can be resolved
// concurrently from separate Resolver values.
type Resolver struct {
	logger *zap.Logger
}

// New creates a Resolver.
func New(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// slot is one position in a group's attribute list. It preserves
// declaration order: specs resolve in place, whichever pass resolves them.
type slot struct {
	spec *semconv.Attribute // remaining unresolved spec, nil once resolved
	// ref keeps the original ref spec past resolution. When an extends
	// parent carries the same attribute, the ref's explicit overrides must
	// be re-applied over the parent's resolved value, not the catalog's.
	ref      *semconv.Attribute
	attr     schema.Attribute
	lin      *schema.AttributeLineage // nil for originally-local attributes
	resolved bool
}

func (s *slot) name() string {
	if s.resolved {
		return s.attr.Name
	}
	return s.spec.Name()
}

// workGroup is the mutable resolution state of one group.
type workGroup struct {
	raw      loader.Group
	out      *schema.Group
	slots    []*slot
	extends  string
	includes []string
	lineage  *schema.GroupLineage
}

// state machine: a group is Unresolved while it still carries any
// ref/extends/include clause, and Resolved once none remain. Anything in
// between is partially resolved; only fully resolved groups may serve as
// extends or include targets.
func (wg *workGroup) isResolved() bool {
	if wg.extends != "" || len(wg.includes) > 0 {
		return false
	}
	for _, s := range wg.slots {
		if !s.resolved {
			return false
		}
	}
	return true
}

// Resolve runs the full pipeline over the raw group list: prefix
// application, catalog construction, fixed-point reference resolution, and
// assembly of the resolved registry. On reference failure no partial
// registry is returned.
func (r *Resolver) Resolve(groups []loader.Group, opts Options) (*schema.Registry, error) {
	applyPrefixes(groups)

	cat, err := catalog.Build(r.logger, groups)
	if err != nil {
		return nil, err
	}

	work := makeWorkGroups(groups)

	passes := 0
	for {
		progress := 0
		for {
			n := resolveRefsPass(work, cat)
			progress += n
			passes++
			if n == 0 {
				break
			}
		}
		progress += resolveExtendsPass(work)
		progress += resolveIncludesPass(work)
		if progress == 0 {
			break
		}
	}

	if err := collectDangling(work); err != nil {
		return nil, err
	}
	r.logger.Debug("registry resolved",
		zap.Int("groups", len(work)),
		zap.Int("attributes", cat.Attributes()),
		zap.Int("passes", passes))

	return r.assemble(work, opts), nil
}

// applyPrefixes rewrites locally defined attribute ids with their group's
// prefix. This is the only place attribute ids are ever modified.
func applyPrefixes(groups []loader.Group) {
	for _, g := range groups {
		if g.Prefix == "" {
			continue
		}
		for _, attr := range g.Attributes {
			if !attr.IsRef() {
				attr.ID = g.Prefix + "." + attr.ID
			}
		}
	}
}

func makeWorkGroups(groups []loader.Group) []*workGroup {
	work := make([]*workGroup, 0, len(groups))
	for _, g := range groups {
		wg := &workGroup{
			raw:     g,
			extends: g.Extends,
			lineage: schema.NewGroupLineage(g.Provenance),
			out: &schema.Group{
				ID:          g.ID,
				Type:        g.Type,
				Brief:       g.Brief,
				Note:        g.Note,
				Prefix:      g.Prefix,
				Stability:   g.Stability,
				Deprecated:  g.Deprecated,
				SpanKind:    g.SpanKind,
				Events:      g.Events,
				MetricName:  g.MetricName,
				Instrument:  g.Instrument,
				Unit:        g.Unit,
				Name:        g.Name,
				DisplayName: g.DisplayName,
				Body:        g.Body,
				Annotations: g.Annotations,
			},
		}
		for _, attr := range g.Attributes {
			s := &slot{spec: attr}
			if attr.IsRef() {
				s.ref = attr
			}
			wg.slots = append(wg.slots, s)
		}
		for _, c := range g.Constraints {
			if c.Include != "" {
				wg.includes = append(wg.includes, c.Include)
			}
			if len(c.AnyOf) > 0 {
				wg.out.AnyOf = append(wg.out.AnyOf, c.AnyOf)
			}
		}
		work = append(work, wg)
	}
	return work
}

// resolveRefsPass is the inner loop: one scan over all groups resolving
// every attribute spec whose target is available. Local definitions resolve
// immediately; refs resolve once their target is in the catalog. Returns
// the number of specs resolved in this pass.
func resolveRefsPass(work []*workGroup, cat *catalog.Catalog) int {
	resolved := 0
	for _, wg := range work {
		for _, s := range wg.slots {
			if s.resolved {
				continue
			}
			if !s.spec.IsRef() {
				s.attr = concrete(s.spec)
				s.spec = nil
				s.resolved = true
				resolved++
				continue
			}
			entry, ok := cat.Lookup(s.spec.Ref)
			if !ok {
				continue
			}
			target := concrete(entry.Attribute)
			s.attr, s.lin = overlay(target, s.spec, entry.GroupID)
			s.spec = nil
			s.resolved = true
			resolved++
		}
	}
	return resolved
}

// collectDangling enumerates every clause still unresolved after the fixed
// point was reached. The resulting error is terminal: cyclic extends,
// refs to nonexistent attributes and extends of nonexistent groups all
// surface here, all at once.
func collectDangling(work []*workGroup) error {
	var dangling []DanglingRef
	for _, wg := range work {
		for _, s := range wg.slots {
			if !s.resolved {
				dangling = append(dangling, DanglingRef{
					Kind:       KindRef,
					GroupID:    wg.out.ID,
					Target:     s.spec.Ref,
					Provenance: wg.raw.Provenance,
				})
			}
		}
		if wg.extends != "" {
			dangling = append(dangling, DanglingRef{
				Kind:       KindExtends,
				GroupID:    wg.out.ID,
				Target:     wg.extends,
				Provenance: wg.raw.Provenance,
			})
		}
		for _, inc := range wg.includes {
			dangling = append(dangling, DanglingRef{
				Kind:       KindInclude,
				GroupID:    wg.out.ID,
				Target:     inc,
				Provenance: wg.raw.Provenance,
			})
		}
	}
	if len(dangling) > 0 {
		return &UnresolvedReferenceError{Dangling: dangling}
	}
	return nil
}

// assemble produces the immutable resolved registry: groups in input order,
// attributes in slot order, lineage attached, and the shared catalog built
// by interning every resolved attribute.
func (r *Resolver) assemble(work []*workGroup, opts Options) *schema.Registry {
	shared := schema.NewCatalog()
	reg := &schema.Registry{RegistryURL: opts.RegistryURL}
	for _, wg := range work {
		for _, s := range wg.slots {
			wg.out.Attributes = append(wg.out.Attributes, s.attr)
			shared.Ref(s.attr)
			if s.lin != nil {
				wg.lineage.SetAttribute(s.attr.Name, s.lin)
			}
		}
		wg.out.Lineage = wg.lineage
		reg.Groups = append(reg.Groups, wg.out)
	}
	if opts.IncludeCatalog {
		reg.Catalog = shared
	}
	return reg
}
