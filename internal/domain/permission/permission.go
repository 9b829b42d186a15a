// Package permission implements the application permission set: an immutable,
// deduplicated collection of (privilege, resource patterns) grants that can
// decide whether a requested privilege is authorized on a specific resource.
//
// Matching is language containment over compiled wildcard acceptors, not
// string comparison: an entry authorizes a request when the entry's
// application pattern covers the requested application, the entry's action
// language covers the requested action language, and the entry's resource
// language covers the requested resource.
package permission

import (
	"sort"

	"github.com/grantset-dev/grantset/internal/domain/automaton"
	"github.com/grantset-dev/grantset/internal/domain/privilege"
)

// Grant is one raw (privilege, resource patterns) pair handed to NewSet.
// Resources may be empty, meaning the privilege was granted on no resources.
type Grant struct {
	Privilege privilege.Privilege
	Resources []string
}

// Set is an immutable permission set. Construction deduplicates grants by
// privilege identity; repeated grants for the same privilege widen its
// resource coverage. A Set is safe for unlimited concurrent reads.
type Set struct {
	entries []*entry
}

// None is the empty permission set. It denies every request and returns
// empty results from every query.
var None = &Set{}

// NewSet builds a permission set from raw grants. Grants sharing an equal
// privilege are merged into a single entry whose resource language is the
// union of all patterns granted for that privilege. Construction panics on
// a zero-value privilege: absent privileges are caller bugs, not denials.
func NewSet(grants []Grant) *Set {
	byKey := make(map[string]int, len(grants))
	entries := make([]*entry, 0, len(grants))

	for _, g := range grants {
		if g.Privilege.IsZero() {
			panic("permission: grant with zero privilege")
		}
		compiled := automaton.CompilePatterns(g.Resources)
		if i, ok := byKey[g.Privilege.Key()]; ok {
			entries[i] = entries[i].merge(g.Resources, compiled)
			continue
		}
		byKey[g.Privilege.Key()] = len(entries)
		entries = append(entries, newEntry(g.Privilege, g.Resources, compiled))
	}
	return &Set{entries: entries}
}

// Grants reports whether this permission set authorizes the given privilege
// on the given resource. It returns true if any single entry covers both
// the privilege and the resource. Panics on a zero-value privilege.
func (s *Set) Grants(p privilege.Privilege, resource string) bool {
	if p.IsZero() {
		panic("permission: grants check with zero privilege")
	}
	requested := automaton.Compile(resource)
	for _, e := range s.entries {
		if e.grants(p, requested) {
			return true
		}
	}
	return false
}

// ApplicationNames returns the application identifiers used at grant time,
// sorted and deduplicated. Wildcard application names are returned raw.
func (s *Set) ApplicationNames() []string {
	set := make(map[string]struct{}, len(s.entries))
	for _, e := range s.entries {
		set[e.priv.Application()] = struct{}{}
	}
	return sortedKeys(set)
}

// PrivilegesFor returns the privileges granted under the exact application
// name. This is string equality, not pattern matching.
func (s *Set) PrivilegesFor(application string) []privilege.Privilege {
	var out []privilege.Privilege
	for _, e := range s.entries {
		if e.priv.Application() == application {
			out = append(out, e.priv)
		}
	}
	return out
}

// ResourcePatternsFor returns the union of resource patterns from every
// entry whose privilege covers the given privilege, sorted. The result may
// contain overlapping patterns (e.g. "a/*" and "a/1") and patterns
// inherited from broader privileges; callers should not expect it to be
// minimal.
func (s *Set) ResourcePatternsFor(p privilege.Privilege) []string {
	set := make(map[string]struct{})
	for _, e := range s.entries {
		if e.matchesPrivilege(p) {
			for name := range e.resources {
				set[name] = struct{}{}
			}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
