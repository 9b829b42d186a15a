package permission

import (
	"github.com/grantset-dev/grantset/internal/domain/automaton"
	"github.com/grantset-dev/grantset/internal/domain/privilege"
)

// entry binds one privilege to the union of every resource pattern granted
// alongside it. Entries are created during Set construction and never
// mutated; a merge produces a replacement entry.
type entry struct {
	priv privilege.Privilege

	// application tests another privilege's application name against this
	// entry's application name interpreted as a wildcard pattern.
	application func(string) bool

	resources   map[string]struct{}
	resourceAut *automaton.Automaton
}

func newEntry(p privilege.Privilege, resources []string, resourceAut *automaton.Automaton) *entry {
	set := make(map[string]struct{}, len(resources))
	for _, r := range resources {
		set[r] = struct{}{}
	}
	return &entry{
		priv:        p,
		application: automaton.Predicate(p.Application()),
		resources:   set,
		resourceAut: resourceAut,
	}
}

// merge returns a new entry covering this entry's resources plus the given
// ones. The resource acceptor is recomputed as a minimized union rather
// than extended in place.
func (e *entry) merge(resources []string, compiled *automaton.Automaton) *entry {
	union := make(map[string]struct{}, len(e.resources)+len(resources))
	for r := range e.resources {
		union[r] = struct{}{}
	}
	for _, r := range resources {
		union[r] = struct{}{}
	}
	return &entry{
		priv:        e.priv,
		application: e.application,
		resources:   union,
		resourceAut: automaton.UnionAndMinimize([]*automaton.Automaton{e.resourceAut, compiled}),
	}
}

// grants reports whether this entry authorizes the privilege on the
// requested resource acceptor.
func (e *entry) grants(other privilege.Privilege, resource *automaton.Automaton) bool {
	return e.matchesPrivilege(other) && automaton.SubsetOf(resource, e.resourceAut)
}

// matchesPrivilege reports whether this entry's privilege covers other.
//
// The exact-equality shortcut is not redundant: a privilege with an empty
// action language still matches itself, while the general rule below
// rejects any empty-vs-empty comparison so that unrelated privileges that
// both grant nothing never match each other.
func (e *entry) matchesPrivilege(other privilege.Privilege) bool {
	if e.priv.Equal(other) {
		return true
	}
	if !e.application(other.Application()) {
		return false
	}
	if e.priv.Acceptor().IsTotal() {
		return true
	}
	return !e.priv.Acceptor().IsEmpty() &&
		!other.Acceptor().IsEmpty() &&
		automaton.SubsetOf(other.Acceptor(), e.priv.Acceptor())
}
