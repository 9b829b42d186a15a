// Package privilege defines the application privilege value object: a named
// bundle of authorized action patterns within one application namespace.
package privilege

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grantset-dev/grantset/internal/domain/automaton"
)

// Privilege is an immutable value representing one application capability.
// The action patterns are held in canonical form (sorted, deduplicated), so
// two privileges built from the same patterns in any order are equal.
type Privilege struct {
	application string
	actions     []string
	acceptor    *automaton.Automaton
}

// New creates a Privilege with validation. The application name must be
// non-empty; zero action patterns is legal and yields a privilege whose
// action language accepts nothing.
func New(application string, actions ...string) (Privilege, error) {
	application = strings.TrimSpace(application)
	if application == "" {
		return Privilege{}, fmt.Errorf("application name cannot be empty")
	}

	canonical := canonicalize(actions)
	return Privilege{
		application: application,
		actions:     canonical,
		acceptor:    automaton.CompilePatterns(canonical),
	}, nil
}

// MustNew creates a Privilege or panics.
func MustNew(application string, actions ...string) Privilege {
	p, err := New(application, actions...)
	if err != nil {
		panic(err)
	}
	return p
}

// Application returns the application namespace identifier.
func (p Privilege) Application() string {
	return p.application
}

// Actions returns a copy of the canonical action patterns.
func (p Privilege) Actions() []string {
	out := make([]string, len(p.actions))
	copy(out, p.actions)
	return out
}

// Acceptor returns the compiled acceptor for the privilege's action language.
func (p Privilege) Acceptor() *automaton.Automaton {
	return p.acceptor
}

// IsZero returns true if this is the zero value.
func (p Privilege) IsZero() bool {
	return p.application == ""
}

// Equal checks structural equality: same application, same canonical
// action patterns.
func (p Privilege) Equal(other Privilege) bool {
	return p.Key() == other.Key()
}

// Key returns the canonical identity of the privilege, suitable as a
// deduplication key. Two privileges are equal iff their keys are equal.
func (p Privilege) Key() string {
	return p.application + "\x00" + strings.Join(p.actions, "\x00")
}

// String returns a human-readable representation.
func (p Privilege) String() string {
	return p.application + ":[" + strings.Join(p.actions, ",") + "]"
}

// MarshalJSON implements json.Marshaler.
func (p Privilege) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteString(`{"application":`)
	b.WriteString(quote(p.application))
	b.WriteString(`,"actions":[`)
	for i, a := range p.actions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(a))
	}
	b.WriteString(`]}`)
	return []byte(b.String()), nil
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// canonicalize sorts and deduplicates action patterns.
func canonicalize(actions []string) []string {
	set := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
