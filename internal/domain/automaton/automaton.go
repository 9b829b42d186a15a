// Package automaton implements deterministic finite acceptors over strings,
// compiled from wildcard patterns. It provides the language operations the
// permission engine needs: union, minimization, containment, emptiness and
// totality tests.
//
// Wildcard syntax: '*' matches any run of characters (including none),
// '?' matches exactly one character, every other rune is a literal.
// Every pattern string is well-formed, so compilation never fails.
package automaton

// deadState marks a missing transition. A run that reaches it rejects.
const deadState = -1

// Automaton is an immutable deterministic finite acceptor.
// Instances are safe for concurrent use and may be shared freely.
type Automaton struct {
	start  int
	states []state
}

// state holds explicit per-rune transitions plus a default transition taken
// for any rune without an explicit edge. The rune alphabet is unbounded, so
// the default transition is always takable.
type state struct {
	accept bool
	edges  map[rune]int
	other  int
}

// step returns the successor of s on r, or deadState.
func (a *Automaton) step(s int, r rune) int {
	st := &a.states[s]
	if t, ok := st.edges[r]; ok {
		return t
	}
	return st.other
}

// Run reports whether the automaton accepts the given string.
func (a *Automaton) Run(input string) bool {
	cur := a.start
	for _, r := range input {
		cur = a.step(cur, r)
		if cur == deadState {
			return false
		}
	}
	return a.states[cur].accept
}

// IsEmpty reports whether the automaton accepts no string at all.
func (a *Automaton) IsEmpty() bool {
	seen := make([]bool, len(a.states))
	queue := []int{a.start}
	seen[a.start] = true
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		st := &a.states[s]
		if st.accept {
			return false
		}
		for _, t := range st.edges {
			if t != deadState && !seen[t] {
				seen[t] = true
				queue = append(queue, t)
			}
		}
		if st.other != deadState && !seen[st.other] {
			seen[st.other] = true
			queue = append(queue, st.other)
		}
	}
	return true
}

// IsTotal reports whether the automaton accepts every possible string.
// Equivalent to emptiness of the complement: every reachable state must
// accept and no reachable transition may lead to the dead state.
func (a *Automaton) IsTotal() bool {
	seen := make([]bool, len(a.states))
	queue := []int{a.start}
	seen[a.start] = true
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		st := &a.states[s]
		if !st.accept {
			return false
		}
		if st.other == deadState {
			return false
		}
		for _, t := range st.edges {
			if t == deadState {
				return false
			}
			if !seen[t] {
				seen[t] = true
				queue = append(queue, t)
			}
		}
		if !seen[st.other] {
			seen[st.other] = true
			queue = append(queue, st.other)
		}
	}
	return true
}

// Predicate compiles a single wildcard pattern into a callable matcher.
func Predicate(pattern string) func(string) bool {
	a := Compile(pattern)
	return a.Run
}

// alphabet collects every rune carrying an explicit edge anywhere in the
// automaton. Transitions on runes outside this set behave identically
// (they all take the default edge), so language operations only need to
// distinguish these runes plus one representative "other" rune.
func (a *Automaton) alphabet() map[rune]struct{} {
	runes := make(map[rune]struct{})
	for i := range a.states {
		for r := range a.states[i].edges {
			runes[r] = struct{}{}
		}
	}
	return runes
}
