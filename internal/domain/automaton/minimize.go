package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// minimize returns the minimal deterministic acceptor for a's language,
// using Moore partition refinement over the automaton's explicit-rune
// alphabet plus the shared default transition.
func minimize(a *Automaton) *Automaton {
	runeSet := a.alphabet()
	runes := make([]rune, 0, len(runeSet))
	for r := range runeSet {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	// Materialize the dead state so the transition function is total.
	n := len(a.states)
	dead := n
	total := func(s int, r rune) int {
		if s == dead {
			return dead
		}
		if t := a.step(s, r); t != deadState {
			return t
		}
		return dead
	}
	totalOther := func(s int) int {
		if s == dead {
			return dead
		}
		if t := a.states[s].other; t != deadState {
			return t
		}
		return dead
	}
	accepts := func(s int) bool {
		return s != dead && a.states[s].accept
	}

	// Reachable states, dead included when reachable.
	reachable := []int{a.start}
	seen := make([]bool, n+1)
	seen[a.start] = true
	for i := 0; i < len(reachable); i++ {
		s := reachable[i]
		visit := func(t int) {
			if !seen[t] {
				seen[t] = true
				reachable = append(reachable, t)
			}
		}
		for _, r := range runes {
			visit(total(s, r))
		}
		visit(totalOther(s))
	}

	// Initial partition by acceptance, refined by successor classes.
	class := make([]int, n+1)
	for _, s := range reachable {
		if accepts(s) {
			class[s] = 1
		}
	}
	for {
		sigs := map[string]int{}
		next := make([]int, n+1)
		for _, s := range reachable {
			var b strings.Builder
			b.WriteString(strconv.Itoa(class[s]))
			for _, r := range runes {
				b.WriteByte(':')
				b.WriteString(strconv.Itoa(class[total(s, r)]))
			}
			b.WriteByte('|')
			b.WriteString(strconv.Itoa(class[totalOther(s)]))
			sig := b.String()
			id, ok := sigs[sig]
			if !ok {
				id = len(sigs)
				sigs[sig] = id
			}
			next[s] = id
		}
		stable := true
		for _, s := range reachable {
			if next[s] != class[s] {
				stable = false
				break
			}
		}
		class = next
		if stable {
			break
		}
	}

	// Rebuild one state per class, mapping the dead class back to the
	// implicit dead state.
	deadClass := -2
	if seen[dead] {
		deadClass = class[dead]
	}
	rep := map[int]int{}
	for _, s := range reachable {
		if _, ok := rep[class[s]]; !ok {
			rep[class[s]] = s
		}
	}

	out := &Automaton{}
	outID := map[int]int{}

	var intern func(c int) int
	intern = func(c int) int {
		if c == deadClass {
			return deadState
		}
		if id, ok := outID[c]; ok {
			return id
		}
		id := len(out.states)
		outID[c] = id
		s := rep[c]
		out.states = append(out.states, state{accept: accepts(s), other: deadState})

		other := intern(class[totalOther(s)])
		out.states[id].other = other

		edges := make(map[rune]int)
		for _, r := range runes {
			t := intern(class[total(s, r)])
			if t != other {
				edges[r] = t
			}
		}
		if len(edges) > 0 {
			out.states[id].edges = edges
		}
		return id
	}

	start := intern(class[a.start])
	if start == deadState {
		return compileEmpty()
	}
	out.start = start
	return out
}
