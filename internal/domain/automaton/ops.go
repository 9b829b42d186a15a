package automaton

// UnionAndMinimize returns the minimized acceptor for the union of the
// input languages. An empty input yields the empty language.
func UnionAndMinimize(automata []*Automaton) *Automaton {
	if len(automata) == 0 {
		return compileEmpty()
	}
	result := automata[0]
	for _, a := range automata[1:] {
		result = union(result, a)
	}
	return minimize(result)
}

// pair identifies one state of a product construction. Either side may be
// the dead state.
type pair struct {
	a, b int
}

// union builds the product acceptor whose language is L(a) ∪ L(b).
func union(a, b *Automaton) *Automaton {
	runes := a.alphabet()
	for r := range b.alphabet() {
		runes[r] = struct{}{}
	}

	// stepOrDead follows a transition on one side of the product,
	// treating the dead state as an absorbing sink.
	stepOrDead := func(m *Automaton, s int, r rune) int {
		if s == deadState {
			return deadState
		}
		return m.step(s, r)
	}
	otherOrDead := func(m *Automaton, s int) int {
		if s == deadState {
			return deadState
		}
		return m.states[s].other
	}

	out := &Automaton{}
	ids := map[pair]int{}
	var queue []pair

	intern := func(p pair) int {
		if p.a == deadState && p.b == deadState {
			return deadState
		}
		if id, ok := ids[p]; ok {
			return id
		}
		id := len(out.states)
		ids[p] = id
		accept := (p.a != deadState && a.states[p.a].accept) ||
			(p.b != deadState && b.states[p.b].accept)
		out.states = append(out.states, state{accept: accept, other: deadState})
		queue = append(queue, p)
		return id
	}

	out.start = intern(pair{a.start, b.start})
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		id := ids[p]

		other := intern(pair{otherOrDead(a, p.a), otherOrDead(b, p.b)})
		out.states[id].other = other

		edges := make(map[rune]int)
		for r := range runes {
			t := intern(pair{stepOrDead(a, p.a, r), stepOrDead(b, p.b, r)})
			if t != other {
				edges[r] = t
			}
		}
		if len(edges) > 0 {
			out.states[id].edges = edges
		}
	}
	return out
}

// SubsetOf reports whether every string accepted by a is also accepted
// by b. It searches the product of the two acceptors for a state that
// accepts in a while rejecting in b.
func SubsetOf(a, b *Automaton) bool {
	runes := a.alphabet()
	for r := range b.alphabet() {
		runes[r] = struct{}{}
	}

	seen := map[pair]struct{}{}
	queue := []pair{{a.start, b.start}}
	seen[queue[0]] = struct{}{}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if a.states[p.a].accept && (p.b == deadState || !b.states[p.b].accept) {
			return false
		}

		visit := func(na, nb int) {
			if na == deadState {
				// The string died in a; it cannot witness a violation.
				return
			}
			n := pair{na, nb}
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				queue = append(queue, n)
			}
		}

		stepB := func(r rune) int {
			if p.b == deadState {
				return deadState
			}
			return b.step(p.b, r)
		}

		for r := range runes {
			visit(a.step(p.a, r), stepB(r))
		}
		otherB := deadState
		if p.b != deadState {
			otherB = b.states[p.b].other
		}
		visit(a.states[p.a].other, otherB)
	}
	return true
}
