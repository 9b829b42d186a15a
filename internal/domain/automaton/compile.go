package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// Compile builds the deterministic acceptor for one wildcard pattern.
//
// The construction treats each position in the pattern as an NFA state:
// a '*' position loops on any rune and epsilon-steps past itself, a '?'
// position consumes any single rune, a literal position consumes exactly
// its rune. The NFA is determinized by subset construction over the runes
// that occur literally in the pattern; all remaining runes collapse into
// the default transition.
func Compile(pattern string) *Automaton {
	pat := []rune(pattern)
	n := len(pat)

	literals := make(map[rune]struct{})
	for _, r := range pat {
		if r != '*' && r != '?' {
			literals[r] = struct{}{}
		}
	}

	// closure adds every position reachable by skipping '*' positions.
	closure := func(set map[int]struct{}, pos int) {
		for {
			if _, ok := set[pos]; ok {
				return
			}
			set[pos] = struct{}{}
			if pos < n && pat[pos] == '*' {
				pos++
				continue
			}
			return
		}
	}

	// move computes the successor position set on a rune. When isLiteral
	// is false the rune stands for "any rune not literal in the pattern".
	move := func(set map[int]struct{}, r rune, isLiteral bool) map[int]struct{} {
		next := make(map[int]struct{})
		for pos := range set {
			if pos >= n {
				continue
			}
			switch pat[pos] {
			case '*':
				closure(next, pos)
			case '?':
				closure(next, pos+1)
			default:
				if isLiteral && pat[pos] == r {
					closure(next, pos+1)
				}
			}
		}
		return next
	}

	start := make(map[int]struct{})
	closure(start, 0)

	a := &Automaton{}
	ids := map[string]int{}

	var intern func(set map[int]struct{}) int
	intern = func(set map[int]struct{}) int {
		if len(set) == 0 {
			return deadState
		}
		key := setKey(set)
		if id, ok := ids[key]; ok {
			return id
		}
		id := len(a.states)
		ids[key] = id
		_, accept := set[n]
		a.states = append(a.states, state{accept: accept, other: deadState})

		other := intern(move(set, 0, false))
		a.states[id].other = other

		edges := make(map[rune]int)
		for r := range literals {
			t := intern(move(set, r, true))
			if t != other {
				edges[r] = t
			}
		}
		if len(edges) > 0 {
			a.states[id].edges = edges
		}
		return id
	}

	a.start = intern(start)
	if a.start == deadState {
		// Unreachable for well-formed patterns (the start closure is never
		// empty), but keep the automaton structurally valid.
		return compileEmpty()
	}
	return a
}

// CompilePatterns builds the minimized acceptor for the union of all given
// patterns. An empty input yields the empty language.
func CompilePatterns(patterns []string) *Automaton {
	if len(patterns) == 0 {
		return compileEmpty()
	}
	automata := make([]*Automaton, 0, len(patterns))
	for _, p := range patterns {
		automata = append(automata, Compile(p))
	}
	return UnionAndMinimize(automata)
}

// compileEmpty returns an acceptor for the empty language.
func compileEmpty() *Automaton {
	return &Automaton{
		start:  0,
		states: []state{{accept: false, other: deadState}},
	}
}

// setKey canonicalizes an NFA position set for interning.
func setKey(set map[int]struct{}) string {
	positions := make([]int, 0, len(set))
	for p := range set {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	var b strings.Builder
	for _, p := range positions {
		b.WriteString(strconv.Itoa(p))
		b.WriteByte(',')
	}
	return b.String()
}
