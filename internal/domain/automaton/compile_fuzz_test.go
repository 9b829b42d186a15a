package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// naiveMatch is a reference wildcard matcher used to cross-check the
// compiled acceptor. Recursive, rune-based, no automata involved.
func naiveMatch(pattern, input []rune) bool {
	if len(pattern) == 0 {
		return len(input) == 0
	}
	switch pattern[0] {
	case '*':
		if naiveMatch(pattern[1:], input) {
			return true
		}
		return len(input) > 0 && naiveMatch(pattern, input[1:])
	case '?':
		return len(input) > 0 && naiveMatch(pattern[1:], input[1:])
	default:
		return len(input) > 0 && input[0] == pattern[0] && naiveMatch(pattern[1:], input[1:])
	}
}

func FuzzCompile(f *testing.F) {
	f.Add("data/*", "data/object/1")
	f.Add("a*b*c", "aXbYc")
	f.Add("??", "ab")
	f.Add("", "")
	f.Add("*", "anything")
	f.Add("a/*/b", "a//b")

	f.Fuzz(func(t *testing.T, pattern, input string) {
		// Keep the reference matcher's backtracking bounded.
		if len(pattern) > 24 || len(input) > 48 || strings.Count(pattern, "*") > 4 {
			t.Skip()
		}
		got := Compile(pattern).Run(input)
		want := naiveMatch([]rune(pattern), []rune(input))
		require.Equal(t, want, got, "pattern %q input %q", pattern, input)
	})
}

func FuzzSubsetReflexive(f *testing.F) {
	f.Add("data/*")
	f.Add("a?c")
	f.Add("")

	f.Fuzz(func(t *testing.T, pattern string) {
		if len(pattern) > 24 {
			t.Skip()
		}
		a := Compile(pattern)
		require.True(t, SubsetOf(a, a))
	})
}
