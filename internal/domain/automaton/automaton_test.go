package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Run(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		match   bool
	}{
		{"literal match", "data/read", "data/read", true},
		{"literal mismatch", "data/read", "data/write", false},
		{"literal is not a prefix match", "data", "database", false},
		{"star matches empty", "data/*", "data/", true},
		{"star matches run", "data/*", "data/object/1", true},
		{"star mid pattern", "read/*/meta", "read/object-7/meta", true},
		{"star mid pattern mismatch", "read/*/meta", "read/object-7/data", false},
		{"leading star", "*/admin", "any/admin", true},
		{"only star", "*", "", true},
		{"only star long", "*", "anything at all", true},
		{"question matches one rune", "object/?", "object/1", true},
		{"question rejects empty", "object/?", "object/", false},
		{"question rejects two", "object/?", "object/12", false},
		{"question matches multibyte rune", "object/?", "object/é", true},
		{"multiple stars", "a*b*c", "aXXbYYc", true},
		{"multiple stars greedy overlap", "a*b*c", "abc", true},
		{"multiple stars mismatch", "a*b*c", "acb", false},
		{"empty pattern matches empty", "", "", true},
		{"empty pattern rejects non-empty", "", "x", false},
		{"star question combo", "*?", "x", true},
		{"star question combo rejects empty", "*?", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Compile(tt.pattern)
			assert.Equal(t, tt.match, a.Run(tt.input))
		})
	}
}

func TestCompilePatterns_Union(t *testing.T) {
	a := CompilePatterns([]string{"data/*", "admin/settings", "logs-?"})

	assert.True(t, a.Run("data/object/1"))
	assert.True(t, a.Run("admin/settings"))
	assert.True(t, a.Run("logs-7"))
	assert.False(t, a.Run("admin/users"))
	assert.False(t, a.Run("logs-10"))
}

func TestCompilePatterns_Empty(t *testing.T) {
	a := CompilePatterns(nil)

	require.True(t, a.IsEmpty())
	assert.False(t, a.Run(""))
	assert.False(t, a.Run("anything"))
}

func TestSubsetOf(t *testing.T) {
	tests := []struct {
		name   string
		sub    []string
		super  []string
		subset bool
	}{
		{"literal within wildcard", []string{"data/1"}, []string{"data/*"}, true},
		{"wildcard not within literal", []string{"data/*"}, []string{"data/1"}, false},
		{"equal languages", []string{"data/*"}, []string{"data/*"}, true},
		{"narrower wildcard", []string{"data/read/*"}, []string{"data/*"}, true},
		{"wider wildcard", []string{"data/*"}, []string{"data/read/*"}, false},
		{"everything covers anything", []string{"x", "y/*"}, []string{"*"}, true},
		{"question within star", []string{"a?"}, []string{"a*"}, true},
		{"star not within question", []string{"a*"}, []string{"a?"}, false},
		{"empty language within anything", nil, []string{"x"}, true},
		{"nothing within empty language", []string{"x"}, nil, false},
		{"empty within empty", nil, nil, true},
		{"union containment", []string{"a/1", "b/2"}, []string{"a/*", "b/*"}, true},
		{"union partial containment", []string{"a/1", "c/2"}, []string{"a/*", "b/*"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := CompilePatterns(tt.sub)
			super := CompilePatterns(tt.super)
			assert.Equal(t, tt.subset, SubsetOf(sub, super))
		})
	}
}

func TestIsTotal(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		total    bool
	}{
		{"single star", []string{"*"}, true},
		{"double star", []string{"**"}, true},
		{"star among others", []string{"data/*", "*"}, true},
		{"prefix wildcard", []string{"data/*"}, false},
		{"literal", []string{"data"}, false},
		{"empty language", nil, false},
		{"question star requires one rune", []string{"?*"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.total, CompilePatterns(tt.patterns).IsTotal())
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, CompilePatterns(nil).IsEmpty())
	assert.False(t, Compile("").IsEmpty(), "empty pattern accepts the empty string")
	assert.False(t, Compile("a").IsEmpty())
	assert.False(t, Compile("*").IsEmpty())
}

func TestUnionAndMinimize_Equivalence(t *testing.T) {
	left := Compile("data/*")
	right := Compile("data/read/*")
	merged := UnionAndMinimize([]*Automaton{left, right})

	// data/read/* is contained in data/*, so the union equals data/*.
	assert.True(t, SubsetOf(merged, left))
	assert.True(t, SubsetOf(left, merged))
	assert.True(t, merged.Run("data/read/x"))
	assert.True(t, merged.Run("data/y"))
	assert.False(t, merged.Run("other"))
}

func TestUnionAndMinimize_Empty(t *testing.T) {
	assert.True(t, UnionAndMinimize(nil).IsEmpty())
}

func TestPredicate(t *testing.T) {
	p := Predicate("app-*")

	assert.True(t, p("app-1"))
	assert.True(t, p("app-"))
	assert.False(t, p("other-app"))
}

func TestAutomaton_ConcurrentRun(t *testing.T) {
	a := CompilePatterns([]string{"data/*", "logs-?"})

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				assert.True(t, a.Run("data/x"))
				assert.False(t, a.Run("nope"))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
