package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertIsGNF checks universal invariant 2: every body is empty (only for
// the start symbol) or begins with a Terminal followed by zero or more
// NonTerminals.
func assertIsGNF(t *testing.T, g *Grammar) {
	t.Helper()
	start := g.Start()
	for _, nt := range g.NonTerminals() {
		for _, b := range g.Bodies(nt) {
			if b.IsEpsilon() {
				assert.Equal(t, start, nt, "%s -> E only allowed for start symbol", nt)
				continue
			}
			assert.True(t, b[0].IsTerminal(), "%s -> %s does not begin with a Terminal", nt, b)
			for _, sym := range b[1:] {
				assert.True(t, sym.IsNonTerminal(), "%s -> %s: trailing symbol %s is not a NonTerminal", nt, b, sym)
			}
		}
	}
}

func Test_ToGNF_produces_GNF_shape(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
	}{
		{"scenario 1: aSb | epsilon", []string{"S : aSb | E"}},
		{"scenario 3: AB split", []string{"S : AB", "A : a", "B : b"}},
		{"scenario 4: left recursion with terminal", []string{"S : aS | a"}},
		{"scenario 5: two optional factors", []string{"S : AB", "A : a | E", "B : b | E"}},
		{"scenario 6: direct left recursion SS", []string{"S : SS | a"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grammarFromLines(tc.lines...)
			out, err := ToGNF(g)
			assert.NoError(t, err)
			assertIsGNF(t, out)
		})
	}
}

func Test_ToGNF_empty_grammar(t *testing.T) {
	g := New("S")
	out, err := ToGNF(g)
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func Test_ToGNF_epsilon_only_grammar_keeps_start_epsilon(t *testing.T) {
	assert := assert.New(t)

	g := grammarFromLines("S : E")
	out, err := ToGNF(g)
	assert.NoError(err)

	bodies := out.Bodies(out.Start())
	assert.Len(bodies, 1)
	assert.True(bodies[0].IsEpsilon())
}

func Test_ToGNFWithCapOffset_tight_cap_fails_on_large_grammar(t *testing.T) {
	g := grammarFromLines(
		"S : AB", "A : AB | a", "B : BC | b", "C : CD | c", "D : DA | d",
	)
	_, err := ToGNFWithCapOffset(g, -1000)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrGreibachNotAchievable)
}
