package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_LanguagePreservation_under_bounded_witness exercises the central
// correctness property: for L <= 6, Enumerate agrees across the original
// grammar and both of its normal forms.
func Test_LanguagePreservation_under_bounded_witness(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
	}{
		{"epsilon-producing recursive", []string{"S : aSb | E"}},
		{"concatenation of two terminals", []string{"S : AB", "A : a", "B : b"}},
		{"left recursion with terminal", []string{"S : aS | a"}},
		{"two nullable factors", []string{"S : AB", "A : a | E", "B : b | E"}},
		{"direct left recursion SS", []string{"S : SS | a"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := grammarFromLines(tc.lines...)
			cnf, err := ToCNF(g)
			assert.NoError(err)
			gnf, err := ToGNF(g)
			assert.NoError(err)

			for l := 0; l <= 6; l++ {
				original := Enumerate(g, l)
				fromCNF := Enumerate(cnf, l)
				fromGNF := Enumerate(gnf, l)

				assert.Equal(original, fromCNF, "L=%d: CNF disagreement", l)
				assert.Equal(original, fromGNF, "L=%d: GNF disagreement", l)
			}
		})
	}
}

// Test_Determinism checks that normalizing the same input twice yields
// byte-identical (here: deeply equal) output, per spec.md's determinism
// property.
func Test_Determinism(t *testing.T) {
	assert := assert.New(t)

	g := grammarFromLines("S : ACA | Aa", "A : BB | E", "B : A | bC", "C : b")

	cnf1, err := ToCNF(g)
	assert.NoError(err)
	cnf2, err := ToCNF(g)
	assert.NoError(err)

	assert.Equal(renderForCompare(cnf1), renderForCompare(cnf2))
}

func renderForCompare(g *Grammar) string {
	out := ""
	for _, nt := range g.NonTerminals() {
		out += nt + ":"
		for _, b := range g.Bodies(nt) {
			out += b.String() + "|"
		}
		out += ";"
	}
	return out
}
