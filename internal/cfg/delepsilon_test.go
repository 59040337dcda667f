package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DelEpsilon(t *testing.T) {
	testCases := []struct {
		name   string
		lines  []string
		nt     string
		expect []Body
	}{
		{
			name:   "no epsilons, unchanged",
			lines:  []string{"S : aSb"},
			nt:     "S",
			expect: []Body{body("aSb")},
		},
		{
			name:   "start retains its own epsilon",
			lines:  []string{"S : aSb | E"},
			nt:     "S",
			expect: []Body{body("aSb"), body("ab"), body("E")},
		},
		{
			name:  "deeba kannan's example",
			lines: []string{"S : ACA | Aa", "A : BB | E", "B : A | bC", "C : b"},
			nt:    "S",
			expect: []Body{
				body("ACA"), body("CA"), body("AC"), body("C"),
				body("Aa"), body("a"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grammarFromLines(tc.lines...)
			out := DelEpsilon(g)
			bodies := out.Bodies(tc.nt)

			assert.Len(t, bodies, len(tc.expect))
			for i, want := range tc.expect {
				assert.True(t, bodies[i].Equal(want), "position %d: expected %s, got %s", i, want, bodies[i])
			}
		})
	}
}

func Test_DelEpsilon_non_start_epsilon_only_rule_vanishes(t *testing.T) {
	assert := assert.New(t)

	g := grammarFromLines("S : A", "A : E")
	out := DelEpsilon(g)

	assert.False(out.Has("A"))
	assert.True(out.Has("S"))
}
