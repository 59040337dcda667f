package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Unit(t *testing.T) {
	testCases := []struct {
		name   string
		lines  []string
		nt     string
		expect []Body
	}{
		{
			name:   "no unit rules, unchanged",
			lines:  []string{"S : aSb | ab"},
			nt:     "S",
			expect: []Body{body("aSb"), body("ab")},
		},
		{
			name:   "single unit rule inlines target",
			lines:  []string{"S : A | ab", "A : a"},
			nt:     "S",
			expect: []Body{body("ab"), body("a")},
		},
		{
			name:   "chain of unit rules",
			lines:  []string{"S : A", "A : B", "B : b"},
			nt:     "S",
			expect: []Body{body("b")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grammarFromLines(tc.lines...)
			out := Unit(g)
			bodies := out.Bodies(tc.nt)

			assert.Len(t, bodies, len(tc.expect))
			for i, want := range tc.expect {
				assert.True(t, bodies[i].Equal(want), "position %d: expected %s, got %s", i, want, bodies[i])
			}
		})
	}
}

func Test_Unit_cycle_does_not_infinite_loop(t *testing.T) {
	assert := assert.New(t)

	g := grammarFromLines("S : A | s", "A : S")
	out := Unit(g)

	bodies := out.Bodies("S")
	assert.Len(bodies, 1)
	assert.True(bodies[0].Equal(body("s")))
}
