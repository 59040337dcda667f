package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Enumerate_concrete_scenarios(t *testing.T) {
	testCases := []struct {
		name   string
		lines  []string
		l      int
		expect []string
	}{
		{"scenario 1", []string{"S : aSb | E"}, 3, []string{"", "ab"}},
		{"scenario 2", []string{"S : aSb | E"}, 4, []string{"", "aabb", "ab"}},
		{"scenario 3", []string{"S : AB", "A : a", "B : b"}, 5, []string{"ab"}},
		{"scenario 4", []string{"S : aS | a"}, 3, []string{"a", "aa", "aaa"}},
		{"scenario 5", []string{"S : AB", "A : a | E", "B : b | E"}, 2, []string{"", "a", "ab", "b"}},
		{"scenario 6", []string{"S : SS | a"}, 3, []string{"a", "aa", "aaa"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grammarFromLines(tc.lines...)
			actual := Enumerate(g, tc.l)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func Test_Enumerate_boundary_L0_nullable_start(t *testing.T) {
	g := grammarFromLines("S : aSb | E")
	assert.Equal(t, []string{""}, Enumerate(g, 0))
}

func Test_Enumerate_boundary_L0_non_nullable_start(t *testing.T) {
	g := grammarFromLines("S : aS | a")
	assert.Empty(t, Enumerate(g, 0))
}

func Test_Enumerate_boundary_no_rules(t *testing.T) {
	g := New("S")
	assert.Empty(t, Enumerate(g, 5))
}

func Test_Enumerate_boundary_epsilon_only(t *testing.T) {
	g := grammarFromLines("S : E")
	for l := 0; l <= 3; l++ {
		assert.Equal(t, []string{""}, Enumerate(g, l))
	}
}

func Test_Enumerate_negative_length_returns_nil(t *testing.T) {
	g := grammarFromLines("S : a")
	assert.Nil(t, Enumerate(g, -1))
}

func Test_DisplayWord(t *testing.T) {
	assert.Equal(t, "ε", DisplayWord(""))
	assert.Equal(t, "ab", DisplayWord("ab"))
}
