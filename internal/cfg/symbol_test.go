package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	testCases := []struct {
		name    string
		alt     string
		expect  Body
		dropped int
	}{
		{
			name:   "epsilon",
			alt:    "E",
			expect: Body{},
		},
		{
			name:   "epsilon with surrounding whitespace",
			alt:    "  E  ",
			expect: Body{},
		},
		{
			name:   "single terminal",
			alt:    "a",
			expect: Body{NewTerminal('a')},
		},
		{
			name:   "single non-terminal",
			alt:    "S",
			expect: Body{NewNonTerminal("S")},
		},
		{
			name:   "non-terminal with digits",
			alt:    "A12",
			expect: Body{NewNonTerminal("A12")},
		},
		{
			name:   "mixed sequence",
			alt:    "aSb",
			expect: Body{NewTerminal('a'), NewNonTerminal("S"), NewTerminal('b')},
		},
		{
			name:   "whitespace between tokens is insignificant",
			alt:    "a S b",
			expect: Body{NewTerminal('a'), NewNonTerminal("S"), NewTerminal('b')},
		},
		{
			name:    "unrecognized character is dropped, not fatal",
			alt:     "a#b",
			expect:  Body{NewTerminal('a'), NewTerminal('b')},
			dropped: 1,
		},
		{
			name:   "E embedded in a longer alt is not epsilon",
			alt:    "aEb",
			expect: Body{NewTerminal('a'), NewTerminal('b')},
			// 'E' itself is dropped since it only means epsilon as the
			// entire alternative.
			dropped: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, dropped := Tokenize(tc.alt)

			assert.True(tc.expect.Equal(actual), "expected %v, got %v", tc.expect, actual)
			assert.Len(dropped, tc.dropped)
		})
	}
}

func Test_Body_String(t *testing.T) {
	testCases := []struct {
		name   string
		body   Body
		expect string
	}{
		{
			name:   "epsilon",
			body:   Body{},
			expect: "E",
		},
		{
			name:   "mixed",
			body:   Body{NewTerminal('a'), NewNonTerminal("S"), NewTerminal('b')},
			expect: "aSb",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.body.String())
		})
	}
}

func Test_Symbol_Equal(t *testing.T) {
	assert.True(t, NewTerminal('a').Equal(NewTerminal('a')))
	assert.False(t, NewTerminal('a').Equal(NewTerminal('b')))
	assert.False(t, NewTerminal('a').Equal(NewNonTerminal("a")))
	assert.True(t, NewNonTerminal("A0").Equal(NewNonTerminal("A0")))
}

func Test_Body_Clone_independent(t *testing.T) {
	original := Body{NewTerminal('a'), NewNonTerminal("S")}
	cloned := original.Clone()
	cloned[0] = NewTerminal('z')

	assert.Equal(t, byte('a'), original[0].Name[0])
	assert.Equal(t, byte('z'), cloned[0].Name[0])
}
