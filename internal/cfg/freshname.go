package cfg

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// maxFreshNames is the fresh-name generator's exhaustion limit: 25 letters
// (A-Z without E) times 10 digits.
const maxFreshNames = 250

// freshNameLetters is every uppercase letter usable as a fresh non-terminal
// prefix, skipping 'E' (reserved as the epsilon marker).
var freshNameLetters = func() []byte {
	var letters []byte
	for c := byte('A'); c <= 'Z'; c++ {
		if c == 'E' {
			continue
		}
		letters = append(letters, c)
	}
	return letters
}()

// FreshNames deterministically allocates new NonTerminal names (A0, A1, ...,
// Z9, skipping E) that do not collide with a seeded set of names already in
// use. One FreshNames lives for the duration of a single normalization
// pipeline run (spec.md §9, "Fresh-name generator is shared, threaded
// state").
type FreshNames struct {
	used  *hashset.Set
	index int
}

// NewFreshNames returns a generator seeded with the given already-used
// names.
func NewFreshNames(seed []string) *FreshNames {
	used := hashset.New()
	for _, s := range seed {
		used.Add(s)
	}
	return &FreshNames{used: used}
}

// Next returns the next unused candidate name, in the order A0, A1, ...,
// A9, B0, ..., Z9 (skipping 'E'). It fails with ErrTooManyNonTerminals once
// 250 candidates have been emitted without finding an unused one.
func (f *FreshNames) Next() (string, error) {
	for {
		if f.index >= maxFreshNames {
			return "", newTooManyNonTerminals()
		}
		letter := freshNameLetters[f.index/10]
		digit := f.index % 10
		f.index++

		candidate := string(letter) + string(rune('0'+digit))
		if !f.used.Contains(candidate) {
			f.used.Add(candidate)
			return candidate, nil
		}
	}
}
