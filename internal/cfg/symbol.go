// Package cfg implements context-free grammar normalization (CNF, GNF) and
// bounded enumeration of the language prefix of a grammar.
package cfg

import (
	"strings"
)

// Kind distinguishes the two variants a Symbol can take.
type Kind int

const (
	// Terminal is a single lowercase Latin letter.
	Terminal Kind = iota
	// NonTerminal is a single uppercase Latin letter (never 'E') optionally
	// followed by decimal digits.
	NonTerminal
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	default:
		return "unknown"
	}
}

// Symbol is a single element of a Production body: either a Terminal or a
// NonTerminal. The zero value is not a valid Symbol.
type Symbol struct {
	Kind Kind
	Name string
}

// NewTerminal builds a Terminal Symbol from a single lowercase letter.
func NewTerminal(letter byte) Symbol {
	return Symbol{Kind: Terminal, Name: string(letter)}
}

// NewNonTerminal builds a NonTerminal Symbol from its full textual name
// (letter optionally followed by digits).
func NewNonTerminal(name string) Symbol {
	return Symbol{Kind: NonTerminal, Name: name}
}

// IsTerminal returns whether s is a Terminal.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// IsNonTerminal returns whether s is a NonTerminal.
func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminal
}

// String renders the Symbol in its surface textual form.
func (s Symbol) String() string {
	return s.Name
}

// Equal reports whether s and o denote the same symbol.
func (s Symbol) Equal(o Symbol) bool {
	return s.Kind == o.Kind && s.Name == o.Name
}

// Body is an ordered, possibly empty sequence of Symbols. An empty Body
// denotes epsilon.
type Body []Symbol

// IsEpsilon reports whether b is the empty production.
func (b Body) IsEpsilon() bool {
	return len(b) == 0
}

// Equal reports whether b and o are the same sequence of symbols.
func (b Body) Equal(o Body) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of b.
func (b Body) Clone() Body {
	if b == nil {
		return nil
	}
	out := make(Body, len(b))
	copy(out, b)
	return out
}

// String renders the Body in its surface textual form, using "E" for
// epsilon.
func (b Body) String() string {
	if b.IsEpsilon() {
		return "E"
	}
	var sb strings.Builder
	for _, s := range b {
		sb.WriteString(s.Name)
	}
	return sb.String()
}

// isUpperLetter reports whether c is an uppercase Latin letter.
func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// isLowerLetter reports whether c is a lowercase Latin letter.
func isLowerLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokenize converts a single alternative's textual right-hand side into an
// ordered Body, per the symbol grammar in spec.md §4.1: a lowercase letter is
// a Terminal; an uppercase letter other than 'E' followed by zero or more
// digits is a NonTerminal; the literal "E" as the entire (whitespace-
// stripped) alternative denotes epsilon. Any other character is silently
// dropped, and the character itself is reported via dropped for optional
// diagnostic use -- Tokenize itself never fails.
func Tokenize(alt string) (body Body, dropped []byte) {
	stripped := stripWhitespace(alt)
	if stripped == "E" {
		return Body{}, nil
	}

	i := 0
	for i < len(stripped) {
		c := stripped[i]
		switch {
		case isLowerLetter(c):
			body = append(body, NewTerminal(c))
			i++
		case isUpperLetter(c) && c != 'E':
			j := i + 1
			for j < len(stripped) && isDigit(stripped[j]) {
				j++
			}
			body = append(body, NewNonTerminal(stripped[i:j]))
			i = j
		default:
			// Either 'E' embedded in a larger alternative (only meaningful
			// as an entire body) or an unrecognized character.
			dropped = append(dropped, c)
			i++
		}
	}
	return body, dropped
}

func stripWhitespace(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' || s[i] == '\r' || s[i] == '\n' {
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
