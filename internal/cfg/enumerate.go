package cfg

import (
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/queue/arrayqueue"
)

// Enumerate returns the sorted set of every Terminal string of length <= L
// derivable from g's start symbol, via a bounded, memoized breadth-first
// exploration of sentential forms (spec.md §4.12).
//
// The frontier is a FIFO queue seeded with the single-symbol start form.
// Each dequeued form is expanded at its leftmost NonTerminal only --
// without this leftmost discipline the same derivable string would be
// reached through exponentially many distinct sentential forms. A form is
// dropped once it already carries more terminals than L, or once it grows
// beyond the anti-explosion length cutoff; a form with no remaining
// NonTerminal is a candidate word and is never expanded further.
func Enumerate(g *Grammar, l int) []string {
	return EnumerateWithCutoffMultiplier(g, l, 2)
}

// EnumerateWithCutoffMultiplier is Enumerate with spec.md §4.12's "2*L"
// anti-explosion length cutoff made configurable via multiplier (internal/
// pipelinecfg threads the operator-configured value through here). The
// cutoff only prunes the search frontier; it never changes the set of
// words a large enough L would eventually produce, so retuning it is safe.
func EnumerateWithCutoffMultiplier(g *Grammar, l int, multiplier int) []string {
	if l < 0 {
		return nil
	}

	frontier := arrayqueue.New()
	seen := map[string]bool{}

	start := Body{NewNonTerminal(g.Start())}
	frontier.Enqueue(start)
	seen[digest(start)] = true

	words := map[string]bool{}

	// The length cutoff below can drop a form made of nullable
	// non-terminals before it is expanded (at L == 0, S -> AB with A and B
	// nullable yields the form AB, longer than the cutoff of 1), so the
	// empty word is taken directly from the start symbol's nullability.
	if Nullable(g)[g.Start()] {
		words[""] = true
	}

	// lengthCutoff bounds total symbol count (terminals and
	// non-terminals) to keep the frontier finite. It is multiplier*L plus
	// one symbol of slack so that the single-symbol seed form always
	// survives long enough to be expanded at L == 0 (the unexpanded seed
	// [start] already has length 1 > 0). See DESIGN.md.
	lengthCutoff := multiplier*l + 1

	for !frontier.Empty() {
		v, _ := frontier.Dequeue()
		form := v.(Body)

		n := countTerminals(form)
		if n > l {
			continue
		}

		if !hasNonTerminal(form) {
			word := form.String()
			if form.IsEpsilon() {
				word = ""
			}
			if len(word) <= l {
				words[word] = true
			}
			continue
		}

		if len(form) > lengthCutoff {
			continue
		}

		pos := leftmostNonTerminal(form)
		nt := form[pos].Name
		bodies := g.Bodies(nt)
		for _, body := range bodies {
			next := concat(concat(form[:pos:pos], body), form[pos+1:])
			h := digest(next)
			if !seen[h] {
				seen[h] = true
				frontier.Enqueue(next)
			}
		}
	}

	out := make([]string, 0, len(words))
	for w := range words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// DisplayWord renders an enumerated word for textual output, per spec.md
// §6: the empty word prints as "ε".
func DisplayWord(word string) string {
	if word == "" {
		return "ε"
	}
	return word
}

func countTerminals(form Body) int {
	n := 0
	for _, sym := range form {
		if sym.IsTerminal() {
			n++
		}
	}
	return n
}

func hasNonTerminal(form Body) bool {
	for _, sym := range form {
		if sym.IsNonTerminal() {
			return true
		}
	}
	return false
}

func leftmostNonTerminal(form Body) int {
	for i, sym := range form {
		if sym.IsNonTerminal() {
			return i
		}
	}
	return -1
}

func digest(form Body) string {
	var sb strings.Builder
	for _, sym := range form {
		if sym.IsTerminal() {
			sb.WriteByte('t')
		} else {
			sb.WriteByte('n')
		}
		sb.WriteString(sym.Name)
		sb.WriteByte(';')
	}
	h, err := structhash.Hash(sb.String(), 1)
	if err != nil {
		// structhash only errors on unhashable input; a string is always
		// hashable.
		panic(err)
	}
	return h
}
