package cfg

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Grammar is a context-free grammar: an insertion-ordered mapping from
// NonTerminal name to its ordered, non-empty list of Production bodies, plus
// a distinguished start symbol. Insertion order is preserved so that
// textual output is deterministic (spec.md I-testable property 5).
type Grammar struct {
	rules *linkedhashmap.Map // string -> []Body
	start string
}

// New returns an empty Grammar with the given start symbol name. The start
// symbol need not yet have any rules.
func New(start string) *Grammar {
	return &Grammar{
		rules: linkedhashmap.New(),
		start: start,
	}
}

// Start returns the current start symbol's name.
func (g *Grammar) Start() string {
	return g.start
}

// SetStart changes the start symbol. It does not validate that the new
// start symbol has rules; callers rewriting the grammar are responsible for
// maintaining invariant I3 once they are done.
func (g *Grammar) SetStart(start string) {
	g.start = start
}

// NonTerminals returns the grammar's non-terminals in insertion order.
func (g *Grammar) NonTerminals() []string {
	keys := g.rules.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}
	return out
}

// Has reports whether nt has any rules.
func (g *Grammar) Has(nt string) bool {
	_, ok := g.rules.Get(nt)
	return ok
}

// Bodies returns the ordered list of Production bodies for nt, or nil if nt
// has no rules. The returned slice is the grammar's own backing slice and
// must not be mutated by callers; use AddBody/SetBodies to change it.
func (g *Grammar) Bodies(nt string) []Body {
	v, ok := g.rules.Get(nt)
	if !ok {
		return nil
	}
	return v.([]Body)
}

// AddBody appends body to nt's production list, creating nt if it does not
// already exist. Multiple calls for the same nt accumulate in call order,
// matching the file-ingestion rule that repeated left-hand sides merge
// (spec.md §3, "Multiple occurrences... merge (append)").
func (g *Grammar) AddBody(nt string, body Body) {
	existing := g.Bodies(nt)
	g.rules.Put(nt, append(existing, body))
}

// SetBodies replaces nt's entire production list. If bodies is empty, nt is
// removed from the grammar entirely (a non-terminal's rule list is never
// legally empty -- invariant I1/I3 -- so this models deletion).
func (g *Grammar) SetBodies(nt string, bodies []Body) {
	if len(bodies) == 0 {
		g.rules.Remove(nt)
		return
	}
	g.rules.Put(nt, bodies)
}

// Remove deletes nt and its rules entirely.
func (g *Grammar) Remove(nt string) {
	g.rules.Remove(nt)
}

// Len returns the number of non-terminals with rules.
func (g *Grammar) Len() int {
	return g.rules.Size()
}

// Clone returns a deep copy of g, safe to rewrite independently.
func (g *Grammar) Clone() *Grammar {
	out := New(g.start)
	for _, nt := range g.NonTerminals() {
		bodies := g.Bodies(nt)
		cloned := make([]Body, len(bodies))
		for i, b := range bodies {
			cloned[i] = b.Clone()
		}
		out.rules.Put(nt, cloned)
	}
	return out
}

// AllSymbols returns every distinct NonTerminal name that appears anywhere
// in the grammar: as a left-hand side, or on the right-hand side of any
// body. Used to seed the fresh-name generator's used-set (spec.md §3,
// "Lifecycle").
func (g *Grammar) AllSymbols() []string {
	seen := map[string]bool{}
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, nt := range g.NonTerminals() {
		add(nt)
		for _, body := range g.Bodies(nt) {
			for _, sym := range body {
				if sym.IsNonTerminal() {
					add(sym.Name)
				}
			}
		}
	}
	return out
}
