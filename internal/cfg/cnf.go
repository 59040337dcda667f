package cfg

// newStartName is the canonical fresh start symbol introduced by the START
// rewrite.
const newStartName = "S0"

// Start applies the START rewrite (spec.md §4.5): if the current start
// symbol is not already named S0, introduce S0 with the single body
// [start] and make S0 the new start symbol. If S0 already has rules (e.g.
// a user-supplied grammar happened to define one), the new body is
// appended rather than overwriting the existing rules. This guarantees the
// axiom never appears on any right-hand side.
func Start(g *Grammar) *Grammar {
	if g.Start() == newStartName {
		return g.Clone()
	}
	out := g.Clone()
	out.AddBody(newStartName, Body{NewNonTerminal(g.Start())})
	out.SetStart(newStartName)
	return out
}

// Term applies the TERM rewrite (spec.md §4.6): in every body of length >=
// 2, each Terminal is replaced by a fresh NonTerminal X with a new rule
// X -> t. The same terminal reuses the same auxiliary variable within a
// single TERM pass.
func Term(g *Grammar, fresh *FreshNames) (*Grammar, error) {
	out := New(g.Start())
	memo := map[byte]string{}

	newRules := map[string]Body{}
	newRuleOrder := []string{}

	for _, nt := range g.NonTerminals() {
		var rewritten []Body
		for _, body := range g.Bodies(nt) {
			if len(body) < 2 {
				rewritten = append(rewritten, body.Clone())
				continue
			}
			newBody := make(Body, len(body))
			for i, sym := range body {
				if sym.IsTerminal() {
					letter := sym.Name[0]
					aux, ok := memo[letter]
					if !ok {
						var err error
						aux, err = fresh.Next()
						if err != nil {
							return nil, err
						}
						memo[letter] = aux
						newRules[aux] = Body{sym}
						newRuleOrder = append(newRuleOrder, aux)
					}
					newBody[i] = NewNonTerminal(aux)
				} else {
					newBody[i] = sym
				}
			}
			rewritten = append(rewritten, newBody)
		}
		out.SetBodies(nt, rewritten)
	}

	for _, aux := range newRuleOrder {
		out.AddBody(aux, newRules[aux])
	}
	return out, nil
}

// Bin applies the BIN rewrite (spec.md §4.7): every body of length > 2 is
// repeatedly split left-first: X1 X2 X3 ... Xk becomes X1 Y plus a new rule
// Y -> X2 X3 ... Xk, which is itself further split in the same pass if
// still too long.
func Bin(g *Grammar, fresh *FreshNames) (*Grammar, error) {
	out := New(g.Start())

	type newRule struct {
		name string
		body Body
	}
	var newRules []newRule

	for _, nt := range g.NonTerminals() {
		var rewritten []Body
		for _, body := range g.Bodies(nt) {
			cur := body.Clone()
			for len(cur) > 2 {
				aux, err := fresh.Next()
				if err != nil {
					return nil, err
				}
				rest := cur[1:].Clone()
				newRules = append(newRules, newRule{name: aux, body: rest})
				cur = Body{cur[0], NewNonTerminal(aux)}
			}
			rewritten = append(rewritten, cur)
		}
		out.SetBodies(nt, rewritten)
	}

	for _, nr := range newRules {
		out.AddBody(nr.name, nr.body)
	}
	return out, nil
}

// ToCNF converts g into an equivalent grammar in Chomsky Normal Form by
// running REDUCE -> START -> TERM -> BIN -> DEL-ε -> UNIT -> DEDUP in that
// order (spec.md §2, §4.4-§4.10). CNF is always achievable on a
// well-formed input; the only failure mode is ErrTooManyNonTerminals from
// an adversarially large grammar.
func ToCNF(g *Grammar) (*Grammar, error) {
	fresh := NewFreshNames(g.AllSymbols())
	// S0 is always a candidate for introduction by Start, whether or not
	// it appears in the original grammar; reserve it up front so TERM/BIN
	// never hand it out as an auxiliary name.
	fresh.used.Add(newStartName)

	cur := Reduce(g)
	if cur.Len() == 0 {
		// Start symbol was unreachable or unproductive: the grammar
		// generates the empty language. Nothing further to normalize
		// (spec.md §4.4, §9).
		return cur, nil
	}
	cur = Start(cur)

	var err error
	cur, err = Term(cur, fresh)
	if err != nil {
		return nil, err
	}
	cur, err = Bin(cur, fresh)
	if err != nil {
		return nil, err
	}
	cur = DelEpsilon(cur)
	cur = Unit(cur)
	cur = Dedup(cur)
	return cur, nil
}
