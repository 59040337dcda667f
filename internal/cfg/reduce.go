package cfg

// Reduce computes Reachable and Productive over g, keeps only rules whose
// left-hand side is in both sets, and drops bodies containing any
// NonTerminal outside that set. If reduction empties a non-terminal's rule
// list, that non-terminal is removed. If the start symbol itself is not
// kept, the result is an empty grammar (start has no rules), which is legal
// output: the grammar generates the empty language (spec.md §4.4, §9).
func Reduce(g *Grammar) *Grammar {
	reachable := Reachable(g)
	productive := Productive(g)

	keep := map[string]bool{}
	for _, nt := range g.NonTerminals() {
		if reachable[nt] && productive[nt] {
			keep[nt] = true
		}
	}

	out := New(g.Start())
	for _, nt := range g.NonTerminals() {
		if !keep[nt] {
			continue
		}
		var kept []Body
		for _, body := range g.Bodies(nt) {
			if bodyOnlyUses(body, keep) {
				kept = append(kept, body.Clone())
			}
		}
		if len(kept) > 0 {
			out.SetBodies(nt, kept)
		}
	}
	return out
}

func bodyOnlyUses(body Body, keep map[string]bool) bool {
	for _, sym := range body {
		if sym.IsNonTerminal() && !keep[sym.Name] {
			return false
		}
	}
	return true
}
