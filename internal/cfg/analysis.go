package cfg

// Nullable computes the set of NonTerminal names that can derive the empty
// string: those with an empty body, or a body whose every symbol is itself
// a nullable NonTerminal (spec.md §4.3).
func Nullable(g *Grammar) map[string]bool {
	nullable := map[string]bool{}
	changed := true
	for changed {
		changed = false
		for _, nt := range g.NonTerminals() {
			if nullable[nt] {
				continue
			}
			for _, body := range g.Bodies(nt) {
				if bodyIsNullable(body, nullable) {
					nullable[nt] = true
					changed = true
					break
				}
			}
		}
	}
	return nullable
}

func bodyIsNullable(body Body, nullable map[string]bool) bool {
	if body.IsEpsilon() {
		return true
	}
	for _, sym := range body {
		if sym.IsTerminal() || !nullable[sym.Name] {
			return false
		}
	}
	return true
}

// Reachable computes the set of NonTerminal names reachable from the start
// symbol: start itself, plus the closure of every NonTerminal appearing in
// any body of a reachable non-terminal (spec.md §4.3).
func Reachable(g *Grammar) map[string]bool {
	reachable := map[string]bool{g.Start(): true}
	changed := true
	for changed {
		changed = false
		for _, nt := range g.NonTerminals() {
			if !reachable[nt] {
				continue
			}
			for _, body := range g.Bodies(nt) {
				for _, sym := range body {
					if sym.IsNonTerminal() && !reachable[sym.Name] {
						reachable[sym.Name] = true
						changed = true
					}
				}
			}
		}
	}
	return reachable
}

// Productive computes the set of NonTerminal names that can derive at least
// one string of terminals: A is productive iff it has a body where every
// symbol is either a Terminal, a productive NonTerminal, or a nullable
// NonTerminal (which may be elided) (spec.md §4.3).
func Productive(g *Grammar) map[string]bool {
	nullable := Nullable(g)
	productive := map[string]bool{}
	changed := true
	for changed {
		changed = false
		for _, nt := range g.NonTerminals() {
			if productive[nt] {
				continue
			}
			for _, body := range g.Bodies(nt) {
				if bodyIsProductive(body, productive, nullable) {
					productive[nt] = true
					changed = true
					break
				}
			}
		}
	}
	return productive
}

func bodyIsProductive(body Body, productive, nullable map[string]bool) bool {
	for _, sym := range body {
		if sym.IsTerminal() {
			continue
		}
		if productive[sym.Name] || nullable[sym.Name] {
			continue
		}
		return false
	}
	return true
}
