package cfg

// DelEpsilon eliminates epsilon-producing rules from every non-terminal
// except the start symbol. For each rule A -> body, every subset-elision of
// body's nullable positions is emitted (the power-set of nullable
// positions within that body), excluding the empty elision unless A is the
// start symbol. The grammar's own original empty body is retained only
// when A is the start symbol (spec.md §4.8).
func DelEpsilon(g *Grammar) *Grammar {
	nullable := Nullable(g)
	start := g.Start()

	out := New(start)
	for _, nt := range g.NonTerminals() {
		var kept []Body
		seen := map[string]bool{}
		add := func(b Body) {
			key := b.signature() + "|" + b.String()
			if seen[key] {
				return
			}
			seen[key] = true
			kept = append(kept, b)
		}

		for _, body := range g.Bodies(nt) {
			if body.IsEpsilon() {
				if nt == start {
					add(Body{})
				}
				continue
			}
			for _, elision := range elideNullable(body, nullable) {
				if elision.IsEpsilon() && nt != start {
					continue
				}
				add(elision)
			}
		}
		if len(kept) > 0 {
			out.SetBodies(nt, kept)
		}
	}
	return out
}

// elideNullable returns every Body obtainable by deleting some subset
// (including the empty subset, i.e. body unchanged) of body's
// nullable-NonTerminal positions. Positions are enumerated as a bitmask
// over the original body so each subset is built directly from body rather
// than by repeatedly shrinking an already-elided copy, which would
// misalign position indices.
func elideNullable(body Body, nullable map[string]bool) []Body {
	var positions []int
	for i, sym := range body {
		if sym.IsNonTerminal() && nullable[sym.Name] {
			positions = append(positions, i)
		}
	}

	n := len(positions)
	var out []Body
	seen := map[string]bool{}
	for mask := 0; mask < (1 << n); mask++ {
		remove := map[int]bool{}
		for j := 0; j < n; j++ {
			if mask&(1<<j) != 0 {
				remove[positions[j]] = true
			}
		}
		var b Body
		for i, sym := range body {
			if remove[i] {
				continue
			}
			b = append(b, sym)
		}
		key := b.signature() + "|" + b.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}

// signature distinguishes bodies with identical rendered strings but
// different symbol kinds (not reachable with this grammar's alphabet, but
// keeps dedupe correct in principle).
func (b Body) signature() string {
	out := make([]byte, len(b))
	for i, s := range b {
		if s.IsTerminal() {
			out[i] = 't'
		} else {
			out[i] = 'n'
		}
	}
	return string(out)
}
