package cfg

// Dedup removes exact duplicate bodies within each non-terminal's body
// list, preserving first-occurrence order (spec.md §4.10, invariant I6).
func Dedup(g *Grammar) *Grammar {
	out := New(g.Start())
	for _, nt := range g.NonTerminals() {
		var unique []Body
		seen := map[string]bool{}
		for _, body := range g.Bodies(nt) {
			key := body.signature() + "|" + body.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			unique = append(unique, body.Clone())
		}
		out.SetBodies(nt, unique)
	}
	return out
}
