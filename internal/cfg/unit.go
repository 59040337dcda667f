package cfg

// Unit eliminates unit rules (A -> B where B is a single NonTerminal).
// Builds the unit graph (an edge A -> B for every such rule), computes the
// reflexive-transitive closure per source A, and replaces A's rule set with
// the union of all non-unit bodies of every B in closure(A) (spec.md §4.9).
func Unit(g *Grammar) *Grammar {
	graph := map[string][]string{}
	for _, nt := range g.NonTerminals() {
		for _, body := range g.Bodies(nt) {
			if isUnitBody(body) {
				graph[nt] = append(graph[nt], body[0].Name)
			}
		}
	}

	out := New(g.Start())
	for _, nt := range g.NonTerminals() {
		closure := unitClosure(nt, graph)

		var nonUnit []Body
		seen := map[string]bool{}
		add := func(b Body) {
			key := b.signature() + "|" + b.String()
			if seen[key] {
				return
			}
			seen[key] = true
			nonUnit = append(nonUnit, b)
		}

		for _, member := range closure {
			if !g.Has(member) {
				continue
			}
			for _, body := range g.Bodies(member) {
				if isUnitBody(body) {
					continue
				}
				add(body.Clone())
			}
		}
		if len(nonUnit) > 0 {
			out.SetBodies(nt, nonUnit)
		}
	}
	return out
}

func isUnitBody(body Body) bool {
	return len(body) == 1 && body[0].IsNonTerminal()
}

// unitClosure returns nt plus every NonTerminal reachable from nt by
// following only unit edges, in a deterministic (BFS, first-discovered)
// order with nt itself first.
func unitClosure(nt string, graph map[string][]string) []string {
	visited := map[string]bool{nt: true}
	order := []string{nt}
	queue := []string{nt}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range graph[cur] {
			if !visited[next] {
				visited[next] = true
				order = append(order, next)
				queue = append(queue, next)
			}
		}
	}
	return order
}
