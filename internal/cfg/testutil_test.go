package cfg

import "strings"

// grammarFromLines builds a Grammar from lines in the "<LHS> : <alt> | <alt>"
// surface syntax, independent of package cfgio (which itself depends on
// cfg), so tests in this package can build fixtures without a cycle. The
// first line's LHS becomes the start symbol, matching spec.md §6.
func grammarFromLines(lines ...string) *Grammar {
	var g *Grammar
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		lhs := strings.TrimSpace(line[:idx])
		rhs := line[idx+1:]
		if g == nil {
			g = New(lhs)
		}
		for _, alt := range strings.Split(rhs, "|") {
			body, _ := Tokenize(alt)
			g.AddBody(lhs, body)
		}
	}
	return g
}

// body converts a sentential form's surface syntax into a Body for direct
// comparisons in tests.
func body(alt string) Body {
	b, _ := Tokenize(alt)
	return b
}
