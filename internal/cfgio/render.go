package cfgio

import (
	"strings"

	"github.com/dekarrin/cfgforge/internal/cfg"
	"github.com/dekarrin/rosed"
)

// Render formats g for terminal display, one wrapped line per
// non-terminal, wrapped to the given width. Used by the repl component
// for a human-readable dump of the current grammar (the
// "debug tracing" a full implementation would otherwise need, kept
// intentionally shallow since spec.md lists reporting of intermediate
// grammar states as out of scope).
func Render(g *cfg.Grammar, width int) string {
	var lines []string
	for _, nt := range orderedForEmit(g) {
		bodies := g.Bodies(nt)
		alts := make([]string, len(bodies))
		for i, b := range bodies {
			alts[i] = b.String()
		}
		line := nt + " : " + strings.Join(alts, " | ")
		lines = append(lines, rosed.Edit(line).Wrap(width).String())
	}
	return strings.Join(lines, "\n")
}
