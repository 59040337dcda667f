package repl

import "strings"

// verbAliases maps shorthand or alternate spellings to the canonical verb
// recognized by dispatch, the way dekarrin-tunaq's internal/command package
// maps shorthand game verbs ("I" -> "INVENTORY", "?" -> "HELP") to their
// canonical forms.
var verbAliases = map[string]string{
	"?":     "help",
	"h":     "help",
	"q":     "quit",
	"bye":   "quit",
	"dump":  "show",
	"list":  "show",
	"print": "show",
}

// resolveVerb returns the canonical verb for cmd, lowercased, translating
// through verbAliases if a shorthand was used.
func resolveVerb(cmd string) string {
	cmd = strings.ToLower(cmd)
	if canonical, ok := verbAliases[cmd]; ok {
		return canonical
	}
	return cmd
}
