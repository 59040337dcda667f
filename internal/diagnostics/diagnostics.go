// Package diagnostics reports warnings and errors to the operator. Apart
// from the final error line printed by cmd/cfgforge's main, it is the only
// place in cfgforge that writes to stderr; the normalization and
// enumeration packages only ever return errors.
package diagnostics

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// Reporter prints colorized (when attached to a terminal) diagnostics to
// stderr, tagging every line with a short correlation id unique to the
// Reporter. All lines printed through one Reporter share that id.
type Reporter struct {
	runID string
}

// New returns a Reporter with a freshly generated id.
func New() *Reporter {
	return &Reporter{runID: uuid.New().String()[:8]}
}

// Warn reports a non-fatal issue, such as a skipped malformed line.
func (r *Reporter) Warn(format string, a ...interface{}) {
	pterm.Warning.Printfln("[%s] "+format, prepend(r.runID, a)...)
}

// Error reports a fatal issue for the current pipeline run.
func (r *Reporter) Error(format string, a ...interface{}) {
	pterm.Error.Printfln("[%s] "+format, prepend(r.runID, a)...)
}

// Info reports routine progress.
func (r *Reporter) Info(format string, a ...interface{}) {
	pterm.Info.Printfln("[%s] "+format, prepend(r.runID, a)...)
}

// WarnList reports a single warning naming every item in a grammatically
// joined list (an Oxford comma for three or more), so that e.g. a batch of
// dropped-character warnings from one parse collapses into one line instead
// of one pterm.Warning per line.
func (r *Reporter) WarnList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	r.Warn("%s: %s", label, textList(items))
}

// textList renders items as "a", "a and b", or "a, b, and c" (an Oxford
// comma list), per dekarrin-tunaq's internal/util.MakeTextList.
func textList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		out := make([]string, len(items))
		copy(out, items)
		out[len(out)-1] = "and " + out[len(out)-1]
		return strings.Join(out, ", ")
	}
}

func prepend(first string, rest []interface{}) []interface{} {
	out := make([]interface{}, 0, len(rest)+1)
	out = append(out, first)
	out = append(out, rest...)
	return out
}
