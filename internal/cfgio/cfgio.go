// Package cfgio reads and writes the textual grammar file format described
// in spec.md §6. It is the only place in cfgforge that knows about the
// surface syntax; internal/cfg works exclusively with cfg.Grammar values.
package cfgio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/cfgforge/internal/cfg"
)

// Dialect selects the separator token used when emitting a grammar. Both
// dialects are always accepted on parse (spec.md §6, "two dialects exist
// in the corpus").
type Dialect int

const (
	// DialectColon emits "LHS : alt | alt". This is cfgforge's canonical
	// emission dialect.
	DialectColon Dialect = iota
	// DialectArrow emits "LHS -> alt | alt".
	DialectArrow
)

func (d Dialect) separator() string {
	if d == DialectArrow {
		return "->"
	}
	return ":"
}

// ParseResult carries the parsed grammar plus any non-fatal warnings
// produced while reading it (malformed lines skipped, characters dropped
// by the tokenizer).
type ParseResult struct {
	Grammar  *cfg.Grammar
	Warnings []string
}

// Parse reads a grammar from r in the format: one rule per line, "<LHS>
// <sep> <alt> ('|' <alt>)*", where <sep> is ':' or '->'. Blank lines are
// ignored. Lines lacking a recognized separator are skipped (reported as a
// warning, not an error). The first left-hand side encountered becomes the
// start symbol. Repeated left-hand sides accumulate their alternatives in
// file order (spec.md §6).
func Parse(r io.Reader) (*ParseResult, error) {
	g := cfg.New("")
	res := &ParseResult{Grammar: g}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		lhs, rhs, ok := splitRule(line)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: no recognized separator, skipped: %q", lineNo, line))
			continue
		}
		lhs = strings.TrimSpace(lhs)
		if lhs == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: empty left-hand side, skipped: %q", lineNo, line))
			continue
		}

		if g.Start() == "" {
			g.SetStart(lhs)
		}

		for _, alt := range strings.Split(rhs, "|") {
			body, dropped := cfg.Tokenize(alt)
			if len(dropped) > 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: dropped unrecognized character(s) %q", lineNo, string(dropped)))
			}
			g.AddBody(lhs, body)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// splitRule finds the LHS/RHS split at the first recognized separator
// (whichever of '->' and ':' occurs earliest in the line), per spec.md §6's
// stated two dialects.
func splitRule(line string) (lhs, rhs string, ok bool) {
	if idx := strings.Index(line, "->"); idx >= 0 {
		if colonIdx := strings.Index(line, ":"); colonIdx < 0 || colonIdx > idx {
			return line[:idx], line[idx+2:], true
		}
	}
	if idx := strings.Index(line, ":"); idx >= 0 {
		return line[:idx], line[idx+1:], true
	}
	return "", "", false
}

// ParseFile opens and parses the grammar file at path.
func ParseFile(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Emit writes g to w in the canonical format: one rule per line, "<LHS> :
// <alt> | <alt> | ...", epsilon rendered as "E". The start symbol's rule is
// emitted first; the rest follow in insertion order (spec.md §6).
func Emit(w io.Writer, g *cfg.Grammar, dialect Dialect) error {
	bw := bufio.NewWriter(w)
	sep := dialect.separator()

	order := orderedForEmit(g)
	for _, nt := range order {
		bodies := g.Bodies(nt)
		alts := make([]string, len(bodies))
		for i, b := range bodies {
			alts[i] = b.String()
		}
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", nt, sep, strings.Join(alts, " | ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// orderedForEmit returns g's non-terminals with the start symbol first
// (if it has rules), the rest in insertion order.
func orderedForEmit(g *cfg.Grammar) []string {
	all := g.NonTerminals()
	if !g.Has(g.Start()) {
		return all
	}
	out := make([]string, 0, len(all))
	out = append(out, g.Start())
	for _, nt := range all {
		if nt != g.Start() {
			out = append(out, nt)
		}
	}
	return out
}

// EmitFile writes g to the file at path, creating or truncating it, with
// the handle released on every exit path (spec.md §5).
func EmitFile(path string, g *cfg.Grammar, dialect Dialect) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := f.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return Emit(f, g, dialect)
}
