// Package repl implements cfgforge's interactive explorer: load one
// grammar and repeatedly run normalization and enumeration against it
// without re-invoking the process (SPEC_FULL.md §4.15). This supplements
// original_source/Projet-IN-520/Generateur.py, which is two one-shot
// scripts with no interactive mode.
package repl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dekarrin/cfgforge/internal/cfg"
	"github.com/dekarrin/cfgforge/internal/cfgio"
	"github.com/dekarrin/cfgforge/internal/diagnostics"
	"github.com/dekarrin/cfgforge/internal/pipelinecfg"
)

// REPL holds the state for one interactive session: the grammar currently
// loaded and the pipeline tunables it was started with.
type REPL struct {
	rl   *readline.Instance
	g    *cfg.Grammar
	cfg  pipelinecfg.Config
	diag *diagnostics.Reporter
	out  io.Writer
}

// New creates a REPL over g, configured per cfg. The returned REPL must
// have Close called on it before disposal to release readline resources.
func New(g *cfg.Grammar, pcfg pipelinecfg.Config, out io.Writer) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "cfgforge> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &REPL{
		rl:   rl,
		g:    g,
		cfg:  pcfg,
		diag: diagnostics.New(),
		out:  out,
	}, nil
}

// Close releases readline resources.
func (r *REPL) Close() error {
	return r.rl.Close()
}

// Run reads commands until EOF (ctrl-D) or a "quit" command.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, "cfgforge interactive explorer -- quit with ctrl-D or \"quit\"")
	for {
		line, err := r.rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if quit := r.dispatch(line); quit {
			return nil
		}
	}
}

func (r *REPL) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := resolveVerb(fields[0])
	args := fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "show":
		r.cmdShow()
	case "cnf":
		r.cmdCNF()
	case "gnf":
		r.cmdGNF()
	case "enum":
		r.cmdEnum(args)
	case "help":
		r.cmdHelp()
	default:
		fmt.Fprintf(r.out, "unrecognized command %q (try \"help\")\n", cmd)
	}
	return false
}

func (r *REPL) cmdHelp() {
	fmt.Fprintln(r.out, "commands:")
	fmt.Fprintln(r.out, "  show        print the currently loaded grammar")
	fmt.Fprintln(r.out, "  cnf         normalize to Chomsky Normal Form and print it")
	fmt.Fprintln(r.out, "  gnf         normalize to Greibach Normal Form and print it")
	fmt.Fprintln(r.out, "  enum <L>    enumerate every word of length <= L")
	fmt.Fprintln(r.out, "  quit        leave the explorer")
}

func (r *REPL) cmdShow() {
	fmt.Fprintln(r.out, cfgio.Render(r.g, 72))
}

func (r *REPL) cmdCNF() {
	out, err := cfg.ToCNF(r.g)
	if err != nil {
		r.diag.Error("%v", err)
		return
	}
	fmt.Fprintln(r.out, cfgio.Render(out, 72))
}

func (r *REPL) cmdGNF() {
	out, err := cfg.ToGNFWithCapOffset(r.g, r.cfg.GNFIterationCapOffset)
	if err != nil {
		r.diag.Error("%v", err)
		return
	}
	fmt.Fprintln(r.out, cfgio.Render(out, 72))
}

func (r *REPL) cmdEnum(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: enum <L>")
		return
	}
	l, err := strconv.Atoi(args[0])
	if err != nil || l < 0 {
		fmt.Fprintln(r.out, "L must be a non-negative integer")
		return
	}
	words := cfg.EnumerateWithCutoffMultiplier(r.g, l, r.cfg.EnumeratorLengthCutoffMultiplier)
	if len(words) == 0 {
		fmt.Fprintln(r.out, "(no words)")
		return
	}
	for _, w := range words {
		fmt.Fprintln(r.out, cfg.DisplayWord(w))
	}
}
