package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dekarrin/cfgforge/internal/cfgio"
	"github.com/dekarrin/cfgforge/internal/diagnostics"
	"github.com/dekarrin/cfgforge/internal/pipelinecfg"
	"github.com/dekarrin/cfgforge/internal/repl"
)

// newReplCmd builds the "repl" subcommand: loads <input> once and starts
// the interactive explorer (SPEC_FULL.md §4.15).
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl <input>",
		Short: "Explore a grammar's normal forms and enumerations interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(args[0])
		},
	}
}

func runRepl(input string) error {
	pcfg, err := pipelinecfg.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	diag := diagnostics.New()

	parsed, err := cfgio.ParseFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	diag.WarnList(input, parsed.Warnings)

	r, err := repl.New(parsed.Grammar, pcfg, os.Stdout)
	if err != nil {
		return fmt.Errorf("start repl: %w", err)
	}
	defer r.Close()

	return r.Run()
}
