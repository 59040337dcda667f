package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dekarrin/cfgforge/internal/cfg"
	"github.com/dekarrin/cfgforge/internal/cfgio"
	"github.com/dekarrin/cfgforge/internal/diagnostics"
	"github.com/dekarrin/cfgforge/internal/pipelinecfg"
)

// newGenerateCmd builds the "generate" subcommand: prints every word of
// length <= L derivable from <input>, one per line, lexicographically
// sorted (spec.md §6).
func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <L> <input>",
		Short: "Enumerate words derivable from a grammar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := strconv.Atoi(args[0])
			if err != nil || l < 0 {
				return fmt.Errorf("L must be a non-negative integer, got %q", args[0])
			}
			return runGenerate(l, args[1])
		},
	}
}

func runGenerate(l int, input string) error {
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

	words := cfg.EnumerateWithCutoffMultiplier(parsed.Grammar, l, pcfg.EnumeratorLengthCutoffMultiplier)
	for _, w := range words {
		fmt.Fprintln(os.Stdout, cfg.DisplayWord(w))
	}
	return nil
}
