package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dekarrin/cfgforge/internal/cfg"
	"github.com/dekarrin/cfgforge/internal/cfgio"
	"github.com/dekarrin/cfgforge/internal/diagnostics"
	"github.com/dekarrin/cfgforge/internal/pipelinecfg"
)

// newGrammarCmd builds the "grammar" subcommand: reads <input>.general and
// writes <input>.chomsky and <input>.greibach alongside it (spec.md §6).
func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar <input>.general",
		Short: "Normalize a grammar to CNF and GNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrammar(args[0])
		},
	}
}

func runGrammar(input string) error {
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

	stem := strings.TrimSuffix(input, ".general")

	// TooManyNonTerminals is fatal for one pipeline but not the other
	// (spec.md §7): a CNF failure here must not stop the GNF attempt below.
	chomskyPath := stem + ".chomsky"
	chomsky, err := cfg.ToCNF(parsed.Grammar)
	if err != nil {
		diag.Error("%s: CNF pipeline failed: %v", input, err)
		if werr := cfgio.EmitFile(chomskyPath, cfg.New(""), pcfg.EmitDialect()); werr != nil {
			return fmt.Errorf("write empty %s: %w", chomskyPath, werr)
		}
	} else if err := cfgio.EmitFile(chomskyPath, chomsky, pcfg.EmitDialect()); err != nil {
		return fmt.Errorf("write %s: %w", chomskyPath, err)
	}

	greibachPath := stem + ".greibach"
	greibach, err := cfg.ToGNFWithCapOffset(parsed.Grammar, pcfg.GNFIterationCapOffset)
	if err != nil {
		switch {
		case errors.Is(err, cfg.ErrTooManyNonTerminals):
			diag.Error("%s: GNF pipeline failed: %v", input, err)
		case errors.Is(err, cfg.ErrGreibachNotAchievable):
			diag.Error("%s: Greibach Normal Form not achievable: %v", input, err)
		default:
			diag.Error("%s: GNF pipeline failed: %v", input, err)
		}
		if werr := cfgio.EmitFile(greibachPath, cfg.New(""), pcfg.EmitDialect()); werr != nil {
			return fmt.Errorf("write empty %s: %w", greibachPath, werr)
		}
		return nil
	}
	if err := cfgio.EmitFile(greibachPath, greibach, pcfg.EmitDialect()); err != nil {
		return fmt.Errorf("write %s: %w", greibachPath, err)
	}

	return nil
}
