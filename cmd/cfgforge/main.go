/*
Cfgforge normalizes context-free grammars to Chomsky Normal Form and
Greibach Normal Form, and enumerates the words a grammar derives up to a
given length.

Usage:

	cfgforge grammar [--config FILE] <input>.general
	cfgforge generate [--config FILE] <L> <input>
	cfgforge repl [--config FILE] <input>

Run "cfgforge <command> --help" for details on a specific command.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgforge/internal/version"
)

// Exit codes, per spec.md §6: 0 success, 1 argument/file errors.
const (
	ExitSuccess = 0
	ExitError   = 1
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "cfgforge",
		Short:         "Normalize and enumerate context-free grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Current,
	}
	var flags *pflag.FlagSet = root.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to cfgforge.toml (defaults to ./cfgforge.toml if present)")

	root.AddCommand(newGrammarCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newReplCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
