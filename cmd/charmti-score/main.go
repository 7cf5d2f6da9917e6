// Command charmti-score scores CharMTI answer sheets offline.
//
// Usage:
//
//	charmti-score score --answers 3,2,-1,...     Score one answer sheet
//	charmti-score calibrate --runs 1000          Simulate random sheets
//	charmti-score validate --bank bank.yaml      Check a statement bank
//	charmti-score version                        Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "charmti-score",
		Short: "Score CharMTI answer sheets",
		Long: `charmti-score runs the CharMTI scoring engine from the command line.

Answers are integers from 3 (strongly agree) to -3 (strongly disagree),
one per statement in bank order:

    charmti-score score --questions 60 --answers 3,2,0,-1,...`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newScoreCmd(),
		newCalibrateCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "charmti-score %s\n", getVersion())
		},
	}
}
