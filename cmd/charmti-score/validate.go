package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
)

func newValidateCmd() *cobra.Command {
	var (
		src    sourceFlags
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and check a statement bank and description catalog",
		Long: `Load the statement bank and description catalog and report problems.

Each form is also checked for letters no statement addresses; such an axis
always splits 50/50. With --strict those gaps and missing descriptions fail
the command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			b, err := src.loadBank()
			if err != nil {
				return fmt.Errorf("bank: %w", err)
			}
			fmt.Fprintf(out, "bank ok: %d statements\n", b.Len())

			var problems []string
			for _, n := range []int{bank.ShortForm, bank.LongForm} {
				if b.Len() < n {
					problems = append(problems, fmt.Sprintf("form %d: bank has only %d statements", n, b.Len()))
					continue
				}
				if missing := uncoveredLetters(b.Prefix(n)); len(missing) > 0 {
					problems = append(problems, fmt.Sprintf("form %d: no statement for %s", n, strings.Join(missing, ", ")))
				}
			}

			c, err := src.loadCatalog()
			if err != nil {
				return fmt.Errorf("catalog: %w", err)
			}
			if err := c.Validate(); err != nil {
				problems = append(problems, "catalog: "+err.Error())
			} else {
				fmt.Fprintln(out, "catalog ok")
			}

			for _, p := range problems {
				fmt.Fprintln(out, "warning:", p)
			}
			if strict && len(problems) > 0 {
				return fmt.Errorf("%d problems found", len(problems))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&src.bankPath, "bank", "", "statement bank YAML (default: embedded)")
	cmd.Flags().StringVar(&src.catalogPath, "catalog", "", "description catalog YAML (default: embedded)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings")
	return cmd
}

func uncoveredLetters(stmts []bank.Statement) []string {
	var seen bank.TagSet
	for _, s := range stmts {
		seen |= s.Tags
	}
	var missing []string
	for l := bank.Letter(0); l < bank.NumLetters; l++ {
		if !seen.Has(l) {
			missing = append(missing, l.String())
		}
	}
	return missing
}
