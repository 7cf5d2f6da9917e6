package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/catalog"
	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

func newScoreCmd() *cobra.Command {
	var (
		src       sourceFlags
		questions int
		answers   string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one answer sheet",
		Long: `Score one answer sheet against the first --questions statements.

Answers are comma separated and matched to statements by position.
Extra answers are skipped; missing answers leave their statements unscored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "text" {
				return fmt.Errorf("unknown format %q: want json or text", format)
			}
			if questions <= 0 {
				return fmt.Errorf("--questions must be positive")
			}
			vals, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			engine, err := src.engine()
			if err != nil {
				return err
			}

			res := engine.Compute(vals, questions)
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			writeResultText(cmd.OutOrStdout(), res, engine.Catalog())
			return nil
		},
	}

	cmd.Flags().IntVarP(&questions, "questions", "q", bank.ShortForm, "number of statements in the form (60 or 120)")
	cmd.Flags().StringVarP(&answers, "answers", "a", "", "comma separated answers, each from -3 to 3")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: json or text")
	cmd.Flags().StringVar(&src.bankPath, "bank", "", "statement bank YAML (default: embedded)")
	cmd.Flags().StringVar(&src.catalogPath, "catalog", "", "description catalog YAML (default: embedded)")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func parseAnswers(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i, f)
		}
		if !scoring.ValidAnswer(v) {
			return nil, fmt.Errorf("answer %d: %d out of range [%d, %d]", i, v, scoring.MinAnswer, scoring.MaxAnswer)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no answers given")
	}
	return out, nil
}

func writeResultText(w io.Writer, res scoring.Result, cat *catalog.Catalog) {
	fmt.Fprintf(w, "%s\n\n", res.ShareCode())
	for _, a := range bank.Axes {
		labels := cat.Labels(a)
		fmt.Fprintf(w, "%-6s %s %3d%%  |  %3d%% %s %s\n",
			labels.First, a.First(), res.Percentages.Get(a.First()),
			res.Percentages.Get(a.Second()), a.Second(), labels.Second)
	}
	fmt.Fprintf(w, "\nMBTI: %s\n", res.MBTIDescription)
	fmt.Fprintf(w, "A/B:  %s\n", res.CharmPrimaryDescription)
	fmt.Fprintf(w, "C/D:  %s\n", res.CharmSecondaryDescription)
	if res.SkippedAnswers > 0 {
		fmt.Fprintf(w, "\n%d answers had no statement and were skipped\n", res.SkippedAnswers)
	}
}
