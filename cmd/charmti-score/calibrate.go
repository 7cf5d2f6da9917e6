package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/scoring"
)

type AxisSummary struct {
	Axis   string  `json:"axis"`
	Letter string  `json:"letter"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type TypeCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// CalibrationReport describes how a form distributes uniformly random
// answer sheets across axes and types.
type CalibrationReport struct {
	Runs          int           `json:"runs"`
	QuestionCount int           `json:"question_count"`
	Seed          uint64        `json:"seed"`
	Axes          []AxisSummary `json:"axes"`
	MBTITypes     []TypeCount   `json:"mbti_types"`
	CharmTypes    []TypeCount   `json:"charm_types"`
}

func newCalibrateCmd() *cobra.Command {
	var (
		src       sourceFlags
		runs      int
		questions int
		seed      uint64
		format    string
	)

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Simulate random answer sheets and summarize the results",
		Long: `Simulate --runs answer sheets with uniformly random answers and report
the mean and spread of each axis percentage and how often each type comes up.

A well balanced form keeps every axis mean near 50.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs <= 0 {
				return fmt.Errorf("--runs must be positive")
			}
			if questions <= 0 {
				return fmt.Errorf("--questions must be positive")
			}
			if format != "json" && format != "text" {
				return fmt.Errorf("unknown format %q: want json or text", format)
			}
			engine, err := src.engine()
			if err != nil {
				return err
			}

			report, err := calibrate(engine, runs, questions, seed)
			if err != nil {
				return err
			}
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			writeReportText(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().IntVarP(&runs, "runs", "n", 1000, "number of simulated answer sheets")
	cmd.Flags().IntVarP(&questions, "questions", "q", bank.ShortForm, "number of statements in the form")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: json or text")
	cmd.Flags().StringVar(&src.bankPath, "bank", "", "statement bank YAML (default: embedded)")
	cmd.Flags().StringVar(&src.catalogPath, "catalog", "", "description catalog YAML (default: embedded)")
	return cmd
}

func calibrate(engine *scoring.Engine, runs, questions int, seed uint64) (CalibrationReport, error) {
	rng := rand.New(rand.NewPCG(seed, seed))
	span := scoring.MaxAnswer - scoring.MinAnswer + 1

	samples := make([][]float64, bank.NumAxes)
	mbtiCounts := map[string]int{}
	charmCounts := map[string]int{}

	answers := make([]int, questions)
	for i := 0; i < runs; i++ {
		for j := range answers {
			answers[j] = rng.IntN(span) + scoring.MinAnswer
		}
		res := engine.Compute(answers, questions)
		for k, a := range bank.Axes {
			samples[k] = append(samples[k], float64(res.Percentages.Get(a.First())))
		}
		mbtiCounts[res.MBTIType]++
		charmCounts[res.CharmType]++
	}

	report := CalibrationReport{
		Runs:          runs,
		QuestionCount: questions,
		Seed:          seed,
		MBTITypes:     sortedCounts(mbtiCounts),
		CharmTypes:    sortedCounts(charmCounts),
	}
	for k, a := range bank.Axes {
		s, err := summarize(samples[k])
		if err != nil {
			return CalibrationReport{}, fmt.Errorf("summarize %s: %w", a, err)
		}
		s.Axis = a.String()
		s.Letter = a.First().String()
		report.Axes = append(report.Axes, s)
	}
	return report, nil
}

func summarize(data stats.Float64Data) (AxisSummary, error) {
	var s AxisSummary
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	return s, nil
}

// sortedCounts orders by count descending, then code.
func sortedCounts(m map[string]int) []TypeCount {
	out := make([]TypeCount, 0, len(m))
	for code, n := range m {
		out = append(out, TypeCount{Code: code, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func writeReportText(w io.Writer, r CalibrationReport) {
	fmt.Fprintf(w, "%d runs, %d questions, seed %d\n\n", r.Runs, r.QuestionCount, r.Seed)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AXIS\tLETTER\tMEAN%\tSTDDEV\tMEDIAN\tMIN\tMAX")
	for _, a := range r.Axes {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%.0f\t%.0f\t%.0f\n", a.Axis, a.Letter, a.Mean, a.StdDev, a.Median, a.Min, a.Max)
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tCOUNT\tSHARE")
	for _, t := range r.MBTITypes {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", t.Code, t.Count, 100*float64(t.Count)/float64(r.Runs))
	}
	for _, t := range r.CharmTypes {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", t.Code, t.Count, 100*float64(t.Count)/float64(r.Runs))
	}
	tw.Flush()
}
