package scoring

import (
	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/catalog"
)

// AxisBreakdown explains how one axis was decided.
type AxisBreakdown struct {
	Axis          string             `json:"axis"`
	First         string             `json:"first"`
	Second        string             `json:"second"`
	FirstScore    int                `json:"first_score"`
	SecondScore   int                `json:"second_score"`
	FirstPercent  int                `json:"first_percent"`
	SecondPercent int                `json:"second_percent"`
	Winner        string             `json:"winner"`
	Tie           bool               `json:"tie"`
	Statements    int                `json:"statements"`
	Labels        catalog.AxisLabels `json:"labels"`
}

// Explanation is a result together with its per-axis breakdown.
type Explanation struct {
	Result Result          `json:"result"`
	Axes   []AxisBreakdown `json:"axes"`
}

// Explain computes a result and reports, per axis, the totals, split and
// number of statements that addressed it.
func (e *Engine) Explain(answers []int, questionCount int) Explanation {
	r := e.Compute(answers, questionCount)
	t := tallyStatements(e.bank.Prefix(questionCount))

	axes := make([]AxisBreakdown, 0, bank.NumAxes)
	for _, a := range bank.Axes {
		x, y := a.First(), a.Second()
		axes = append(axes, AxisBreakdown{
			Axis:          a.String(),
			First:         x.String(),
			Second:        y.String(),
			FirstScore:    r.Scores[x],
			SecondScore:   r.Scores[y],
			FirstPercent:  r.Percentages[x],
			SecondPercent: r.Percentages[y],
			Winner:        Winner(r.Scores, a).String(),
			Tie:           r.Scores[x] == r.Scores[y],
			Statements:    t.relevant[a],
			Labels:        e.catalog.Labels(a),
		})
	}
	return Explanation{Result: r, Axes: axes}
}
