package scoring

import (
	"log/slog"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
	"github.com/MikeSquared-Agency/CharMTI/internal/catalog"
)

// Result is the complete output of one finished test run. It is built once
// and never mutated.
type Result struct {
	MBTIType                  string      `json:"mbti_type"`
	CharmType                 string      `json:"charm_type"`
	Percentages               Percentages `json:"axis_percentages"`
	MBTIDescription           string      `json:"mbti_description"`
	CharmPrimaryDescription   string      `json:"charm_primary_description"`
	CharmSecondaryDescription string      `json:"charm_secondary_description"`

	Scores         Accumulator `json:"scores"`
	QuestionCount  int         `json:"question_count"`
	StatementsUsed int         `json:"statements_used"`
	SkippedAnswers int         `json:"skipped_answers"`
}

// ShareCode joins both codes, e.g. "INFP-BD".
func (r Result) ShareCode() string {
	return r.MBTIType + "-" + r.CharmType
}

// Engine scores answer sheets against a statement bank. It holds no mutable
// state, so one Engine may serve concurrent callers.
type Engine struct {
	bank    *bank.Bank
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewEngine creates an Engine over the given bank and description catalog.
func NewEngine(b *bank.Bank, c *catalog.Catalog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{bank: b, catalog: c, logger: logger}
}

// Bank returns the statement bank the engine scores against.
func (e *Engine) Bank() *bank.Bank { return e.bank }

// Catalog returns the description catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Compute scores answers against the first questionCount statements.
//
// It never fails. Answers without a statement are skipped, axes no statement
// addresses split 50/50, and unknown codes get fallback text. When no
// statement is active at all the descriptions are the fallback text too,
// since nothing informed the result.
func (e *Engine) Compute(answers []int, questionCount int) Result {
	stmts := e.bank.Prefix(questionCount)
	acc, skipped := Accumulate(stmts, answers)
	mbti, charm := Resolve(acc)

	r := Result{
		MBTIType:       mbti,
		CharmType:      charm,
		Percentages:    Normalize(stmts, acc),
		Scores:         acc,
		QuestionCount:  questionCount,
		StatementsUsed: len(stmts),
		SkippedAnswers: skipped,
	}

	if len(stmts) == 0 {
		r.MBTIDescription = catalog.FallbackMBTI
		r.CharmPrimaryDescription = catalog.FallbackCharmPrimary
		r.CharmSecondaryDescription = catalog.FallbackCharmSecondary
	} else {
		r.MBTIDescription = e.catalog.MBTI(mbti)
		r.CharmPrimaryDescription = e.catalog.CharmPrimary(charm[:1])
		r.CharmSecondaryDescription = e.catalog.CharmSecondary(charm[1:])
	}

	if skipped > 0 || len(answers) != len(stmts) {
		e.logger.Debug("answer sheet does not match statements",
			"answers", len(answers),
			"question_count", questionCount,
			"statements_used", len(stmts),
			"skipped", skipped,
		)
	}
	return r
}
